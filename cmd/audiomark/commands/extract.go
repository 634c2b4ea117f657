package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/audiomark"
	"github.com/yyyoichi/audiomark/wavio"
)

// noWatermark is reported in place of the text when nothing was recovered.
const noWatermark = "No watermark"

type extractSummary struct {
	Input      string `json:"input" yaml:"input"`
	Detected   bool   `json:"detected" yaml:"detected"`
	Watermark  string `json:"watermark" yaml:"watermark"`
	Terminated bool   `json:"terminated" yaml:"terminated"`
	Partial    bool   `json:"partial" yaml:"partial"`
	Bits       int    `json:"bits_read" yaml:"bits_read"`
}

func newExtractCommand(g *globalFlags) *cobra.Command {
	var (
		input  string
		cycled int
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Read a text watermark from a WAV file",
		Long: `Read the least significant bits of a 16-bit PCM WAV file and decode them
as text. Decoding stops at a NUL byte or after --scan-bits bits; marks
embedded with --terminator=false carry no NUL, so noise after them is
decoded too.
For marks written with the cycle policy pass --cycled-chars with the mark
length so every repetition votes on each bit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := g.watermark(cmd)
			if err != nil {
				return err
			}
			clip, err := wavio.ReadFile(input)
			if err != nil {
				return err
			}
			slog.Debug("decoded input", "path", input, "format", clip.Format, "samples", len(clip.Samples))

			var res *audiomark.ExtractResult
			if cycled > 0 {
				res, err = w.ExtractCycled(clip.Samples, clip.Format, cycled)
			} else {
				res, err = w.Extract(clip.Samples, clip.Format)
			}
			if err != nil {
				return err
			}

			summary := extractSummary{
				Input:      input,
				Detected:   res.Found,
				Watermark:  res.Text,
				Terminated: res.Terminated,
				Partial:    res.Partial,
				Bits:       res.Bits,
			}
			if !res.Found {
				summary.Watermark = noWatermark
			}
			return g.output(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input WAV file")
	cmd.Flags().IntVar(&cycled, "cycled-chars", 0, "length of a cycled mark; enables voting extraction")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
