package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/audiomark/wavio"
)

type embedSummary struct {
	Input        string  `json:"input" yaml:"input"`
	Output       string  `json:"output" yaml:"output"`
	Format       string  `json:"format" yaml:"format"`
	Policy       string  `json:"policy" yaml:"policy"`
	Embedded     string  `json:"embedded" yaml:"embedded"`
	MarkBits     int     `json:"mark_bits" yaml:"mark_bits"`
	Written      int     `json:"written" yaml:"written"`
	Partial      bool    `json:"partial" yaml:"partial"`
	Changed      int     `json:"changed_samples" yaml:"changed_samples"`
	MaxDeviation float64 `json:"max_deviation" yaml:"max_deviation"`
	SNR          float64 `json:"snr_db" yaml:"snr_db"`
}

func newEmbedCommand(g *globalFlags) *cobra.Command {
	var input, output, text string
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed a text watermark into a WAV file",
		Long: `Embed a text watermark into the least significant bits of a 16-bit PCM
WAV file. Without -m the configured default mark is used.`,
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

			res, err := w.Embed(clip.Samples, clip.Format, text)
			if err != nil {
				return err
			}
			if res.Partial {
				slog.Warn("audio too short for the whole mark",
					"mark_bits", res.MarkBits, "written", res.Written)
			}
			if err := wavio.WriteFile(output, &wavio.Clip{Samples: res.Samples, Format: clip.Format}); err != nil {
				return err
			}
			slog.Debug("wrote output", "path", output)

			return g.output(cmd.OutOrStdout(), embedSummary{
				Input:        input,
				Output:       output,
				Format:       clip.Format.String(),
				Policy:       w.Policy().String(),
				Embedded:     res.Mark,
				MarkBits:     res.MarkBits,
				Written:      res.Written,
				Partial:      res.Partial,
				Changed:      res.Distortion.Changed,
				MaxDeviation: res.Distortion.MaxDeviation,
				SNR:          res.Distortion.SNR,
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input WAV file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output WAV file")
	cmd.Flags().StringVarP(&text, "mark", "m", "", "watermark text (default from config)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
