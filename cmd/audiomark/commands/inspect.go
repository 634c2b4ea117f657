package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/audiomark/wavio"
)

type inspectSummary struct {
	Input    string `json:"input" yaml:"input"`
	Format   string `json:"format" yaml:"format"`
	Samples  int    `json:"samples" yaml:"samples"`
	Frames   int    `json:"frames" yaml:"frames"`
	Duration string `json:"duration" yaml:"duration"`
	Capacity int    `json:"capacity_chars" yaml:"capacity_chars"`
}

func newInspectCommand(g *globalFlags) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the format and watermark capacity of a WAV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := g.watermark(cmd)
			if err != nil {
				return err
			}
			clip, err := wavio.ReadFile(input)
			if err != nil {
				return err
			}
			var d time.Duration
			if rate := clip.Format.SampleRate; rate > 0 {
				d = time.Duration(clip.Frames()) * time.Second / time.Duration(rate)
			}
			return g.output(cmd.OutOrStdout(), inspectSummary{
				Input:    input,
				Format:   clip.Format.String(),
				Samples:  len(clip.Samples),
				Frames:   clip.Frames(),
				Duration: d.String(),
				Capacity: w.Capacity(len(clip.Samples)),
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input WAV file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
