package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/yyyoichi/audiomark"

	"github.com/yyyoichi/audiomark/cmd/audiomark/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	cfgFile    string
	outputJSON bool
	verbose    bool

	cfg *config.Config
}

// NewRootCommand builds the command tree. Each call returns an independent tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "audiomark",
		Short: "LSB text watermarks for 16-bit PCM WAV files",
		Long: `audiomark - embed and recover short text watermarks in the least
significant bit of 16-bit PCM audio samples.

Examples:
  # Embed the default mark
  audiomark embed -i in.wav -o out.wav

  # Embed a custom mark, repeated over the first second of stereo audio
  audiomark embed -i in.wav -o out.wav -m "ID-42" --policy cycle --window 88200

  # Read it back
  audiomark extract -i out.wav
  audiomark extract -i out.wav --cycled-chars 5 --policy cycle --window 88200
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Configure slog based on verbose flag
			logLevel := slog.LevelInfo
			if g.verbose {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})))

			cfg, err := config.Load(g.cfgFile)
			if err != nil {
				return err
			}
			g.cfg = cfg
			slog.Debug("config loaded", "file", g.cfgFile, "policy", cfg.Policy, "cap", cfg.Cap)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&g.outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")

	// codec flags override the config file and environment
	rootCmd.PersistentFlags().Int("cap", 0, "maximum watermark length in characters")
	rootCmd.PersistentFlags().String("policy", "", "capacity policy: truncate or cycle")
	rootCmd.PersistentFlags().Int("window", 0, "number of samples eligible for the mark (0 = all)")
	rootCmd.PersistentFlags().Int("scan-bits", 0, "LSBs read when looking for a terminator")
	rootCmd.PersistentFlags().Bool("terminator", true, "append a NUL byte after the mark (truncate policy only)")

	rootCmd.AddCommand(newEmbedCommand(g))
	rootCmd.AddCommand(newExtractCommand(g))
	rootCmd.AddCommand(newInspectCommand(g))
	return rootCmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// watermark builds a codec from the loaded config and any codec flags the
// user set explicitly.
func (g *globalFlags) watermark(cmd *cobra.Command) (*audiomark.Watermark, error) {
	cfg := *g.cfg
	flags := cmd.Flags()
	if flags.Changed("cap") {
		cfg.Cap, _ = flags.GetInt("cap")
	}
	if flags.Changed("policy") {
		cfg.Policy, _ = flags.GetString("policy")
	}
	if flags.Changed("window") {
		cfg.Window, _ = flags.GetInt("window")
	}
	if flags.Changed("scan-bits") {
		cfg.ScanBits, _ = flags.GetInt("scan-bits")
	}
	if flags.Changed("terminator") {
		cfg.Terminator, _ = flags.GetBool("terminator")
		if cfg.Terminator && cfg.Policy == audiomark.Cycle.String() {
			return nil, fmt.Errorf("%w: --terminator cannot be used with the cycle policy", audiomark.ErrInvalidOption)
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return audiomark.New(opts...)
}

// output writes result as YAML, or JSON with --json.
func (g *globalFlags) output(w io.Writer, result any) error {
	if g.outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
