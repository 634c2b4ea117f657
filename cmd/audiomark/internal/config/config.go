package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/yyyoichi/audiomark"
)

// DefaultMark is embedded when neither a flag, the config file nor the
// environment supplies one.
const DefaultMark = "AUDIO_WM_2025"

// Config stores the codec settings shared by all commands.
type Config struct {
	Mark       string `yaml:"mark"`
	Cap        int    `yaml:"cap"`
	Policy     string `yaml:"policy"`
	Window     int    `yaml:"window"`
	ScanBits   int    `yaml:"scan_bits"`
	Terminator bool   `yaml:"terminator"`
}

// Default marks are NUL terminated so extraction from real recordings stops
// at the end of the mark instead of decoding the noise behind it.
func Default() *Config {
	return &Config{
		Mark:       DefaultMark,
		Cap:        100,
		Policy:     audiomark.Truncate.String(),
		ScanBits:   audiomark.DefaultScanBits,
		Terminator: true,
	}
}

// Load builds a Config from defaults, then the YAML file at path (if any),
// then AUDIOMARK_* environment variables. A .env file in the working
// directory is loaded first when present.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("AUDIOMARK_MARK"); v != "" {
		c.Mark = v
	}
	if v := os.Getenv("AUDIOMARK_POLICY"); v != "" {
		c.Policy = v
	}
	for _, e := range []struct {
		key string
		dst *int
	}{
		{"AUDIOMARK_CAP", &c.Cap},
		{"AUDIOMARK_WINDOW", &c.Window},
		{"AUDIOMARK_SCAN_BITS", &c.ScanBits},
	} {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v := os.Getenv("AUDIOMARK_TERMINATOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUDIOMARK_TERMINATOR: %w", err)
		}
		c.Terminator = b
	}
	return nil
}

// Options converts the config into codec options. The default mark is
// passed along so an empty payload falls back to it. Cycled marks are read by
// length, so Terminator only applies to the truncate policy.
func (c *Config) Options() ([]audiomark.Option, error) {
	policy, err := audiomark.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	opts := []audiomark.Option{
		audiomark.WithCap(c.Cap),
		audiomark.WithPolicy(policy),
		audiomark.WithWindow(c.Window),
		audiomark.WithScanBits(c.ScanBits),
		audiomark.WithDefaultMark(c.Mark),
	}
	if c.Terminator && policy == audiomark.Truncate {
		opts = append(opts, audiomark.WithTerminator())
	}
	return opts, nil
}
