package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the configuration read from the environment.
// Flags given on the command line take precedence over it.
type Config struct {
	Verbose bool      `mapstructure:"verbose"`
	Format  string    `mapstructure:"format"`
	Data    string    `mapstructure:"data"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format"` // json, text
}

// LoadConfig loads configuration from environment variables with the given prefix.
// SEQQUERY_LOG_LEVEL sets log.level.
func LoadConfig(prefix string) (*Config, error) {
	v := viper.New()

	prefixUpper := strings.ToUpper(prefix)
	for _, envStr := range os.Environ() {
		key, value, ok := strings.Cut(envStr, "=")
		if !ok || !strings.HasPrefix(key, prefixUpper) {
			continue
		}

		propKey := strings.TrimPrefix(key, prefixUpper)
		propKey = strings.ToLower(strings.ReplaceAll(propKey, "_", "."))
		propKey = strings.TrimPrefix(propKey, ".")

		v.Set(propKey, value)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// applyConfig fills the options not set by flags from the environment.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := LoadConfig(EnvPrefix)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if !flags.Changed("verbose") && cfg.Verbose {
		opts.Verbose = true
	}

	if !flags.Changed("format") && cfg.Format != "" {
		opts.Format = cfg.Format
	}

	if !flags.Changed("data") && cfg.Data != "" {
		opts.Data = cfg.Data
	}

	opts.Log = cfg.Log

	return nil
}
