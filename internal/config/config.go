// Package config loads driver settings for the headline CLI. The casing
// rule set itself is fixed at compile time and deliberately not
// configurable; config covers only I/O and ambient concerns.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the headline driver configuration
type Config struct {
	// Format selects line output: "human" or "json"
	Format string `json:"format" mapstructure:"format"`
	// Input is a file to read titles from; empty means stdin
	Input string `json:"input" mapstructure:"input"`
	// Output is a file to write cased titles to; empty means stdout
	Output string `json:"output" mapstructure:"output"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Format: "human",
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from the given file, or from headline.json in
// the current directory when path is empty. A missing config file is not
// an error; defaults are returned.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", "human")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("headline")
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum-valued fields
func (c *Config) Validate() error {
	switch c.Format {
	case "human", "json":
	default:
		return fmt.Errorf("invalid format: %q (want human or json)", c.Format)
	}

	switch c.Logging.Format {
	case "human", "json":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	return nil
}
