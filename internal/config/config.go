// Package config loads sheetpeek settings from defaults, an optional YAML
// file, SHEETPEEK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// InputConfig selects the files to inspect
type InputConfig struct {
	Dir   string   `mapstructure:"dir"`   // Base directory joined onto relative file names
	Files []string `mapstructure:"files"` // File names, used when no arguments are given
	Sheet string   `mapstructure:"sheet"` // Worksheet name; empty reads the first worksheet part
}

// OutputConfig controls what is printed
type OutputConfig struct {
	Format    string `mapstructure:"format"`     // "text" or "json"
	Limit     int    `mapstructure:"limit"`      // Leading rows considered per file; 0 = all
	SkipEmpty bool   `mapstructure:"skip_empty"` // Omit rows without any value
	Pretty    bool   `mapstructure:"pretty"`     // Indent JSON output
	Progress  bool   `mapstructure:"progress"`   // Show a progress bar on stderr
}

// LogConfig controls diagnostics
type LogConfig struct {
	Verbose bool   `mapstructure:"verbose"`
	File    string `mapstructure:"file"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"dir":        "input.dir",
	"sheet":      "input.sheet",
	"format":     "output.format",
	"limit":      "output.limit",
	"skip-empty": "output.skip_empty",
	"pretty":     "output.pretty",
	"progress":   "output.progress",
	"verbose":    "log.verbose",
	"log-file":   "log.file",
}

// Load reads the configuration. configPath may be empty, in which case
// sheetpeek.yaml in the working directory is used if present. flags may be nil;
// flags that were set on the command line take precedence over everything else.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SHEETPEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := configPath != ""
	if configPath == "" {
		configPath = "sheetpeek.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; a missing explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
		if explicit || !missing {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.dir", "")
	v.SetDefault("input.files", []string{})
	v.SetDefault("input.sheet", "")

	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.limit", 60)
	v.SetDefault("output.skip_empty", true)
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.progress", false)

	v.SetDefault("log.verbose", false)
	v.SetDefault("log.file", "")
}

// Validate checks values that cannot be corrected silently
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format: %s (must be text or json)", c.Output.Format)
	}
	if c.Output.Limit < 0 {
		return fmt.Errorf("invalid limit: %d (must be >= 0)", c.Output.Limit)
	}
	return nil
}
