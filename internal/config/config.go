// Package config loads the mathio configuration from file, environment and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DanielMiklody/openmeeg/format"
	"github.com/DanielMiklody/openmeeg/internal/logger"
	"github.com/spf13/viper"
)

const (
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "warn"

	// EnvPrefix prefixes every environment variable, e.g. MATHIO_LOG_LEVEL.
	EnvPrefix = "MATHIO"

	// EnvConfig names an explicit configuration file.
	EnvConfig = "MATHIO_CONFIG"
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds the mathio settings.
type Config struct {
	LogLevel      string            `mapstructure:"log_level"`
	DefaultFormat string            `mapstructure:"default_format"`
	Suffixes      map[string]string `mapstructure:"suffixes"`
}

// Load reads the configuration.
//
// With an empty path, the file named by MATHIO_CONFIG is used, or else
// mathio.yaml is searched in the working directory, $HOME/.config/mathio and
// /etc/mathio. A missing file is not an error unless it was named explicitly.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("default_format", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mathio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mathio"))
		}
		v.AddConfigPath("/etc/mathio")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateLogLevel rejects levels other than debug, info, warn and error.
func ValidateLogLevel(level string) error {
	if !logLevels[level] {
		return fmt.Errorf("invalid log level %q", level)
	}
	return nil
}

// Apply registers the configured suffix aliases with reg.
// Replacing a suffix already claimed by another format is logged as a warning.
func (c *Config) Apply(reg *format.Registry) error {
	for suffix, name := range c.Suffixes {
		if prev, ok := reg.Suffix(suffix); ok && prev.Name() != name {
			logger.Warn().
				Str("suffix", suffix).
				Str("previous", prev.Name()).
				Str("format", name).
				Msg("suffix alias replaces registered format")
		}
		if err := reg.Alias(suffix, name); err != nil {
			return fmt.Errorf("suffix %q: %w", suffix, err)
		}
	}
	return nil
}
