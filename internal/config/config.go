package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. PAGELOADER_LOG_LEVEL.
const EnvPrefix = "PAGELOADER"

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Loader LoaderConfig `mapstructure:"loader"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoaderConfig holds loading context settings.
type LoaderConfig struct {
	MaxDepth             int  `mapstructure:"max_depth"`
	CaseInsensitiveNames bool `mapstructure:"case_insensitive_names"`
}

var defaults = map[string]any{
	"log.level":                     "info",
	"log.format":                    "text",
	"loader.max_depth":              64,
	"loader.case_insensitive_names": false,
}

// Load reads configuration. path names an optional config file in any
// format viper understands; an empty path skips it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)

		// AutomaticEnv alone does not reach nested keys during Unmarshal.
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings that cannot be applied.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	if c.Loader.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("loader.max_depth must be positive, got %d", c.Loader.MaxDepth))
	}

	return errors.Join(errs...)
}
