// Package config loads tool-level defaults for qtweb from qtweb.yaml or
// the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds user defaults applied before prompting.
type Config struct {
	Framework string   `mapstructure:"framework"`
	Language  string   `mapstructure:"language"`
	Qt        QtConfig `mapstructure:"qt"`
}

// QtConfig carries the Qt-related overrides.
type QtConfig struct {
	// Path short-circuits discovery entirely when set.
	Path string `mapstructure:"path"`
	// Verbose enables the discovery diagnostic trail.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads qtweb.yaml from the working directory or the user config
// directory, layered under QTWEB_* environment variables. A missing file
// is not an error; defaults apply.
func Load(userConfigDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("framework", "")
	v.SetDefault("language", "")
	v.SetDefault("qt.path", "")
	v.SetDefault("qt.verbose", false)

	v.SetConfigName("qtweb")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if userConfigDir != "" {
		v.AddConfigPath(filepath.Join(userConfigDir, "qtweb"))
	}

	v.SetEnvPrefix("QTWEB")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
