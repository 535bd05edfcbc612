// Package config loads teletype settings from .teletype.yaml and the
// TELETYPE_ environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = ".teletype.yaml"

// EnvPrefix prefixes environment overrides, e.g. TELETYPE_APP.
const EnvPrefix = "TELETYPE"

// Config holds project level defaults. Command line flags take precedence.
type Config struct {
	// App is the directory under lib/ holding cli.rb.
	App         string `mapstructure:"app" yaml:"app,omitempty" json:"app,omitempty"`
	Description string `mapstructure:"description" yaml:"description,omitempty" json:"description,omitempty"`
	Force       bool   `mapstructure:"force" yaml:"force,omitempty" json:"force,omitempty"`
	NoColor     bool   `mapstructure:"no_color" yaml:"no_color,omitempty" json:"no_color,omitempty"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-" json:"file,omitempty"`
}

// Path returns the config file path for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the config for the project at root. A missing file is not an
// error; environment variables still apply.
func Load(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".teletype")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Unmarshal only sees env values for known keys.
	v.SetDefault("app", "")
	v.SetDefault("description", "")
	v.SetDefault("force", false)
	v.SetDefault("no_color", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	cfg.File = v.ConfigFileUsed()

	return &cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes cfg to the project's config file.
func Save(root string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	path := Path(root)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
