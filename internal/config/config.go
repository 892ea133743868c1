// Package config loads the application configuration: a YAML file searched
// in the usual places, overridable through ATTACHE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataDir is where contacts.json and notes.json live.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
	// Theme selects the color scheme for the terminal UI.
	Theme string `yaml:"theme" mapstructure:"theme"`
	// FuzzyCutoff is the minimum similarity score for the last-resort
	// command guess. Raise it to make guessing stricter.
	FuzzyCutoff int `yaml:"fuzzy_cutoff" mapstructure:"fuzzy_cutoff"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:     filepath.Join(baseDir(), "data"),
		Theme:       "violet",
		FuzzyCutoff: 0,
	}
}

func baseDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "attache")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "attache")
}

// ConfigPath is where WriteDefault puts the file and the last place Load
// looks for it.
func ConfigPath() string {
	return filepath.Join(baseDir(), "config.yaml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Search paths
	v.AddConfigPath(".")
	v.AddConfigPath(baseDir())

	// Environment variables
	v.SetEnvPrefix("ATTACHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; defaults apply
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to ConfigPath so a first
// run leaves an editable file behind. Existing files are left alone.
func WriteDefault() (string, error) {
	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for errors and backfills blanks.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		c.DataDir = DefaultConfig().DataDir
	}
	if c.Theme == "" {
		c.Theme = "violet"
	}
	if c.FuzzyCutoff < 0 {
		return fmt.Errorf("config: fuzzy_cutoff must not be negative, got %d", c.FuzzyCutoff)
	}
	return nil
}
