// Package config loads and manages application configuration.
//
// Configuration is loaded with the following precedence:
// environment variables > config file > defaults. The result is an
// explicit struct handed into the parser, importer, and store; core
// packages never read the process environment themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// DataDir is where the history database lives.
	DataDir string `yaml:"data_dir"`

	// TimeFormat is the strftime format the shell uses to render history
	// timestamps (the HISTTIMEFORMAT contract). Empty means history lines
	// carry no timestamp.
	TimeFormat string `yaml:"histtimeformat"`
}

// DefaultConfig returns the default configuration: data under
// $XDG_DATA_HOME/duiker (falling back to ~/.local/share/duiker), no
// timestamp format.
func DefaultConfig() *Config {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	return &Config{DataDir: filepath.Join(dataHome, "duiker")}
}

// Load reads configuration from the config file and environment variables.
// Environment variables take precedence over the config file.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath, err := getConfigPath()
	if err == nil {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "duiker", "config.yaml"), nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DUIKER_HOME"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("HISTTIMEFORMAT"); v != "" {
		c.TimeFormat = v
	}
}

// DatabasePath returns the history database location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "duiker.db")
}

// EnsureDataDir creates the data directory when missing. History data is
// private; the directory is user-only.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
