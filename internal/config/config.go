// Package config loads the optional CLI configuration file.
//
// The file is YAML and every field has a working default, so a missing file
// is not an error. Flags override file values; the file only sets defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults.
type Config struct {
	// Format is the default output format: "text" or "json".
	Format string `yaml:"format"`

	// History configures the conversion history log.
	History HistoryConfig `yaml:"history"`
}

// HistoryConfig configures conversion recording.
type HistoryConfig struct {
	// Enabled turns on history recording for every conversion command.
	Enabled bool `yaml:"enabled"`

	// Database is the SQLite path for the history log.
	// Empty means the default location under the user config directory.
	Database string `yaml:"database"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Format: "text"}
}

// DefaultPath returns the conventional config file location,
// e.g. ~/.config/chronos/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "chronos", "config.yaml"), nil
}

// DefaultHistoryPath returns the conventional history database location.
func DefaultHistoryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "chronos", "history.db"), nil
}

// Load reads the config file at path. A missing file yields defaults;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("config %s: format %q must be \"text\" or \"json\"", path, cfg.Format)
	}

	return cfg, nil
}
