// Package config loads the optional ~/.tally/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences. All fields are optional; zero values
// fall back to defaults at the point of use.
type Config struct {
	// DBPath overrides the default database location. The TALLY_DB
	// environment variable takes precedence over this.
	DBPath string `yaml:"db_path"`
	// DefaultFilter is the time filter the log view starts on.
	DefaultFilter string `yaml:"default_filter"`
	// Color disables colored output when set to false.
	Color *bool `yaml:"color"`
}

// DefaultDir returns the root data directory (~/.tally).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".tally"), nil
}

// Load reads the config file at path. A missing file yields an empty
// Config; an unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveDBPath picks the database path in precedence order:
// TALLY_DB env var, then the config file, then ~/.tally/tally.db.
func (c *Config) ResolveDBPath() (string, error) {
	if env := os.Getenv("TALLY_DB"); env != "" {
		return env, nil
	}
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tally.db"), nil
}

// ColorEnabled reports whether colored output is wanted (default true).
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
