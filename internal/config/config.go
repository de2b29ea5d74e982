// Package config loads the git-branch configuration from
// ~/.config/git-branch/config.toml. A missing file yields defaults; a
// malformed file is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the git-branch configuration
type Config struct {
	// Strict makes parse failures hard errors instead of falling back
	// to an unknown-type branch.
	Strict bool `toml:"strict"`

	// SearchDepth bounds how many directory levels repository
	// discovery ascends looking for a .git marker.
	SearchDepth int `toml:"search_depth"`

	// DefaultType is the branch type used by `new` when --type is not
	// given: "release", "feature" or "bugfix".
	DefaultType string `toml:"default_type"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Strict:      false,
		SearchDepth: 10,
		DefaultType: "feature",
	}
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-branch", "config.toml"), nil
}

// Load reads the config file, returning defaults if it does not exist.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), fmt.Errorf("locate config: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SearchDepth < 1 {
		return fmt.Errorf("search_depth must be at least 1, got %d", c.SearchDepth)
	}
	switch c.DefaultType {
	case "release", "feature", "bugfix":
		return nil
	}
	return fmt.Errorf("default_type must be release, feature or bugfix, got %q", c.DefaultType)
}
