// Package config loads the tintbar configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/tintbar/internal/colour"
)

// ErrNotFound is returned when no configuration file exists at the resolved path.
var ErrNotFound = errors.New("config file not found")

// NamedColour is a configured colour pair with a display name.
type NamedColour struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Pair returns the colour pair portion of the entry.
func (c NamedColour) Pair() colour.Pair {
	return colour.Pair{Background: c.Background, Foreground: c.Foreground}
}

// Config is the on-disk configuration: the parent directories to scan for
// workspaces and the colour pairs available for assignment. The JSON keys
// match the original config.json schema.
type Config struct {
	ParentDirectories []string      `json:"parent_directories"`
	Colours           []NamedColour `json:"colors"`
}

// DefaultPath returns the default configuration file location,
// e.g. ~/.config/tintbar/config.json on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, "tintbar", "config.json"), nil
}

// Load reads and validates the configuration at path. An empty path resolves
// to DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// validate checks that every configured colour carries well-formed hex values.
func (cfg *Config) validate() error {
	for i, c := range cfg.Colours {
		if _, err := colour.ParseHex(c.Background); err != nil {
			return fmt.Errorf("colour %d (%s) background: %w", i+1, c.Name, err)
		}
		if _, err := colour.ParseHex(c.Foreground); err != nil {
			return fmt.Errorf("colour %d (%s) foreground: %w", i+1, c.Name, err)
		}
	}
	return nil
}

// Save writes the configuration to path, creating parent directories as
// needed. Used to persist generated palettes as the assignment pool.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
