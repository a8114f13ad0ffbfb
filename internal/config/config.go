// Package config loads and saves the persistable sweep configuration.
//
// The on-disk Config is plain serializable data; per-run aggregate state
// lives in the cleaner package and is never persisted.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project-local config file, discovered by searching
// upward from the working directory.
const FileName = ".sweep.yml"

// globalDir and globalFile locate the fallback config under the user
// config directory, e.g. ~/.config/sweep/config.yml.
const (
	globalDir  = "sweep"
	globalFile = "config.yml"
)

// Config is the serializable configuration for a cleaning run.
type Config struct {
	Path                 string   `yaml:"path"`
	Patterns             []string `yaml:"patterns"`
	ExcludePatterns      []string `yaml:"exclude_patterns,omitempty"`
	DryRun               bool     `yaml:"dry_run,omitempty"`
	SkipConfirmation     bool     `yaml:"skip_confirmation,omitempty"`
	IncludeSymlinks      bool     `yaml:"include_symlinks,omitempty"`
	RemoveBrokenSymlinks bool     `yaml:"remove_broken_symlinks,omitempty"`
	StatsMode            bool     `yaml:"stats,omitempty"`
	OlderThan            string   `yaml:"older_than,omitempty"`
	ShowProgress         bool     `yaml:"progress,omitempty"`
}

// Default returns a configuration with defaults applied.
func Default() *Config {
	return &Config{Path: "."}
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if c.Path == "" {
		c.Path = "."
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the config file atomically (write-then-rename).
func Save(path string, c *Config) error {
	if c.Path == "" {
		c.Path = "."
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// Validate checks field values that can be rejected without touching the
// filesystem.
func Validate(c *Config) error {
	if c.OlderThan != "" {
		if _, err := ParseDuration(c.OlderThan); err != nil {
			return fmt.Errorf("older_than: %w", err)
		}
	}
	return nil
}

// FindUpward searches from startDir toward the filesystem root for a
// regular file named name, returning the first hit.
func FindUpward(startDir, name string) (string, bool) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// GlobalPath returns the global config file path, if the file exists.
func GlobalPath() (string, bool) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(base, globalDir, globalFile)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path, true
	}
	return "", false
}

// Discover locates a config file: first an upward search for .sweep.yml
// from startDir, then the global fallback.
func Discover(startDir string) (string, bool) {
	if path, ok := FindUpward(startDir, FileName); ok {
		return path, true
	}
	return GlobalPath()
}
