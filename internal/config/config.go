// Package config provides configuration management for the CareNotes
// server.
//
// Configuration is a small YAML file carrying the listen address and the
// durable storage location. Command-line flags in main override file
// values.
//
// Config file locations (priority order):
//  1. $CARENOTES_CONFIG
//  2. ./carenotes.yaml
//  3. ~/.config/carenotes/config.yaml
//  4. /etc/carenotes/config.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Listen   string         `yaml:"listen"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig locates the durable storage. The path is the single
// contract-level tunable of the system.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Load finds and loads the config file, or returns defaults if none found.
// The second return value is the path the config was loaded from, empty
// when defaults are in use.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	return &Config{
		Listen:   ":8000",
		Database: DatabaseConfig{Path: "./carenotes.db"},
	}
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8000"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./carenotes.db"
	}
}
