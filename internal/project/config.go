package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = "venvman.yaml"

// Config represents venvman.yaml.
type Config struct {
	Version      int    `yaml:"version"`
	Venv         string `yaml:"venv,omitempty"`
	Requirements string `yaml:"requirements,omitempty"`
	Python       string `yaml:"python,omitempty"`
}

// Parse parses and validates venvman.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and validates a venvman.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// SaveConfig validates and writes a venvman.yaml file.
func SaveConfig(path string, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("config: unsupported version: %d (expected 1)", cfg.Version)
	}
	if err := validatePath(cfg.Venv, "venv"); err != nil {
		return err
	}
	if err := validatePath(cfg.Requirements, "requirements"); err != nil {
		return err
	}
	return nil
}

// validatePath ensures a configured path is relative and does not escape
// the project root.
func validatePath(p, label string) error {
	if p == "" {
		return nil
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: %s: path must not escape project root (contains ..): %s", label, p)
	}
	return nil
}
