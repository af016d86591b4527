// Package config holds the configuration for the jsontool command.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the formatting configuration for jsontool.
type Config struct {
	// Indent is the number of spaces per indentation level.
	Indent int `yaml:"indent"`
	// SortKeys emits object keys in byte-wise ascending order.
	SortKeys bool `yaml:"sort_keys"`
	// Compact emits single-line output; takes precedence over Indent.
	Compact bool `yaml:"compact"`
	// TrailingNewline appends a final newline to the output.
	TrailingNewline bool `yaml:"trailing_newline"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Indent:          4,
		SortKeys:        false,
		Compact:         false,
		TrailingNewline: true,
	}
}

// LoadConfig loads configuration from a YAML file, starting from the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	if cfg.Indent < 0 {
		return nil, errors.Newf("indent must not be negative, got %d", cfg.Indent)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in the current directory and
// its parents. It returns an empty string when none is found.
func FindConfigFile() string {
	configNames := []string{".jsontool.yml", ".jsontool.yaml", "jsontool.yml", "jsontool.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}
