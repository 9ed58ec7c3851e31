// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default limits applied when neither flags nor the config file set them.
const (
	DefaultMaxOutfits = 5
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to catalog CSV file
	Out     string `json:"out,omitempty"`     // Path for output artifacts

	// Limits
	MaxOutfits int `json:"max_outfits,omitempty"` // Maximum outfits to assemble per request

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`  // Print detailed pipeline information
	Rendered bool `json:"rendered,omitempty"` // Emit rendered text instead of JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxOutfits < 0 {
		return fmt.Errorf("config error: 'max_outfits' must be non-negative")
	}
	return nil
}

// FromEnv fills unset fields from environment variables (OUTFIT_AGENT_CATALOG).
// Explicit config file values and flags take precedence.
func (c *Config) FromEnv() {
	if c.Catalog == "" {
		c.Catalog = os.Getenv("OUTFIT_AGENT_CATALOG")
	}
}
