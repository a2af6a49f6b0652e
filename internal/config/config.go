// Package config loads and validates dartify.config.json and provides the
// glob matching used to select declaration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
)

// FileName is the config file discovered in the working directory.
const FileName = "dartify.config.json"

// Config represents the dartify configuration.
type Config struct {
	// Include lists .d.ts files or glob patterns to generate bindings for.
	// CLI arguments take precedence when given.
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`

	// OutDir is the directory Dart bindings are written into.
	OutDir string `json:"outDir,omitempty"`

	// Quiet suppresses warning-level diagnostics.
	Quiet bool `json:"quiet,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutDir: "out",
	}
}

// Load reads and parses a dartify config file. Unknown keys are rejected so
// a typo never silently disables an option.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config, json.RejectUnknownMembers(true)); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Discover returns the path of a dartify.config.json in dir, or "" when none
// exists.
func Discover(dir string) string {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return fmt.Errorf("outDir must not be empty")
	}
	for _, pattern := range c.Include {
		if pattern == "" {
			return fmt.Errorf("include: empty pattern")
		}
	}
	return nil
}
