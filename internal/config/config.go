// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Guidelines    string `json:"guidelines,omitempty"`     // Path to guideline document file or directory
	GuidelinesURL string `json:"guidelines_url,omitempty"` // URL to fetch guidelines from
	AssetsDir     string `json:"assets_dir,omitempty"`     // Directory of corpus asset images
	Brand         string `json:"brand,omitempty"`          // Brand name for the synthesized kit

	// Limits
	Tolerance   float64 `json:"tolerance,omitempty"`    // Max RGB distance for a color match
	TopColors   int     `json:"top_colors,omitempty"`   // Dominant colors sampled per asset
	TopKeywords int     `json:"top_keywords,omitempty"` // Frequent keywords kept per kit

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for voice enrichment
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA brand portals
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Guidelines != "" && c.GuidelinesURL != "" {
		return fmt.Errorf("config error: 'guidelines' and 'guidelines_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.Tolerance < 0 {
		return fmt.Errorf("config error: 'tolerance' must be non-negative")
	}
	if c.TopColors < 0 {
		return fmt.Errorf("config error: 'top_colors' must be non-negative")
	}
	if c.TopKeywords < 0 {
		return fmt.Errorf("config error: 'top_keywords' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Guidelines != "" {
		if _, err := os.Stat(c.Guidelines); os.IsNotExist(err) {
			return fmt.Errorf("config error: guidelines path not found: %s", c.Guidelines)
		}
	}

	if c.AssetsDir != "" {
		if _, err := os.Stat(c.AssetsDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: assets directory not found: %s", c.AssetsDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Guidelines == "" {
		result.Guidelines = defaults.Guidelines
	}
	if result.GuidelinesURL == "" {
		result.GuidelinesURL = defaults.GuidelinesURL
	}
	if result.AssetsDir == "" {
		result.AssetsDir = defaults.AssetsDir
	}
	if result.Brand == "" {
		result.Brand = defaults.Brand
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.TopColors == 0 {
		result.TopColors = defaults.TopColors
	}
	if result.TopKeywords == 0 {
		result.TopKeywords = defaults.TopKeywords
	}

	// Float fields
	if result.Tolerance == 0 {
		if defaults.Tolerance > 0 {
			result.Tolerance = defaults.Tolerance
		} else {
			result.Tolerance = 60 // Default color-match tolerance
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
