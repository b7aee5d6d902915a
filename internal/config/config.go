// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/landing-page-generator/internal/types"
)

// Settings represents tool-level configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via CLI flags.
type Settings struct {
	PatternDir string `json:"pattern_dir,omitempty"` // Directory with pattern library sources
	SwipeDir   string `json:"swipe_dir,omitempty"`   // Directory with swipe/formula analysis output
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for generated artifacts
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	Model      string `json:"model,omitempty"`       // Model override
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadSettings loads tool settings from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return nil, fmt.Errorf("settings path is empty")
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
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %w", err)
	}

	return &s, nil
}

// MergeWithDefaults returns a new Settings with empty fields filled from
// defaults. CLI flags should always win for booleans, so Verbose is not
// merged.
func (s *Settings) MergeWithDefaults(defaults Settings) Settings {
	result := *s

	if result.PatternDir == "" {
		result.PatternDir = defaults.PatternDir
	}
	if result.SwipeDir == "" {
		result.SwipeDir = defaults.SwipeDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	return result
}

// LoadPageConfig loads a single PageConfig from a JSON file, applying
// defaults for unset optional fields. Validation is left to the caller so
// error reporting stays close to the command surface.
func LoadPageConfig(path string) (*types.PageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page config %s: %w", path, err)
	}

	var cfg types.PageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}
