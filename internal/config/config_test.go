package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/landing-page-generator/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeTempFile(t, "settings.json", `{
  "pattern_dir": "patterns",
  "output_dir": "out",
  "model": "gemini-2.5-flash"
}`)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "patterns", s.PatternDir)
	assert.Equal(t, "out", s.OutputDir)
	assert.Equal(t, "gemini-2.5-flash", s.Model)
	assert.Empty(t, s.APIKey)
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := LoadSettings("")
	assert.Error(t, err)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeTempFile(t, "bad.json", "{not json")
	_, err = LoadSettings(path)
	assert.Error(t, err)
}

func TestSettings_MergeWithDefaults(t *testing.T) {
	s := Settings{OutputDir: "custom_out"}
	defaults := Settings{
		PatternDir: "config",
		SwipeDir:   "analysis",
		OutputDir:  "generated_pages",
	}

	merged := s.MergeWithDefaults(defaults)

	assert.Equal(t, "config", merged.PatternDir)
	assert.Equal(t, "analysis", merged.SwipeDir)
	// Explicit values win over defaults.
	assert.Equal(t, "custom_out", merged.OutputDir)
}

func TestLoadPageConfig(t *testing.T) {
	path := writeTempFile(t, "page.json", `{
  "page_type": "quiz_funnel",
  "industry": "fitness",
  "product_name": "Peak Shape Pro",
  "price_point": 97,
  "angle": "transformation_story",
  "specific_benefits": ["a", "b", "c"],
  "pain_points": ["x", "y", "z"]
}`)

	cfg, err := LoadPageConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Peak Shape Pro", cfg.ProductName)
	assert.Equal(t, 97.0, cfg.PricePoint)
	// Optional fields picked up defaults.
	assert.Equal(t, types.DefaultLength, cfg.Length)
	assert.Equal(t, types.DefaultGuaranteeType, cfg.GuaranteeType)

	assert.NoError(t, cfg.Validate())
}

func TestLoadPageConfig_Missing(t *testing.T) {
	_, err := LoadPageConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
