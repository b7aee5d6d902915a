package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/landing-page-generator/internal/types"
)

// BatchConfig describes a batch generation run: shared defaults plus one
// entry per page. Page fields override defaults field-by-field.
type BatchConfig struct {
	Defaults map[string]json.RawMessage   `json:"defaults,omitempty"`
	Pages    []map[string]json.RawMessage `json:"pages"`
}

// LoadBatchConfig loads a batch configuration from a JSON file.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch config %s: %w", path, err)
	}

	var cfg BatchConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse batch config %s: %w", path, err)
	}

	if len(cfg.Pages) == 0 {
		return nil, fmt.Errorf("batch config %s defines no pages", path)
	}

	return &cfg, nil
}

// MergedPages resolves each page entry against the defaults and returns the
// fully assembled PageConfigs, with optional-field defaults applied. Entries
// that fail to decode abort the whole batch; a malformed batch file is a
// configuration error, not a per-page one.
func (b *BatchConfig) MergedPages() ([]types.PageConfig, error) {
	configs := make([]types.PageConfig, 0, len(b.Pages))

	for i, page := range b.Pages {
		merged := make(map[string]json.RawMessage, len(b.Defaults)+len(page))
		for k, v := range b.Defaults {
			merged[k] = v
		}
		for k, v := range page {
			merged[k] = v
		}

		data, err := json.Marshal(merged)
		if err != nil {
			return nil, fmt.Errorf("failed to assemble page %d: %w", i+1, err)
		}

		var cfg types.PageConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode page %d: %w", i+1, err)
		}

		cfg.ApplyDefaults()
		configs = append(configs, cfg)
	}

	return configs, nil
}
