package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/landing-page-generator/internal/sections"
)

// GenerationResult is the output of one generation run. It is created once
// per run and immutable afterward; the persistence sink writes it to a JSON
// artifact and a human-readable Markdown document.
type GenerationResult struct {
	RunID        uuid.UUID          `json:"run_id"`
	Config       PageConfig         `json:"config"`
	GeneratedAt  time.Time          `json:"generated_at"`
	PageContent  string             `json:"page_content"`
	PatternsUsed SelectedPatterns   `json:"patterns_used"`
	WordCount    int                `json:"word_count"`
	Sections     *sections.Sections `json:"sections"`
}
