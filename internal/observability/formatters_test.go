package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/landing-page-generator/internal/sections"
	"github.com/jonathan/landing-page-generator/internal/types"
)

func TestPrintSelectedPatterns(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sel := &types.SelectedPatterns{
		PageStructure: []string{"hook_headline", "quiz_promise", "final_cta"},
		AngleElements: types.AngleDef{
			EmotionalArc: []string{"frustration", "breakthrough"},
		},
		UniversalPatterns: types.UniversalPatterns{
			PsychologicalTriggers: types.PsychologicalTriggers{
				Mandatory: []string{"social_proof"},
			},
		},
		HeadlineExamples: []types.SwipeExample{{Text: "H1"}},
	}

	p.PrintSelectedPatterns(sel)
	out := buf.String()

	assert.Contains(t, out, "Selected Patterns")
	assert.Contains(t, out, "hook_headline")
	assert.Contains(t, out, "social_proof")
	assert.Contains(t, out, "1 headlines, 0 CTAs, 0 guarantees")
}

func TestPrintSelectedPatterns_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sel := &types.SelectedPatterns{
		PageStructure: []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"},
	}

	p.PrintSelectedPatterns(sel)
	out := buf.String()

	assert.Contains(t, out, "s5")
	assert.NotContains(t, out, "s6")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintSelectedPatterns_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelectedPatterns(nil)
	assert.Empty(t, buf.String())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	res := &types.GenerationResult{
		Config: types.PageConfig{
			ProductName: "Peak Shape Pro",
			PageType:    "quiz_funnel",
		},
		WordCount: 3200,
		Sections:  sections.Extract("### Hook\nbody\n### Offer\nbody"),
	}

	p.PrintResult(res)
	out := buf.String()

	assert.Contains(t, out, "Generation Result")
	assert.Contains(t, out, "Peak Shape Pro")
	assert.Contains(t, out, "3200")
	assert.Contains(t, out, "hook")
	// Output stays inside the box borders.
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "│") ||
			strings.HasPrefix(line, "├") || strings.HasPrefix(line, "└"))
	}
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(nil)
	assert.Empty(t, buf.String())
}
