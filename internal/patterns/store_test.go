package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const validPageTypes = `{
  "page_types": {
    "quiz_funnel": {
      "name": "Quiz Funnel",
      "description": "Interactive quiz",
      "structure": ["hook_headline", "quiz_promise", "final_cta"]
    }
  }
}`

const validAngles = `{
  "angles": {
    "transformation_story": {
      "name": "Transformation Story",
      "emotional_arc": ["frustration", "breakthrough"],
      "key_elements": ["reader_bridge"]
    }
  }
}`

const validRules = `{
  "universal_patterns": {
    "psychological_triggers": {
      "mandatory": ["social_proof"],
      "recommended": ["anchoring"]
    },
    "trust_sequence": ["empathy", "ask"]
  },
  "page_specific_rules": {
    "quiz_funnel": {"question_count": "5-8"}
  },
  "effectiveness_multipliers": {
    "high_impact": ["specific numbers"]
  }
}`

const validSwipes = `{
  "headlines": {"main_headlines": [{"text": "H1"}, {"text": "H2"}]},
  "ctas": {"high_converting": [{"text": "C1"}]},
  "guarantees": {"strong_guarantees": [{"text": "G1"}]}
}`

func collectWarnings(warnings *[]string) func(string, ...any) {
	return func(format string, args ...any) {
		*warnings = append(*warnings, fmt.Sprintf(format, args...))
	}
}

func TestLoader_AllSourcesPresent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PageTypesFile, validPageTypes)
	writeFile(t, dir, AnglesFile, validAngles)
	writeFile(t, dir, PatternRulesFile, validRules)

	var warnings []string
	loader := NewLoader(dir, "")
	loader.Warnf = collectWarnings(&warnings)

	set := loader.Load()

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"hook_headline", "quiz_promise", "final_cta"}, set.PageStructure("quiz_funnel"))
	assert.Equal(t, "Transformation Story", set.AngleElements("transformation_story").Name)
	assert.Equal(t, []string{"social_proof"}, set.Rules.UniversalPatterns.PsychologicalTriggers.Mandatory)
	assert.Nil(t, set.Swipes)
}

func TestLoader_MissingSourcesDegrade(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PageTypesFile, validPageTypes)
	// angles.json and pattern_rules.json absent

	var warnings []string
	loader := NewLoader(dir, "")
	loader.Warnf = collectWarnings(&warnings)

	set := loader.Load()

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], AnglesFile)
	assert.Contains(t, warnings[1], PatternRulesFile)

	assert.NotEmpty(t, set.PageTypes)
	assert.Empty(t, set.Angles)
	assert.Empty(t, set.Rules.UniversalPatterns.TrustSequence)
}

func TestLoader_MalformedSourceDegrades(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PageTypesFile, "{not json")
	writeFile(t, dir, AnglesFile, validAngles)
	writeFile(t, dir, PatternRulesFile, validRules)

	var warnings []string
	loader := NewLoader(dir, "")
	loader.Warnf = collectWarnings(&warnings)

	set := loader.Load()

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], PageTypesFile)
	assert.Empty(t, set.PageTypes)
	assert.NotEmpty(t, set.Angles)
}

func TestLoader_SchemaViolationDegrades(t *testing.T) {
	dir := t.TempDir()
	// structure entries must be strings
	writeFile(t, dir, PageTypesFile, `{"page_types": {"quiz_funnel": {"name": "Quiz", "structure": [1, 2]}}}`)

	var warnings []string
	loader := NewLoader(dir, "")
	loader.Warnf = collectWarnings(&warnings)

	set := loader.Load()

	assert.NotEmpty(t, warnings)
	assert.Empty(t, set.PageTypes)
}

func TestLoader_SwipeDirAbsentIsSilent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PageTypesFile, validPageTypes)
	writeFile(t, dir, AnglesFile, validAngles)
	writeFile(t, dir, PatternRulesFile, validRules)

	var warnings []string
	loader := NewLoader(dir, filepath.Join(dir, "no_such_dir"))
	loader.Warnf = collectWarnings(&warnings)

	set := loader.Load()

	assert.Empty(t, warnings)
	assert.Nil(t, set.Swipes)
}

func TestLoader_SwipeDirPresent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PageTypesFile, validPageTypes)
	writeFile(t, dir, AnglesFile, validAngles)
	writeFile(t, dir, PatternRulesFile, validRules)

	swipeDir := t.TempDir()
	writeFile(t, swipeDir, SwipeFile, validSwipes)
	writeFile(t, swipeDir, FormulasFile, `{"pas": "problem-agitate-solve"}`)

	loader := NewLoader(dir, swipeDir)
	loader.Warnf = func(string, ...any) {}

	set := loader.Load()

	require.NotNil(t, set.Swipes)
	assert.Len(t, set.Swipes.Headlines.MainHeadlines, 2)
	assert.Equal(t, "problem-agitate-solve", set.Formulas["pas"])
}

func TestLoader_FSSource(t *testing.T) {
	fsys := fstest.MapFS{
		PageTypesFile:    {Data: []byte(validPageTypes)},
		AnglesFile:       {Data: []byte(validAngles)},
		PatternRulesFile: {Data: []byte(validRules)},
	}

	var warnings []string
	loader := &Loader{Primary: NewFSSource(fsys), Warnf: collectWarnings(&warnings)}

	set := loader.Load()

	assert.Empty(t, warnings)
	assert.NotEmpty(t, set.PageStructure("quiz_funnel"))

	// Absent documents are reported as missing, not as read errors.
	loader = &Loader{Primary: NewFSSource(fstest.MapFS{}), Warnf: collectWarnings(&warnings)}
	loader.Load()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "not found")
}

func TestPatternSet_UnknownIDsDegrade(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PageTypesFile, validPageTypes)
	writeFile(t, dir, AnglesFile, validAngles)
	writeFile(t, dir, PatternRulesFile, validRules)

	loader := NewLoader(dir, "")
	loader.Warnf = func(string, ...any) {}
	set := loader.Load()

	assert.Empty(t, set.PageStructure("no_such_page_type"))
	assert.Empty(t, set.AngleElements("no_such_angle").Name)
}

func TestPatternSet_Enumeration(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, PageTypesFile, `{
  "page_types": {
    "vsl_page": {"name": "VSL", "structure": []},
    "advertorial": {"name": "Advertorial", "structure": []}
  }
}`)
	writeFile(t, dir, AnglesFile, validAngles)
	writeFile(t, dir, PatternRulesFile, validRules)

	loader := NewLoader(dir, "")
	loader.Warnf = func(string, ...any) {}
	set := loader.Load()

	assert.Equal(t, []string{"advertorial", "vsl_page"}, set.PageTypeIDs())
	assert.Equal(t, []string{"transformation_story"}, set.AngleIDs())
}

func TestShippedPatternLibraryLoads(t *testing.T) {
	var warnings []string
	loader := NewLoader(filepath.Join("..", "..", "config"), "")
	loader.Warnf = collectWarnings(&warnings)

	set := loader.Load()

	assert.Empty(t, warnings)
	assert.NotEmpty(t, set.PageStructure("quiz_funnel"))
	assert.NotEmpty(t, set.AngleElements("transformation_story").EmotionalArc)
	assert.NotEmpty(t, set.Rules.EffectivenessMultipliers.HighImpact)
}
