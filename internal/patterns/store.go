package patterns

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/landing-page-generator/internal/types"
)

// Source file names within the primary pattern directory.
const (
	PageTypesFile    = "page_types.json"
	AnglesFile       = "angles.json"
	PatternRulesFile = "pattern_rules.json"
)

// Source file names within the optional swipe directory.
const (
	SwipeFile    = "copy_swipe_file.json"
	FormulasFile = "conversion_formulas.json"
)

// Loader assembles a PatternSet from configuration sources. Every source is
// optional: a missing or malformed source yields an empty sub-structure and
// a warning, never a hard failure, so the library degrades to fewer patterns
// instead of blocking generation.
type Loader struct {
	// Primary supplies page types, angles, and pattern rules.
	Primary Source
	// Swipes optionally supplies example copy; nil means no swipe data.
	Swipes Source
	// Warnf receives warnings about missing or invalid sources.
	// Defaults to stderr when nil.
	Warnf func(format string, args ...any)
}

// NewLoader returns a Loader over a primary pattern directory and an
// optional swipe directory. The swipe directory is only consulted when it
// exists, matching how analysis output is published alongside the tool.
func NewLoader(patternDir, swipeDir string) *Loader {
	l := &Loader{Primary: NewDirSource(patternDir)}
	if swipeDir != "" {
		if src := NewDirSource(swipeDir); src.Exists() {
			l.Swipes = src
		}
	}
	return l
}

func (l *Loader) warnf(format string, args ...any) {
	if l.Warnf != nil {
		l.Warnf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// Load builds the PatternSet. It never fails: data-availability gaps surface
// as warnings and empty sub-structures.
func (l *Loader) Load() *types.PatternSet {
	set := &types.PatternSet{
		PageTypes: make(map[string]types.PageTypeDef),
		Angles:    make(map[string]types.AngleDef),
	}

	var pageTypes struct {
		PageTypes map[string]types.PageTypeDef `json:"page_types"`
	}
	if l.loadSource(l.Primary, PageTypesFile, &pageTypes) && pageTypes.PageTypes != nil {
		set.PageTypes = pageTypes.PageTypes
	}

	var angles struct {
		Angles map[string]types.AngleDef `json:"angles"`
	}
	if l.loadSource(l.Primary, AnglesFile, &angles) && angles.Angles != nil {
		set.Angles = angles.Angles
	}

	var rules types.PatternRules
	if l.loadSource(l.Primary, PatternRulesFile, &rules) {
		set.Rules = rules
	}

	if l.Swipes != nil {
		var swipes types.SwipeFile
		if l.loadSource(l.Swipes, SwipeFile, &swipes) {
			set.Swipes = &swipes
		}
		var formulas map[string]any
		if l.loadSource(l.Swipes, FormulasFile, &formulas) {
			set.Formulas = formulas
		}
	}

	return set
}

// loadSource reads, schema-checks, and unmarshals one source document into
// out. Returns false when the document is absent or invalid.
func (l *Loader) loadSource(src Source, name string, out any) bool {
	if src == nil {
		return false
	}

	data, present, err := src.Read(name)
	if err != nil {
		l.warnf("failed to read pattern source %s: %v", name, err)
		return false
	}
	if !present {
		l.warnf("pattern source not found: %s", name)
		return false
	}

	if err := validateAgainstSchema(name, data); err != nil {
		l.warnf("%v", err)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		l.warnf("failed to parse pattern source %s: %v", name, err)
		return false
	}
	return true
}
