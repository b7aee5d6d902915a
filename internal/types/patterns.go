// Package types provides type definitions for structured data used throughout the landing-page-generator system.
package types

import "sort"

// PageTypeDef describes one page-type template: its display name and the
// ordered list of sections the generated page must contain.
type PageTypeDef struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Structure   []string `json:"structure"`
}

// AngleDef describes one marketing angle: the narrative strategy framing the offer.
type AngleDef struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	EmotionalArc []string `json:"emotional_arc"`
	KeyElements  []string `json:"key_elements"`
}

// PsychologicalTriggers splits triggers into a mandatory set that must be
// surfaced to the prompt and a recommended set kept for reference only.
type PsychologicalTriggers struct {
	Mandatory   []string `json:"mandatory"`
	Recommended []string `json:"recommended"`
}

// UniversalPatterns holds the psychological rules that apply to every page type.
type UniversalPatterns struct {
	PsychologicalTriggers PsychologicalTriggers `json:"psychological_triggers"`
	TrustSequence         []string              `json:"trust_sequence"`
}

// EffectivenessMultipliers lists elements observed to amplify conversion.
type EffectivenessMultipliers struct {
	HighImpact []string `json:"high_impact"`
}

// PatternRules is the rule portion of the pattern library.
type PatternRules struct {
	UniversalPatterns        UniversalPatterns         `json:"universal_patterns"`
	PageSpecificRules        map[string]map[string]any `json:"page_specific_rules"`
	EffectivenessMultipliers EffectivenessMultipliers  `json:"effectiveness_multipliers"`
}

// SwipeExample is one curated example of persuasive copy.
type SwipeExample struct {
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SwipeFile holds curated example copy harvested from high-converting pages.
type SwipeFile struct {
	Headlines struct {
		MainHeadlines []SwipeExample `json:"main_headlines"`
	} `json:"headlines"`
	CTAs struct {
		HighConverting []SwipeExample `json:"high_converting"`
	} `json:"ctas"`
	Guarantees struct {
		StrongGuarantees []SwipeExample `json:"strong_guarantees"`
	} `json:"guarantees"`
}

// PatternSet is the full pattern library, loaded once at startup and treated
// as read-only for the process lifetime. It is safe to share across
// concurrent generation requests.
type PatternSet struct {
	PageTypes map[string]PageTypeDef `json:"page_types"`
	Angles    map[string]AngleDef    `json:"angles"`
	Rules     PatternRules           `json:"rules"`
	// Swipes is nil when no swipe data directory was found.
	Swipes   *SwipeFile     `json:"swipes,omitempty"`
	Formulas map[string]any `json:"formulas,omitempty"`
}

// PageStructure returns the ordered section tokens for a page type, or an
// empty slice when the page type is unknown.
func (s *PatternSet) PageStructure(pageType string) []string {
	if def, ok := s.PageTypes[pageType]; ok {
		return def.Structure
	}
	return nil
}

// AngleElements returns the definition for an angle, or a zero AngleDef when
// the angle is unknown.
func (s *PatternSet) AngleElements(angle string) AngleDef {
	return s.Angles[angle]
}

// PageTypeIDs returns the known page-type ids in sorted order, for front ends
// that need to enumerate the available options.
func (s *PatternSet) PageTypeIDs() []string {
	ids := make([]string, 0, len(s.PageTypes))
	for id := range s.PageTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AngleIDs returns the known angle ids in sorted order.
func (s *PatternSet) AngleIDs() []string {
	ids := make([]string, 0, len(s.Angles))
	for id := range s.Angles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectedPatterns is the per-request projection of the pattern library:
// the subset of patterns relevant to one PageConfig.
type SelectedPatterns struct {
	PageStructure            []string                 `json:"page_structure"`
	AngleElements            AngleDef                 `json:"angle_elements"`
	UniversalPatterns        UniversalPatterns        `json:"universal_patterns"`
	PageRules                map[string]any           `json:"page_rules"`
	EffectivenessMultipliers EffectivenessMultipliers `json:"effectiveness_multipliers"`
	HeadlineExamples         []SwipeExample           `json:"headline_examples,omitempty"`
	CTAExamples              []SwipeExample           `json:"cta_examples,omitempty"`
	GuaranteeExamples        []SwipeExample           `json:"guarantee_examples,omitempty"`
}
