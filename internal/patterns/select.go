package patterns

import (
	"github.com/jonathan/landing-page-generator/internal/types"
)

// Swipe truncation limits: examples are taken from the front of each list in
// source order, never sampled.
const (
	maxHeadlineExamples  = 5
	maxCTAExamples       = 5
	maxGuaranteeExamples = 3
)

// Select projects the pattern library into the subset relevant to one page
// configuration. It is a pure function: identical inputs always yield
// structurally identical output, and unknown page-type or angle ids degrade
// to empty subsets rather than failing.
func Select(cfg types.PageConfig, set *types.PatternSet) types.SelectedPatterns {
	sel := types.SelectedPatterns{
		PageStructure:            set.PageStructure(cfg.PageType),
		AngleElements:            set.AngleElements(cfg.Angle),
		UniversalPatterns:        set.Rules.UniversalPatterns,
		PageRules:                set.Rules.PageSpecificRules[cfg.PageType],
		EffectivenessMultipliers: set.Rules.EffectivenessMultipliers,
	}

	if set.Swipes != nil {
		sel.HeadlineExamples = truncate(set.Swipes.Headlines.MainHeadlines, maxHeadlineExamples)
		sel.CTAExamples = truncate(set.Swipes.CTAs.HighConverting, maxCTAExamples)
		sel.GuaranteeExamples = truncate(set.Swipes.Guarantees.StrongGuarantees, maxGuaranteeExamples)
	}

	return sel
}

// truncate returns at most n leading examples, preserving source order.
func truncate(examples []types.SwipeExample, n int) []types.SwipeExample {
	if len(examples) > n {
		return examples[:n]
	}
	return examples
}
