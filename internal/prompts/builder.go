package prompts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/landing-page-generator/internal/types"
)

// landingFile is the embedded prompt file holding the fixed prompt blocks.
const landingFile = "landing.json"

// maxPromptExamples caps how many headline and CTA examples are quoted in
// the initial prompt, independent of how many the selector carried over.
const maxPromptExamples = 3

// BuildInitialPrompt renders the configuration and selected patterns into
// the first-pass generation prompt. It is pure and deterministic: identical
// inputs always yield a byte-identical prompt.
func BuildInitialPrompt(cfg types.PageConfig, sel types.SelectedPatterns) string {
	var sb strings.Builder

	sb.WriteString(Format(MustGet(landingFile, "initial-header"), map[string]string{
		"PageType": cfg.PageType,
	}))

	sb.WriteString("\nCONTEXT:\n")
	fmt.Fprintf(&sb, "- Product: %s (%s)\n", cfg.ProductName, cfg.ProductType)
	fmt.Fprintf(&sb, "- Price: $%s\n", formatPrice(cfg.PricePoint))
	fmt.Fprintf(&sb, "- Industry: %s\n", cfg.Industry)
	fmt.Fprintf(&sb, "- Target Audience: %s\n", formatAudience(cfg.TargetAudience))
	fmt.Fprintf(&sb, "- Angle: %s\n", cfg.Angle)
	fmt.Fprintf(&sb, "- Length: %s\n", cfg.Length)
	fmt.Fprintf(&sb, "- Voice/Tone: %s\n", cfg.VoiceTone)

	sb.WriteString("\nKEY BENEFITS TO EMPHASIZE:\n")
	writeBullets(&sb, cfg.SpecificBenefits)

	sb.WriteString("\nPAIN POINTS TO ADDRESS:\n")
	writeBullets(&sb, cfg.PainPoints)

	// Omitted entirely when absent, never emitted as a blank line.
	if cfg.UniqueMechanism != "" {
		fmt.Fprintf(&sb, "\nUNIQUE MECHANISM: %s\n", cfg.UniqueMechanism)
	}

	sb.WriteString("\nPROVEN PATTERNS TO USE:\n")

	sb.WriteString("\n1. Page Structure (include all these sections):\n")
	writeBullets(&sb, sel.PageStructure)

	sb.WriteString("\n2. Angle Elements:\n")
	fmt.Fprintf(&sb, "- Emotional Arc: %s\n", formatList(sel.AngleElements.EmotionalArc))
	fmt.Fprintf(&sb, "- Key Elements: %s\n", formatList(sel.AngleElements.KeyElements))

	sb.WriteString("\n3. Universal Patterns:\n")
	fmt.Fprintf(&sb, "- Use 2-3 psychological triggers from: %s\n",
		formatList(sel.UniversalPatterns.PsychologicalTriggers.Mandatory))
	fmt.Fprintf(&sb, "- Follow trust sequence: %s\n", formatList(sel.UniversalPatterns.TrustSequence))
	sb.WriteString(MustGet(landingFile, "value-stacking"))
	sb.WriteString("\n")

	sb.WriteString("\n4. Effectiveness Multipliers to Include:\n")
	writeBullets(&sb, sel.EffectivenessMultipliers.HighImpact)

	sb.WriteString("\nSPECIFIC REQUIREMENTS:\n")
	fmt.Fprintf(&sb, "- Urgency Level: %s (include %s urgency elements)\n",
		cfg.UrgencyLevel, urgencyElementCount(cfg.UrgencyLevel))
	sb.WriteString("- Include specific numbers and timeframes\n")
	fmt.Fprintf(&sb, "- Write in %s tone\n", cfg.VoiceTone)
	fmt.Fprintf(&sb, "- Length: %s (%s words)\n", cfg.Length, wordCountBand(cfg.Length))
	fmt.Fprintf(&sb, "- Include %s guarantee\n", strings.ReplaceAll(cfg.GuaranteeType, "_", " "))

	sb.WriteString("\nEXAMPLES OF HIGH-CONVERTING ELEMENTS:\n")
	sb.WriteString(formatExamples(sel))
	sb.WriteString("\n\n")

	sb.WriteString(Format(MustGet(landingFile, "closing"), map[string]string{
		"ProductName": cfg.ProductName,
	}))

	return sb.String()
}

// BuildRefinementPrompt embeds the first-pass draft into the fixed
// enhancement-checklist template. Pure and deterministic.
func BuildRefinementPrompt(draft string, cfg types.PageConfig) string {
	return Format(MustGet(landingFile, "refinement"), map[string]string{
		"Draft":        draft,
		"UrgencyLevel": cfg.UrgencyLevel,
		"Price":        formatPrice(cfg.PricePoint),
	})
}

// urgencyElementCount maps urgency level to the instructed element count.
func urgencyElementCount(level string) string {
	if level == "high" {
		return "2-3"
	}
	return "1-2"
}

// wordCountBand maps the length enum to the target word-count band.
func wordCountBand(length string) string {
	switch length {
	case "short":
		return "1500-2000"
	case "medium":
		return "3000-4000"
	default:
		return "5000+"
	}
}

// formatPrice renders a price without a trailing ".0" for whole amounts.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// formatAudience serializes the audience map as compact JSON. Map keys are
// sorted by the encoder, so the output is deterministic.
func formatAudience(audience map[string]any) string {
	if len(audience) == 0 {
		return "{}"
	}
	data, err := json.Marshal(audience)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// formatList renders a sequence in its literal textual form.
func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// writeBullets emits one bullet per entry, preserving order.
func writeBullets(sb *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}

// formatExamples quotes up to maxPromptExamples headline and CTA swipes.
// When no examples are available it falls back to a fixed instruction
// instead of emitting empty headers.
func formatExamples(sel types.SelectedPatterns) string {
	var lines []string

	if len(sel.HeadlineExamples) > 0 {
		lines = append(lines, "Headlines that converted:")
		for i, h := range sel.HeadlineExamples {
			if i == maxPromptExamples {
				break
			}
			lines = append(lines, fmt.Sprintf("- %q", h.Text))
		}
	}

	if len(sel.CTAExamples) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "CTAs that converted:")
		for i, c := range sel.CTAExamples {
			if i == maxPromptExamples {
				break
			}
			lines = append(lines, fmt.Sprintf("- %q", c.Text))
		}
	}

	if len(lines) == 0 {
		return MustGet(landingFile, "no-examples")
	}
	return strings.Join(lines, "\n")
}
