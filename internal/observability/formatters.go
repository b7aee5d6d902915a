// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/landing-page-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow items as bullets, noting the overflow.
func writeList(sb *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(header + "\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintSelectedPatterns outputs a human-readable summary of the patterns
// chosen for a generation run.
func (p *Printer) PrintSelectedPatterns(sel *types.SelectedPatterns) {
	if sel == nil {
		return
	}

	var sb strings.Builder

	writeList(&sb, "Page Structure:", sel.PageStructure)
	writeList(&sb, "Emotional Arc:", sel.AngleElements.EmotionalArc)
	writeList(&sb, "Mandatory Triggers:", sel.UniversalPatterns.PsychologicalTriggers.Mandatory)
	writeList(&sb, "Multipliers:", sel.EffectivenessMultipliers.HighImpact)

	sb.WriteString(fmt.Sprintf("Examples: %d headlines, %d CTAs, %d guarantees",
		len(sel.HeadlineExamples), len(sel.CTAExamples), len(sel.GuaranteeExamples)))

	p.printBox("Selected Patterns", sb.String())
}

// PrintResult outputs a human-readable summary of a completed generation.
func (p *Printer) PrintResult(res *types.GenerationResult) {
	if res == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Product:    %s\n", res.Config.ProductName))
	sb.WriteString(fmt.Sprintf("Page Type:  %s\n", res.Config.PageType))
	sb.WriteString(fmt.Sprintf("Run ID:     %s\n", res.RunID))
	sb.WriteString(fmt.Sprintf("Word Count: %d\n", res.WordCount))
	sb.WriteString("\n")

	if res.Sections != nil && res.Sections.Len() > 0 {
		writeList(&sb, "Sections:", res.Sections.Keys())
	}

	p.printBox("Generation Result", strings.TrimRight(sb.String(), "\n"))
}
