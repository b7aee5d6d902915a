// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// StripOuterCodeFence removes a markdown code fence that wraps the entire
// response. LLMs sometimes fence long-form output in ```markdown ... ```
// blocks even when instructed not to. Fences inside the body are left alone.
func StripOuterCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	rest := strings.TrimPrefix(trimmed, "```")
	// Skip a language identifier on the opening fence line
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		firstLine := rest[:idx]
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
			rest = rest[idx+1:]
		}
	}

	// Only treat it as an outer fence when the response also ends with one
	if !strings.HasSuffix(rest, "```") {
		return text
	}
	rest = strings.TrimSuffix(rest, "```")

	return strings.TrimSpace(rest)
}
