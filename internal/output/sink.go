// Package output persists generation results as file artifacts.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/landing-page-generator/internal/types"
)

// Sink writes a completed generation result to durable storage.
type Sink interface {
	// Write persists the result under the given base name and returns the
	// paths of the artifacts written.
	Write(res *types.GenerationResult, baseName string) ([]string, error)
}

// FileSink writes two artifacts per result into a directory: a full JSON
// serialization and a human-readable Markdown document.
type FileSink struct {
	dir string
}

// NewFileSink returns a FileSink rooted at dir. The directory is created on
// first write.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Write implements Sink.
func (s *FileSink) Write(res *types.GenerationResult, baseName string) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	jsonPath := filepath.Join(s.dir, baseName+".json")
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}

	mdPath := filepath.Join(s.dir, baseName+".md")
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(res)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", mdPath, err)
	}

	return []string{jsonPath, mdPath}, nil
}

// renderMarkdown produces the human-readable document: title line, timestamp
// line, horizontal rule, then the page content verbatim.
func renderMarkdown(res *types.GenerationResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s - %s\n\n", res.Config.ProductName, TitleCase(res.Config.PageType))
	fmt.Fprintf(&sb, "Generated: %s\n\n", res.GeneratedAt.Format(time.RFC3339))
	sb.WriteString("---\n\n")
	sb.WriteString(res.PageContent)
	return sb.String()
}

// BaseName derives the artifact base name from product name, page type, and
// timestamp, normalizing non-alphanumeric characters to underscores.
func BaseName(productName, pageType string, ts time.Time) string {
	return fmt.Sprintf("%s_%s_%s",
		normalize(productName), normalize(pageType), ts.Format("20060102_150405"))
}

// normalize lowercases s and collapses runs of non-alphanumeric characters
// into single underscores.
func normalize(s string) string {
	var sb strings.Builder
	lastUnderscore := true // swallow leading separators
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			sb.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(sb.String(), "_")
}

// TitleCase renders an enum id like "quiz_funnel" as "Quiz Funnel".
func TitleCase(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
