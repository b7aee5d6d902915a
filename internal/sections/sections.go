// Package sections parses generated page copy into addressable sections
// based on the heading convention the prompt instructs the model to use.
package sections

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Sections is an insertion-ordered mapping from section key to section body.
// Keys are normalized heading text; a later heading that normalizes to an
// existing key overwrites that key's body but keeps its original position.
type Sections struct {
	keys   []string
	bodies map[string]string
}

// New returns an empty Sections.
func New() *Sections {
	return &Sections{bodies: make(map[string]string)}
}

// Set stores a section body under key, overwriting any previous body.
func (s *Sections) Set(key, body string) {
	if _, ok := s.bodies[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.bodies[key] = body
}

// Get returns the body for key and whether the key exists.
func (s *Sections) Get(key string) (string, bool) {
	body, ok := s.bodies[key]
	return body, ok
}

// Keys returns the section keys in insertion order.
func (s *Sections) Keys() []string {
	return s.keys
}

// Len returns the number of sections.
func (s *Sections) Len() int {
	return len(s.keys)
}

// MarshalJSON serializes the sections as a JSON object preserving insertion order.
func (s *Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s.bodies[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores sections from a JSON object, preserving the order
// keys appear in the document.
func (s *Sections) UnmarshalJSON(data []byte) error {
	s.keys = nil
	s.bodies = make(map[string]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	// Opening brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var body string
		if err := dec.Decode(&body); err != nil {
			return err
		}
		s.Set(key, body)
	}
	// Closing brace
	_, err := dec.Token()
	return err
}

// headingMarker is the prefix the prompt's closing instruction tells the
// model to use for major section headings.
const headingMarker = "###"

// IntroKey is the reserved key for content preceding the first heading.
const IntroKey = "intro"

// Extract parses generated copy into ordered sections. A line starting with
// the heading marker begins a new section; its text is normalized (hashes
// stripped, case-folded, whitespace collapsed to underscores) to form the
// key. Content before the first heading is stored under IntroKey when
// non-empty. Text with no recognizable headings collapses into a single
// intro section.
func Extract(text string) *Sections {
	out := New()

	current := IntroKey
	var body []string
	sawHeading := false

	flush := func() {
		trimmed := strings.TrimSpace(strings.Join(body, "\n"))
		// The intro entry only exists when something actually precedes the
		// first heading; recognized headings always produce an entry.
		if current == IntroKey && !sawHeading && trimmed == "" {
			return
		}
		out.Set(current, trimmed)
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, headingMarker) {
			flush()
			current = normalizeKey(line)
			body = body[:0]
			sawHeading = true
			continue
		}
		body = append(body, line)
	}
	flush()

	if out.Len() == 0 {
		out.Set(IntroKey, "")
	}
	return out
}

// normalizeKey turns a heading line into a section key.
func normalizeKey(line string) string {
	text := strings.ReplaceAll(line, "#", "")
	fields := strings.Fields(strings.ToLower(text))
	return strings.Join(fields, "_")
}
