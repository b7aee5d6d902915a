package patterns

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// ValidationError reports where a pattern source diverged from its schema.
type ValidationError struct {
	Source string
	Errors []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s failed schema validation:\n", e.Source))
	for i, msg := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
	}
	return sb.String()
}

// validateAgainstSchema checks a source document against the embedded schema
// for that source. Sources without a registered schema pass unchecked.
func validateAgainstSchema(sourceName string, data []byte) error {
	schemaPath := "schemas/" + strings.TrimSuffix(sourceName, ".json") + ".schema.json"
	schemaData, err := schemaFiles.ReadFile(schemaPath)
	if err != nil {
		return nil
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", sourceName, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Source: sourceName}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return ve
}
