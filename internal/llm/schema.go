package llm

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Payload schemas the oracle must satisfy. The skills array is deliberately
// unconstrained on element type: non-string elements are tolerated upstream
// and discarded by the extractor.
const (
	totalYearsSchema = `{
		"type": "object",
		"required": ["total_years"],
		"properties": {
			"total_years": {"type": "number", "minimum": 0}
		}
	}`

	skillsSchema = `{
		"type": "object",
		"required": ["skills"],
		"properties": {
			"skills": {"type": "array"}
		}
	}`
)

// validatePayload checks a candidate JSON document against a payload schema.
// Returns a descriptive error listing the failing fields.
func validatePayload(schemaJSON, document string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return fmt.Errorf("payload does not match schema: %s", sb.String())
	}

	return nil
}
