// Package schemas provides JSON Schema validation for externally generated
// analysis documents. Generator output is untrusted input; it must pass the
// schema before any field is read.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// analysisSchema describes the JSON shape the generator is asked to produce.
// Scores are typed as numbers, not clamped here: range enforcement is the
// scoring layer's job, shape enforcement is this package's.
const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "overall_score":   {"type": "number"},
    "format_score":    {"type": "number"},
    "keyword_score":   {"type": "number"},
    "structure_score": {"type": "number"},
    "content_score":   {"type": "number"},
    "strengths":   {"type": "array", "items": {"type": "string"}},
    "suggestions": {"type": "array", "items": {"type": "string"}},
    "warnings":    {"type": "array", "items": {"type": "string"}},
    "detailed_analysis": {"type": "string"}
  },
  "required": ["overall_score", "keyword_score", "structure_score", "content_score"]
}`

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the document or the
// schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema validation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema validation failed: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateAnalysisJSON validates raw generator output against the analysis
// schema. Returns nil when the document conforms.
func ValidateAnalysisJSON(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(analysisSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "document could not be loaded",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
