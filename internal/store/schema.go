package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// snapshotSchema pins the persisted document shape. The stored form is not
// versioned; anything that does not match is rejected on load instead of
// being restored in a half-broken state.
const snapshotSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["fullName", "email", "phone", "address", "linkedin", "objective", "skills", "experience", "education", "photo"],
  "additionalProperties": false,
  "properties": {
    "fullName":  {"type": "string"},
    "email":     {"type": "string"},
    "phone":     {"type": "string"},
    "address":   {"type": "string"},
    "linkedin":  {"type": "string"},
    "objective": {"type": "string"},
    "skills":    {"type": "string"},
    "photo":     {"type": "string"},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "company", "date", "description"],
        "additionalProperties": false,
        "properties": {
          "id":          {"type": "string"},
          "title":       {"type": "string"},
          "company":     {"type": "string"},
          "date":        {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "degree", "school", "date"],
        "additionalProperties": false,
        "properties": {
          "id":     {"type": "string"},
          "degree": {"type": "string"},
          "school": {"type": "string"},
          "date":   {"type": "string"}
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// ValidateSnapshot checks a serialized document against the snapshot schema.
func ValidateSnapshot(data []byte) error {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(snapshotSchema))
	})
	if schemaErr != nil {
		return fmt.Errorf("failed to compile snapshot schema: %w", schemaErr)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("snapshot validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("snapshot does not match schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}
