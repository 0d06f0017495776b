package form

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// definitionSchema is the JSON schema form definitions must satisfy.
// Parse enforces most of this structurally; the schema is the
// authoritative, machine-readable contract used by `formflow validate`.
const definitionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "FormFlow form definition",
  "type": "object",
  "required": ["version", "id", "fields"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "id": {"type": "string", "pattern": "^[a-zA-Z0-9_-]+$"},
    "title": {"type": "string"},
    "fields": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "pattern": "^[a-zA-Z0-9_-]+$"},
          "label": {"type": "string"},
          "type": {"type": "string", "enum": ["text", "secret"]},
          "skip_if": {"type": "string"},
          "bind": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// ValidateAgainstSchema validates a parsed definition against the JSON schema
func ValidateAgainstSchema(def *Definition) error {
	if def == nil {
		return errors.New("nil definition")
	}

	// Convert the definition to a generic structure for validation
	// (the schema validator works with JSON)
	jsonBytes, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to convert definition to JSON for validation: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return fmt.Errorf("failed to unmarshal definition JSON: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(definitionSchema)
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		// Collect all validation errors
		var errMsg string
		for i, desc := range result.Errors() {
			if i > 0 {
				errMsg += "; "
			}
			errMsg += fmt.Sprintf("%s: %s", desc.Field(), desc.Description())
		}
		return fmt.Errorf("schema validation failed: %s", errMsg)
	}

	return nil
}
