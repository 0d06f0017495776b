// Package form loads YAML form definitions, validates them against a
// JSON schema, and binds them to widgets: the field order of a
// definition becomes the focus chain, with skip_if expressions
// deciding chain membership at traversal time.
package form

// Definition is a parsed form definition.
type Definition struct {
	Version string  `json:"version"`
	ID      string  `json:"id"`
	Title   string  `json:"title,omitempty"`
	Fields  []Field `json:"fields"`
}

// Field is a single entry in a form definition. Field order in the
// definition is the focus-chain order.
type Field struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Type is "text" or "secret". Secret fields are masked on screen
	// and their draft values go to the system keyring, not the draft
	// database.
	Type string `json:"type,omitempty"`

	// SkipIf is an optional boolean expression over current form
	// values (field id → string value). When it evaluates true the
	// field is not a chain member.
	SkipIf string `json:"skip_if,omitempty"`

	// Bind is an optional JSON path used to prefill the field's value
	// from a source document.
	Bind string `json:"bind,omitempty"`
}

// Field types.
const (
	FieldTypeText   = "text"
	FieldTypeSecret = "secret"
)

// Secret reports whether the field's value is sensitive.
func (f Field) Secret() bool {
	return f.Type == FieldTypeSecret
}

// FieldByID returns the field with the given id, if present.
func (d *Definition) FieldByID(id string) (Field, bool) {
	for _, f := range d.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
