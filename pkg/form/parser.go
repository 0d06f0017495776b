package form

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	opserr "github.com/dshills/formflow/pkg/errors"
	"github.com/dshills/formflow/pkg/validation"
)

// yamlForm represents the YAML structure before conversion to domain objects
type yamlForm struct {
	Version string      `yaml:"version"`
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title,omitempty"`
	Fields  []yamlField `yaml:"fields,omitempty"`
}

// yamlField represents a field in YAML before type normalization
type yamlField struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Type   string `yaml:"type,omitempty"`
	SkipIf string `yaml:"skip_if,omitempty"`
	Bind   string `yaml:"bind,omitempty"`
}

// Parse parses a form definition from YAML bytes
func Parse(yamlBytes []byte) (*Definition, error) {
	if len(yamlBytes) == 0 {
		return nil, errors.New("empty YAML input")
	}

	var yf yamlForm
	if err := yaml.Unmarshal(yamlBytes, &yf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if yf.Version == "" {
		return nil, errors.New("missing required field: version")
	}
	if yf.ID == "" {
		return nil, errors.New("missing required field: id")
	}
	if !validation.ValidIdentifier(yf.ID) {
		return nil, fmt.Errorf("invalid form id: %q", yf.ID)
	}
	if len(yf.Fields) == 0 {
		return nil, errors.New("form has no fields")
	}

	def := &Definition{
		Version: yf.Version,
		ID:      yf.ID,
		Title:   yf.Title,
		Fields:  make([]Field, 0, len(yf.Fields)),
	}

	seen := make(map[string]bool, len(yf.Fields))
	for i, f := range yf.Fields {
		if f.ID == "" {
			return nil, fmt.Errorf("field %d: missing required field: id", i)
		}
		if !validation.ValidIdentifier(f.ID) {
			return nil, fmt.Errorf("field %d: invalid field id: %q", i, f.ID)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("duplicate field id: %q", f.ID)
		}
		seen[f.ID] = true

		fieldType := f.Type
		if fieldType == "" {
			fieldType = FieldTypeText
		}
		if fieldType != FieldTypeText && fieldType != FieldTypeSecret {
			return nil, fmt.Errorf("field %q: unknown type: %q", f.ID, fieldType)
		}

		def.Fields = append(def.Fields, Field{
			ID:     f.ID,
			Label:  f.Label,
			Type:   fieldType,
			SkipIf: f.SkipIf,
			Bind:   f.Bind,
		})
	}

	return def, nil
}

// LoadFile reads, parses, and schema-validates a form definition file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, opserr.NewOperationalError("reading form definition", path, "", err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, opserr.NewOperationalError("parsing form definition", path, "", err)
	}

	if err := ValidateAgainstSchema(def); err != nil {
		return nil, opserr.NewOperationalError("validating form definition", def.ID, "", err)
	}

	return def, nil
}
