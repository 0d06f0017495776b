package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAgainstSchema_Valid(t *testing.T) {
	def, err := Parse([]byte(signupYAML))
	require.NoError(t, err)
	assert.NoError(t, ValidateAgainstSchema(def))
}

func TestValidateAgainstSchema_NilDefinition(t *testing.T) {
	err := ValidateAgainstSchema(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil definition")
}

func TestValidateAgainstSchema_RejectsBadIdentifier(t *testing.T) {
	// Bypass Parse to exercise the schema's own pattern checks.
	def := &Definition{
		Version: "1",
		ID:      "bad id",
		Fields:  []Field{{ID: "a", Type: FieldTypeText}},
	}
	err := ValidateAgainstSchema(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestValidateAgainstSchema_RejectsEmptyFields(t *testing.T) {
	def := &Definition{
		Version: "1",
		ID:      "empty",
		Fields:  []Field{},
	}
	err := ValidateAgainstSchema(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}
