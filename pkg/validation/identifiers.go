// Package validation provides identifier validation for user-provided
// names in form definitions.
package validation

// IsValidIdentifierChar checks if a character is valid for identifiers
// (alphanumeric, hyphen, or underscore).
//
// This function is used to validate form IDs, field IDs, and other
// user-provided identifiers in FormFlow. It enforces a consistent
// naming convention across the application.
//
// Valid characters:
//   - Lowercase letters: a-z
//   - Uppercase letters: A-Z
//   - Digits: 0-9
//   - Hyphen: -
//   - Underscore: _
func IsValidIdentifierChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '-' || ch == '_'
}

// ValidIdentifier reports whether s is a non-empty identifier made
// entirely of valid identifier characters.
//
// Example usage:
//
//	if !validation.ValidIdentifier(field.ID) {
//	    return fmt.Errorf("invalid field id: %q", field.ID)
//	}
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if !IsValidIdentifierChar(ch) {
			return false
		}
	}
	return true
}
