package validation

import "testing"

func TestIsValidIdentifierChar(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
		want bool
	}{
		// Valid characters
		{"lowercase a", 'a', true},
		{"lowercase z", 'z', true},
		{"uppercase A", 'A', true},
		{"uppercase Z", 'Z', true},
		{"digit 0", '0', true},
		{"digit 9", '9', true},
		{"hyphen", '-', true},
		{"underscore", '_', true},

		// Invalid characters
		{"space", ' ', false},
		{"dot", '.', false},
		{"slash", '/', false},
		{"backslash", '\\', false},
		{"colon", ':', false},
		{"semicolon", ';', false},
		{"asterisk", '*', false},
		{"question mark", '?', false},
		{"at sign", '@', false},
		{"hash", '#', false},
		{"pipe", '|', false},
		{"backtick", '`', false},
		{"tilde", '~', false},
		{"newline", '\n', false},
		{"tab", '\t', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidIdentifierChar(tt.ch); got != tt.want {
				t.Errorf("IsValidIdentifierChar(%q) = %v, want %v", tt.ch, got, tt.want)
			}
		})
	}
}

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"simple", "email", true},
		{"with hyphen", "billing-address", true},
		{"with underscore", "first_name", true},
		{"mixed case and digits", "Field2B", true},
		{"empty", "", false},
		{"with space", "first name", false},
		{"with dot", "user.name", false},
		{"with slash", "a/b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidIdentifier(tt.in); got != tt.want {
				t.Errorf("ValidIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
