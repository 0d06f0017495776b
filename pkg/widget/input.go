// Package widget provides the text-entry handles the focus chain
// coordinates. Widgets hold their own value and editing state; native
// focus acquisition and rendering are wired in by the surrounding view
// layer through hooks.
package widget

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/formflow/pkg/focus"
)

// Input is a single-line text-entry widget.
type Input struct {
	id     string
	label  string
	value  string
	masked bool

	focused   bool
	submitKey focus.SubmitKey

	// onFocus is invoked by RequestFocus so the view layer can perform
	// native focus acquisition (and announce it on the event bus).
	onFocus func(*Input)
	// onEndEditing is invoked by EndEditing when the widget resigns.
	onEndEditing func(*Input)
}

// NewInput creates an input with a fresh identity.
func NewInput(label string) *Input {
	return &Input{
		id:    uuid.NewString(),
		label: label,
	}
}

// NewMaskedInput creates an input whose display is masked (passwords,
// tokens). The stored value is never masked.
func NewMaskedInput(label string) *Input {
	in := NewInput(label)
	in.masked = true
	return in
}

// ID returns the widget's stable identity.
func (in *Input) ID() string { return in.id }

// SetID overrides the generated identity. Used when the widget is
// instantiated from a form definition whose field IDs are meaningful.
func (in *Input) SetID(id string) { in.id = id }

// Label returns the display label.
func (in *Input) Label() string { return in.label }

// Value returns the current text value.
func (in *Input) Value() string { return in.value }

// SetValue replaces the text value.
func (in *Input) SetValue(v string) { in.value = v }

// Masked reports whether the display should be masked.
func (in *Input) Masked() bool { return in.masked }

// DisplayValue returns the value as it should be rendered: masked
// inputs render a bullet per rune.
func (in *Input) DisplayValue() string {
	if !in.masked {
		return in.value
	}
	return strings.Repeat("•", len([]rune(in.value)))
}

// Focused reports whether the widget currently holds input focus.
func (in *Input) Focused() bool { return in.focused }

// Append adds typed text to the value.
func (in *Input) Append(r rune) { in.value += string(r) }

// Backspace removes the last rune of the value.
func (in *Input) Backspace() {
	runes := []rune(in.value)
	if len(runes) == 0 {
		return
	}
	in.value = string(runes[:len(runes)-1])
}

// OnFocus sets the hook RequestFocus invokes.
func (in *Input) OnFocus(fn func(*Input)) { in.onFocus = fn }

// OnEndEditing sets the hook EndEditing invokes.
func (in *Input) OnEndEditing(fn func(*Input)) { in.onEndEditing = fn }

// RequestFocus implements focus.Widget. It marks the widget focused
// and hands off to the view layer's hook.
func (in *Input) RequestFocus() {
	in.focused = true
	if in.onFocus != nil {
		in.onFocus(in)
	}
}

// EndEditing implements focus.Widget.
func (in *Input) EndEditing() {
	in.focused = false
	if in.onEndEditing != nil {
		in.onEndEditing(in)
	}
}

// SetSubmitKey implements focus.Widget.
func (in *Input) SetSubmitKey(k focus.SubmitKey) { in.submitKey = k }

// SubmitKey returns the widget's current submit-key semantics.
func (in *Input) SubmitKey() focus.SubmitKey { return in.submitKey }
