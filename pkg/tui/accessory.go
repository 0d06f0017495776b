package tui

import (
	"github.com/dshills/goterm"

	"github.com/dshills/formflow/pkg/event"
)

// AccessoryBar is the bottom overlay that appears while a field is
// being edited: key hints plus the submit-key label. It plays the
// platform keyboard's role on the event bus, publishing keyboardShown
// with its geometry when it appears and keyboardHidden when it goes.
type AccessoryBar struct {
	bus *event.Bus

	// rows covered by the overlay proper and by the attached hint
	// line, reported separately the way the platform splits keyboard
	// frame and accessory view.
	overlayRows int
	hintRows    int

	visible bool
	hint    string
}

// NewAccessoryBar creates a bar publishing on bus.
func NewAccessoryBar(bus *event.Bus, overlayRows, hintRows int) *AccessoryBar {
	return &AccessoryBar{
		bus:         bus,
		overlayRows: overlayRows,
		hintRows:    hintRows,
	}
}

// SetHint updates the hint text shown while visible.
func (a *AccessoryBar) SetHint(hint string) {
	a.hint = hint
}

// Visible reports whether the bar is currently shown.
func (a *AccessoryBar) Visible() bool {
	return a.visible
}

// Height returns the total rows the bar covers while visible.
func (a *AccessoryBar) Height() int {
	return a.overlayRows + a.hintRows
}

// Show raises the bar and announces it. Showing an already visible
// bar re-publishes the geometry, mirroring repeated keyboardShown
// notifications on frame changes.
func (a *AccessoryBar) Show() {
	a.visible = true
	if a.bus == nil {
		return
	}
	a.bus.Publish(event.Event{
		Topic:           event.TopicKeyboardShown,
		Frame:           event.Frame{Height: a.overlayRows},
		AccessoryHeight: a.hintRows,
	})
}

// Hide lowers the bar and announces it. Hiding a hidden bar is a
// no-op.
func (a *AccessoryBar) Hide() {
	if !a.visible {
		return
	}
	a.visible = false
	if a.bus == nil {
		return
	}
	a.bus.Publish(event.Event{Topic: event.TopicKeyboardHidden})
}

// Render draws the bar over the bottom rows of the screen.
func (a *AccessoryBar) Render(screen ScreenInterface) {
	if !a.visible {
		return
	}
	width, height := screen.Size()
	fg := goterm.ColorDefault()
	bg := goterm.ColorDefault()

	top := height - a.Height()
	if top < 0 {
		top = 0
	}
	for y := top; y < height; y++ {
		blank := make([]rune, width)
		for i := range blank {
			blank[i] = ' '
		}
		screen.DrawText(0, y, string(blank), fg, bg, goterm.StyleReverse)
	}
	screen.DrawText(1, top, a.hint, fg, bg, goterm.StyleReverse)
}
