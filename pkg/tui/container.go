// Package tui renders a form's widgets in a scrollable container and
// supplies the platform-side collaborators the focus core needs: a
// ContainerAdapter over the container's bottom anchor, and an
// accessory bar standing in for the on-screen keyboard event source.
package tui

import (
	"github.com/dshills/goterm"

	"github.com/dshills/formflow/pkg/widget"
)

// ScreenInterface defines the methods required from a goterm.Screen
type ScreenInterface interface {
	Size() (width, height int)
	Clear()
	Show() error
	DrawText(x, y int, text string, fg, bg goterm.Color, style goterm.Style)
}

// Container is a scrollable column of form inputs. Its visible bottom
// edge is anchored to a reference bottom (normally the screen's last
// row) plus an adjustable offset; the focus controller pulls the
// offset negative while the keyboard overlay is up.
//
// Container implements focus.ContainerAdapter.
type Container struct {
	title  string
	inputs []*widget.Input

	refBottom    int // reference bottom edge, in screen rows
	bottomOffset int // anchor offset relative to refBottom, <= 0 while scrolled
	scrollTop    int // index of the first visible input row
}

// NewContainer creates a container over the given inputs.
func NewContainer(title string, inputs []*widget.Input) *Container {
	return &Container{
		title:  title,
		inputs: inputs,
	}
}

// SetReferenceBottom anchors the container to the reference edge,
// normally the screen height.
func (c *Container) SetReferenceBottom(rows int) {
	c.refBottom = rows
}

// SetBottomOffset implements focus.ContainerAdapter.
func (c *Container) SetBottomOffset(v int) {
	c.bottomOffset = v
}

// ResetBottomOffset implements focus.ContainerAdapter.
func (c *Container) ResetBottomOffset() {
	c.bottomOffset = 0
}

// BottomOffset returns the current anchor offset.
func (c *Container) BottomOffset() int {
	return c.bottomOffset
}

// VisibleBottom returns the first screen row below the container's
// visible region.
func (c *Container) VisibleBottom() int {
	bottom := c.refBottom + c.bottomOffset
	if bottom < 0 {
		return 0
	}
	return bottom
}

// contentTop is the first row used for input rows (row 0 is the title,
// row 1 a separator).
const contentTop = 2

// visibleRows returns how many input rows fit above the visible bottom.
func (c *Container) visibleRows() int {
	rows := c.VisibleBottom() - contentTop
	if rows < 0 {
		return 0
	}
	return rows
}

// EnsureVisible scrolls so the input at index is inside the visible
// region.
func (c *Container) EnsureVisible(index int) {
	if index < 0 || index >= len(c.inputs) {
		return
	}
	if index < c.scrollTop {
		c.scrollTop = index
		return
	}
	rows := c.visibleRows()
	if rows == 0 {
		return
	}
	if index >= c.scrollTop+rows {
		c.scrollTop = index - rows + 1
	}
}

// FocusedIndex returns the index of the focused input, or -1.
func (c *Container) FocusedIndex() int {
	for i, in := range c.inputs {
		if in.Focused() {
			return i
		}
	}
	return -1
}

// Render draws the container, clipped to the visible bottom edge.
func (c *Container) Render(screen ScreenInterface) {
	fg := goterm.ColorDefault()
	bg := goterm.ColorDefault()

	if focused := c.FocusedIndex(); focused >= 0 {
		c.EnsureVisible(focused)
	}

	screen.DrawText(0, 0, c.title, fg, bg, goterm.StyleBold)

	width, _ := screen.Size()
	sep := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		sep = append(sep, '─')
	}
	screen.DrawText(0, 1, string(sep), fg, bg, goterm.StyleNone)

	bottom := c.VisibleBottom()
	for i := c.scrollTop; i < len(c.inputs); i++ {
		y := contentTop + (i - c.scrollTop)
		if y >= bottom {
			break
		}
		in := c.inputs[i]

		indicator := "  "
		style := goterm.StyleNone
		if in.Focused() {
			indicator = "▸ "
			style = goterm.StyleBold
		}

		line := indicator + in.Label() + ": " + in.DisplayValue()
		if in.Focused() {
			line += "_"
		}
		screen.DrawText(0, y, line, fg, bg, style)
	}
}
