package tui

import (
	"strings"
	"testing"

	"github.com/dshills/goterm"

	"github.com/dshills/formflow/pkg/widget"
)

// fakeScreen records DrawText calls for assertions.
type fakeScreen struct {
	width  int
	height int
	lines  map[int]string
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{width: width, height: height, lines: make(map[int]string)}
}

func (s *fakeScreen) Size() (int, int) { return s.width, s.height }
func (s *fakeScreen) Clear()           { s.lines = make(map[int]string) }
func (s *fakeScreen) Show() error      { return nil }

func (s *fakeScreen) DrawText(x, y int, text string, fg, bg goterm.Color, style goterm.Style) {
	s.lines[y] = s.lines[y] + text
}

func testInputs(labels ...string) []*widget.Input {
	inputs := make([]*widget.Input, 0, len(labels))
	for _, l := range labels {
		inputs = append(inputs, widget.NewInput(l))
	}
	return inputs
}

func TestContainerBottomOffset(t *testing.T) {
	c := NewContainer("t", nil)
	c.SetReferenceBottom(24)

	if got := c.VisibleBottom(); got != 24 {
		t.Errorf("VisibleBottom = %d, want 24", got)
	}

	c.SetBottomOffset(-10)
	if got := c.VisibleBottom(); got != 14 {
		t.Errorf("VisibleBottom after offset = %d, want 14", got)
	}

	c.ResetBottomOffset()
	if got := c.VisibleBottom(); got != 24 {
		t.Errorf("VisibleBottom after reset = %d, want 24", got)
	}
}

func TestContainerVisibleBottomClampsAtZero(t *testing.T) {
	c := NewContainer("t", nil)
	c.SetReferenceBottom(10)
	c.SetBottomOffset(-50)

	if got := c.VisibleBottom(); got != 0 {
		t.Errorf("VisibleBottom = %d, want 0", got)
	}
}

func TestContainerEnsureVisibleScrollsDownAndUp(t *testing.T) {
	inputs := testInputs("a", "b", "c", "d", "e", "f")
	c := NewContainer("t", inputs)
	c.SetReferenceBottom(5) // 3 visible rows below the header

	c.EnsureVisible(4)
	if c.scrollTop != 2 {
		t.Errorf("scrollTop after scrolling down = %d, want 2", c.scrollTop)
	}

	c.EnsureVisible(0)
	if c.scrollTop != 0 {
		t.Errorf("scrollTop after scrolling up = %d, want 0", c.scrollTop)
	}
}

func TestContainerRenderClipsAtVisibleBottom(t *testing.T) {
	inputs := testInputs("alpha", "bravo", "charlie")
	c := NewContainer("demo", inputs)
	c.SetReferenceBottom(4) // rows 2..3 visible, charlie clipped

	screen := newFakeScreen(40, 10)
	c.Render(screen)

	if !strings.Contains(screen.lines[0], "demo") {
		t.Errorf("title row = %q, want it to contain the title", screen.lines[0])
	}
	if !strings.Contains(screen.lines[2], "alpha") {
		t.Errorf("row 2 = %q, want alpha", screen.lines[2])
	}
	if !strings.Contains(screen.lines[3], "bravo") {
		t.Errorf("row 3 = %q, want bravo", screen.lines[3])
	}
	for y, line := range screen.lines {
		if strings.Contains(line, "charlie") {
			t.Errorf("charlie drawn at row %d despite clipping", y)
		}
	}
}

func TestContainerRenderMarksFocusedInput(t *testing.T) {
	inputs := testInputs("alpha", "bravo")
	inputs[1].RequestFocus()
	c := NewContainer("demo", inputs)
	c.SetReferenceBottom(10)

	screen := newFakeScreen(40, 10)
	c.Render(screen)

	if !strings.Contains(screen.lines[3], "▸") {
		t.Errorf("focused row = %q, want focus indicator", screen.lines[3])
	}
	if strings.Contains(screen.lines[2], "▸") {
		t.Errorf("unfocused row = %q, must not carry the indicator", screen.lines[2])
	}
	if got := c.FocusedIndex(); got != 1 {
		t.Errorf("FocusedIndex = %d, want 1", got)
	}
}

func TestContainerRenderScrollsToFocused(t *testing.T) {
	inputs := testInputs("a", "b", "c", "d", "e", "f")
	inputs[5].RequestFocus()
	c := NewContainer("t", inputs)
	c.SetReferenceBottom(5)

	screen := newFakeScreen(40, 10)
	c.Render(screen)

	if c.scrollTop != 3 {
		t.Errorf("scrollTop = %d, want 3 so the focused input is visible", c.scrollTop)
	}
}
