// Package focus coordinates input focus across a chain of text-entry
// widgets inside a scrollable container, and keeps the focused widget
// clear of an on-screen keyboard overlay by adjusting the container's
// bottom layout anchor.
//
// The package is a pure in-memory coordinator. Rendering, native focus
// acquisition, and keyboard visibility detection are external
// collaborators injected as capability interfaces; when a capability is
// missing the controller degrades gracefully instead of failing.
package focus

// SubmitKey describes what a widget's submit key should do.
type SubmitKey uint8

const (
	// SubmitKeyNext advances focus to the next widget in the chain.
	SubmitKeyNext SubmitKey = iota
	// SubmitKeyDone completes the chain.
	SubmitKeyDone
)

// String returns a label suitable for display on the key.
func (k SubmitKey) String() string {
	if k == SubmitKeyDone {
		return "done"
	}
	return "next"
}

// Widget is an opaque handle to a focusable text-entry element. The
// controller compares widgets by reference identity only; it never
// inspects their contents.
type Widget interface {
	// RequestFocus asks the widget to acquire native input focus.
	RequestFocus()
	// EndEditing asks the widget to resign native input focus.
	EndEditing()
	// SetSubmitKey updates the widget's submit-key semantics. This is
	// informational (key labelling), not safety-critical.
	SetSubmitKey(k SubmitKey)
}

// ChainProvider defines the ordering of widgets in the chain. The
// chain is never materialized by the controller; it exists only
// through First/Next queries.
//
// Implementations must guarantee finite traversal depth (no cycles).
// Next called with a widget that is not a chain member may return nil.
type ChainProvider interface {
	// First returns the first widget in the chain, or nil if the chain
	// is empty.
	First(c *Controller) Widget
	// Next returns the widget following current, or nil if current is
	// the last member (or is not a member at all).
	Next(c *Controller, current Widget) Widget
}

// ContainerAdapter adjusts the scrollable container's bottom layout
// anchor relative to a reference container's bottom edge. Debouncing
// or animating the change is the layout engine's concern, not the
// caller's.
type ContainerAdapter interface {
	// SetBottomOffset offsets the container's bottom anchor by v
	// relative to the reference bottom. Negative values pull the
	// visible bottom edge upward.
	SetBottomOffset(v int)
	// ResetBottomOffset restores the original anchor.
	ResetBottomOffset()
}

// TaskScheduler defers work to the next turn of the UI task queue.
// event.Queue satisfies this.
type TaskScheduler interface {
	Post(task func())
}
