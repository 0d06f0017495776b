package focus

import (
	"github.com/dshills/formflow/pkg/event"
)

// Controller is the focus-chain controller. It tracks which widget
// currently holds input focus, resolves "next" and "last" through the
// configured ChainProvider, and keeps the focused widget clear of the
// on-screen keyboard by offsetting the container's bottom anchor.
//
// All state mutation happens on a single UI task queue in response to
// bus deliveries; the controller is not safe for concurrent use and
// does not need to be. The one deliberate suspension point is the
// keyboard-avoidance adjustment, which is posted to the scheduler
// rather than run inline so layout constraints are never mutated while
// the platform is still mid-dispatch of the originating notification.
//
// Required event ordering: a focus-gained event for a widget must be
// delivered and processed before any submit-pressed event that expects
// that widget to be the current focus. SubmitPressed and IsLast resolve
// "next" from the controller's tracked focus, not from the event's
// widget, so a violated ordering produces a stale "next" resolution.
type Controller struct {
	bus       *event.Bus
	scheduler TaskScheduler

	provider   ChainProvider
	container  ContainerAdapter
	onComplete func()

	current Widget

	scrolledForKeyboard bool
	keyboardHeight      int

	subs []event.Subscription
}

// NewController creates a controller and subscribes it to the bus.
// Both bus and scheduler may be nil: without a bus the controller is
// driven by direct method calls, and without a scheduler the
// keyboard-avoidance adjustment runs inline.
func NewController(bus *event.Bus, scheduler TaskScheduler) *Controller {
	c := &Controller{
		bus:       bus,
		scheduler: scheduler,
	}
	if bus != nil {
		c.subs = []event.Subscription{
			bus.Subscribe(event.TopicFocusGained, func(ev event.Event) {
				if w, ok := ev.Widget.(Widget); ok {
					c.FocusGained(w)
				}
			}),
			bus.Subscribe(event.TopicFocusLost, func(ev event.Event) {
				if w, ok := ev.Widget.(Widget); ok {
					c.FocusLost(w)
				}
			}),
			bus.Subscribe(event.TopicSubmitPressed, func(ev event.Event) {
				if w, ok := ev.Widget.(Widget); ok {
					c.SubmitPressed(w)
				}
			}),
			bus.Subscribe(event.TopicKeyboardShown, func(ev event.Event) {
				c.KeyboardShown(ev.Frame, ev.AccessoryHeight)
			}),
			bus.Subscribe(event.TopicKeyboardHidden, func(ev event.Event) {
				c.KeyboardHidden()
			}),
		}
	}
	return c
}

// Close tears down the controller's bus subscriptions.
func (c *Controller) Close() {
	if c.bus == nil {
		return
	}
	for _, sub := range c.subs {
		c.bus.Unsubscribe(sub)
	}
	c.subs = nil
}

// SetChainProvider configures the chain ordering capability. Passing
// nil degrades every chain-dependent operation to "the current widget
// is the only, last member".
func (c *Controller) SetChainProvider(p ChainProvider) {
	c.provider = p
}

// SetContainer configures the layout adjustment capability. Passing
// nil makes scroll adjustments no-ops; the scrolledForKeyboard flag
// still updates so behavior stays consistent if a container is
// attached later.
func (c *Controller) SetContainer(a ContainerAdapter) {
	c.container = a
}

// OnComplete sets the callback invoked once per successful chain
// completion.
func (c *Controller) OnComplete(fn func()) {
	c.onComplete = fn
}

// Current returns the widget the controller believes holds focus, or
// nil. This may lag true platform focus if events are delivered out of
// order.
func (c *Controller) Current() Widget {
	return c.current
}

// Reload re-synchronizes controller state with the chain: current
// focus moves to the first chain member, every member's submit key is
// re-derived (last member completes, the rest advance), and the scroll
// state returns to its original layout. A no-op when no ChainProvider
// is configured.
func (c *Controller) Reload() {
	if c.provider == nil {
		return
	}
	c.current = c.provider.First(c)
	widgets := c.OrderedWidgets()
	for i, w := range widgets {
		if i == len(widgets)-1 {
			w.SetSubmitKey(SubmitKeyDone)
		} else {
			w.SetSubmitKey(SubmitKeyNext)
		}
	}
	c.resetScroll()
}

// FocusGained records w as the current focus. On an actual change
// (old != new, new non-nil) the keyboard-avoidance adjustment is
// posted to the scheduler rather than run inline.
func (c *Controller) FocusGained(w Widget) {
	old := c.current
	c.current = w
	if w == nil || old == w {
		return
	}
	if c.scheduler != nil {
		c.scheduler.Post(c.adjustForKeyboard)
		return
	}
	c.adjustForKeyboard()
}

// FocusLost is an informational hook; it mutates no state. The tracked
// current focus changes only on FocusGained or Reload.
func (c *Controller) FocusLost(Widget) {}

// SubmitPressed routes a submit-key press. If w is the last chain
// member (or no provider is configured), editing ends on w, the scroll
// state resets, and the completion callback fires. Otherwise the
// widget following the controller's tracked focus is asked to acquire
// focus.
func (c *Controller) SubmitPressed(w Widget) {
	if c.IsLast(w) {
		w.EndEditing()
		c.resetScroll()
		if c.onComplete != nil {
			c.onComplete()
		}
		return
	}
	if next := c.provider.Next(c, c.current); next != nil {
		next.RequestFocus()
	}
}

// WidgetResigned resets the scroll state to the original layout,
// regardless of which widget resigned. The keyboard height is kept:
// the keyboard may still be on screen for the next focused widget.
func (c *Controller) WidgetResigned(Widget) {
	c.resetScroll()
}

// KeyboardShown records the effective keyboard height: the keyboard
// frame height plus any attached accessory height (zero if none).
func (c *Controller) KeyboardShown(frame event.Frame, accessoryHeight int) {
	c.keyboardHeight = frame.Height + accessoryHeight
}

// KeyboardHidden resets the scroll state to the original layout and
// forgets the keyboard height.
func (c *Controller) KeyboardHidden() {
	c.keyboardHeight = 0
	c.resetScroll()
}

// IsLast reports whether the chain has no widget after the current
// focus. True when no ChainProvider is configured. Note that the
// lookup uses the controller's tracked focus, not w itself; the two
// coincide under the documented event-ordering contract.
func (c *Controller) IsLast(w Widget) bool {
	if c.provider == nil {
		return true
	}
	return c.provider.Next(c, c.current) == nil
}

// OrderedWidgets enumerates the full chain by walking First/Next until
// nil. Empty when no ChainProvider is configured. The result is
// recomputed fresh on every call; termination relies on the provider's
// acyclic-chain contract.
func (c *Controller) OrderedWidgets() []Widget {
	var widgets []Widget
	if c.provider == nil {
		return widgets
	}
	for w := c.provider.First(c); w != nil; w = c.provider.Next(c, w) {
		widgets = append(widgets, w)
	}
	return widgets
}

// adjustForKeyboard moves the container's bottom anchor up by the
// keyboard height. Idempotent: once scrolled, repeated calls perform
// no further layout change until the scroll state resets.
func (c *Controller) adjustForKeyboard() {
	if c.scrolledForKeyboard {
		return
	}
	c.scrolledForKeyboard = true
	if c.container != nil {
		c.container.SetBottomOffset(-c.keyboardHeight)
	}
}

// resetScroll returns the container to its original anchor and leaves
// the scroll state machine in Normal.
func (c *Controller) resetScroll() {
	c.scrolledForKeyboard = false
	if c.container != nil {
		c.container.ResetBottomOffset()
	}
}

// Scrolled reports whether the container is currently offset for the
// keyboard.
func (c *Controller) Scrolled() bool {
	return c.scrolledForKeyboard
}

// KeyboardHeight returns the last recorded effective keyboard height.
func (c *Controller) KeyboardHeight() int {
	return c.keyboardHeight
}
