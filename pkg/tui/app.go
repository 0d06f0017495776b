package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/goterm"

	"github.com/dshills/formflow/pkg/event"
	"github.com/dshills/formflow/pkg/focus"
	"github.com/dshills/formflow/pkg/form"
	"github.com/dshills/formflow/pkg/widget"
)

// App runs one form as a TUI application: it owns the event bus, the
// UI task queue, the focus controller, and the screen, and routes raw
// terminal input into bus events.
type App struct {
	screen     *goterm.Screen
	bus        *event.Bus
	queue      *event.Queue
	controller *focus.Controller
	container  *Container
	accessory  *AccessoryBar

	def    *form.Definition
	chain  *form.Chain
	inputs []*widget.Input

	onComplete func()

	ctx       context.Context
	cancel    context.CancelFunc
	inputChan chan KeyEvent
}

// Accessory bar geometry, in rows: the overlay proper plus one
// attached hint line.
const (
	accessoryOverlayRows = 4
	accessoryHintRows    = 1
)

// NewApp creates a TUI application for the given form definition.
func NewApp(def *form.Definition) (*App, error) {
	screen, err := goterm.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	inputs, chain, err := form.Build(def)
	if err != nil {
		screen.Close()
		cancel()
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	bus := event.NewBus()
	queue := event.NewQueue()

	title := def.Title
	if title == "" {
		title = def.ID
	}
	container := NewContainer(title, inputs)
	_, height := screen.Size()
	container.SetReferenceBottom(height)

	controller := focus.NewController(bus, queue)
	controller.SetChainProvider(chain)
	controller.SetContainer(container)

	app := &App{
		screen:     screen,
		bus:        bus,
		queue:      queue,
		controller: controller,
		container:  container,
		accessory:  NewAccessoryBar(bus, accessoryOverlayRows, accessoryHintRows),
		def:        def,
		chain:      chain,
		inputs:     inputs,
		ctx:        ctx,
		cancel:     cancel,
		inputChan:  make(chan KeyEvent, 100),
	}

	app.wireWidgets()

	controller.OnComplete(func() {
		app.accessory.Hide()
		if app.onComplete != nil {
			app.onComplete()
		}
		app.cancel()
	})

	return app, nil
}

// wireWidgets connects widget hooks to the bus: acquiring focus raises
// the accessory bar and announces focus-gained; ending editing
// announces focus-lost and resets the scroll state.
func (a *App) wireWidgets() {
	for _, in := range a.inputs {
		in := in
		in.OnFocus(func(w *widget.Input) {
			for _, other := range a.inputs {
				if other != w && other.Focused() {
					other.EndEditing()
				}
			}
			a.accessory.SetHint(a.hintFor(w))
			// Keyboard geometry must be on record before the
			// focus-gained adjustment runs.
			a.accessory.Show()
			a.bus.Publish(event.Event{Topic: event.TopicFocusGained, Widget: w})
		})
		in.OnEndEditing(func(w *widget.Input) {
			a.bus.Publish(event.Event{Topic: event.TopicFocusLost, Widget: w})
			a.controller.WidgetResigned(w)
		})
	}
}

// hintFor builds the accessory hint line for a focused widget.
func (a *App) hintFor(w *widget.Input) string {
	if w.SubmitKey() == focus.SubmitKeyDone {
		return "enter: done · esc: dismiss"
	}
	return "enter: next · esc: dismiss"
}

// OnComplete sets the callback invoked after the chain completes,
// before the app shuts down.
func (a *App) OnComplete(fn func()) {
	a.onComplete = fn
}

// Inputs returns the form's widgets in definition order.
func (a *App) Inputs() []*widget.Input {
	return a.inputs
}

// Definition returns the form definition the app is running.
func (a *App) Definition() *form.Definition {
	return a.def
}

// Chain returns the bound focus chain.
func (a *App) Chain() *form.Chain {
	return a.chain
}

// Run starts the application main loop and blocks until completion or
// interruption.
func (a *App) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go a.readKeyboardInput()

	// Synchronize submit keys and focus the first field.
	a.controller.Reload()
	if w := a.controller.Current(); w != nil {
		w.RequestFocus()
	}
	a.queue.Drain()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	if err := a.render(); err != nil {
		return fmt.Errorf("initial render failed: %w", err)
	}

	for {
		select {
		case <-a.ctx.Done():
			return nil

		case <-sigChan:
			a.cancel()
			return nil

		case ev := <-a.inputChan:
			a.handleKeyEvent(ev)
			a.queue.Drain()
			if err := a.render(); err != nil {
				return err
			}

		case <-ticker.C:
			a.queue.Drain()
			if err := a.render(); err != nil {
				return err
			}
		}
	}
}

// handleKeyEvent routes one key to the focused widget or the app.
func (a *App) handleKeyEvent(ev KeyEvent) {
	if ev.Ctrl && ev.Key == 'c' {
		a.cancel()
		return
	}

	focused := a.focusedInput()

	if ev.IsSpecial {
		switch ev.Special {
		case "Tab", "Enter":
			if focused != nil {
				a.bus.Publish(event.Event{Topic: event.TopicSubmitPressed, Widget: focused})
			}
		case "Escape":
			if focused != nil {
				a.accessory.Hide()
				focused.EndEditing()
			} else {
				a.cancel()
			}
		case "Backspace":
			if focused != nil {
				focused.Backspace()
			}
		}
		return
	}

	if focused != nil && ev.Key != 0 {
		focused.Append(ev.Key)
	}
}

// focusedInput returns the widget the controller tracks as focused.
func (a *App) focusedInput() *widget.Input {
	if in, ok := a.controller.Current().(*widget.Input); ok && in.Focused() {
		return in
	}
	if idx := a.container.FocusedIndex(); idx >= 0 {
		return a.inputs[idx]
	}
	return nil
}

// render draws the container and, when visible, the accessory overlay.
func (a *App) render() error {
	a.screen.Clear()

	_, height := a.screen.Size()
	a.container.SetReferenceBottom(height)
	a.container.Render(a.screen)
	a.accessory.Render(a.screen)

	if err := a.screen.Show(); err != nil {
		return fmt.Errorf("screen show failed: %w", err)
	}
	return nil
}

// readKeyboardInput reads raw terminal input in a background goroutine.
func (a *App) readKeyboardInput() {
	buf := make([]byte, 32)

	for {
		select {
		case <-a.ctx.Done():
			return
		default:
		}

		// Blocking read - terminal is already in raw mode from goterm
		n, err := os.Stdin.Read(buf)
		if err != nil {
			if err == io.EOF {
				return
			}
			continue
		}

		if n > 0 {
			select {
			case a.inputChan <- ParseKey(buf[:n]):
			case <-a.ctx.Done():
				return
			}
		}
	}
}

// Close tears down the controller and restores the terminal.
func (a *App) Close() error {
	a.cancel()
	a.controller.Close()

	if err := a.screen.Close(); err != nil {
		return fmt.Errorf("failed to close screen: %w", err)
	}
	return nil
}
