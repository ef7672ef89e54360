// Package mvc defines the collaborator contracts of the engine and the
// bridge listeners that adapt them onto the event bus.
//
// The engine core knows nothing about windows, pixels, or devices. A
// presentation layer plugs in by implementing [View], an input layer by
// implementing [InputSource]; the bridges in this package translate bus
// events into calls on those contracts.
package mvc

import (
	"fmt"

	"github.com/axelmagn/mvcloop/eventbus"
)

// View is the presentation collaborator. It repaints on demand and releases
// display resources exactly once when the engine shuts down.
type View interface {
	// OnDraw repaints the current frame.
	OnDraw() error
	// OnCleanup releases display resources. Called once, after the run
	// loop has exited.
	OnCleanup() error
}

// InputSource polls the host input layer for pending input.
type InputSource interface {
	// Poll drains pending input without blocking and reports whether a
	// quit signal was seen.
	Poll() (quit bool, err error)
}

// ViewListener bridges a [View] onto the bus: draw events trigger a repaint
// and the cleanup event releases the display.
type ViewListener struct {
	view View
}

// NewViewListener wraps view and registers the bridge with bus.
func NewViewListener(bus *eventbus.Bus, view View) *ViewListener {
	listener := &ViewListener{view: view}
	bus.Register(listener)
	return listener
}

// Notify implements [eventbus.Listener].
func (v *ViewListener) Notify(evt eventbus.Event) error {
	switch evt {
	case eventbus.EventDraw:
		if err := v.view.OnDraw(); err != nil {
			return fmt.Errorf("draw failed: %w", err)
		}
	case eventbus.EventQuitCleanup:
		if err := v.view.OnCleanup(); err != nil {
			return fmt.Errorf("display cleanup failed: %w", err)
		}
	}
	return nil
}

// Controller bridges an [InputSource] onto the bus: each update tick polls
// the source and a detected quit signal is broadcast back through the same
// bus as [eventbus.EventQuit].
type Controller struct {
	bus   *eventbus.Bus
	input InputSource
}

// NewController wraps input and registers the bridge with bus.
func NewController(bus *eventbus.Bus, input InputSource) *Controller {
	controller := &Controller{bus: bus, input: input}
	bus.Register(controller)
	return controller
}

// Notify implements [eventbus.Listener].
func (c *Controller) Notify(evt eventbus.Event) error {
	if evt != eventbus.EventUpdate {
		return nil
	}
	quit, err := c.input.Poll()
	if err != nil {
		return fmt.Errorf("input poll failed: %w", err)
	}
	if quit {
		return c.bus.Broadcast(eventbus.EventQuit)
	}
	return nil
}
