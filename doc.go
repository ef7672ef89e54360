/*
Package mvcloop provides a minimal model-view-controller skeleton built around
a publish/subscribe event bus and a fixed-rate run loop.

Components never call each other directly. Input handling, simulation update,
and rendering are decoupled by routing everything through one mediator
([github.com/axelmagn/mvcloop/eventbus.Bus]) that broadcasts typed events to
registered listeners. A scheduler ([github.com/axelmagn/mvcloop/runloop.Loop])
drives the update/draw cadence at a fixed rate and owns shutdown ordering.

The packages, leaves first:

  - eventbus: the event taxonomy and the broadcast mediator.
  - runloop: the fixed-rate clock and the scheduling loop.
  - mvc: collaborator contracts for presentation and input, and the bridge
    listeners that adapt them onto the bus.
  - termui: a reference terminal collaborator.
  - cmd/mvcdemo: a demo composition root wiring all of the above.
*/
package mvcloop
