package eventbus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/saylorsolutions/x/structures/set"
	"github.com/saylorsolutions/x/syncx"
)

var (
	ErrInvalidEvent = errors.New("event 0 cannot be broadcast")
)

// Listener describes a component that receives events from the [Bus].
// A Listener that has no interest in a given kind must return nil for it.
type Listener interface {
	// Notify handles a single broadcast event.
	// A returned error is reported to the broadcaster; it does not stop
	// dispatch to other listeners.
	Notify(evt Event) error
}

// ListenerFunc adapts a bare function to the [Listener] interface.
// Each call produces a distinct listener identity, so keep the returned
// value if it needs to be unregistered later.
func ListenerFunc(fn func(evt Event) error) Listener {
	return &funcListener{fn: fn}
}

type funcListener struct {
	fn func(evt Event) error
}

func (f *funcListener) Notify(evt Event) error {
	return f.fn(evt)
}

// Bus is the mediator that routes events between engine components.
// It observes its listeners, it never owns them: strong registrations are
// released with [Bus.Unregister], weak ones ([RegisterWeak]) disappear on
// their own when the listener is reclaimed.
//
// The zero value is not usable, use [NewBus].
type Bus struct {
	mux       sync.RWMutex
	listeners set.Set[Listener]
	weakRefs  map[any]Listener
}

// NewBus creates an empty [Bus].
func NewBus() *Bus {
	return &Bus{
		listeners: set.New[Listener](),
		weakRefs:  map[any]Listener{},
	}
}

// Register adds a listener to the registry.
// Registering an already-registered listener is a no-op, a nil listener is
// ignored.
func (b *Bus) Register(listener Listener) {
	if listener == nil {
		return
	}
	syncx.LockFunc(&b.mux, func() {
		b.listeners = b.listeners.Add(listener)
	})
}

// Unregister removes a listener from the registry, and is a no-op when the
// listener is not present.
func (b *Bus) Unregister(listener Listener) {
	syncx.LockFunc(&b.mux, func() {
		b.listeners = b.listeners.Remove(listener)
	})
}

// Len reports the number of registered listeners, weak handles included.
func (b *Bus) Len() int {
	return syncx.RLockFuncT(&b.mux, func() int {
		return len(b.listeners)
	})
}

// Broadcast synchronously invokes Notify on every currently-registered
// listener and returns only after all of them have returned. The listener
// set is snapshotted before the first Notify call, so registrations and
// removals made by a listener take effect on the next broadcast.
//
// Dispatch does not stop on a listener failure. All failures from one pass
// are joined into the returned error. Broadcasting to an empty bus is a
// silent no-op. Iteration order is unspecified.
func (b *Bus) Broadcast(evt Event) error {
	if evt == EventNone {
		return ErrInvalidEvent
	}
	snapshot := syncx.RLockFuncT(&b.mux, func() []Listener {
		return b.listeners.Slice()
	})
	var errs []error
	for _, listener := range snapshot {
		if err := listener.Notify(evt); err != nil {
			errs = append(errs, fmt.Errorf("listener failed handling %v: %w", evt, err))
		}
	}
	return errors.Join(errs...)
}
