package eventbus

import (
	"weak"

	"github.com/saylorsolutions/x/syncx"
)

// RegisterWeak registers a listener without extending its lifetime.
// The bus holds the listener through a weak pointer; once the last strong
// reference elsewhere is dropped and the object is reclaimed, the listener
// silently stops receiving events and its handle is removed on the next
// broadcast. No error, no use-after-free.
//
// Weak registration is keyed by the pointed-to object, so registering the
// same listener again is a no-op. A nil listener is ignored.
func RegisterWeak[T any, PT interface {
	*T
	Listener
}](bus *Bus, listener PT) {
	if listener == nil {
		return
	}
	ref := weak.Make((*T)(listener))
	syncx.LockFunc(&bus.mux, func() {
		if _, ok := bus.weakRefs[ref]; ok {
			return
		}
		handle := &weakHandle[T, PT]{bus: bus, ref: ref}
		bus.weakRefs[ref] = handle
		bus.listeners = bus.listeners.Add(handle)
	})
}

// UnregisterWeak removes a weak registration made with [RegisterWeak], and
// is a no-op when the listener was never weakly registered.
func UnregisterWeak[T any, PT interface {
	*T
	Listener
}](bus *Bus, listener PT) {
	if listener == nil {
		return
	}
	bus.removeWeak(weak.Make((*T)(listener)))
}

func (b *Bus) removeWeak(ref any) {
	syncx.LockFunc(&b.mux, func() {
		handle, ok := b.weakRefs[ref]
		if !ok {
			return
		}
		delete(b.weakRefs, ref)
		b.listeners = b.listeners.Remove(handle)
	})
}

type weakHandle[T any, PT interface {
	*T
	Listener
}] struct {
	bus *Bus
	ref weak.Pointer[T]
}

func (h *weakHandle[T, PT]) Notify(evt Event) error {
	target := h.ref.Value()
	if target == nil {
		// Listener was reclaimed, drop the handle.
		h.bus.removeWeak(h.ref)
		return nil
	}
	return PT(target).Notify(evt)
}
