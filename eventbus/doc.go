/*
Package eventbus provides the broadcast mediator at the center of the engine.

# Design Priorities

  - It should be deterministic: dispatch is a plain synchronous fan-out on the
    calling goroutine, and a broadcast always notifies exactly the listeners
    that were registered when it started.
  - It should be transparent in its results by reporting listener failures
    back to the broadcasting code instead of swallowing them.
  - It should never own a listener: registration must not be the reason a
    component stays alive.

# Primitives

Every [Event] is an integer kind tag for something specific that happens in
the engine. There is no payload; the kind is the whole message. The zero
value [EventNone] is reserved and cannot be broadcast.

A [Listener] is anything with a Notify method. Listeners that have no
interest in a given kind return nil for it. Use [ListenerFunc] to adapt a
bare function.

# Registration and Lifetime

[Bus.Register] and [Bus.Unregister] are total: re-registering is a no-op, as
is unregistering something that was never registered. The registry is keyed
by listener identity.

For components whose lifetime is controlled elsewhere, [RegisterWeak] holds
the listener through a weak pointer. Once every strong reference to the
listener is gone and the object is reclaimed, the bus drops it silently on
the next broadcast. [Bus.Register] keeps an owning reference instead, paired
with an explicit [Bus.Unregister] on teardown; both styles can coexist on one
bus.

# Dispatch

[Bus.Broadcast] snapshots the registry before invoking any listener, so a
Notify implementation may freely register or unregister listeners without
affecting the ongoing pass. It does not stop on a listener failure; all
failures from one broadcast are joined into the returned error.
*/
package eventbus
