package eventbus

import "fmt"

// Event is the kind tag of a broadcast message.
// It carries no payload; routing is purely by kind.
type Event int

const (
	EventNone        Event = iota // EventNone is the reserved zero value and cannot be broadcast.
	EventUpdate                   // EventUpdate signals that one logic tick has elapsed and listeners should advance state or poll input.
	EventDraw                     // EventDraw signals that the view should repaint now.
	EventQuit                     // EventQuit signals that shutdown has been requested.
	EventQuitCleanup              // EventQuitCleanup signals that shutdown has completed and held resources should be released.
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventUpdate:
		return "update"
	case EventDraw:
		return "draw"
	case EventQuit:
		return "quit"
	case EventQuitCleanup:
		return "quit-cleanup"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}
