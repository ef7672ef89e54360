package runloop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/axelmagn/mvcloop/eventbus"
)

var (
	ErrLoopFinished = errors.New("run loop already finished")
)

type loopConf struct {
	clock *Clock
	log   *slog.Logger
}

// Option configures a [Loop] at construction time.
type Option func(conf *loopConf) error

// TickRate sets the target tick frequency in ticks per second.
func TickRate(ticksPerSecond int) Option {
	return func(conf *loopConf) error {
		if ticksPerSecond < 1 {
			return fmt.Errorf("tick rate must be >= 1, got %d", ticksPerSecond)
		}
		conf.clock = NewClock(ticksPerSecond)
		return nil
	}
}

// WithClock replaces the loop's clock entirely, taking precedence over
// [TickRate].
func WithClock(clock *Clock) Option {
	return func(conf *loopConf) error {
		if clock == nil {
			return errors.New("clock cannot be nil")
		}
		conf.clock = clock
		return nil
	}
}

// WithLogger sets the logger used for loop lifecycle messages.
func WithLogger(log *slog.Logger) Option {
	return func(conf *loopConf) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		conf.log = log
		return nil
	}
}

// Loop drives the engine's update/draw cadence at a fixed rate.
//
// A Loop has two states, running and stopped. It starts running when
// [Loop.Run] is called and stops cooperatively: broadcasting
// [eventbus.EventQuit] (or cancelling the run context) marks it stopped, the
// current iteration finishes in full, and the loop condition is re-checked
// at the top of the next iteration. A stopped Loop is not restartable.
type Loop struct {
	bus     *eventbus.Bus
	clock   *Clock
	log     *slog.Logger
	running bool
	done    bool
}

// New builds a [Loop] on the given bus and registers it as a listener so it
// can observe [eventbus.EventQuit]. Option errors are joined and returned.
func New(bus *eventbus.Bus, opts ...Option) (*Loop, error) {
	conf := loopConf{
		clock: NewClock(DefaultTickRate),
		log:   slog.Default(),
	}
	var errs []error
	for _, opt := range opts {
		if err := opt(&conf); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	loop := &Loop{
		bus:   bus,
		clock: conf.clock,
		log:   conf.log,
	}
	bus.Register(loop)
	return loop, nil
}

// Notify implements [eventbus.Listener].
// Only [eventbus.EventQuit] is of interest; every other kind is a no-op.
func (l *Loop) Notify(evt eventbus.Event) error {
	if evt == eventbus.EventQuit {
		l.running = false
	}
	return nil
}

// Run drives the loop until a quit is observed, then broadcasts
// [eventbus.EventQuitCleanup] exactly once so every collaborator gets one
// matching teardown notification.
//
// Each iteration broadcasts one [eventbus.EventUpdate] followed by two
// [eventbus.EventDraw], with a clock tick after each draw, so drawing runs
// at twice the logic rate. Cancelling ctx is observed at the top of the next
// iteration and stops the loop the same way a quit event does.
//
// A broadcast failure aborts the loop immediately and is returned to the
// caller; the cleanup broadcast is the guarantee of a cooperative stop, not
// of a crash.
func (l *Loop) Run(ctx context.Context) error {
	if l.done {
		return ErrLoopFinished
	}
	defer func() {
		l.done = true
	}()
	l.running = true
	l.log.Debug("run loop starting", "interval", l.clock.Interval())
	for l.running {
		if ctx.Err() != nil {
			l.running = false
			break
		}
		if err := l.bus.Broadcast(eventbus.EventUpdate); err != nil {
			return err
		}
		if err := l.bus.Broadcast(eventbus.EventDraw); err != nil {
			return err
		}
		l.clock.Tick()
		if err := l.bus.Broadcast(eventbus.EventDraw); err != nil {
			return err
		}
		l.clock.Tick()
	}
	l.log.Debug("run loop stopped, broadcasting cleanup")
	return l.bus.Broadcast(eventbus.EventQuitCleanup)
}
