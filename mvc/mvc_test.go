package mvc

import (
	"errors"
	"testing"

	"github.com/axelmagn/mvcloop/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	draws    int
	cleanups int
	drawErr  error
	cleanErr error
}

func (v *fakeView) OnDraw() error {
	v.draws++
	return v.drawErr
}

func (v *fakeView) OnCleanup() error {
	v.cleanups++
	return v.cleanErr
}

type fakeInput struct {
	quit  bool
	err   error
	polls int
}

func (i *fakeInput) Poll() (bool, error) {
	i.polls++
	return i.quit, i.err
}

func TestViewListener(t *testing.T) {
	bus := eventbus.NewBus()
	view := &fakeView{}
	NewViewListener(bus, view)

	require.NoError(t, bus.Broadcast(eventbus.EventDraw))
	require.NoError(t, bus.Broadcast(eventbus.EventDraw))
	assert.Equal(t, 2, view.draws)
	assert.Zero(t, view.cleanups)

	require.NoError(t, bus.Broadcast(eventbus.EventQuitCleanup))
	assert.Equal(t, 1, view.cleanups)

	// Kinds of no interest are a no-op.
	require.NoError(t, bus.Broadcast(eventbus.EventUpdate))
	require.NoError(t, bus.Broadcast(eventbus.EventQuit))
	assert.Equal(t, 2, view.draws)
	assert.Equal(t, 1, view.cleanups)
}

func TestViewListener_Errors(t *testing.T) {
	errBroken := errors.New("display broken")
	bus := eventbus.NewBus()
	NewViewListener(bus, &fakeView{drawErr: errBroken})
	assert.ErrorIs(t, bus.Broadcast(eventbus.EventDraw), errBroken)

	bus = eventbus.NewBus()
	NewViewListener(bus, &fakeView{cleanErr: errBroken})
	assert.ErrorIs(t, bus.Broadcast(eventbus.EventQuitCleanup), errBroken)
}

func TestController_PollsOnUpdate(t *testing.T) {
	bus := eventbus.NewBus()
	input := &fakeInput{}
	NewController(bus, input)

	require.NoError(t, bus.Broadcast(eventbus.EventUpdate))
	require.NoError(t, bus.Broadcast(eventbus.EventUpdate))
	assert.Equal(t, 2, input.polls)

	// Only update ticks poll.
	require.NoError(t, bus.Broadcast(eventbus.EventDraw))
	assert.Equal(t, 2, input.polls)
}

func TestController_QuitSignal(t *testing.T) {
	bus := eventbus.NewBus()
	input := &fakeInput{quit: true}
	NewController(bus, input)

	var quits int
	bus.Register(eventbus.ListenerFunc(func(evt eventbus.Event) error {
		if evt == eventbus.EventQuit {
			quits++
		}
		return nil
	}))

	require.NoError(t, bus.Broadcast(eventbus.EventUpdate))
	assert.Equal(t, 1, quits, "A quit signal is rebroadcast through the bus")
}

func TestController_PollError(t *testing.T) {
	errGone := errors.New("input device gone")
	bus := eventbus.NewBus()
	NewController(bus, &fakeInput{err: errGone})
	assert.ErrorIs(t, bus.Broadcast(eventbus.EventUpdate), errGone)
}
