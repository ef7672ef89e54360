package runloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTime swaps a Clock's time source for a controllable one where sleeping
// advances the fake wall clock.
func fakeTime(c *Clock) (advance func(time.Duration), slept *[]time.Duration) {
	var (
		now    = time.Unix(0, 0)
		sleeps []time.Duration
	)
	c.now = func() time.Time { return now }
	c.sleep = func(d time.Duration) {
		sleeps = append(sleeps, d)
		now = now.Add(d)
	}
	return func(d time.Duration) { now = now.Add(d) }, &sleeps
}

func TestNewClock_InvalidRate(t *testing.T) {
	assert.Panics(t, func() {
		NewClock(0)
	})
	assert.Panics(t, func() {
		NewClock(-1)
	})
}

func TestClock_Interval(t *testing.T) {
	assert.Equal(t, time.Second/30, NewClock(30).Interval())
	assert.Equal(t, time.Second, NewClock(1).Interval())
}

func TestClock_Tick(t *testing.T) {
	c := NewClock(30)
	advance, slept := fakeTime(c)

	c.Tick()
	assert.Empty(t, *slept, "First tick only establishes the boundary")

	advance(10 * time.Millisecond)
	c.Tick()
	require.Len(t, *slept, 1)
	assert.Equal(t, c.Interval()-10*time.Millisecond, (*slept)[0], "Should sleep away the rest of the interval")

	// A tick landing exactly on the boundary sleeps the full interval next time.
	c.Tick()
	require.Len(t, *slept, 2)
	assert.Equal(t, c.Interval(), (*slept)[1])
}

func TestClock_Tick_BehindSchedule(t *testing.T) {
	c := NewClock(30)
	advance, slept := fakeTime(c)

	c.Tick()
	advance(3 * c.Interval())
	c.Tick()
	assert.Empty(t, *slept, "A late tick must not sleep")

	// The boundary restarts from the late tick rather than accruing debt.
	advance(10 * time.Millisecond)
	c.Tick()
	require.Len(t, *slept, 1)
	assert.Equal(t, c.Interval()-10*time.Millisecond, (*slept)[0])
}
