package runloop

import "time"

// DefaultTickRate is the tick frequency, in ticks per second, used when none
// is configured. May be changed before constructing a [Loop] or [Clock].
var DefaultTickRate = 30

// Clock caps the rate of a loop at a fixed number of ticks per second, the
// way a frame limiter does: each [Clock.Tick] sleeps away whatever remains
// of the current interval. A loop that is already behind schedule is never
// slept.
type Clock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewClock creates a [Clock] targeting the given rate in ticks per second.
func NewClock(ticksPerSecond int) *Clock {
	if ticksPerSecond < 1 {
		panic("tick rate must be >= 1")
	}
	return &Clock{
		interval: time.Second / time.Duration(ticksPerSecond),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Interval returns the duration of a single tick.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Tick blocks until the next tick boundary. The first call establishes the
// boundary and returns immediately. The wait is not cancellable mid-sleep.
func (c *Clock) Tick() {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return
	}
	next := c.last.Add(c.interval)
	if wait := next.Sub(now); wait > 0 {
		c.sleep(wait)
		c.last = next
		return
	}
	// Behind schedule, restart from now rather than accumulating debt.
	c.last = now
}
