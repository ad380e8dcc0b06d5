package app

import "time"

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Countdown is the per-question clock. It counts whole seconds down from the
// budget and tells its owner when zero is reached.
//
// Countdown is not safe for concurrent use. The fire callback runs on the
// clock's goroutine; the owner must take its own lock and hand the generation
// back to Tick, which drops callbacks scheduled before the last Stop or Start.
type Countdown struct {
	clock     Clock
	budget    int
	remaining int
	timer     Timer
	fire      func(gen uint64)
	gen       uint64
}

func NewCountdown(clock Clock, budget int) *Countdown {
	return &Countdown{clock: clock, budget: budget, remaining: budget}
}

func (c *Countdown) Budget() int { return c.budget }

func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether a tick is scheduled.
func (c *Countdown) Running() bool { return c.timer != nil }

// Reset stops the clock and refills it to the full budget.
func (c *Countdown) Reset() {
	c.Stop()
	c.remaining = c.budget
}

// Start schedules ticks, one per TickInterval, until the clock hits zero or is stopped.
func (c *Countdown) Start(fire func(gen uint64)) {
	c.Stop()
	if c.remaining <= 0 {
		return
	}
	c.fire = fire
	c.schedule()
}

// Stop cancels the pending tick and invalidates any callback already in flight.
func (c *Countdown) Stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// Tick consumes one second. ok is false for a stale callback, in which case
// nothing changes. expired is true exactly once, on the tick that reaches zero.
func (c *Countdown) Tick(gen uint64) (remaining int, expired, ok bool) {
	if gen != c.gen || c.timer == nil {
		return c.remaining, false, false
	}
	c.timer = nil
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.gen++
		return 0, true, true
	}
	c.schedule()
	return c.remaining, false, true
}

func (c *Countdown) schedule() {
	gen, fire := c.gen, c.fire
	c.timer = c.clock.AfterFunc(TickInterval, func() { fire(gen) })
}
