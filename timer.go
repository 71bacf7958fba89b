package flicker

// Clock is a scene-local time source advanced once per tick. Timers read it
// instead of the wall clock so a scene replays identically for the same
// sequence of frame deltas.
type Clock struct {
	now float64
}

// Now returns the accumulated seconds.
func (c *Clock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	c.now += dt
}

// Timer measures elapsed clock time against a target duration. The scene
// fires Callback once when Delta turns non-negative, then discards the timer.
type Timer struct {
	// Callback runs once at expiry. May be nil.
	Callback func()

	clock    *Clock
	target   float64
	base     float64
	pausedAt float64
	paused   bool
	canceled bool
}

// NewTimer creates a timer on clock expiring after seconds.
func NewTimer(clock *Clock, seconds float64) *Timer {
	t := &Timer{clock: clock}
	t.Set(seconds)
	return t
}

// Set restarts the timer with a new target duration.
func (t *Timer) Set(seconds float64) {
	t.target = seconds
	t.Reset()
}

// Reset restarts the timer with its current target duration.
func (t *Timer) Reset() {
	t.base = t.clock.Now()
	t.pausedAt = t.base
}

// Elapsed returns the seconds counted since the last Set or Reset, excluding
// paused spans.
func (t *Timer) Elapsed() float64 {
	if t.paused {
		return t.pausedAt - t.base
	}
	return t.clock.Now() - t.base
}

// Delta returns Elapsed minus the target. A value >= 0 means expired.
func (t *Timer) Delta() float64 {
	return t.Elapsed() - t.target
}

// Pause freezes the timer.
func (t *Timer) Pause() {
	if t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.clock.Now()
}

// Resume continues a paused timer, skipping the paused span.
func (t *Timer) Resume() {
	if !t.paused {
		return
	}
	t.base += t.clock.Now() - t.pausedAt
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Cancel marks the timer so the scene drops it on its next pass without
// running the callback.
func (t *Timer) Cancel() {
	t.canceled = true
}

// Canceled reports whether Cancel was called.
func (t *Timer) Canceled() bool {
	return t.canceled
}
