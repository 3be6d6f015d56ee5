package internal

import "time"

// IntervalTimer invokes a callback at a fixed rate. Components embed one per
// periodic task and pump it from their frame loop; firing is rate-limited,
// not scheduled, so a stalled loop fires once on catch-up rather than
// bursting.
type IntervalTimer struct {
	interval time.Duration
	last     time.Time
	callback func()
}

// NewIntervalTimer creates a timer that fires callback at most once per
// interval.
func NewIntervalTimer(interval time.Duration, callback func()) *IntervalTimer {
	return &IntervalTimer{
		interval: interval,
		last:     time.Now(),
		callback: callback,
	}
}

// Update fires the callback if the interval has elapsed since the last fire.
// Call this every frame.
func (t *IntervalTimer) Update(now time.Time) {
	if now.Sub(t.last) < t.interval {
		return
	}
	t.last = now
	t.callback()
}

// Reset restarts the interval from now without firing.
func (t *IntervalTimer) Reset() {
	t.last = time.Now()
}
