package invaders

import "time"

// Timer accumulates elapsed time against a fixed duration.
// It never fires on its own; callers poll Ready after Update.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewTimer returns a timer that becomes ready after d.
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// newReadyTimer returns a timer that is ready immediately.
func newReadyTimer(d time.Duration) Timer {
	return Timer{duration: d, elapsed: d}
}

// Update advances the timer. Elapsed time saturates at the duration.
func (t *Timer) Update(delta time.Duration) {
	t.elapsed += delta
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

// Ready reports whether the full duration has elapsed.
func (t *Timer) Ready() bool {
	return t.elapsed >= t.duration
}

// Reset starts the timer over.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// SetDuration changes the duration without discarding elapsed time.
// A shorter duration may make the timer ready immediately.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
	if t.elapsed > d {
		t.elapsed = d
	}
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns how long until the timer is ready.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}
