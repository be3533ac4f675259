package clock

import "time"

// Timer is a single-shot, pollable expiration check over a Clock. It
// exposes polling (IsExpired) rather than a callback, the shape
// session.Transfer's Pending state needs.
type Timer struct {
	clock      Clock
	duration   time.Duration
	expireTime time.Time
}

// NewTimer constructs a Timer set to expire after d, starting now.
func NewTimer(c Clock, d time.Duration) *Timer {
	t := &Timer{clock: c, duration: d}
	t.Reset()
	return t
}

// IsExpired reports whether the timer's duration has elapsed.
func (t *Timer) IsExpired() bool {
	return !t.clock.Now().Before(t.expireTime)
}

// IsOverExpired reports whether the timer has been expired for longer than
// its own duration a second time over — a distinct, more severe condition
// than a plain expiration.
func (t *Timer) IsOverExpired() bool {
	overage := t.clock.Since(t.expireTime)
	return overage > t.duration
}

// Reset restarts the timer. If it had not yet expired, or had expired long
// enough ago to be over-expired, the new period starts from now; otherwise
// it starts from the previous expiration time, so a timer polled slightly
// late does not drift.
func (t *Timer) Reset() {
	start := t.expireTime
	if !t.IsExpired() || t.IsOverExpired() {
		start = t.clock.Now()
	}
	t.expireTime = start.Add(t.duration)
}

// Set changes the timer's duration and resets it.
func (t *Timer) Set(d time.Duration) {
	t.duration = d
	t.Reset()
}
