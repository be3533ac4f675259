package clock

import "time"

// fakeClock is a manually-advanced Clock for tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time                  { return f.now }
func (f *fakeClock) Since(t time.Time) time.Duration { return f.now.Sub(t) }
func (f *fakeClock) Advance(d time.Duration)          { f.now = f.now.Add(d) }
