package core

import "time"

// Clock abstracts time operations for testing
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// RealClock implements Clock using the real system time
type RealClock struct{}

// Now returns the current time
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock with a settable time
type FixedClock struct {
	CurrentTime time.Time
}

// Now returns the fixed current time
func (f *FixedClock) Now() time.Time {
	return f.CurrentTime
}

// Advance moves the fixed time forward by the given duration
func (f *FixedClock) Advance(d time.Duration) {
	f.CurrentTime = f.CurrentTime.Add(d)
}

// Ensure implementations satisfy the interface
var (
	_ Clock = RealClock{}
	_ Clock = (*FixedClock)(nil)
)
