package clock

import "time"

// Clock abstracts the wall clock so time can be controlled in tests.
// Session expiry and roster timestamps both flow through it.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the system time
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
