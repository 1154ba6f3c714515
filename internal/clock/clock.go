// Package clock abstracts the wall clock so time-dependent code can be
// driven deterministically in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fake is a manually advanced clock for tests.
type Fake struct {
	current time.Time
}

// NewFake returns a Fake fixed at start.
func NewFake(start time.Time) *Fake {
	return &Fake{current: start}
}

func (f *Fake) Now() time.Time          { return f.current }
func (f *Fake) Advance(d time.Duration) { f.current = f.current.Add(d) }
func (f *Fake) Set(t time.Time)         { f.current = t }
