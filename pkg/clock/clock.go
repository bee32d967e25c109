// Package clock provides the time sources injected into the application
// layer. Entities never read ambient time; they receive now from a
// caller holding one of these.
package clock

import "time"

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. For tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }

// At is shorthand for a Fixed clock at t.
func At(t time.Time) Fixed { return Fixed{Instant: t} }
