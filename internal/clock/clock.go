// Package clock abstracts the wall clock so handlers can be tested at a fixed instant.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system wall clock in the local time zone.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

// Now returns the preset instant.
func (f Fixed) Now() time.Time { return f.T }

// Func adapts an ordinary function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }
