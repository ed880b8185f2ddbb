package schedule

import "time"

// Clock abstracts "now" so the generator and reconciliation stay pure
// functions of their inputs.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (f FixedClock) Now() time.Time { return time.Time(f) }
