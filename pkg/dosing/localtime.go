package dosing

import (
	"time"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return realClock{} }

// LocalClock shifts instants into a single fixed-offset wall clock so every
// window comparison in the engine operates on the same frame.
type LocalClock struct {
	clock Clock
	loc   *time.Location
}

func NewLocalClock(clock Clock, offsetMinutes int) LocalClock {
	return LocalClock{
		clock: clock,
		loc:   time.FixedZone("local", offsetMinutes*60),
	}
}

func (l LocalClock) Now() time.Time {
	return l.clock.Now()
}

func (l LocalClock) NowLocal() time.Time {
	return l.clock.Now().In(l.loc)
}

func (l LocalClock) ToLocal(t time.Time) time.Time {
	return t.In(l.loc)
}

// MinutesOfDay returns minutes since local midnight for a local instant.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
