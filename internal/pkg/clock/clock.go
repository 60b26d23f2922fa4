package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FrozenClock is a manually advanced clock for tests.
type FrozenClock struct {
	currentTime time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{currentTime: t}
}

func (c *FrozenClock) Now() time.Time {
	return c.currentTime
}

func (c *FrozenClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *FrozenClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
