package state

import "sync/atomic"

// Clock is a monotonic revision counter. Every editor mutation ticks it so
// views can tell whether anything changed since they last rendered.
type Clock struct {
	counter uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

// Now returns the current value without advancing it.
func (c *Clock) Now() uint64 {
	return atomic.LoadUint64(&c.counter)
}
