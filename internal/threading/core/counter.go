package core

import "sync/atomic"

// SafeCounter provides thread-safe counter operations using lock-free atomics.
// Player health and kill objectives use it so that every hit or kill is one
// atomic step even if entity updates are ever spread across goroutines.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeCounter creates a counter initialized to value.
func NewSafeCounter(value int64) *SafeCounter {
	c := &SafeCounter{}
	c.value.Store(value)
	return c
}

// Add atomically adds delta to the counter and returns the new value
func (c *SafeCounter) Add(delta int64) int64 {
	return c.value.Add(delta)
}

// Get atomically gets the counter value
func (c *SafeCounter) Get() int64 {
	return c.value.Load()
}

// Set atomically sets the counter value
func (c *SafeCounter) Set(value int64) {
	c.value.Store(value)
}

// SubtractFloor subtracts n but never takes the counter below floor. It returns
// the new value and whether anything was subtracted.
func (c *SafeCounter) SubtractFloor(n, floor int64) (int64, bool) {
	for {
		old := c.value.Load()
		if old <= floor {
			return old, false
		}
		next := old - n
		if next < floor {
			next = floor
		}
		if c.value.CompareAndSwap(old, next) {
			return next, true
		}
	}
}
