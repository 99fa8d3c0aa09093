package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time to the scheduler
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real clock, used by the terminal loop
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a provider backed by time.Now
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// VirtualClock is a manually driven TimeProvider
// Time only moves through Advance and AdvanceTo, so staggered timelines can be
// simulated without wall-clock delays
type VirtualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewVirtualClock creates a clock frozen at start
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

// Now returns the frozen virtual time
func (c *VirtualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time
// Negative durations are ignored, virtual time never runs backwards
func (c *VirtualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}

// AdvanceTo moves the clock to t if t is later than the current time
func (c *VirtualClock) AdvanceTo(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.now) {
		c.now = t
	}
}
