package testing

import (
	"sync"
	"time"
)

// FrameInterval is the frame duration AdvanceFrames steps by.
const FrameInterval = time.Second / 60

// FakeClock is a clock that only moves when told to. It satisfies the
// scheduler's Clock interface and is safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock set to midnight UTC on 2024-01-01.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the clock's time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// AdvanceFrames moves the clock forward by n frame intervals.
func (c *FakeClock) AdvanceFrames(n int) {
	c.Advance(time.Duration(n) * FrameInterval)
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
