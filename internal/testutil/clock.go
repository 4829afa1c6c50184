// Package testutil provides deterministic substitutes for the platform
// clock, for use in tests and golden comparisons.
package testutil

import (
	"sync"

	"github.com/nathanial/chronos/internal/civil"
)

// FixedClock returns a predetermined instant instead of reading the
// platform clock.
//
// This enables deterministic offset and CLI tests: the instant under test
// is pinned, so results do not drift with wall time.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu      sync.Mutex
	instant civil.Instant
}

// NewFixedClock creates a clock pinned at the given instant.
func NewFixedClock(i civil.Instant) *FixedClock {
	return &FixedClock{instant: i}
}

// Now returns the pinned instant. Never fails.
func (c *FixedClock) Now() (civil.Instant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.instant, nil
}

// Set repins the clock at a new instant.
func (c *FixedClock) Set(i civil.Instant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instant = i
}

// Advance moves the pinned instant forward by whole seconds.
// Negative values move it backward.
func (c *FixedClock) Advance(seconds int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instant.Seconds += seconds
}

// FailingClock fails every read, exercising the CLOCK_UNAVAILABLE path.
type FailingClock struct {
	// Err is returned from Now. Defaults to a CLOCK_UNAVAILABLE error.
	Err error
}

// Now returns the configured error and no instant.
func (c FailingClock) Now() (civil.Instant, error) {
	if c.Err != nil {
		return civil.Instant{}, c.Err
	}
	return civil.Instant{}, civil.NewClockUnavailableError("clock read failed")
}
