// Package authority decides which player surface owns audio output.
//
// A full player claims authority while it is mounted; mini players only
// create a live media element when no full player holds it. The user
// interaction flag mirrors the autoplay rule: media never starts before
// the first explicit user gesture.
package authority

import (
	"sync"
	"sync/atomic"
)

// Coordinator holds the two process-wide flags shared by all surfaces.
type Coordinator struct {
	mu          sync.Mutex
	fullPlayers int  // AcquireFullPlayer holders
	manual      bool // SetHasActiveFullPlayer
	interacted  atomic.Bool
}

// New returns a coordinator with no active full player and no interaction.
func New() *Coordinator {
	return &Coordinator{}
}

// SetHasActiveFullPlayer sets or clears a single claim on the full-player
// flag, separate from AcquireFullPlayer holders: clearing it never revokes
// an acquisition that has not been released. Prefer AcquireFullPlayer,
// which pairs the set with its release.
func (c *Coordinator) SetHasActiveFullPlayer(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.manual = active
}

// HasActiveFullPlayer reports whether a full player owns audio output.
func (c *Coordinator) HasActiveFullPlayer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manual || c.fullPlayers > 0
}

// AcquireFullPlayer marks a full player as active and returns the function
// that releases it. The release function may be called any number of times.
func (c *Coordinator) AcquireFullPlayer() (release func()) {
	c.mu.Lock()
	c.fullPlayers++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			if c.fullPlayers > 0 {
				c.fullPlayers--
			}
			c.mu.Unlock()
		})
	}
}

// SetHasUserInteracted records a user gesture. The flag never goes back to
// false: SetHasUserInteracted(false) after a gesture is ignored.
func (c *Coordinator) SetHasUserInteracted(v bool) {
	if v {
		c.interacted.Store(true)
	}
}

// HasUserInteracted reports whether the user has interacted yet.
func (c *Coordinator) HasUserInteracted() bool {
	return c.interacted.Load()
}
