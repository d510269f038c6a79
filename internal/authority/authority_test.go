package authority

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinator_InitialState(t *testing.T) {
	c := New()
	assert.False(t, c.HasActiveFullPlayer())
	assert.False(t, c.HasUserInteracted())
}

func TestCoordinator_UserInteractedIsMonotonic(t *testing.T) {
	c := New()
	c.SetHasUserInteracted(false)
	assert.False(t, c.HasUserInteracted())

	c.SetHasUserInteracted(true)
	c.SetHasUserInteracted(false)
	assert.True(t, c.HasUserInteracted())
}

func TestCoordinator_SetHasActiveFullPlayer(t *testing.T) {
	c := New()
	c.SetHasActiveFullPlayer(true)
	assert.True(t, c.HasActiveFullPlayer())
	c.SetHasActiveFullPlayer(true)
	c.SetHasActiveFullPlayer(false)
	assert.False(t, c.HasActiveFullPlayer())
}

func TestCoordinator_SetterKeepsAcquisitions(t *testing.T) {
	c := New()
	release := c.AcquireFullPlayer()

	c.SetHasActiveFullPlayer(true)
	c.SetHasActiveFullPlayer(false)
	assert.True(t, c.HasActiveFullPlayer(), "clearing the flag must not revoke a held acquisition")

	release()
	assert.False(t, c.HasActiveFullPlayer())

	c.SetHasActiveFullPlayer(true)
	release = c.AcquireFullPlayer()
	release()
	assert.True(t, c.HasActiveFullPlayer(), "releasing must not clear the direct flag")
}

func TestCoordinator_AcquireRelease(t *testing.T) {
	c := New()
	release := c.AcquireFullPlayer()
	assert.True(t, c.HasActiveFullPlayer())

	release()
	assert.False(t, c.HasActiveFullPlayer())

	release()
	assert.False(t, c.HasActiveFullPlayer(), "second release must be a no-op")
}

func TestCoordinator_OverlappingAcquisitions(t *testing.T) {
	c := New()
	leaving := c.AcquireFullPlayer()
	entering := c.AcquireFullPlayer()

	// The old page releasing after the new one mounted keeps authority held.
	leaving()
	assert.True(t, c.HasActiveFullPlayer())

	entering()
	assert.False(t, c.HasActiveFullPlayer())
}

func TestCoordinator_ReleaseOnEveryExitPath(t *testing.T) {
	c := New()
	func() {
		defer c.AcquireFullPlayer()()
		assert.True(t, c.HasActiveFullPlayer())
	}()
	assert.False(t, c.HasActiveFullPlayer())

	assert.Panics(t, func() {
		defer c.AcquireFullPlayer()()
		panic("render failed")
	})
	assert.False(t, c.HasActiveFullPlayer())
}

func TestCoordinator_Concurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			release := c.AcquireFullPlayer()
			_ = c.HasActiveFullPlayer()
			c.SetHasUserInteracted(true)
			release()
			release()
		})
	}
	wg.Wait()
	assert.False(t, c.HasActiveFullPlayer())
	assert.True(t, c.HasUserInteracted())
}
