// Package media defines the live media element a player surface drives.
//
// Decoding and output are not done in-process: an Element only tracks what
// a real output would be doing (loaded track, play state, position, volume)
// and reports when the track ends.
package media

import (
	"errors"
	"time"

	"github.com/chillibeats/chilli/internal/catalog"
)

var (
	// ErrNoSource is returned by Load for a track without a media URL.
	ErrNoSource = errors.New("media: track has no source")
	// ErrClosed is returned by operations on a closed element.
	ErrClosed = errors.New("media: element closed")
	// ErrNotLoaded is returned by Play and SeekTo before a successful Load.
	ErrNotLoaded = errors.New("media: nothing loaded")
)

// Element is the contract for a live media element.
type Element interface {
	// Load stops any current track and prepares track from position 0,
	// paused.
	Load(track catalog.Track) error
	Play() error
	Pause() error
	SeekTo(pos time.Duration) error
	// SetVolume stores a level clamped to [0, 1].
	SetVolume(level float64)
	SetMuted(muted bool)
	State() State
	Position() time.Duration
	Duration() time.Duration
	// Ended receives a value each time the loaded track plays to its end.
	Ended() <-chan struct{}
	Close() error
}

// Factory creates a new, unloaded element.
type Factory func() Element

// clampVolume limits level to [0, 1].
func clampVolume(level float64) float64 {
	return min(max(level, 0), 1)
}
