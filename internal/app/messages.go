// Package app is the root bubbletea model: pages, playlist panel, player
// bars and popups wired to the playback store and player surfaces.
package app

import (
	"time"

	"github.com/chillibeats/chilli/internal/playback"
)

// TickMsg is sent periodically to drive the media clock and the progress bar.
type TickMsg time.Time

// SnapshotMsg carries a store snapshot from the subscription.
type SnapshotMsg playback.Snapshot

// StoreClosedMsg is sent once the subscription is closed.
type StoreClosedMsg struct{}

// FocusTarget identifies which panel receives list keys.
type FocusTarget int

const (
	FocusPage FocusTarget = iota
	FocusQueue
)
