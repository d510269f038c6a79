//go:build !linux

// Package mpris exposes the player on the session bus. It is a no-op on
// platforms without D-Bus.
package mpris

import (
	"github.com/rs/zerolog"

	"github.com/chillibeats/chilli/internal/playback"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ playback.Service, _ Transport, _ zerolog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
