//go:build linux

// Package mpris exposes the player on the session bus so desktop media keys
// and applets can act as one more remote control.
package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/rs/zerolog"

	"github.com/chillibeats/chilli/internal/playback"
)

// Adapter connects the playback store and the active surface to MPRIS over D-Bus.
type Adapter struct {
	store  playback.Service
	server *server.Server
	sub    *playback.Subscription
	log    zerolog.Logger
}

// New creates and starts a new MPRIS adapter.
func New(store playback.Service, transport Transport, log zerolog.Logger) (*Adapter, error) {
	a := &Adapter{
		store: store,
		log:   log.With().Str("component", "mpris").Logger(),
	}

	a.server = server.NewServer("chilli", &rootAdapter{}, &playerAdapter{
		store:     store,
		transport: transport,
	})

	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	a.sub = store.Subscribe()
	go watch(a.sub, events.NewEventHandler(a.server).Player, a.log)

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	a.store.Unsubscribe(a.sub)
	return a.server.Stop()
}
