package mpris

import (
	"github.com/rs/zerolog"

	"github.com/chillibeats/chilli/internal/playback"
)

// emitter sends PropertiesChanged for groups of player properties.
// *events.PlayerEventHandler satisfies it.
type emitter interface {
	OnPlayPause() error // PlaybackStatus
	OnTitle() error     // Metadata
	OnOptions() error   // LoopStatus, Shuffle, CanGoNext, CanGoPrevious
}

// watch forwards store events to MPRIS clients until sub is closed.
func watch(sub *playback.Subscription, emit emitter, log zerolog.Logger) {
	for {
		var err error
		select {
		case <-sub.Done:
			return
		case <-sub.PlayChanged:
			err = emit.OnPlayPause()
		case e := <-sub.TrackChanged:
			err = emit.OnTitle()
			if err == nil && (e.Previous == nil) != (e.Current == nil) {
				err = emit.OnPlayPause()
			}
		case <-sub.QueueChanged:
			err = emit.OnOptions()
		case <-sub.ModeChanged:
			err = emit.OnOptions()
		}
		if err != nil {
			log.Debug().Err(err).Msg("emit properties changed")
		}
	}
}
