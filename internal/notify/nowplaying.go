package notify

import (
	"github.com/rs/zerolog"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/playback"
)

// nowPlayingTimeout is how long a track notification stays up, in ms.
const nowPlayingTimeout = 5000

// NowPlaying turns store snapshots into a single "now playing" notification
// that is replaced on every track change.
type NowPlaying struct {
	notifier Notifier
	log      zerolog.Logger
	lastID   string
	notifID  uint32
}

// NewNowPlaying creates a NowPlaying that sends through n.
func NewNowPlaying(n Notifier, log zerolog.Logger) *NowPlaying {
	return &NowPlaying{
		notifier: n,
		log:      log.With().Str("component", "notify").Logger(),
	}
}

// ForTrack builds the notification for a track.
func ForTrack(track catalog.Track) Notification {
	body := track.Credits()
	if track.Genre != "" {
		body += "\n" + track.Genre
	}
	return Notification{
		Title:   track.Title,
		Body:    body,
		Icon:    "media-playback-start",
		Timeout: nowPlayingTimeout,
		Urgency: UrgencyLow,
	}
}

// Update notifies when snap starts playing a track other than the last one
// announced. It returns whether a notification was sent.
func (p *NowPlaying) Update(snap playback.Snapshot) bool {
	if !snap.IsPlaying || snap.CurrentTrack == nil {
		return false
	}
	if snap.CurrentTrack.ID == p.lastID {
		return false
	}
	p.lastID = snap.CurrentTrack.ID

	n := ForTrack(*snap.CurrentTrack)
	n.ReplacesID = p.notifID
	id, err := p.notifier.Notify(n)
	if err != nil {
		p.log.Debug().Err(err).Str("track", snap.CurrentTrack.ID).Msg("notification failed")
		return false
	}
	p.notifID = id
	return true
}

// Close dismisses the current notification, if any.
func (p *NowPlaying) Close() error {
	if p.notifID == 0 {
		return nil
	}
	id := p.notifID
	p.notifID = 0
	return p.notifier.Close(id)
}
