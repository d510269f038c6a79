package playback

import "github.com/chillibeats/chilli/internal/catalog"

// Service is the single owner of the queue and playback flags. Every
// operation is total: out-of-range input degrades to a no-op or a clamped
// value, never to an error. Each call publishes a new Snapshot.
type Service interface {
	// Queue replacement and selection (always pause)
	SetQueue(tracks []catalog.Track, startIndex int)
	SetCurrentTrack(track catalog.Track)

	// Transport
	TogglePlay()
	PlayNext()
	PlayPrevious()
	JumpTo(index int)

	// Playlist curation
	AddToPlaylist(track catalog.Track)
	RemoveFromPlaylist(trackID string)
	ClearPlaylist()

	// Mode control
	ToggleLoop()
	ToggleShuffle()

	// State queries
	Snapshot() Snapshot
	CurrentTrack() *catalog.Track
	IsPlaying() bool
	Mode() Mode
	Len() int

	// Event subscription
	Subscribe() *Subscription
	Unsubscribe(sub *Subscription)

	// Lifecycle
	Close() error
}
