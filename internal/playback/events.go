package playback

import "github.com/chillibeats/chilli/internal/catalog"

// PlayChange is emitted when the play flag flips.
type PlayChange struct {
	Playing bool
}

// TrackChange is emitted when the current track or its queue position changes.
//
// Emitted by SetQueue, SetCurrentTrack, PlayNext/PlayPrevious, JumpTo,
// RemoveFromPlaylist and ClearPlaylist whenever the resulting current track
// differs from the previous one. Shuffle may reselect the same index; that
// is not a change and emits nothing.
type TrackChange struct {
	Previous      *catalog.Track
	Current       *catalog.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []catalog.Track
	Index  int
}

// ModeChange is emitted when loop or shuffle changes.
type ModeChange struct {
	Mode Mode
}
