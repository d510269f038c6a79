// internal/playback/state.go
package playback

import "github.com/chillibeats/chilli/internal/catalog"

// Snapshot is an immutable view of the store after one operation.
// Consumers must not modify the Playlist slice.
type Snapshot struct {
	Version      uint64 // increases on every operation
	CurrentTrack *catalog.Track
	Playlist     []catalog.Track
	CurrentIndex int
	IsPlaying    bool
	IsLooping    bool
	IsShuffling  bool
}

// Len returns the number of queued tracks.
func (s Snapshot) Len() int {
	return len(s.Playlist)
}

// CanSkip reports whether next/previous controls should be enabled.
func (s Snapshot) CanSkip() bool {
	return len(s.Playlist) > 1
}

// IsCurrent reports whether track is the current track.
func (s Snapshot) IsCurrent(track catalog.Track) bool {
	return s.CurrentTrack != nil && s.CurrentTrack.Is(track)
}

// SameState reports whether s and other describe the same state,
// ignoring Version.
func (s Snapshot) SameState(other Snapshot) bool {
	if s.CurrentIndex != other.CurrentIndex ||
		s.IsPlaying != other.IsPlaying ||
		s.IsLooping != other.IsLooping ||
		s.IsShuffling != other.IsShuffling ||
		len(s.Playlist) != len(other.Playlist) {
		return false
	}
	if (s.CurrentTrack == nil) != (other.CurrentTrack == nil) {
		return false
	}
	if s.CurrentTrack != nil && !s.CurrentTrack.Is(*other.CurrentTrack) {
		return false
	}
	for i := range s.Playlist {
		if !s.Playlist[i].Is(other.Playlist[i]) {
			return false
		}
	}
	return true
}

// Mode is the pair of navigation flags.
type Mode struct {
	Loop    bool
	Shuffle bool
}

// String returns the mode name.
func (m Mode) String() string {
	switch {
	case m.Loop && m.Shuffle:
		return "Loop+Shuffle"
	case m.Shuffle:
		return "Shuffle"
	case m.Loop:
		return "Loop"
	default:
		return "Off"
	}
}
