package surface

import (
	"time"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/playback"
)

// Status is what a player view renders.
type Status struct {
	Track     *catalog.Track
	Index     int
	Len       int
	Playing   bool
	Looping   bool
	Shuffling bool
	CanSkip   bool
	Live      bool
	Position  time.Duration
	Duration  time.Duration
	Volume    float64
	Muted     bool
	Err       error
}

// Status combines the store snapshot with the surface's local state.
func (s *Surface) Status(snap playback.Snapshot) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		Track:     snap.CurrentTrack,
		Index:     snap.CurrentIndex,
		Len:       snap.Len(),
		Playing:   snap.IsPlaying && !s.atEnd,
		Looping:   snap.IsLooping,
		Shuffling: snap.IsShuffling,
		CanSkip:   snap.CanSkip(),
		Live:      s.elem != nil,
		Volume:    s.volume,
		Muted:     s.muted,
		Err:       s.err,
	}
	if snap.CurrentTrack != nil {
		st.Duration = snap.CurrentTrack.Duration()
	}
	if s.elem != nil && s.loadedID != "" {
		st.Position = s.elem.Position()
		if d := s.elem.Duration(); d > 0 {
			st.Duration = d
		}
	}
	return st
}

// Progress returns the played fraction in [0, 1].
func (st Status) Progress() float64 {
	if st.Duration <= 0 {
		return 0
	}
	return min(max(float64(st.Position)/float64(st.Duration), 0), 1)
}

// Position returns the live element position, or 0 when remote.
func (s *Surface) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.elem == nil || s.loadedID == "" {
		return 0
	}
	return s.elem.Position()
}

// Volume returns the local volume level.
func (s *Surface) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}
