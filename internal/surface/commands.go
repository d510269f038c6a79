package surface

import "time"

// User transport commands. Every command counts as a user gesture.

// TogglePlay flips the store play flag. A track parked at its end while
// the store still says playing restarts from the beginning instead.
func (s *Surface) TogglePlay() {
	s.auth.SetHasUserInteracted(true)
	s.mu.Lock()
	if s.atEnd && s.elem != nil && s.store.IsPlaying() {
		s.atEnd = false
		_ = s.elem.SeekTo(0)
		s.log.Debug().Msg("replay from end")
		s.syncLocked(s.store.Snapshot())
		s.mu.Unlock()
		return
	}
	s.atEnd = false
	s.mu.Unlock()
	s.store.TogglePlay()
	s.Sync(s.store.Snapshot())
}

// Next advances the store.
func (s *Surface) Next() {
	s.auth.SetHasUserInteracted(true)
	s.store.PlayNext()
	s.Sync(s.store.Snapshot())
}

// Previous steps the store back.
func (s *Surface) Previous() {
	s.auth.SetHasUserInteracted(true)
	s.store.PlayPrevious()
	s.Sync(s.store.Snapshot())
}

// Seek moves the live element to pos. Remote surfaces ignore it.
func (s *Surface) Seek(pos time.Duration) {
	s.auth.SetHasUserInteracted(true)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.elem == nil || s.err != nil {
		return
	}
	s.atEnd = false
	_ = s.elem.SeekTo(pos)
	s.syncLocked(s.store.Snapshot())
}

// SeekBy moves the live element by delta from the current position.
func (s *Surface) SeekBy(delta time.Duration) {
	s.mu.Lock()
	var pos time.Duration
	if s.elem != nil {
		pos = s.elem.Position() + delta
	}
	s.mu.Unlock()
	s.Seek(max(pos, 0))
}

// SetVolume sets the local volume level, clamped to [0, 1].
func (s *Surface) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = min(max(level, 0), 1)
	if s.elem != nil {
		s.elem.SetVolume(s.volume)
	}
}

// ToggleMute flips the local mute flag.
func (s *Surface) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	if s.elem != nil {
		s.elem.SetMuted(s.muted)
	}
}
