// Package surface implements the logic every player view runs against the
// playback store: applying snapshots to a live media element, turning media
// events into store operations, and holding the local presentation state
// (volume, mute, seek, error) that is never shared.
package surface

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/chillibeats/chilli/internal/authority"
	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/media"
	"github.com/chillibeats/chilli/internal/playback"
)

// Kind distinguishes the full player from the mini player.
type Kind int

const (
	// KindFull owns audio output while mounted.
	KindFull Kind = iota
	// KindMini plays only when no full player is mounted and acts as a
	// remote control otherwise.
	KindMini
)

// String returns the kind name for logs.
func (k Kind) String() string {
	if k == KindFull {
		return "full"
	}
	return "mini"
}

// Surface adapts one player view to the store.
type Surface struct {
	kind       Kind
	store      playback.Service
	auth       *authority.Coordinator
	newElement media.Factory
	log        zerolog.Logger

	mu       sync.Mutex
	mounted  bool
	elem     media.Element // nil while acting as a remote control
	release  func()
	loadedID string
	atEnd    bool
	err      error
	volume   float64
	muted    bool
}

// Option configures a Surface.
type Option func(*Surface)

// WithLogger sets the surface logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Surface) {
		s.log = l.With().Str("component", "surface").Str("kind", s.kind.String()).Logger()
	}
}

// WithVolume sets the initial volume level.
func WithVolume(level float64) Option {
	return func(s *Surface) { s.volume = min(max(level, 0), 1) }
}

// New creates an unmounted surface.
func New(
	kind Kind,
	store playback.Service,
	auth *authority.Coordinator,
	factory media.Factory,
	opts ...Option,
) *Surface {
	s := &Surface{
		kind:       kind,
		store:      store,
		auth:       auth,
		newElement: factory,
		log:        zerolog.Nop(),
		volume:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kind returns the surface kind.
func (s *Surface) Kind() Kind { return s.kind }

// Mount attaches the surface. A full player acquires audio authority; a
// mini player creates its element only if no full player holds it.
func (s *Surface) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mounted {
		return
	}
	s.mounted = true
	if s.kind == KindFull {
		s.release = s.auth.AcquireFullPlayer()
	}
	s.log.Debug().Msg("mount")
	// Load only: playback starts on the first Sync, after any other
	// surface has had the chance to give up its element.
	s.applyLocked(s.store.Snapshot(), false)
}

// Unmount detaches the surface, closing its element and releasing authority.
// Safe to call more than once.
func (s *Surface) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted {
		return
	}
	s.mounted = false
	s.dropElementLocked()
	if s.release != nil {
		s.release()
		s.release = nil
	}
	s.log.Debug().Msg("unmount")
}

// IsMounted reports whether the surface is mounted.
func (s *Surface) IsMounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// IsLive reports whether the surface currently owns a media element.
func (s *Surface) IsLive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elem != nil
}

// Sync applies a store snapshot to the live element: load on track change,
// then play or pause to match IsPlaying. Playback never starts before the
// user has interacted.
func (s *Surface) Sync(snap playback.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked(snap)
}

func (s *Surface) syncLocked(snap playback.Snapshot) {
	s.applyLocked(snap, true)
}

func (s *Surface) applyLocked(snap playback.Snapshot, allowPlay bool) {
	if !s.mounted {
		return
	}
	s.reconcileLivenessLocked()
	if s.elem == nil {
		return
	}

	if snap.CurrentTrack == nil {
		if s.loadedID != "" {
			_ = s.elem.Pause()
			s.loadedID = ""
		}
		s.err = nil
		return
	}

	if snap.CurrentTrack.ID != s.loadedID {
		s.loadLocked(*snap.CurrentTrack)
	}
	if s.err != nil {
		return
	}

	wantPlay := snap.IsPlaying && s.auth.HasUserInteracted() && !s.atEnd
	playing := s.elem.State() == media.Playing
	if !allowPlay && !playing {
		return
	}
	switch {
	case wantPlay && !playing:
		if err := s.elem.Play(); err != nil {
			s.handleErrorLocked(err)
		}
	case !wantPlay && playing:
		_ = s.elem.Pause()
	}
}

// reconcileLivenessLocked creates or drops the element according to the
// surface kind and the authority flag.
func (s *Surface) reconcileLivenessLocked() {
	shouldBeLive := s.kind == KindFull || !s.auth.HasActiveFullPlayer()
	switch {
	case shouldBeLive && s.elem == nil:
		s.elem = s.newElement()
		s.elem.SetVolume(s.volume)
		s.elem.SetMuted(s.muted)
		s.loadedID = ""
		s.log.Debug().Msg("element created")
	case !shouldBeLive && s.elem != nil:
		s.dropElementLocked()
		s.log.Debug().Msg("element suppressed by full player")
	}
}

func (s *Surface) dropElementLocked() {
	if s.elem != nil {
		_ = s.elem.Close()
		s.elem = nil
	}
	s.loadedID = ""
	s.atEnd = false
}

func (s *Surface) loadLocked(track catalog.Track) {
	s.loadedID = track.ID
	s.atEnd = false
	s.err = nil
	if err := s.elem.Load(track); err != nil {
		s.handleErrorLocked(err)
	}
}

// HandleEnded reacts to the element reaching the end of the track: a
// looping single-track queue restarts in place, anything else advances
// the store.
func (s *Surface) HandleEnded() {
	snap := s.store.Snapshot()
	if snap.IsLooping && snap.Len() == 1 {
		s.mu.Lock()
		if s.elem != nil {
			s.atEnd = false
			_ = s.elem.SeekTo(0)
			if err := s.elem.Play(); err != nil {
				s.handleErrorLocked(err)
			}
		}
		s.mu.Unlock()
		s.log.Debug().Msg("ended: restart single looping track")
		return
	}

	s.store.PlayNext()
	next := s.store.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	// A clamped next leaves the same track loaded; it stays at its end
	// until the user acts.
	if next.CurrentTrack != nil && next.CurrentTrack.ID == s.loadedID {
		s.atEnd = true
	}
	s.log.Debug().Int("index", next.CurrentIndex).Msg("ended: advance")
	s.syncLocked(next)
}

// HandleError puts the surface into its local error state. The store is
// not touched.
func (s *Surface) HandleError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handleErrorLocked(err)
}

func (s *Surface) handleErrorLocked(err error) {
	if err == nil {
		return
	}
	s.err = err
	if s.elem != nil {
		_ = s.elem.Pause()
	}
	s.log.Warn().Err(err).Str("track", s.loadedID).Msg("media error")
}

// Err returns the local error, if any.
func (s *Surface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Retry clears the error state and reloads the same current track.
func (s *Surface) Retry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		return
	}
	s.err = nil
	s.loadedID = ""
	s.log.Debug().Msg("retry")
	s.syncLocked(s.store.Snapshot())
}

// Poll consumes a pending ended signal from the element, if any, and
// reports whether one was handled.
func (s *Surface) Poll() bool {
	s.mu.Lock()
	elem := s.elem
	s.mu.Unlock()
	if elem == nil {
		return false
	}
	select {
	case <-elem.Ended():
		s.HandleEnded()
		return true
	default:
		return false
	}
}

// Advance moves a clock-driven element forward by d and handles the end of
// the track. Elements without a clock are only polled.
func (s *Surface) Advance(d time.Duration) bool {
	s.mu.Lock()
	if c, ok := s.elem.(interface{ Advance(time.Duration) bool }); ok {
		c.Advance(d)
	}
	s.mu.Unlock()
	return s.Poll()
}
