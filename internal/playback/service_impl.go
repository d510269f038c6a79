// internal/playback/service_impl.go
package playback

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/playlist"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	queue     *playlist.PlayingQueue
	playing   bool
	loop      bool
	shuffle   bool
	version   uint64
	pick      playlist.PickFunc
	log       zerolog.Logger
	lastState Snapshot

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// Option configures a Service.
type Option func(*serviceImpl)

// WithRandom replaces the index picker used in shuffle mode.
// pick(n) must return a value in [0, n); anything else selects 0.
func WithRandom(pick func(n int) int) Option {
	return func(s *serviceImpl) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(s *serviceImpl) {
		s.log = l.With().Str("component", "playback").Logger()
	}
}

// New creates a new playback store with an empty queue.
func New(opts ...Option) Service {
	s := &serviceImpl{
		queue: playlist.NewQueue(),
		pick:  rand.IntN,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastState = s.snapshotLocked()
	return s
}

// SetQueue replaces the queue and selects startIndex (clamped). Pauses.
func (s *serviceImpl) SetQueue(tracks []catalog.Track, startIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Replace(tracks, startIndex)
	s.playing = false
	s.log.Debug().
		Int("tracks", len(tracks)).
		Int("start", startIndex).
		Int("index", s.queue.CurrentIndex()).
		Msg("set queue")
	s.publishLocked()
}

// SetCurrentTrack selects track, moving the position to it when queued. Pauses.
func (s *serviceImpl) SetCurrentTrack(track catalog.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Select(track)
	s.playing = false
	s.log.Debug().
		Str("track", track.ID).
		Bool("transient", s.queue.IsTransient()).
		Msg("set current track")
	s.publishLocked()
}

// TogglePlay flips the play flag.
func (s *serviceImpl) TogglePlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = !s.playing
	s.log.Debug().Bool("playing", s.playing).Msg("toggle play")
	s.publishLocked()
}

// PlayNext advances one step according to the current mode.
func (s *serviceImpl) PlayNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Advance(s.loop, s.shuffle, s.pick)
	s.log.Debug().Int("index", s.queue.CurrentIndex()).Msg("play next")
	s.publishLocked()
}

// PlayPrevious steps back according to the current mode.
func (s *serviceImpl) PlayPrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Retreat(s.loop, s.shuffle, s.pick)
	s.log.Debug().Int("index", s.queue.CurrentIndex()).Msg("play previous")
	s.publishLocked()
}

// JumpTo selects a queue position. Out-of-range indexes are ignored.
func (s *serviceImpl) JumpTo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.JumpTo(index)
	s.log.Debug().Int("requested", index).Int("index", s.queue.CurrentIndex()).Msg("jump")
	s.publishLocked()
}

// AddToPlaylist appends track unless its id is already queued.
func (s *serviceImpl) AddToPlaylist(track catalog.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := s.queue.AddUnique(track)
	s.log.Debug().Str("track", track.ID).Bool("added", added).Msg("add to playlist")
	s.publishLocked()
}

// RemoveFromPlaylist removes every entry with trackID.
func (s *serviceImpl) RemoveFromPlaylist(trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, removedCurrent := s.queue.Remove(trackID)
	if removedCurrent {
		s.playing = false
	}
	s.log.Debug().
		Str("track", trackID).
		Int("removed", removed).
		Bool("current", removedCurrent).
		Msg("remove from playlist")
	s.publishLocked()
}

// ClearPlaylist resets the store to its initial state.
func (s *serviceImpl) ClearPlaylist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Clear()
	s.playing = false
	s.loop = false
	s.shuffle = false
	s.log.Debug().Msg("clear playlist")
	s.publishLocked()
}

// ToggleLoop flips loop mode.
func (s *serviceImpl) ToggleLoop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop = !s.loop
	s.log.Debug().Bool("loop", s.loop).Msg("toggle loop")
	s.publishLocked()
}

// ToggleShuffle flips shuffle mode.
func (s *serviceImpl) ToggleShuffle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuffle = !s.shuffle
	s.log.Debug().Bool("shuffle", s.shuffle).Msg("toggle shuffle")
	s.publishLocked()
}

// Snapshot returns the current state.
func (s *serviceImpl) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastState
}

// CurrentTrack returns a copy of the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *catalog.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Current()
}

// IsPlaying returns the play flag.
func (s *serviceImpl) IsPlaying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playing
}

// Mode returns the loop and shuffle flags.
func (s *serviceImpl) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Mode{Loop: s.loop, Shuffle: s.shuffle}
}

// Len returns the queue length.
func (s *serviceImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Len()
}

// Subscribe creates a new event subscription. The current snapshot is
// delivered immediately.
func (s *serviceImpl) Subscribe() *Subscription {
	sub := newSubscription()
	s.mu.RLock()
	closed := s.closed
	snap := s.lastState
	s.mu.RUnlock()
	if closed {
		sub.close()
		return sub
	}

	s.subsMu.Lock()
	s.subs = append(s.subs, sub)
	s.subsMu.Unlock()
	sub.sendSnapshot(snap)
	return sub
}

// Unsubscribe detaches sub and closes its Done channel.
func (s *serviceImpl) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	s.subsMu.Lock()
	s.subs = slices.DeleteFunc(s.subs, func(x *Subscription) bool { return x == sub })
	s.subsMu.Unlock()
	sub.close()
}

// Close shuts down the service. Operations after Close still update
// state but notify nobody.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

func (s *serviceImpl) snapshotLocked() Snapshot {
	return Snapshot{
		Version:      s.version,
		CurrentTrack: s.queue.Current(),
		Playlist:     s.queue.Tracks(),
		CurrentIndex: s.queue.CurrentIndex(),
		IsPlaying:    s.playing,
		IsLooping:    s.loop,
		IsShuffling:  s.shuffle,
	}
}

// publishLocked records a new snapshot and fans out the events describing
// what changed since the previous one. Caller holds s.mu.
func (s *serviceImpl) publishLocked() {
	prev := s.lastState
	s.version++
	next := s.snapshotLocked()
	s.lastState = next

	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	if len(s.subs) == 0 {
		return
	}

	trackChanged := prev.CurrentIndex != next.CurrentIndex ||
		(prev.CurrentTrack == nil) != (next.CurrentTrack == nil) ||
		(prev.CurrentTrack != nil && !prev.CurrentTrack.Is(*next.CurrentTrack))
	queueChanged := !sameTracks(prev.Playlist, next.Playlist)
	modeChanged := prev.IsLooping != next.IsLooping || prev.IsShuffling != next.IsShuffling

	for _, sub := range s.subs {
		sub.sendSnapshot(next)
		if prev.IsPlaying != next.IsPlaying {
			sub.sendPlay(PlayChange{Playing: next.IsPlaying})
		}
		if trackChanged {
			sub.sendTrack(TrackChange{
				Previous:      prev.CurrentTrack,
				Current:       next.CurrentTrack,
				PreviousIndex: prev.CurrentIndex,
				Index:         next.CurrentIndex,
			})
		}
		if queueChanged {
			sub.sendQueue(QueueChange{Tracks: next.Playlist, Index: next.CurrentIndex})
		}
		if modeChanged {
			sub.sendMode(ModeChange{Mode: Mode{Loop: next.IsLooping, Shuffle: next.IsShuffling}})
		}
	}
}

func sameTracks(a, b []catalog.Track) bool {
	return slices.EqualFunc(a, b, func(x, y catalog.Track) bool { return x.Is(y) })
}
