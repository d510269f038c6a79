package media

import (
	"sync"
	"time"

	"github.com/chillibeats/chilli/internal/catalog"
)

// fallbackDuration is used for tracks whose length the index does not know.
const fallbackDuration = 3 * time.Minute

// Preview is a silent element driven by an external clock. The terminal UI
// calls Advance on every tick; position moves only while playing.
type Preview struct {
	mu       sync.Mutex
	track    *catalog.Track
	state    State
	position time.Duration
	duration time.Duration
	volume   float64
	muted    bool
	closed   bool
	ended    chan struct{}
}

// NewPreview creates an unloaded preview element at full volume.
func NewPreview() *Preview {
	return &Preview{
		volume: 1,
		ended:  make(chan struct{}, 1),
	}
}

// Load prepares track at position 0, paused.
func (p *Preview) Load(track catalog.Track) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if track.MediaURL == "" {
		p.track = nil
		p.state = Stopped
		p.position = 0
		return ErrNoSource
	}
	t := track
	p.track = &t
	p.state = Paused
	p.position = 0
	p.duration = track.Duration()
	if p.duration <= 0 {
		p.duration = fallbackDuration
	}
	return nil
}

// Play starts or resumes the loaded track.
func (p *Preview) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case p.closed:
		return ErrClosed
	case p.track == nil:
		return ErrNotLoaded
	}
	if p.position >= p.duration {
		p.position = 0
	}
	p.state = Playing
	return nil
}

// Pause pauses playback. Pausing an unloaded element does nothing.
func (p *Preview) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if p.state == Playing {
		p.state = Paused
	}
	return nil
}

// SeekTo moves to pos, clamped to the track bounds.
func (p *Preview) SeekTo(pos time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case p.closed:
		return ErrClosed
	case p.track == nil:
		return ErrNotLoaded
	}
	p.position = min(max(pos, 0), p.duration)
	return nil
}

// SetVolume stores the level, clamped to [0, 1].
func (p *Preview) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clampVolume(level)
}

// Volume returns the stored level.
func (p *Preview) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetMuted sets the muted flag.
func (p *Preview) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports the muted flag.
func (p *Preview) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// State returns the element state.
func (p *Preview) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the playback position.
func (p *Preview) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// Duration returns the loaded track length, or 0 when nothing is loaded.
func (p *Preview) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == nil {
		return 0
	}
	return p.duration
}

// Ended returns the channel signalled when the track reaches its end.
func (p *Preview) Ended() <-chan struct{} {
	return p.ended
}

// Advance moves the clock forward by d while playing. When the end is
// reached the element pauses at the end, signals Ended and returns true.
func (p *Preview) Advance(d time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.state != Playing || d <= 0 {
		return false
	}
	p.position += d
	if p.position < p.duration {
		return false
	}
	p.position = p.duration
	p.state = Paused
	select {
	case p.ended <- struct{}{}:
	default:
	}
	return true
}

// Close stops the element. Further calls fail with ErrClosed.
func (p *Preview) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.track = nil
	p.state = Stopped
	p.position = 0
	return nil
}

// Verify Preview implements Element at compile time.
var _ Element = (*Preview)(nil)
