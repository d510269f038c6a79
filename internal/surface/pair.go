package surface

import (
	"time"

	"github.com/chillibeats/chilli/internal/playback"
)

// Pair routes commands to whichever of a mini and a full surface is in
// charge: the full player while it is mounted, the mini player otherwise.
// Safe for use from other goroutines (desktop remotes).
type Pair struct {
	Mini *Surface
	Full *Surface
}

// Active returns the surface that owns transport commands.
func (p Pair) Active() *Surface {
	if p.Full != nil && p.Full.IsMounted() {
		return p.Full
	}
	return p.Mini
}

// Sync applies snap to both surfaces, mini first so it can give up its
// element before the full player starts.
func (p Pair) Sync(snap playback.Snapshot) {
	if p.Mini != nil {
		p.Mini.Sync(snap)
	}
	if p.Full != nil {
		p.Full.Sync(snap)
	}
}

// Advance drives the live element of both surfaces.
func (p Pair) Advance(d time.Duration) {
	if p.Mini != nil {
		p.Mini.Advance(d)
	}
	if p.Full != nil {
		p.Full.Advance(d)
	}
}

func (p Pair) TogglePlay()                { p.Active().TogglePlay() }
func (p Pair) Next()                      { p.Active().Next() }
func (p Pair) Previous()                  { p.Active().Previous() }
func (p Pair) Seek(pos time.Duration)     { p.Active().Seek(pos) }
func (p Pair) SeekBy(delta time.Duration) { p.Active().SeekBy(delta) }
func (p Pair) SetVolume(level float64)    { p.Active().SetVolume(level) }

// Position returns the playback position of the active surface.
func (p Pair) Position() time.Duration {
	return p.Active().Position()
}

// Volume returns the volume level of the active surface.
func (p Pair) Volume() float64 {
	return p.Active().Volume()
}
