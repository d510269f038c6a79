package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/playback"
)

// Transport is the player surface MPRIS commands are forwarded to.
// Commands arrive on the D-Bus goroutine, so implementations must be safe
// for concurrent use.
type Transport interface {
	TogglePlay()
	Next()
	Previous()
	Seek(pos time.Duration)
	SeekBy(delta time.Duration)
	SetVolume(level float64)
	Position() time.Duration
	Volume() float64
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Chilli", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"video/mp4"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// loop/shuffle extensions. State is read from the store; transport goes
// through the active surface so it counts as a user gesture.
type playerAdapter struct {
	store     playback.Service
	transport Transport
}

func (p *playerAdapter) Next() error {
	p.transport.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.transport.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.store.IsPlaying() {
		p.transport.TogglePlay()
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.transport.TogglePlay()
	return nil
}

// Stop pauses: the store has no stopped state.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	if !p.store.IsPlaying() {
		p.transport.TogglePlay()
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.transport.SeekBy(time.Duration(offset) * time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	track := p.store.CurrentTrack()
	// Stale requests for a track that is no longer current are ignored.
	if track == nil || trackID != formatTrackID(track.ID) {
		return nil
	}
	p.transport.Seek(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	snap := p.store.Snapshot()
	switch {
	case snap.CurrentTrack == nil:
		return types.PlaybackStatusStopped, nil
	case snap.IsPlaying:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.store.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}
	return metadataFor(*track), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.transport.Volume(), nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	p.transport.SetVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.transport.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.store.Snapshot().CanSkip(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.store.Snapshot().CanSkip(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.store.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// The store loops the whole queue; a single-track queue loops the track.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	snap := p.store.Snapshot()
	switch {
	case !snap.IsLooping:
		return types.LoopStatusNone, nil
	case snap.Len() == 1:
		return types.LoopStatusTrack, nil
	default:
		return types.LoopStatusPlaylist, nil
	}
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	want := status != types.LoopStatusNone
	if p.store.Mode().Loop != want {
		p.store.ToggleLoop()
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.store.Mode().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if p.store.Mode().Shuffle != shuffle {
		p.store.ToggleShuffle()
	}
	return nil
}

func metadataFor(track catalog.Track) types.Metadata {
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
		Length:  types.Microseconds(track.Duration().Microseconds()),
		Title:   track.Title,
		Artist:  append([]string{track.ArtistName}, track.Featuring...),
	}
	if track.ThumbnailURL != "" {
		meta.ArtUrl = track.ThumbnailURL
	}
	return meta
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
