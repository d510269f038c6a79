package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chillibeats/chilli/internal/catalog"
)

func song(id string, seconds float64) catalog.Track {
	return catalog.Track{ID: id, MediaURL: "https://cdn.example/" + id + ".mp4", DurationSeconds: seconds}
}

func TestPreview_LoadRequiresSource(t *testing.T) {
	p := NewPreview()
	err := p.Load(catalog.Track{ID: "silent"})
	require.ErrorIs(t, err, ErrNoSource)
	assert.Equal(t, Stopped, p.State())
	assert.ErrorIs(t, p.Play(), ErrNotLoaded)
}

func TestPreview_LoadStartsPausedAtZero(t *testing.T) {
	p := NewPreview()
	require.NoError(t, p.Load(song("a", 90)))
	assert.Equal(t, Paused, p.State())
	assert.Equal(t, time.Duration(0), p.Position())
	assert.Equal(t, 90*time.Second, p.Duration())
}

func TestPreview_UnknownDurationUsesFallback(t *testing.T) {
	p := NewPreview()
	require.NoError(t, p.Load(song("a", 0)))
	assert.Equal(t, fallbackDuration, p.Duration())
}

func TestPreview_AdvanceOnlyWhilePlaying(t *testing.T) {
	p := NewPreview()
	require.NoError(t, p.Load(song("a", 10)))

	assert.False(t, p.Advance(time.Second))
	assert.Equal(t, time.Duration(0), p.Position())

	require.NoError(t, p.Play())
	assert.False(t, p.Advance(4*time.Second))
	assert.Equal(t, 4*time.Second, p.Position())

	require.NoError(t, p.Pause())
	p.Advance(time.Second)
	assert.Equal(t, 4*time.Second, p.Position())
}

func TestPreview_AdvanceSignalsEnded(t *testing.T) {
	p := NewPreview()
	require.NoError(t, p.Load(song("a", 10)))
	require.NoError(t, p.Play())

	assert.True(t, p.Advance(15*time.Second))
	assert.Equal(t, 10*time.Second, p.Position())
	assert.Equal(t, Paused, p.State())

	select {
	case <-p.Ended():
	default:
		t.Fatal("Ended() not signalled")
	}

	// Playing again from the end restarts the track.
	require.NoError(t, p.Play())
	assert.Equal(t, time.Duration(0), p.Position())
}

func TestPreview_SeekClamps(t *testing.T) {
	p := NewPreview()
	require.NoError(t, p.Load(song("a", 10)))

	require.NoError(t, p.SeekTo(-time.Second))
	assert.Equal(t, time.Duration(0), p.Position())
	require.NoError(t, p.SeekTo(time.Hour))
	assert.Equal(t, 10*time.Second, p.Position())
}

func TestPreview_VolumeAndMute(t *testing.T) {
	p := NewPreview()
	p.SetVolume(1.7)
	assert.InDelta(t, 1.0, p.Volume(), 1e-9)
	p.SetVolume(-1)
	assert.InDelta(t, 0.0, p.Volume(), 1e-9)
	p.SetMuted(true)
	assert.True(t, p.Muted())
}

func TestPreview_Close(t *testing.T) {
	p := NewPreview()
	require.NoError(t, p.Load(song("a", 10)))
	require.NoError(t, p.Close())

	assert.Equal(t, Stopped, p.State())
	assert.ErrorIs(t, p.Load(song("b", 10)), ErrClosed)
	assert.ErrorIs(t, p.Play(), ErrClosed)
	assert.False(t, p.Advance(time.Second))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Stopped", Stopped.String())
	assert.Equal(t, "Paused", Paused.String())
	assert.Equal(t, "Playing", Playing.String())
	assert.Equal(t, "Unknown", State(42).String())
	assert.True(t, Paused.IsActive())
	assert.False(t, Stopped.IsActive())
}
