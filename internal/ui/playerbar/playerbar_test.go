package playerbar

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/surface"
	"github.com/chillibeats/chilli/internal/ui/testutil"
)

func sampleStatus() surface.Status {
	return surface.Status{
		Track: &catalog.Track{
			ID:         "peso-pluma-ella-baila-sola",
			Title:      "Ella Baila Sola",
			ArtistName: "Eslabon Armado",
			Featuring:  []string{"Peso Pluma"},
			Genre:      "corridos tumbados",
			Format:     "mp4",
			FileSize:   12_400_000,
		},
		Index:    2,
		Len:      12,
		Playing:  true,
		CanSkip:  true,
		Live:     true,
		Position: 83 * time.Second,
		Duration: 165 * time.Second,
		Volume:   0.8,
	}
}

func TestNewState_EmptyWithoutTrack(t *testing.T) {
	s := NewState(surface.Status{Playing: true}, ModeMini)
	assert.True(t, s.Empty())
	assert.Empty(t, Render(s, 80))
}

func TestNewState_FromStatus(t *testing.T) {
	st := sampleStatus()
	st.Live = false
	s := NewState(st, ModeFull)

	assert.Equal(t, "Ella Baila Sola", s.Title)
	assert.Equal(t, "Eslabon Armado feat. Peso Pluma", s.Credits)
	assert.True(t, s.Remote)
	assert.Equal(t, ModeFull, s.Mode)
	assert.Equal(t, 2, s.Index)
}

func TestRenderMini_FitsWidth(t *testing.T) {
	icons.Init("none")
	for _, width := range []int{60, 80, 120} {
		out := Render(NewState(sampleStatus(), ModeMini), width)
		lines := testutil.SplitLines(out)
		assert.Len(t, lines, Height(ModeMini), "width %d", width)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d", width)
		}
	}
}

func TestRenderMini_Content(t *testing.T) {
	icons.Init("none")
	st := sampleStatus()
	st.Looping = true
	plain := testutil.StripANSI(Render(NewState(st, ModeMini), 120))

	for _, want := range []string{"Ella Baila Sola", "Peso Pluma", "3/12", "[L]", "1:23 / 2:45"} {
		assert.Contains(t, plain, want)
	}
	assert.NotContains(t, plain, "[S]")
}

func TestRenderMini_RemoteHidesProgress(t *testing.T) {
	icons.Init("none")
	st := sampleStatus()
	st.Live = false
	plain := testutil.StripANSI(Render(NewState(st, ModeMini), 100))

	assert.Contains(t, plain, "full player")
	assert.NotContains(t, plain, "1:23")
}

func TestRenderMini_ErrorShowsRetryHint(t *testing.T) {
	icons.Init("none")
	st := sampleStatus()
	st.Err = errors.New("no media source")
	plain := testutil.StripANSI(Render(NewState(st, ModeMini), 100))

	assert.Contains(t, plain, "r retry")
}

func TestRenderFull_Content(t *testing.T) {
	icons.Init("none")
	st := sampleStatus()
	st.Shuffling = true
	out := Render(NewState(st, ModeFull), 80)
	plain := testutil.StripANSI(out)

	assert.Len(t, testutil.SplitLines(out), Height(ModeFull))
	for _, want := range []string{
		"Ella Baila Sola",
		"Eslabon Armado feat. Peso Pluma",
		"#corridos tumbados",
		"MP4",
		"12 MB",
		"1:23",
		"2:45",
		"3/12",
		"80%",
	} {
		assert.Contains(t, plain, want)
	}
}

func TestRenderFull_Error(t *testing.T) {
	icons.Init("none")
	st := sampleStatus()
	st.Err = errors.New("no media source")
	plain := testutil.StripANSI(Render(NewState(st, ModeFull), 80))

	assert.Contains(t, plain, "Failed to start playback: no media source")
	assert.Contains(t, plain, "r retry")
	assert.NotContains(t, plain, "1:23")
}

func TestRenderFull_NarrowFallsBackToMini(t *testing.T) {
	icons.Init("none")
	out := Render(NewState(sampleStatus(), ModeFull), 30)
	assert.Len(t, testutil.SplitLines(out), Height(ModeMini))
}

func TestDetails_SkipsUnknownFields(t *testing.T) {
	icons.Init("none")
	assert.Equal(t, "#reggaeton", details(State{Genre: "reggaeton"}))
	assert.Empty(t, details(State{}))
}

func TestRenderProgressBar(t *testing.T) {
	icons.Init("none")
	bar := testutil.StripANSI(RenderProgressBar(30*time.Second, 60*time.Second, 40, true))
	assert.Equal(t, 40, lipgloss.Width(bar))
	assert.True(t, strings.HasPrefix(bar, ">  0:30"), bar)
	assert.True(t, strings.HasSuffix(bar, "1:00"), bar)

	narrow := testutil.StripANSI(RenderProgressBar(30*time.Second, 60*time.Second, 12, false))
	assert.Equal(t, "||  0:30 / 1:00", narrow)
}
