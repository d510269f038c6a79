package queuepanel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/playback"
	"github.com/chillibeats/chilli/internal/ui/testutil"
)

func testTrack(id, title, artist string) catalog.Track {
	return catalog.Track{ID: id, Title: title, ArtistName: artist}
}

func snapshotOf(current int, tracks ...catalog.Track) playback.Snapshot {
	s := playback.Snapshot{Playlist: tracks, CurrentIndex: current}
	if current >= 0 && current < len(tracks) {
		t := tracks[current]
		s.CurrentTrack = &t
	}
	return s
}

func newTestPanel(snap playback.Snapshot) Model {
	icons.Init("none")
	m := New()
	m.SetSize(60, 10)
	m.SetSnapshot(snap)
	return m
}

func threeTracks() []catalog.Track {
	return []catalog.Track{
		testTrack("a", "Ella Baila Sola", "Eslabon Armado"),
		testTrack("b", "Tití Me Preguntó", "Bad Bunny"),
		testTrack("c", "La Bebe", "Yng Lvcas"),
	}
}

func TestView_EmptyPlaylist(t *testing.T) {
	m := newTestPanel(snapshotOf(-1))
	stripped := testutil.StripANSI(m.View())

	if !strings.Contains(stripped, "Playlist (empty)") {
		t.Errorf("empty playlist header missing, got: %s", stripped)
	}
	if !strings.Contains(stripped, "Press a") {
		t.Errorf("empty playlist hint missing, got: %s", stripped)
	}
}

func TestView_HeaderCountsPosition(t *testing.T) {
	tests := []struct {
		current int
		want    string
	}{
		{-1, "Playlist (0/3)"},
		{0, "Playlist (1/3)"},
		{2, "Playlist (3/3)"},
	}
	for _, tt := range tests {
		m := newTestPanel(snapshotOf(tt.current, threeTracks()...))
		if stripped := testutil.StripANSI(m.View()); !strings.Contains(stripped, tt.want) {
			t.Errorf("current=%d: header should contain %q, got: %s", tt.current, tt.want, stripped)
		}
	}
}

func TestView_TrackColumns(t *testing.T) {
	m := newTestPanel(snapshotOf(-1, threeTracks()...))
	stripped := testutil.StripANSI(m.View())

	for _, want := range []string{"Ella Baila Sola", "Eslabon Armado", "Bad Bunny", "La Bebe"} {
		if !strings.Contains(stripped, want) {
			t.Errorf("view should contain %q, got: %s", want, stripped)
		}
	}
}

func TestView_PlayingIndicator(t *testing.T) {
	m := newTestPanel(snapshotOf(1, threeTracks()...))
	line := testutil.FindLine(testutil.StripANSI(m.View()), "Bad Bunny")

	if !strings.Contains(line, playingSymbol) {
		t.Errorf("current track line should carry %q, got: %q", playingSymbol, line)
	}
}

func TestView_ZeroSize(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("zero-size panel should render nothing")
	}
}

func TestView_Dimensions(t *testing.T) {
	m := newTestPanel(snapshotOf(0, threeTracks()...))
	lines := strings.Split(m.View(), "\n")

	if len(lines) != 10 {
		t.Errorf("rendered %d lines, want 10", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestRenderModeIcons(t *testing.T) {
	tests := []struct {
		name      string
		loop      bool
		shuffle   bool
		want      []string
		wantEmpty bool
	}{
		{"off", false, false, nil, true},
		{"loop", true, false, []string{"[L]"}, false},
		{"shuffle", false, true, []string{"[S]"}, false},
		{"both", true, true, []string{"[L]", "[S]"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshotOf(0, threeTracks()...)
			snap.IsLooping = tt.loop
			snap.IsShuffling = tt.shuffle
			m := newTestPanel(snap)

			got := testutil.StripANSI(m.renderModeIcons())
			if tt.wantEmpty && got != "" {
				t.Errorf("renderModeIcons() = %q, want empty", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("renderModeIcons() = %q, want %q", got, w)
				}
			}
		})
	}
}

func TestTrackStyle_Combinations(t *testing.T) {
	m := newTestPanel(snapshotOf(1, threeTracks()...))
	m.SetFocused(true)

	// Cursor follows the current track on the first snapshot.
	if m.CursorPos() != 1 {
		t.Fatalf("cursor = %d, want 1", m.CursorPos())
	}
	played := m.trackStyle(0)
	current := m.trackStyle(1)
	upcoming := m.trackStyle(2)

	if played.GetForeground() == upcoming.GetForeground() {
		t.Error("played tracks should be styled differently from upcoming ones")
	}
	if current.GetBackground() == upcoming.GetBackground() {
		t.Error("cursor row should have a background")
	}
}
