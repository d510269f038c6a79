package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chillibeats/chilli/internal/ui/testutil"
)

func TestView_EmptyBeforeWindowSize(t *testing.T) {
	f := newFixture(t)
	f.model.Layout.SetSize(0, 0)
	assert.Empty(t, f.model.View())
}

func TestView_FillsWindowHeight(t *testing.T) {
	for _, size := range []tea.WindowSizeMsg{
		{Width: 120, Height: 40},
		{Width: 80, Height: 30},
		{Width: 60, Height: 12},
	} {
		f := newFixture(t)
		f.send(size)
		lines := strings.Split(f.model.View(), "\n")
		assert.Len(t, lines, size.Height, "size %dx%d", size.Width, size.Height)
	}
}

func TestView_HomeShowsHeaderListAndPlaylist(t *testing.T) {
	f := newFixture(t)
	view := testutil.StripANSI(f.model.View())

	assert.Contains(t, view, "chilli")
	assert.Contains(t, view, "Home")
	assert.Contains(t, view, "Songs (54)")
	assert.Contains(t, view, "Playlist")
}

func TestView_SongPageShowsFullPlayerAndRemoteMini(t *testing.T) {
	f := newFixture(t)
	f.model.OpenSongByID("maluma-mojando-asientos")

	view := testutil.StripANSI(f.model.View())
	assert.Contains(t, view, "Mojando Asientos")
	assert.Contains(t, view, "Maluma feat. Feid")
	assert.Contains(t, view, "More from Maluma")
	assert.Contains(t, view, "full player", "mini player defers to the full player")
}

func TestView_StatusLine(t *testing.T) {
	f := newFixture(t)
	f.key("a")

	lines := strings.Split(testutil.StripANSI(f.model.View()), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "Added")
}

func TestView_NarrowStacksPlaylist(t *testing.T) {
	f := newFixture(t)
	f.send(tea.WindowSizeMsg{Width: 80, Height: 40})

	view := testutil.StripANSI(f.model.View())
	songs := testutil.FindLine(view, "Songs (54)")
	assert.NotContains(t, songs, "Playlist", "narrow layout stacks the playlist below the page")
	assert.Contains(t, view, "Playlist")
}

func TestView_HelpOverlay(t *testing.T) {
	f := newFixture(t)
	f.key("?")
	assert.Contains(t, testutil.StripANSI(f.model.View()), "Help")
}

func TestJoinColumnsView_PadsLeftColumn(t *testing.T) {
	got := joinColumnsView("ab\na", "X\nY")
	assert.Equal(t, "abX\na Y", got)
}

func TestEnforceHeight(t *testing.T) {
	assert.Equal(t, "a\n\n", enforceHeight("a", 3))
	assert.Equal(t, "a\nb", enforceHeight("a\nb\nc", 2))
}
