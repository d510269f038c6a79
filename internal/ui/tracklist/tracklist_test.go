package tracklist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/ui/action"
	"github.com/chillibeats/chilli/internal/ui/testutil"
)

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func sampleTracks() []catalog.Track {
	return []catalog.Track{
		{ID: "t1", Title: "Sunrise", ArtistName: "Ayla", ArtistID: "a1", DurationSeconds: 200},
		{ID: "t2", Title: "Noon", ArtistName: "Ben", ArtistID: "a2", DurationSeconds: 185},
		{ID: "t3", Title: "Dusk", ArtistName: "Cleo", ArtistID: "a3"},
	}
}

func newTestList() Model {
	m := New("Songs")
	m.SetTracks(sampleTracks())
	m.SetSize(60, 10)
	m.SetFocused(true)
	return m
}

func actionOf(t *testing.T, cmd tea.Cmd) action.Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok, "expected action.Msg")
	assert.Equal(t, "tracklist", msg.Source)
	return msg.Action
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := newTestList()
	m.SetFocused(false)

	_, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
}

func TestUpdate_EnterOpensSong(t *testing.T) {
	m := newTestList()
	m, _ = m.Update(key("j"))
	_, cmd := m.Update(key("enter"))

	open, ok := actionOf(t, cmd).(OpenSong)
	require.True(t, ok)
	assert.Equal(t, "t2", open.Track.ID)
}

func TestUpdate_AddTrack(t *testing.T) {
	m := newTestList()
	_, cmd := m.Update(key("a"))

	add, ok := actionOf(t, cmd).(AddTrack)
	require.True(t, ok)
	assert.Equal(t, "t1", add.Track.ID)
}

func TestUpdate_OpenArtist(t *testing.T) {
	m := newTestList()
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	_, cmd := m.Update(key("o"))

	open, ok := actionOf(t, cmd).(OpenArtist)
	require.True(t, ok)
	assert.Equal(t, "a3", open.ArtistID)
	assert.Equal(t, "Cleo", open.Name)
}

func TestUpdate_PlayAllStartsAtCursor(t *testing.T) {
	m := newTestList()
	m, _ = m.Update(key("j"))
	_, cmd := m.Update(key("P"))

	play, ok := actionOf(t, cmd).(PlayAll)
	require.True(t, ok)
	assert.Len(t, play.Tracks, 3)
	assert.Equal(t, 1, play.Index)
}

func TestUpdate_EmptyListEmitsNothing(t *testing.T) {
	m := New("Songs")
	m.SetSize(60, 10)
	m.SetFocused(true)

	for _, k := range []string{"enter", "a", "o", "P"} {
		_, cmd := m.Update(key(k))
		assert.Nil(t, cmd, "key %q", k)
	}
}

func TestView_ShowsTitleCountAndMarker(t *testing.T) {
	m := newTestList()
	m.SetCurrent("t2")

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Songs (3)")
	assert.Contains(t, view, "Sunrise")
	assert.Contains(t, view, "3:20")

	line := testutil.FindLine(view, "Noon")
	assert.True(t, strings.Contains(line, "▶"), "current track should carry the marker: %q", line)
}

func TestView_HeightMatchesPanel(t *testing.T) {
	m := newTestList()
	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 10)
}

func TestView_EmptyHint(t *testing.T) {
	m := New("More from Ayla")
	m.SetSize(50, 6)

	assert.Contains(t, testutil.StripANSI(m.View()), "No songs")
}
