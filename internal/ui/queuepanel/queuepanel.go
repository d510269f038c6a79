// Package queuepanel renders the playlist beside (or below) the current
// page and turns key presses into playlist actions.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/playback"
	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/cursor"
)

// Model represents the queue panel state. It renders the last snapshot it
// was given and never mutates the playlist itself.
type Model struct {
	ui.Base
	snap   playback.Snapshot
	cursor cursor.Cursor
}

// New creates a new queue panel model.
func New() Model {
	return Model{
		snap:   playback.Snapshot{CurrentIndex: -1},
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// SetSnapshot replaces the rendered playlist state. The cursor follows the
// current track when the track changed.
func (m *Model) SetSnapshot(snap playback.Snapshot) {
	trackChanged := snap.CurrentIndex != m.snap.CurrentIndex
	m.snap = snap
	m.cursor.ClampToBounds(snap.Len())
	if trackChanged {
		m.SyncCursor()
	}
}

// Tracks returns the rendered playlist.
func (m Model) Tracks() []catalog.Track {
	return m.snap.Playlist
}

// Update handles messages for the queue panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	n := m.snap.Len()
	if m.cursor.HandleKey(keyMsg.String(), n, m.listHeight()) {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		if idx := m.cursor.Pos(); idx < n {
			return m, func() tea.Msg { return ActionMsg(JumpToTrack{Index: idx}) }
		}
	case "d", "delete":
		if idx := m.cursor.Pos(); idx < n {
			id := m.snap.Playlist[idx].ID
			return m, func() tea.Msg { return ActionMsg(RemoveTrack{TrackID: id}) }
		}
	case "c":
		if n > 0 {
			return m, func() tea.Msg { return ActionMsg(ClearPlaylist{Count: n}) }
		}
	}
	return m, nil
}

func (m Model) listHeight() int {
	// border + header + separator
	return m.Height() - ui.PanelOverhead
}
