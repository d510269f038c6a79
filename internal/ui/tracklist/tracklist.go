// Package tracklist is the song list shown by the home, genre and artist
// pages and under the full player.
package tracklist

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/list"
)

// Model is a titled, scrollable list of tracks.
type Model struct {
	ui.Base
	title     string
	list      list.Model[catalog.Track]
	currentID string
}

// New creates an empty list with the given title.
func New(title string) Model {
	return Model{
		title: title,
		list:  list.New[catalog.Track](ui.ScrollMargin, ui.PanelOverhead),
	}
}

// Title returns the list heading.
func (m Model) Title() string {
	return m.title
}

// SetTracks replaces the listed tracks.
func (m *Model) SetTracks(tracks []catalog.Track) {
	m.list.SetItems(tracks)
}

// Tracks returns the listed tracks.
func (m Model) Tracks() []catalog.Track {
	return m.list.Items()
}

// Len returns the number of listed tracks.
func (m Model) Len() int {
	return m.list.Len()
}

// Selected returns the track under the cursor.
func (m Model) Selected() (catalog.Track, bool) {
	return m.list.Selected()
}

// SelectedIndex returns the cursor position.
func (m Model) SelectedIndex() int {
	return m.list.SelectedIndex()
}

// SetCurrent marks the track that is playing, by id. Empty clears the mark.
func (m *Model) SetCurrent(id string) {
	m.currentID = id
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
}

// SetFocused sets focus on the panel and its list.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.list.SetFocused(focused)
}

// Update handles key presses when focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	switch keyMsg.String() {
	case "o":
		if t, ok := m.list.Selected(); ok && t.ArtistID != "" {
			return m, func() tea.Msg {
				return ActionMsg(OpenArtist{ArtistID: t.ArtistID, Name: t.ArtistName})
			}
		}
		return m, nil
	case "P":
		if m.list.Len() == 0 {
			return m, nil
		}
		tracks := slices.Clone(m.list.Items())
		idx := m.list.SelectedIndex()
		return m, func() tea.Msg { return ActionMsg(PlayAll{Tracks: tracks, Index: idx}) }
	}

	res := m.list.Update(msg)
	if res.Index < 0 || res.Index >= m.list.Len() {
		return m, nil
	}
	track := m.list.Items()[res.Index]
	switch res.Action {
	case list.ActionEnter:
		return m, func() tea.Msg { return ActionMsg(OpenSong{Track: track}) }
	case list.ActionAdd:
		return m, func() tea.Msg { return ActionMsg(AddTrack{Track: track}) }
	}
	return m, nil
}
