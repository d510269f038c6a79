package app

import (
	"fmt"
	"time"

	"github.com/chillibeats/chilli/internal/catalog"
)

// PlayAll replaces the playlist with tracks and starts at index.
func (m *Model) PlayAll(tracks []catalog.Track, index int) {
	m.Store.SetQueue(tracks, index)
	m.Player.TogglePlay()
	m.setStatus(fmt.Sprintf("Playing %d songs", len(tracks)))
}

// AddToPlaylist appends track unless it is already queued.
func (m *Model) AddToPlaylist(track catalog.Track) {
	for _, t := range m.Store.Snapshot().Playlist {
		if t.Is(track) {
			m.setStatus(fmt.Sprintf("%q is already in the playlist", track.Title))
			return
		}
	}
	m.Store.AddToPlaylist(track)
	m.setStatus(fmt.Sprintf("Added %q to the playlist", track.Title))
}

// JumpTo plays the playlist entry at index.
func (m *Model) JumpTo(index int) {
	m.Store.JumpTo(index)
	if !m.Store.IsPlaying() {
		m.Player.TogglePlay()
		return
	}
	m.Player.Sync(m.Store.Snapshot())
}

// RemoveFromPlaylist removes every entry of a track.
func (m *Model) RemoveFromPlaylist(trackID string) {
	m.Store.RemoveFromPlaylist(trackID)
}

// ClearPlaylist empties the playlist and resets the modes.
func (m *Model) ClearPlaylist() {
	m.Store.ClearPlaylist()
	m.setStatus("Playlist cleared")
}

// SeekBy moves the active surface by delta.
func (m *Model) SeekBy(delta time.Duration) {
	m.Player.SeekBy(delta)
}

// ChangeVolume moves the active surface volume by delta.
func (m *Model) ChangeVolume(delta float64) {
	m.Player.SetVolume(m.Player.Volume() + delta)
	m.setStatus(fmt.Sprintf("Volume %d%%", int(m.Player.Volume()*100+0.5)))
}

// ToggleMute mutes or unmutes the active surface.
func (m *Model) ToggleMute() {
	m.Player.Active().ToggleMute()
}

// Retry reloads the current track after a media error.
func (m *Model) Retry() {
	active := m.Player.Active()
	if active.Err() == nil {
		return
	}
	active.Retry()
}
