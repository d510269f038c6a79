package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/render"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

const playingSymbol = "▶" // ▶

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderWidth
	listHeight := m.listHeight()

	content := m.renderHeader(innerWidth) + "\n" +
		styles.T().S().Subtle.Render(render.Separator(innerWidth)) + "\n" +
		m.renderTrackList(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders "Playlist (3/12)" with mode icons on the right.
func (m Model) renderHeader(innerWidth int) string {
	t := styles.T()
	title := fmt.Sprintf("%s (%d/%d)", icons.FormatPlaylist("Playlist"), m.snap.CurrentIndex+1, m.snap.Len())
	if m.snap.Len() == 0 {
		title = icons.FormatPlaylist("Playlist") + " (empty)"
	}

	modes := m.renderModeIcons()
	left := render.TruncateAndPad(title, max(innerWidth-lipgloss.Width(modes), 0))
	return t.S().Title.Render(left) + modes
}

// renderModeIcons returns the active loop/shuffle icons followed by a space.
func (m Model) renderModeIcons() string {
	var parts []string
	if m.snap.IsShuffling {
		parts = append(parts, icons.Shuffle())
	}
	if m.snap.IsLooping {
		parts = append(parts, icons.Loop())
	}
	if len(parts) == 0 {
		return ""
	}
	return styles.T().S().Accent.Render(strings.Join(parts, "  ")) + " "
}

// renderTrackList renders the visible window of tracks, padded to listHeight.
func (m Model) renderTrackList(innerWidth, listHeight int) string {
	if m.snap.Len() == 0 {
		lines := make([]string, 0, max(listHeight, 0))
		for i := range max(listHeight, 0) {
			if i == 0 {
				lines = append(lines, styles.T().S().Muted.Render(
					render.TruncateAndPad(" Press a on a song to add it", innerWidth)))
				continue
			}
			lines = append(lines, render.EmptyLine(innerWidth))
		}
		return strings.Join(lines, "\n")
	}

	lines := make([]string, 0, max(listHeight, 0))
	for i := range max(listHeight, 0) {
		idx := i + m.cursor.Offset()
		if idx >= m.snap.Len() {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderTrackLine(m.snap.Playlist[idx], idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders one track: marker, title column, artist column.
func (m Model) renderTrackLine(track catalog.Track, idx, width int) string {
	prefix := "  "
	if idx == m.snap.CurrentIndex {
		prefix = playingSymbol + " "
	}

	contentWidth := max(width-2, 0)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(track.Title, titleWidth) +
		render.TruncateAndPad(track.ArtistName, artistWidth)

	return m.trackStyle(idx).Render(line)
}

// trackStyle returns the style for a track based on cursor and play state.
func (m Model) trackStyle(idx int) lipgloss.Style {
	t := styles.T()
	s := t.S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isCurrent := idx == m.snap.CurrentIndex
	isPlayed := m.snap.CurrentIndex >= 0 && idx < m.snap.CurrentIndex

	switch {
	case isCursor && isCurrent:
		return s.Playing.Background(t.BgCursor)
	case isCursor && isPlayed:
		return s.Subtle.Background(t.BgCursor)
	case isCursor:
		return s.Cursor
	case isCurrent:
		return s.Playing
	case isPlayed:
		return s.Subtle
	default:
		return s.Base
	}
}
