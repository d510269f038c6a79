package tracklist

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

const (
	playingSymbol  = "▶"
	durationColumn = 6
)

// View renders the list panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	innerWidth := m.Width() - ui.BorderWidth
	listHeight := max(m.Height()-ui.PanelOverhead, 0)

	s := styles.T().S()
	header := s.Title.Render(render.TruncateAndPad(
		fmt.Sprintf("%s (%d)", icons.FormatSong(m.title), m.list.Len()), innerWidth))

	content := header + "\n" +
		s.Subtle.Render(render.Separator(innerWidth)) + "\n" +
		m.renderLines(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderLines(width, height int) string {
	lines := make([]string, 0, height)
	if m.list.Len() == 0 {
		for i := range height {
			if i == 0 {
				lines = append(lines, styles.T().S().Muted.Render(
					render.TruncateAndPad(" No songs", width)))
				continue
			}
			lines = append(lines, render.EmptyLine(width))
		}
		return strings.Join(lines, "\n")
	}

	start, end := m.list.VisibleRange()
	items := m.list.Items()
	for i := range height {
		idx := start + i
		if idx >= end {
			lines = append(lines, render.EmptyLine(width))
			continue
		}
		lines = append(lines, m.renderLine(items[idx], idx, width))
	}
	return strings.Join(lines, "\n")
}

// renderLine renders marker, title, artist and duration columns.
func (m Model) renderLine(t catalog.Track, idx, width int) string {
	prefix := "  "
	if m.currentID != "" && t.ID == m.currentID {
		prefix = playingSymbol + " "
	}

	dur := ""
	if t.DurationSeconds > 0 {
		dur = render.FormatDuration(t.Duration())
	}
	contentWidth := max(width-2-durationColumn, 0)
	titleWidth := contentWidth * 3 / 5
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(t.Title, titleWidth) +
		render.TruncateAndPad(t.Credits(), artistWidth) +
		lipgloss.NewStyle().Width(durationColumn).Align(lipgloss.Right).Render(dur)

	return m.lineStyle(t, idx).Render(line)
}

func (m Model) lineStyle(t catalog.Track, idx int) lipgloss.Style {
	th := styles.T()
	s := th.S()
	isCursor := m.IsFocused() && idx == m.list.SelectedIndex()
	isCurrent := m.currentID != "" && t.ID == m.currentID
	switch {
	case isCursor && isCurrent:
		return s.Playing.Background(th.BgCursor)
	case isCursor:
		return s.Cursor
	case isCurrent:
		return s.Playing
	default:
		return s.Base
	}
}
