package searchpopup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/search"
	"github.com/chillibeats/chilli/internal/ui/render"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	width := m.Width()

	lines := []string{
		m.input.View(),
		s.Subtle.Render(render.Separator(width)),
		s.Accent.Render(m.heading()),
	}

	// input, separator and heading
	visible := max(m.Height()-3, 1)
	start := max(m.cursor-visible+1, 0)
	end := min(start+visible, len(m.results))
	for i := start; i < end; i++ {
		lines = append(lines, m.resultLine(m.results[i], width, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) heading() string {
	switch {
	case m.Popular():
		return "Popular"
	case len(m.results) == 0:
		return "No matches"
	case m.results[0].Fuzzy:
		return "Did you mean"
	default:
		return "Results"
	}
}

// resultLine renders "> Title            subtitle" padded to width.
func (m *Model) resultLine(r search.Result, width int, selected bool) string {
	s := styles.T().S()
	prefix := "  "
	titleStyle := s.Base
	if selected {
		prefix = "> "
		titleStyle = s.Playing
	}

	title := icons.FormatKind(string(r.Kind), r.Title)
	subtitle := r.Subtitle
	avail := max(width-2, 0)

	subWidth := min(lipgloss.Width(subtitle), avail/2)
	subtitle = render.TruncateEllipsis(subtitle, subWidth)
	titleWidth := max(avail-lipgloss.Width(subtitle)-1, 0)
	title = render.TruncateAndPad(title, titleWidth)

	return titleStyle.Render(prefix+title) + " " + s.Subtle.Render(subtitle)
}
