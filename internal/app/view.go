package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/ui/headerbar"
	"github.com/chillibeats/chilli/internal/ui/playerbar"
	"github.com/chillibeats/chilli/internal/ui/render"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

// View renders the UI.
func (m Model) View() string {
	width, height := m.Layout.Width(), m.Layout.Height()
	if width == 0 || height == 0 {
		return ""
	}

	header := headerbar.Render(m.Nav.Crumbs(), width)
	content := m.renderContent()
	mini := enforceHeight(
		playerbar.Render(playerbar.NewState(m.Player.Mini.Status(m.Snapshot), playerbar.ModeMini), width),
		playerbar.Height(playerbar.ModeMini))
	status := m.renderStatus(width)

	view := header + "\n" + content + "\n" + mini + "\n" + status
	view = m.Popups.RenderOverlay(enforceHeight(view, height))
	return enforceHeight(view, height)
}

// renderContent lays the page and the playlist panel side by side, or
// stacked in narrow mode.
func (m Model) renderContent() string {
	pageView := enforceHeight(m.renderPage(), m.Layout.PageHeight())
	if !m.Layout.IsQueueVisible() {
		return pageView
	}
	queueView := m.Layout.QueuePanel().View()
	if m.Layout.IsNarrowMode() {
		return pageView + "\n" + queueView
	}
	return joinColumnsView(pageView, queueView)
}

// renderPage renders the visible page. The song page puts the full player
// above the "more from this artist" list.
func (m Model) renderPage() string {
	page := m.Nav.Current()
	if page.Kind != PageSong {
		return page.List.View()
	}

	width := m.Layout.PageWidth()
	st := playerbar.NewState(m.Player.Full.Status(m.Snapshot), playerbar.ModeFull)
	full := enforceHeight(playerbar.Render(st, width), playerbar.Height(playerbar.ModeFull))
	if page.List.Height() == 0 {
		return full
	}
	return full + "\n" + page.List.View()
}

// renderStatus renders the one-line status message.
func (m Model) renderStatus(width int) string {
	if m.StatusMsg == "" {
		return render.EmptyLine(width)
	}
	s := styles.T().S()
	style := s.Muted
	if m.StatusErr {
		style = s.Error
	}
	return style.Render(render.TruncateAndPad(" "+m.StatusMsg, width))
}

// resizePages sizes the playlist panel and every page list for the
// current window.
func (m *Model) resizePages() {
	m.Layout.ResizeQueue()
	width, height := m.Layout.PageWidth(), m.Layout.PageHeight()
	for _, p := range m.Nav.Pages() {
		if p.Kind != PageSong {
			p.List.SetSize(width, height)
			continue
		}
		listHeight := height - playerbar.Height(playerbar.ModeFull)
		if listHeight <= minListHeight {
			listHeight = 0
		}
		p.List.SetSize(width, listHeight)
	}
}

// minListHeight is the smallest list worth showing under the full player.
const minListHeight = 4

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := splitLines(view)
	currentHeight := len(lines)

	if currentHeight == targetHeight {
		return view
	}

	if currentHeight < targetHeight {
		for i := currentHeight; i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}

// splitLines splits a string into lines without using strings.Split.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// joinColumnsView joins two column views side by side, padding the left
// column so the right one lines up.
func joinColumnsView(left, right string) string {
	leftLines := splitLines(left)
	rightLines := splitLines(right)

	leftWidth := 0
	for _, l := range leftLines {
		leftWidth = max(leftWidth, lipgloss.Width(l))
	}

	lineCount := max(len(leftLines), len(rightLines))

	var sb strings.Builder
	for i := range lineCount {
		l := ""
		if i < len(leftLines) {
			l = leftLines[i]
		}
		sb.WriteString(l)
		if pad := leftWidth - lipgloss.Width(l); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		if i < len(rightLines) {
			sb.WriteString(rightLines[i])
		}
		if i < lineCount-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
