package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/render"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// progressLine renders a bar of exactly width cells.
func progressLine(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	var ratio float64
	if duration > 0 {
		ratio = min(max(float64(position)/float64(duration), 0), 1)
	}
	filled := min(int(float64(width)*ratio), width)
	t := styles.T()
	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat(filledBlock, filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderProgressBar renders the status icon, both times and a bar between them.
// Format: ▶  1:23  ━━━━━─────  4:56
func RenderProgressBar(position, duration time.Duration, width int, playing bool) string {
	status := icons.PlayPause(!playing)
	posStr := render.FormatDuration(position)
	durStr := render.FormatDuration(duration)

	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < ui.MinProgressBarWidth {
		// Too narrow for bar, just show times
		return status + "  " + posStr + " / " + durStr
	}
	return status + "  " + posStr + "  " + progressLine(position, duration, barWidth) + "  " + durStr
}
