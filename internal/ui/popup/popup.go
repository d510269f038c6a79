// Package popup renders modal popups centered over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chillibeats/chilli/internal/ui/styles"
)

// frame is the horizontal and vertical space taken by border plus padding.
const (
	frameWidth  = 6
	frameHeight = 4
	screenInset = 4
)

// SizeConfig controls popup dimensions. A zero WidthPct sizes the box to
// its content.
type SizeConfig struct {
	WidthPct  int
	HeightPct int
	MaxWidth  int // 0 means unlimited
}

var (
	SizeSearch = SizeConfig{WidthPct: 60, HeightPct: 50, MaxWidth: 90}
	SizeAuto   = SizeConfig{}
)

// RenderBordered wraps content in a rounded, padded border and centers the
// box on a screenW x screenH screen.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	w, h := calculateDimensions(content, screenW, screenH, size)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(1, 2).
		Width(w - 2).
		Height(h - 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		width = screenW * size.WidthPct / 100
		if size.MaxWidth > 0 {
			width = min(width, size.MaxWidth)
		}
		return width, screenH * size.HeightPct / 100
	}

	lines := strings.Split(content, "\n")
	width = blockWidth(lines) + frameWidth
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-screenInset)
	height = min(len(lines)+frameHeight, screenH-screenInset)
	return width, height
}

// Center places a pre-rendered block in the middle of the screen. Rows above
// the block are blank; rows below it are left to the caller.
func Center(block string, screenW, screenH int) string {
	lines := strings.Split(block, "\n")
	top := max((screenH-len(lines))/2, 0)
	left := strings.Repeat(" ", max((screenW-blockWidth(lines))/2, 0))

	var b strings.Builder
	blank := strings.Repeat(" ", screenW)
	for range top {
		b.WriteString(blank)
		b.WriteByte('\n')
	}
	for _, line := range lines {
		b.WriteString(left)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func blockWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Compose draws overlay on top of base. On each overlay row the span from
// the first to the last visible cell replaces the same columns of the base
// row; blank overlay rows leave the base untouched.
func Compose(base, overlay string, width, _ int) string {
	rows := strings.Split(base, "\n")
	for i, over := range strings.Split(overlay, "\n") {
		if i >= len(rows) {
			break
		}
		plain := ansi.Strip(over)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		end := ansi.StringWidth(trimmed)
		rows[i] = splice(rows[i], ansi.Cut(over, start, end), start, end, width)
	}
	return strings.Join(rows, "\n")
}

// splice replaces columns [start, end) of row with span, padding the row to
// width first. Wide runes cut at either edge become spaces so the columns
// after the span stay aligned.
func splice(row, span string, start, end, width int) string {
	if w := ansi.StringWidth(row); w < width {
		row += strings.Repeat(" ", width-w)
	}

	prefix := ansi.Cut(row, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}
	if end >= width {
		return prefix + span
	}

	suffix := ansi.Cut(row, end, width)
	want := width - end
	switch w := ansi.StringWidth(suffix); {
	case w > want:
		suffix = " " + ansi.Cut(suffix, w-want+1, w)
	case w < want:
		suffix = strings.Repeat(" ", want-w) + suffix
	}
	return prefix + span + suffix
}
