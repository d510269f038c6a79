package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/chillibeats/chilli/internal/errmsg"
	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/render"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

// fullRows is the content height of the full player block, borders included.
const fullRows = 10

// RenderFull renders the song page player: gradient title, credits, media
// details, progress and transport state.
func RenderFull(s State, width int) string {
	innerWidth := max(width-4, 0) // border + padding
	if innerWidth < ui.MinFullPlayerWidth {
		return renderMini(s, width)
	}
	st := styles.T().S()

	lines := make([]string, 0, fullRows-2)
	lines = append(lines,
		styles.Brand(render.TruncateEllipsis(s.Title, innerWidth)),
		st.Base.Render(render.TruncateEllipsis(s.Credits, innerWidth)),
		st.Muted.Render(render.TruncateEllipsis(details(s), innerWidth)),
		"",
	)

	if s.Err != nil {
		msg := icons.Error() + " " + errmsg.Format(errmsg.OpPlaybackStart, s.Err)
		lines = append(lines,
			st.Error.Render(render.TruncateEllipsis(msg, innerWidth)),
			st.Subtle.Render("r retry · n next"),
		)
	} else {
		lines = append(lines,
			RenderProgressBar(s.Position, s.Duration, innerWidth, s.Playing),
			"",
		)
	}
	lines = append(lines, render.Row(controls(s), volumeLabel(s), innerWidth))

	for len(lines) < fullRows-2 {
		lines = append(lines, "")
	}
	return styles.PanelStyle(true).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines[:fullRows-2], "\n"))
}

// details is "#genre · MP4 · 12 MB · added 3 months ago", skipping unknowns.
func details(s State) string {
	var parts []string
	if s.Genre != "" {
		parts = append(parts, icons.FormatGenre(s.Genre))
	}
	if s.Format != "" {
		parts = append(parts, strings.ToUpper(s.Format))
	}
	if s.FileSize > 0 {
		parts = append(parts, humanize.Bytes(uint64(s.FileSize)))
	}
	if !s.Added.IsZero() {
		parts = append(parts, "added "+humanize.Time(s.Added))
	}
	return strings.Join(parts, " · ")
}

// controls renders the transport row: previous, play/pause, next, modes
// and the playlist position.
func controls(s State) string {
	st := styles.T().S()
	on := lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	flag := func(icon string, active bool) string {
		if active {
			return on.Render(icon)
		}
		return st.Subtle.Render(icon)
	}

	parts := []string{
		st.Base.Render(icons.Previous()),
		on.Render(icons.PlayPause(s.Playing)),
		st.Base.Render(icons.Next()),
		"",
		flag(icons.Loop(), s.Looping),
		flag(icons.Shuffle(), s.Shuffling),
	}
	if pos := positionLabel(s); pos != "" {
		parts = append(parts, "", st.Muted.Render(pos))
	}
	return strings.Join(parts, "  ")
}

func volumeLabel(s State) string {
	return styles.T().S().Muted.Render(fmt.Sprintf("%s %3d%%", icons.Volume(s.Muted), int(s.Volume*100+0.5)))
}
