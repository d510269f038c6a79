// Package playerbar renders the player surfaces: the one-line mini player
// docked under every page, and the full player block of the song page.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/surface"
	"github.com/chillibeats/chilli/internal/ui/render"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeMini DisplayMode = iota // Single-line bar
	ModeFull                    // Song page block with metadata
)

// State holds everything needed to render a player surface.
type State struct {
	Title     string
	Credits   string
	Genre     string
	Format    string
	FileSize  int64
	Added     time.Time
	Index     int // 0-based playlist position, -1 when the track is not queued
	Total     int
	Playing   bool
	Looping   bool
	Shuffling bool
	Remote    bool // the surface has no element and drives another one
	Position  time.Duration
	Duration  time.Duration
	Volume    float64
	Muted     bool
	Err       error
	Mode      DisplayMode
}

// Height returns the height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeFull {
		return fullRows
	}
	return 3 // top border + content + bottom border
}

// NewState flattens a surface status for rendering. Returns an empty State
// when nothing is loaded.
func NewState(st surface.Status, mode DisplayMode) State {
	if st.Track == nil {
		return State{}
	}
	t := st.Track
	return State{
		Title:     t.Title,
		Credits:   t.Credits(),
		Genre:     t.Genre,
		Format:    t.Format,
		FileSize:  t.FileSize,
		Added:     t.CreatedAt,
		Index:     st.Index,
		Total:     st.Len,
		Playing:   st.Playing,
		Looping:   st.Looping,
		Shuffling: st.Shuffling,
		Remote:    !st.Live,
		Position:  st.Position,
		Duration:  st.Duration,
		Volume:    st.Volume,
		Muted:     st.Muted,
		Err:       st.Err,
		Mode:      mode,
	}
}

// Empty reports whether there is a track to show.
func (s State) Empty() bool {
	return s.Title == "" && s.Credits == ""
}

// Render returns the player surface for the given width.
// Returns an empty string when no track is loaded.
func Render(s State, width int) string {
	if s.Empty() {
		return ""
	}
	if s.Mode == ModeFull {
		return RenderFull(s, width)
	}
	return renderMini(s, width)
}

func renderMini(s State, width int) string {
	innerWidth := max(width-6, 0)
	st := styles.T().S()
	separator := "   "
	sepWidth := lipgloss.Width(separator)

	// Right side: either the error, the remote marker, or bar + time.
	var tail string
	switch {
	case s.Err != nil:
		tail = st.Error.Render(icons.Error() + " unavailable · r retry")
	case s.Remote:
		tail = st.Muted.Render(icons.PlayPause(!s.Playing) + " full player")
	default:
		tail = ""
	}

	modes := modeFlags(s)
	position := positionLabel(s)

	fixed := lipgloss.Width(tail) + lipgloss.Width(modes) + lipgloss.Width(position)
	timeStr := ""
	if tail == "" {
		timeStr = render.FormatDuration(s.Position) + " / " + render.FormatDuration(s.Duration)
		fixed += lipgloss.Width(icons.PlayPause(!s.Playing)) + 2 + lipgloss.Width(timeStr)
	}
	for _, part := range []string{modes, position} {
		if part != "" {
			fixed += sepWidth
		}
	}

	// Title and credits take what the fixed parts and a minimal bar leave.
	minBar := 10
	if tail != "" {
		minBar = 0
	}
	available := max(innerWidth-fixed-sepWidth*2-minBar, 10)
	titleWidth := lipgloss.Width(s.Title)
	creditsWidth := lipgloss.Width(s.Credits)

	var title, credits string
	var used int
	switch {
	case titleWidth+sepWidth+creditsWidth <= available:
		title, credits = s.Title, s.Credits
		used = titleWidth + sepWidth + creditsWidth
	case titleWidth+sepWidth < available && s.Credits != "":
		title = s.Title
		credits = render.TruncateEllipsis(s.Credits, available-titleWidth-sepWidth)
		used = titleWidth + sepWidth + lipgloss.Width(credits)
	default:
		title = render.TruncateEllipsis(s.Title, available)
		used = lipgloss.Width(title)
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(title))
	if credits != "" {
		b.WriteString(separator)
		b.WriteString(st.Muted.Render(credits))
	}
	if position != "" {
		b.WriteString(separator)
		b.WriteString(st.Subtle.Render(position))
	}
	if modes != "" {
		b.WriteString(separator)
		b.WriteString(st.Accent.Render(modes))
	}
	b.WriteString(separator)
	if tail != "" {
		b.WriteString(tail)
	} else {
		barWidth := max(innerWidth-used-fixed-sepWidth*2, 5)
		b.WriteString(icons.PlayPause(!s.Playing))
		b.WriteString("  ")
		b.WriteString(progressLine(s.Position, s.Duration, barWidth))
		b.WriteString(" ")
		b.WriteString(st.Muted.Render(timeStr))
	}

	return styles.PanelStyle(false).Padding(0, 2).Width(width - 2).Render(b.String())
}

// positionLabel is "3/12" for a queued track, empty otherwise.
func positionLabel(s State) string {
	if s.Index < 0 || s.Total == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", s.Index+1, s.Total)
}

// modeFlags lists the active loop and shuffle icons.
func modeFlags(s State) string {
	var flags []string
	if s.Looping {
		flags = append(flags, icons.Loop())
	}
	if s.Shuffling {
		flags = append(flags, icons.Shuffle())
	}
	return strings.Join(flags, " ")
}
