// Package headerbar renders the single-line page header: the brand, the
// breadcrumb trail of visited pages, and a help hint.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/ui/render"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const (
	brand     = "chilli"
	helpHint  = "? help"
	separator = " › "
)

// Render returns the header bar for the given width. crumbs is the page
// trail from the root; the last crumb is the current page.
func Render(crumbs []string, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	s := t.S()
	left := styles.Brand(brand)
	right := s.Subtle.Render(helpHint)

	// Space left for the trail between brand and hint, with one gap each side.
	avail := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	trail := renderTrail(crumbs, avail)
	if trail != "" {
		left += "  " + trail
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderTrail drops leading crumbs until the trail fits, then truncates the
// current page name as a last resort.
func renderTrail(crumbs []string, width int) string {
	if len(crumbs) == 0 || width <= 0 {
		return ""
	}
	s := styles.T().S()
	sep := s.Subtle.Render(separator)
	active := lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)

	for start := 0; start < len(crumbs); start++ {
		parts := make([]string, 0, len(crumbs)-start+1)
		if start > 0 {
			parts = append(parts, s.Subtle.Render("…"))
		}
		for i, c := range crumbs[start:] {
			if start+i == len(crumbs)-1 {
				parts = append(parts, active.Render(c))
			} else {
				parts = append(parts, s.Muted.Render(c))
			}
		}
		if out := strings.Join(parts, sep); lipgloss.Width(out) <= width {
			return out
		}
	}
	return active.Render(render.TruncateEllipsis(crumbs[len(crumbs)-1], width))
}
