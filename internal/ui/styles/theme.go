// Package styles holds the chilli palette and the lipgloss styles built
// from it.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the palette. Primary and Secondary are the two ends of the brand
// gradient; the Fg colors go from most to least prominent.
type Theme struct {
	Primary, Secondary        lipgloss.Color
	FgBase, FgMuted, FgSubtle lipgloss.Color
	BgBase, BgCursor          lipgloss.Color
	Border, BorderFocus       lipgloss.Color
	Success, Error, Warning   lipgloss.Color

	styles *Styles
}

// Styles are the text styles every component draws with.
type Styles struct {
	Base, Muted, Subtle lipgloss.Style
	Title               lipgloss.Style
	Playing             lipgloss.Style // the current track
	Cursor              lipgloss.Style // selected row
	Accent              lipgloss.Style // genres and counts
	Success, Error      lipgloss.Style
	Warning             lipgloss.Style
}

var chilli = newTheme(Theme{
	Primary:     "#e63946", // chilli red
	Secondary:   "#f4a261", // roasted orange
	FgBase:      "#d0d0d0",
	FgMuted:     "#8a8a8a",
	FgSubtle:    "#5c5c5c",
	BgBase:      "#1a1a1a",
	BgCursor:    "#332222",
	Border:      "#585858",
	BorderFocus: "#e63946",
	Success:     "#42b883",
	Error:       "#ff5555",
	Warning:     "#f1a208",
})

// T returns the active theme.
func T() *Theme {
	return chilli
}

// S returns the styles built from t.
func (t *Theme) S() *Styles {
	return t.styles
}

func newTheme(t Theme) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	base := fg(t.FgBase)
	t.styles = &Styles{
		Base:    base,
		Muted:   fg(t.FgMuted),
		Subtle:  fg(t.FgSubtle),
		Title:   base.Bold(true),
		Playing: fg(t.Primary).Bold(true),
		Cursor:  base.Background(t.BgCursor),
		Accent:  fg(t.Secondary),
		Success: fg(t.Success),
		Error:   fg(t.Error),
		Warning: fg(t.Warning),
	}
	return &t
}
