package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for palette entries that are not #rrggbb, such as ANSI
// color numbers, which cannot be blended.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyGradient colors text from one end to the other, one grapheme at a time.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle(), from, to)
}

// Brand renders bold text in the theme's red-to-orange gradient, as used by
// the header logo and the full player title.
func Brand(text string) string {
	t := T()
	return gradient(text, lipgloss.NewStyle().Bold(true), t.Primary, t.Secondary)
}

func gradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range blend(len(clusters), from, to) {
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(clusters[i]))
	}
	return b.String()
}

// graphemes splits text into user-perceived characters so that accented
// letters and emoji take a single color.
func graphemes(text string) []string {
	var out []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// blend returns n colors from from to to, interpolated in HCL space.
func blend(n int, from, to lipgloss.Color) []colorful.Color {
	a, b := toColorful(from), toColorful(to)
	if n < 2 {
		return []colorful.Color{a}
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = a.BlendHcl(b, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return neutral
}
