package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGraphemes_KeepsCombinedCharacters(t *testing.T) {
	got := graphemes("Na\u0303o")
	assert.Equal(t, []string{"N", "a\u0303", "o"}, got)
}

func TestApplyGradient_PreservesText(t *testing.T) {
	for _, text := range []string{"", "x", "Ella Baila Sola", "Na\u0303o"} {
		out := ApplyGradient(text, lipgloss.Color("#e63946"), lipgloss.Color("#f4a261"))
		assert.Equal(t, text, ansi.Strip(out))
	}
	assert.Equal(t, "Chilli", ansi.Strip(Brand("Chilli")))
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(5, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"))
	assert.Len(t, colors, 5)
	assert.Equal(t, "#ff0000", colors[0].Hex())
	assert.Equal(t, "#0000ff", colors[4].Hex())

	assert.Len(t, blend(1, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff")), 1)
}

func TestToColorful_ANSIFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, neutral, toColorful(lipgloss.Color("240")))
	assert.Equal(t, "#e63946", toColorful(T().Primary).Hex())
}

func TestPanelStyle_FocusChangesBorder(t *testing.T) {
	assert.Equal(t, T().BorderFocus, PanelStyle(true).GetBorderTopForeground())
	assert.Equal(t, T().Border, PanelStyle(false).GetBorderTopForeground())
}
