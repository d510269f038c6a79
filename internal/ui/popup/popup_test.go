package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCenter(t *testing.T) {
	out := Center("ab\ncd", 10, 6)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// 2 padding rows, then the 2 content rows shifted by 4 columns.
	assert.Len(t, lines, 4)
	assert.Equal(t, "    ab", lines[2])
	assert.Equal(t, "    cd", lines[3])
}

func TestRenderBordered_AutoFitsContent(t *testing.T) {
	out := ansi.Strip(RenderBordered("Clear playlist?", 80, 24, SizeAuto))
	assert.Contains(t, out, "Clear playlist?")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
}

func TestCalculateDimensions(t *testing.T) {
	w, h := calculateDimensions("x", 200, 50, SizeSearch)
	assert.Equal(t, 90, w, "capped by MaxWidth")
	assert.Equal(t, 25, h)

	w, h = calculateDimensions("short", 80, 24, SizeAuto)
	assert.Equal(t, 11, w)
	assert.Equal(t, 5, h)

	w, _ = calculateDimensions(strings.Repeat("x", 200), 80, 24, SizeAuto)
	assert.Equal(t, 76, w, "limited by the screen")
}

func TestCompose_OverlaysVisibleCells(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	overlay := "\n   XYZ\n"

	got := Compose(base, overlay, 10, 3)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "aaaaaaaaaa", lines[0])
	assert.Equal(t, "bbbXYZbbbb", ansi.Strip(lines[1]))
	assert.Equal(t, "cccccccccc", lines[2])
}
