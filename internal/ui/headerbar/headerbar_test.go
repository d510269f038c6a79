package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/ui/testutil"
)

func TestRender_TooNarrow(t *testing.T) {
	if got := Render([]string{"Home"}, 10); got != "" {
		t.Errorf("Render() = %q, want empty for narrow width", got)
	}
}

func TestRender_FillsWidth(t *testing.T) {
	out := Render([]string{"Home", "Peso Pluma"}, 80)
	if w := lipgloss.Width(out); w != 80 {
		t.Errorf("width = %d, want 80", w)
	}
	plain := testutil.StripANSI(out)
	for _, want := range []string{"chilli", "Home › Peso Pluma", "? help"} {
		if !strings.Contains(plain, want) {
			t.Errorf("header %q missing %q", plain, want)
		}
	}
}

func TestRender_DropsLeadingCrumbs(t *testing.T) {
	crumbs := []string{"Home", "Bad Bunny", "Tití Me Preguntó", "Peso Pluma", "Ella Baila Sola"}
	plain := testutil.StripANSI(Render(crumbs, 50))

	if !strings.Contains(plain, "Ella Baila Sola") {
		t.Errorf("current page missing from %q", plain)
	}
	if strings.Contains(plain, "Home") {
		t.Errorf("leading crumb should be dropped in %q", plain)
	}
	if !strings.Contains(plain, "…") {
		t.Errorf("dropped crumbs should be marked in %q", plain)
	}
}

func TestRenderTrail_TruncatesCurrentPage(t *testing.T) {
	out := testutil.StripANSI(renderTrail([]string{"A very long song title that cannot fit"}, 10))
	if lipgloss.Width(out) > 10 {
		t.Errorf("trail %q wider than 10", out)
	}
	if !strings.HasSuffix(out, "…") {
		t.Errorf("trail %q should end with an ellipsis", out)
	}
}
