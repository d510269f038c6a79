// Package helpbindings is the "?" popup: the key bindings of the contexts
// that apply to the current screen, one section per context.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chillibeats/chilli/internal/keymap"
	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/popup"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var sectionTitles = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"list":     "Lists",
	"queue":    "Playlist Panel",
	"song":     "Song Page",
}

// chromeRows is what the popup needs besides the binding rows: title,
// footer, the blank lines around them, border and padding.
const chromeRows = 10

// Model holds the rendered rows and how far they are scrolled.
type Model struct {
	ui.Base
	lines    []string
	colWidth int // widest row, so scrolling never resizes the box
	scroll   int
}

func New() Model {
	return Model{}
}

// SetContexts renders the bindings of contexts, in keymap.Contexts order
// whatever the order given, and scrolls back to the top.
func (m *Model) SetContexts(contexts []string) {
	var bindings []keymap.Binding
	for _, ctx := range keymap.Contexts {
		if slices.Contains(contexts, ctx) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
	}
	m.lines = renderSections(bindings)
	m.colWidth = 0
	for _, l := range m.lines {
		m.colWidth = max(m.colWidth, lipgloss.Width(l))
	}
	m.scroll = 0
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scroll = min(m.scroll+1, m.maxScroll())
	case "k", "up":
		m.scroll = max(m.scroll-1, 0)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	start := min(m.scroll, len(m.lines))
	end := min(start+m.visibleRows(), len(m.lines))

	rows := make([]string, 0, end-start)
	for _, l := range m.lines[start:end] {
		rows = append(rows, l+strings.Repeat(" ", max(m.colWidth-lipgloss.Width(l), 0)))
	}

	s := styles.T().S()
	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(rows, "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m Model) visibleRows() int {
	return max(m.Height()-chromeRows, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleRows(), 0)
}

// renderSections lays bindings out as a titled section per context, with
// the keys column padded to the widest label.
func renderSections(bindings []keymap.Binding) []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyCol := 0
	for _, b := range bindings {
		keyCol = max(keyCol, lipgloss.Width(keyLabel(b)))
	}
	rule := t.S().Subtle.Render(strings.Repeat("─", keyCol+15))

	var lines []string
	for i, b := range bindings {
		if i == 0 || bindings[i-1].Context != b.Context {
			if i > 0 {
				lines = append(lines, "")
			}
			title := sectionTitles[b.Context]
			if title == "" {
				title = b.Context
			}
			lines = append(lines, titleStyle.Render(title), rule)
		}
		label := keyLabel(b)
		lines = append(lines, keyStyle.Render(label+strings.Repeat(" ", keyCol-lipgloss.Width(label)))+
			"  "+t.S().Base.Render(b.Description))
	}
	return lines
}

// keyLabel lists a binding's keys, naming the space bar once.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return strings.Join(keys, ", ")
}
