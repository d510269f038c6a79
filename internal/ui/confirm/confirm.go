// Package confirm is the yes/no popup used before destructive actions such
// as clearing the playlist.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/popup"
	"github.com/chillibeats/chilli/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

const hint = "Enter/Y: confirm, Esc/N: cancel"

// Model asks one question at a time. The context given to Show comes back
// untouched in the Result so the caller knows which question was answered.
type Model struct {
	ui.Base
	title, message string
	context        any
	active         bool
}

func New() Model {
	return Model{}
}

// Show asks a new question, replacing any pending one.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title, m.message, m.context = title, message, context
	m.active = true
	m.SetSize(width, height)
}

// Reset drops the pending question without answering it.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

func (m Model) Active() bool {
	return m.active
}

func (m *Model) Init() tea.Cmd { return nil }

// Update answers on enter/y (yes) or esc/n (no) and ignores everything else.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}

	var yes bool
	switch key.String() {
	case "enter", "y", "Y":
		yes = true
	case "esc", "n", "N":
	default:
		return m, nil
	}

	res := Result{Confirmed: yes, Context: m.context}
	m.Reset()
	return m, func() tea.Msg { return ActionMsg(res) }
}

func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()
	return s.Title.Foreground(t.Primary).Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render(hint)
}
