// Package searchpopup is the search overlay: a text input over ranked
// catalog results, showing the popular picks while the query is empty.
package searchpopup

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/icons"
	"github.com/chillibeats/chilli/internal/search"
	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Searcher ranks catalog entries for a query.
type Searcher interface {
	Search(query string) []search.Result
	Popular() []search.Result
}

// Model holds the search popup state.
type Model struct {
	ui.Base
	input   textinput.Model
	engine  Searcher
	results []search.Result
	cursor  int
}

// New creates a focused search popup showing the popular picks.
func New(engine Searcher) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search artists, songs, genres..."
	ti.Prompt = promptFor(icons.Search())
	ti.CharLimit = 100
	ti.Focus()

	m := &Model{input: ti, engine: engine}
	m.refresh()
	return m
}

func promptFor(icon string) string {
	if strings.HasSuffix(icon, " ") {
		return icon
	}
	return icon + " "
}

// Query returns the current input text.
func (m *Model) Query() string {
	return m.input.Value()
}

// Results returns the displayed results.
func (m *Model) Results() []search.Result {
	return m.results
}

// Popular reports whether the popular picks are shown instead of matches.
func (m *Model) Popular() bool {
	return strings.TrimSpace(m.input.Value()) == ""
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return ActionMsg(Canceled{}) }
	case "enter":
		if m.cursor < len(m.results) {
			r := m.results[m.cursor]
			return m, func() tea.Msg { return ActionMsg(Selected{Result: r}) }
		}
		return m, nil
	case "up", "ctrl+p":
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case "down", "ctrl+n", "tab":
		m.cursor = max(min(m.cursor+1, len(m.results)-1), 0)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh recomputes the results for the current query and resets the cursor.
func (m *Model) refresh() {
	m.cursor = 0
	if m.engine == nil {
		m.results = nil
		return
	}
	if m.Popular() {
		m.results = m.engine.Popular()
		return
	}
	m.results = m.engine.Search(m.input.Value())
}
