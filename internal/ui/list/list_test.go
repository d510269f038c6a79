package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newList(items ...string) Model[string] {
	m := New[string](1, 2)
	m.SetSize(40, 6)
	m.SetFocused(true)
	m.SetItems(items)
	return m
}

func TestUpdate_NavigationAndActions(t *testing.T) {
	m := newList("tusa", "provenza", "bichota")

	assert.Equal(t, Result{Index: -1}, m.Update(key("down")))
	assert.Equal(t, 1, m.SelectedIndex())

	assert.Equal(t, Result{Action: ActionEnter, Index: 1}, m.Update(key("enter")))
	assert.Equal(t, Result{Action: ActionAdd, Index: 1}, m.Update(key("a")))
	assert.Equal(t, Result{Action: ActionDelete, Index: 1}, m.Update(key("d")))

	sel, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "provenza", sel)
}

func TestUpdate_IgnoredWhenUnfocusedOrEmpty(t *testing.T) {
	m := newList("tusa")
	m.SetFocused(false)
	assert.Equal(t, Result{Index: -1}, m.Update(key("enter")))

	empty := newList()
	assert.Equal(t, Result{Index: -1}, empty.Update(key("enter")))
	_, ok := empty.Selected()
	assert.False(t, ok)
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := newList("a", "b", "c", "d")
	m.Select(3)
	m.SetItems([]string{"a", "b"})
	assert.Equal(t, 1, m.SelectedIndex())
}

func TestVisibleRange_UsesOverhead(t *testing.T) {
	m := newList("a", "b", "c", "d", "e", "f", "g")
	start, end := m.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end, "height 6 minus overhead 2")

	m.Select(6)
	start, end = m.VisibleRange()
	assert.Equal(t, 3, start)
	assert.Equal(t, 7, end)
}
