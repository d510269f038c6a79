// Package list provides a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/ui"
	"github.com/chillibeats/chilli/internal/ui/cursor"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone   Action = iota
	ActionEnter         // Enter key pressed
	ActionAdd           // a pressed
	ActionDelete        // d or delete key
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // Which item index the action applies to (-1 if none)
}

// Model is a generic scrollable list component.
// It handles navigation keys, returning actions for the parent to handle.
// The parent is responsible for rendering using VisibleRange().
type Model[T any] struct {
	ui.Base
	items    []T
	cursor   cursor.Cursor
	overhead int
}

// New creates a new list with the given scroll margin. overhead is the
// number of rows of the component height not used by items.
func New[T any](margin, overhead int) Model[T] {
	return Model[T]{
		cursor:   cursor.New(margin),
		overhead: overhead,
	}
}

// SetItems replaces all items and clamps cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the currently selected item and true, or zero value and false if empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Select moves the cursor to index when valid.
func (m *Model[T]) Select(index int) {
	m.cursor.Follow(index, len(m.items), m.listHeight())
}

// Reset moves the cursor back to the first item.
func (m *Model[T]) Reset() {
	m.cursor.Reset()
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.listHeight())
}

func (m Model[T]) listHeight() int {
	return max(m.ListHeight(m.overhead), 1)
}

// Update handles tea.Msg and returns the action that occurred.
func (m *Model[T]) Update(msg tea.Msg) Result {
	if !m.IsFocused() {
		return Result{Index: -1}
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return Result{Index: -1}
	}

	key := keyMsg.String()
	if m.cursor.HandleKey(key, len(m.items), m.listHeight()) {
		return Result{Index: -1}
	}
	if len(m.items) == 0 {
		return Result{Index: -1}
	}
	switch key {
	case "enter":
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	case "a":
		return Result{Action: ActionAdd, Index: m.cursor.Pos()}
	case "d", "delete":
		return Result{Action: ActionDelete, Index: m.cursor.Pos()}
	}
	return Result{Index: -1}
}
