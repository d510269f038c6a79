package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/ui/popup"
)

// PopupHarness drives a popup.Popup with synthetic input and records every
// command it returns, including the one from Init.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p and runs its Init.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Popup returns the wrapped popup, as updated by the last message.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

// View renders the popup.
func (h *PopupHarness) View() string { return h.popup.View() }

// ViewContains reports whether some plain-text line of the view has substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return FindLine(StripANSI(h.View()), substr) != ""
}

// AssertViewContains is AssertContains applied to the current view.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// Send delivers msg and returns the command the popup produced.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	return h.record(cmd)
}

// SendKey types the runes of key.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey presses a non-rune key.
func (h *PopupHarness) SendSpecialKey(t tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: t})
}

func (h *PopupHarness) SendEnter() tea.Cmd  { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }
func (h *PopupHarness) SendUp() tea.Cmd     { return h.SendSpecialKey(tea.KeyUp) }
func (h *PopupHarness) SendDown() tea.Cmd   { return h.SendSpecialKey(tea.KeyDown) }

// Commands returns the recorded commands, oldest first.
func (h *PopupHarness) Commands() []tea.Cmd { return h.cmds }

// LastCommand returns the newest recorded command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets the recorded commands.
func (h *PopupHarness) ClearCommands() { h.cmds = nil }

// ExecuteCmd runs cmd synchronously; a nil cmd yields a nil message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
