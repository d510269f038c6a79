package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chillibeats/chilli/internal/ui/action"
	"github.com/chillibeats/chilli/internal/ui/testutil"
)

type clearTag struct{ songs int }

func showClear(t *testing.T) (*Model, *testutil.PopupHarness) {
	t.Helper()
	m := New()
	m.Show("Clear playlist?", "12 songs will be removed", clearTag{songs: 12}, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func resultOf(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	res, ok := msg.Action.(Result)
	require.True(t, ok, "got %T", msg.Action)
	return res
}

func TestAnswers(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{"Y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, false},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{"N", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h := showClear(t)

			res := resultOf(t, h.Send(tt.key))

			assert.Equal(t, tt.want, res.Confirmed)
			assert.Equal(t, clearTag{songs: 12}, res.Context, "context comes back either way")
			assert.False(t, m.Active(), "an answer closes the popup")
		})
	}
}

func TestOtherKeysWait(t *testing.T) {
	m, h := showClear(t)
	h.ClearCommands()

	h.SendKey("x")
	h.SendDown()
	h.Send(tea.WindowSizeMsg{Width: 10, Height: 10})

	assert.Empty(t, h.Commands())
	assert.True(t, m.Active())
}

func TestView(t *testing.T) {
	_, h := showClear(t)

	for _, want := range []string{"Clear playlist?", "12 songs will be removed", "Enter/Y: confirm", "Esc/N: cancel"} {
		assert.True(t, h.ViewContains(want), "view lacks %q", want)
	}
}

func TestInactive(t *testing.T) {
	m := New()
	h := testutil.NewPopupHarness(&m)

	assert.Nil(t, h.SendEnter())
	assert.Nil(t, h.SendKey("y"))
	assert.Empty(t, h.View())
}

func TestReset(t *testing.T) {
	m, _ := showClear(t)
	m.Reset()

	assert.False(t, m.Active())
	assert.Empty(t, m.View())
}
