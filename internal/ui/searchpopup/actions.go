package searchpopup

import (
	"github.com/chillibeats/chilli/internal/search"
	"github.com/chillibeats/chilli/internal/ui/action"
)

// Selected is emitted when the user picks a result.
type Selected struct {
	Result search.Result
}

// ActionType implements action.Action.
func (a Selected) ActionType() string { return "searchpopup.selected" }

// Canceled is emitted when the user closes the popup without a pick.
type Canceled struct{}

// ActionType implements action.Action.
func (a Canceled) ActionType() string { return "searchpopup.canceled" }

// ActionMsg creates an action.Msg for a searchpopup action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "searchpopup", Action: a}
}
