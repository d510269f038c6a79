package confirm

import (
	"github.com/chillibeats/chilli/internal/ui/action"
)

// Result is the answer to a question asked with Show.
type Result struct {
	Confirmed bool
	Context   any
}

func (Result) ActionType() string { return "confirm.result" }

// ActionMsg tags a with the confirm source.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
