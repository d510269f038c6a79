package queuepanel

import (
	"github.com/chillibeats/chilli/internal/ui/action"
)

// JumpToTrack requests playback to jump to a playlist position.
type JumpToTrack struct {
	Index int
}

// ActionType implements action.Action.
func (a JumpToTrack) ActionType() string { return "queuepanel.jump_to_track" }

// RemoveTrack requests removing every entry of a track from the playlist.
type RemoveTrack struct {
	TrackID string
}

// ActionType implements action.Action.
func (a RemoveTrack) ActionType() string { return "queuepanel.remove_track" }

// ClearPlaylist requests emptying the playlist. The app confirms first.
type ClearPlaylist struct {
	Count int
}

// ActionType implements action.Action.
func (a ClearPlaylist) ActionType() string { return "queuepanel.clear_playlist" }

// ActionMsg creates an action.Msg for a queuepanel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "queuepanel", Action: a}
}
