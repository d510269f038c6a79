package tracklist

import (
	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/ui/action"
)

// OpenSong requests the song page for a track.
type OpenSong struct {
	Track catalog.Track
}

// ActionType implements action.Action.
func (a OpenSong) ActionType() string { return "tracklist.open_song" }

// AddTrack requests appending a track to the playlist.
type AddTrack struct {
	Track catalog.Track
}

// ActionType implements action.Action.
func (a AddTrack) ActionType() string { return "tracklist.add_track" }

// OpenArtist requests the artist page of the selected track.
type OpenArtist struct {
	ArtistID string
	Name     string
}

// ActionType implements action.Action.
func (a OpenArtist) ActionType() string { return "tracklist.open_artist" }

// PlayAll requests replacing the playlist with the whole list, starting at Index.
type PlayAll struct {
	Tracks []catalog.Track
	Index  int
}

// ActionType implements action.Action.
func (a PlayAll) ActionType() string { return "tracklist.play_all" }

// ActionMsg creates an action.Msg for a tracklist action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "tracklist", Action: a}
}
