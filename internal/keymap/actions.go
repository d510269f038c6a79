// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionToggleQueue Action = "toggle_queue"
	ActionSearch      Action = "search"
	ActionHelp        Action = "help"
	ActionBack        Action = "back"
	ActionFullPlayer  Action = "full_player" // open the song page for the current track
	ActionRandomSong  Action = "random_song"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"
	ActionToggleLoop    Action = "toggle_loop"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionRetry         Action = "retry"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// List actions
	ActionSelect     Action = "select"      // enter - open/play
	ActionAdd        Action = "add"         // a - add to playlist
	ActionOpenArtist Action = "open_artist" // o - artist of the selected song
	ActionPlayAll    Action = "play_all"    // P - replace the playlist with the list

	// Queue-specific actions
	ActionDelete Action = "delete" // d/delete - remove from playlist
	ActionClear  Action = "clear"  // c - clear playlist

	// Song page actions
	ActionNextSong Action = "next_song" // catalog order, not playlist order
	ActionPrevSong Action = "prev_song"
)
