package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "list", "queue", "song"
}

// Bindings contains all key bindings for help generation and dispatch.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionToggleQueue, []string{"p"}, "Toggle playlist panel", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionBack, []string{"esc", "backspace"}, "Back", "global"},
	{ActionFullPlayer, []string{"f"}, "Open full player", "global"},
	{ActionRandomSong, []string{"R"}, "Random song", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"b", "pgup"}, "Previous track", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek forward", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute", "playback"},
	{ActionToggleLoop, []string{"L"}, "Toggle loop", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},
	{ActionRetry, []string{"r"}, "Retry after error", "playback"},

	// Lists
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "list"},
	{ActionSelect, []string{"enter"}, "Open song / artist", "list"},
	{ActionAdd, []string{"a"}, "Add to playlist", "list"},
	{ActionOpenArtist, []string{"o"}, "Go to artist", "list"},
	{ActionPlayAll, []string{"P"}, "Play all from here", "list"},

	// Queue panel
	{ActionSelect, []string{"enter"}, "Play track", "queue"},
	{ActionDelete, []string{"d", "delete"}, "Remove from playlist", "queue"},
	{ActionClear, []string{"c"}, "Clear playlist", "queue"},

	// Song page
	{ActionNextSong, []string{"]"}, "Next song in catalog", "song"},
	{ActionPrevSong, []string{"["}, "Previous song in catalog", "song"},
}

// Contexts lists binding contexts in help display order.
var Contexts = []string{"global", "playback", "list", "queue", "song"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
