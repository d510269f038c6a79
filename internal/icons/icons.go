// Package icons maps UI glyphs to the configured icon style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Artist   string
	Song     string
	Genre    string
	Playlist string
	Search   string
	Play     string
	Pause    string
	Next     string
	Previous string
	Shuffle  string
	Loop     string
	Volume   string
	Muted    string
	Error    string
}

var (
	nerdIcons = Icons{
		Artist:   " ", // nf-fa-user
		Song:     " ", // nf-fa-music
		Genre:    " ", // nf-fa-tag
		Playlist: "󰲸 ",      // nf-md-playlist_music
		Search:   " ", // nf-fa-search
		Play:     "",  // nf-fa-play
		Pause:    "",  // nf-fa-pause
		Next:     "",  // nf-fa-step_forward
		Previous: "",  // nf-fa-step_backward
		Shuffle:  "󰒟",       // nf-md-shuffle
		Loop:     "󰑖",       // nf-md-repeat
		Volume:   "",  // nf-fa-volume_up
		Muted:    "",  // nf-fa-volume_xmark
		Error:    "",  // nf-fa-warning
	}

	unicodeIcons = Icons{
		Artist:   "👤 ",
		Song:     "🎵 ",
		Genre:    "🏷 ",
		Playlist: "📋 ",
		Search:   "🔍 ",
		Play:     "▶",
		Pause:    "⏸",
		Next:     "⏭",
		Previous: "⏮",
		Shuffle:  "🔀",
		Loop:     "🔁",
		Volume:   "🔊",
		Muted:    "🔇",
		Error:    "⚠",
	}

	noneIcons = Icons{
		Artist:   "",
		Song:     "",
		Genre:    "#",
		Playlist: "",
		Search:   "/",
		Play:     ">",
		Pause:    "||",
		Next:     ">>|",
		Previous: "|<<",
		Shuffle:  "[S]",
		Loop:     "[L]",
		Volume:   "vol",
		Muted:    "mute",
		Error:    "!",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

func prefixed(icon, name string) string {
	if current == noneIcons {
		return name
	}
	return icon + name
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	return prefixed(current.Artist, name)
}

// FormatSong formats a song title with the appropriate icon.
func FormatSong(name string) string {
	return prefixed(current.Song, name)
}

// FormatGenre formats a genre name. The "none" style marks genres with a
// leading "#" so they stay distinguishable from artists.
func FormatGenre(name string) string {
	return current.Genre + name
}

// FormatPlaylist formats a playlist heading with the appropriate icon.
func FormatPlaylist(name string) string {
	return prefixed(current.Playlist, name)
}

// FormatKind formats a search result title by its kind
// ("artist", "song" or "genre").
func FormatKind(kind, name string) string {
	switch kind {
	case "artist":
		return FormatArtist(name)
	case "song":
		return FormatSong(name)
	case "genre":
		return FormatGenre(name)
	}
	return name
}

// Search returns the search prompt icon.
func Search() string { return current.Search }

// PlayPause returns the play icon when paused and the pause icon when playing.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// Next returns the next-track icon.
func Next() string { return current.Next }

// Previous returns the previous-track icon.
func Previous() string { return current.Previous }

// Shuffle returns the shuffle icon.
func Shuffle() string { return current.Shuffle }

// Loop returns the loop icon.
func Loop() string { return current.Loop }

// Volume returns the volume or muted icon.
func Volume(muted bool) string {
	if muted {
		return current.Muted
	}
	return current.Volume
}

// Error returns the error marker.
func Error() string { return current.Error }
