//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}
	Init("none")
}

func TestFormat_NoneStyleLeavesNamesBare(t *testing.T) {
	Init("none")
	defer Init("none")

	if got := FormatArtist("Bad Bunny"); got != "Bad Bunny" {
		t.Errorf("FormatArtist() = %q, want bare name", got)
	}
	if got := FormatSong("Fina"); got != "Fina" {
		t.Errorf("FormatSong() = %q, want bare name", got)
	}
	if got := FormatGenre("Reggaeton"); got != "#Reggaeton" {
		t.Errorf("FormatGenre() = %q, want #Reggaeton", got)
	}
}

func TestFormat_NerdStylePrefixes(t *testing.T) {
	Init("nerd")
	defer Init("none")

	tests := []struct {
		name string
		got  string
		icon string
	}{
		{"artist", FormatArtist("Karol G"), nerdIcons.Artist},
		{"song", FormatSong("Tusa"), nerdIcons.Song},
		{"genre", FormatGenre("Urbano"), nerdIcons.Genre},
		{"playlist", FormatPlaylist("Queue"), nerdIcons.Playlist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.got, tt.icon) {
				t.Errorf("%q does not start with icon %q", tt.got, tt.icon)
			}
		})
	}
}

func TestFormatKind(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := FormatKind("artist", "X"); got != unicodeIcons.Artist+"X" {
		t.Errorf("FormatKind(artist) = %q", got)
	}
	if got := FormatKind("song", "X"); got != unicodeIcons.Song+"X" {
		t.Errorf("FormatKind(song) = %q", got)
	}
	if got := FormatKind("genre", "X"); got != unicodeIcons.Genre+"X" {
		t.Errorf("FormatKind(genre) = %q", got)
	}
	if got := FormatKind("other", "X"); got != "X" {
		t.Errorf("FormatKind(other) = %q, want bare", got)
	}
}

func TestTransportIcons(t *testing.T) {
	Init("none")
	if PlayPause(false) != ">" || PlayPause(true) != "||" {
		t.Errorf("PlayPause() = %q/%q", PlayPause(false), PlayPause(true))
	}
	if Volume(false) == Volume(true) {
		t.Error("Volume icons for muted and unmuted must differ")
	}
	for name, icon := range map[string]string{
		"next": Next(), "previous": Previous(), "shuffle": Shuffle(),
		"loop": Loop(), "search": Search(), "error": Error(),
	} {
		if icon == "" {
			t.Errorf("%s icon is empty in none style", name)
		}
	}
}
