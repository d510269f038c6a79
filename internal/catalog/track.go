// Package catalog holds the music-video catalog: tracks, artists and genres
// loaded from a prebuilt index and served from an in-memory SQLite database.
package catalog

import (
	"strings"
	"time"
)

// Track is one playable catalog item. It is the only track type in the
// program: the catalog produces it, search and the playback store consume it.
type Track struct {
	ID              string
	Title           string
	ArtistName      string
	ArtistID        string
	Featuring       []string
	MediaURL        string
	DurationSeconds float64 // 0 when unknown until playback starts
	ThumbnailURL    string

	Genre         string
	Keywords      []string
	Collaboration []string // ids of in-catalog artists featured on the track
	FileSize      int64
	Format        string
	CreatedAt     time.Time
}

// Is reports whether t and other are the same track. Identity is by ID.
func (t Track) Is(other Track) bool {
	return t.ID == other.ID
}

// Duration returns the track length, or 0 if unknown.
func (t Track) Duration() time.Duration {
	if t.DurationSeconds <= 0 {
		return 0
	}
	return time.Duration(t.DurationSeconds * float64(time.Second))
}

// Credits returns "Artist feat. A, B" or just the artist name.
func (t Track) Credits() string {
	if len(t.Featuring) == 0 {
		return t.ArtistName
	}
	return t.ArtistName + " feat. " + strings.Join(t.Featuring, ", ")
}

// HasCollaboration reports whether the track features another catalog artist.
func (t Track) HasCollaboration() bool {
	return len(t.Collaboration) > 0
}

// Artist is a catalog artist profile.
type Artist struct {
	ID       string
	Name     string
	Genre    string
	ImageURL string
	Keywords []string
}

// Genre is a catalog genre.
type Genre struct {
	ID   string
	Name string
}
