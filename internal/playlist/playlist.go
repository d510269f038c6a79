// Package playlist holds ordered track collections and the playing queue.
package playlist

import "github.com/chillibeats/chilli/internal/catalog"

// Playlist holds an ordered collection of tracks. Duplicates are allowed;
// callers that need uniqueness check Contains first.
type Playlist struct {
	tracks []catalog.Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]catalog.Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...catalog.Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Set replaces the contents with a copy of tracks.
func (p *Playlist) Set(tracks []catalog.Track) {
	p.tracks = append(p.tracks[:0:0], tracks...)
}

// IndexOf returns the first position of the track with the given id, or -1.
func (p *Playlist) IndexOf(id string) int {
	for i := range p.tracks {
		if p.tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a track with the given id is present.
func (p *Playlist) Contains(id string) bool {
	return p.IndexOf(id) >= 0
}

// RemoveID removes every entry with the given id and returns the positions
// (in the old ordering) that were removed.
func (p *Playlist) RemoveID(id string) []int {
	var removed []int
	kept := p.tracks[:0]
	for i, t := range p.tracks {
		if t.ID == id {
			removed = append(removed, i)
			continue
		}
		kept = append(kept, t)
	}
	clear(p.tracks[len(kept):])
	p.tracks = kept
	return removed
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []catalog.Track {
	result := make([]catalog.Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns a copy of the track at the given index, or nil if out of
// bounds. The copy stays valid after the playlist is modified.
func (p *Playlist) Track(index int) *catalog.Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	t := p.tracks[index]
	return &t
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
