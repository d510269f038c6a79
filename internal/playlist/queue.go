package playlist

import "github.com/chillibeats/chilli/internal/catalog"

// PickFunc returns a pseudo-random index in [0, n).
type PickFunc func(n int) int

// PlayingQueue wraps a Playlist with a current position.
//
// A track selected while absent from the playlist becomes a transient
// current track: it is reported by Current but does not move currentIndex,
// and the next navigation step discards it.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int // -1 if nothing selected
	transient    *catalog.Track
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// Current returns the current track, or nil if none.
func (q *PlayingQueue) Current() *catalog.Track {
	if q.transient != nil {
		t := *q.transient
		return &t
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the position of the current track (-1 if none).
// A transient current track does not change it.
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// IsTransient reports whether the current track is outside the playlist.
func (q *PlayingQueue) IsTransient() bool {
	return q.transient != nil
}

// Replace swaps the contents for tracks and selects startIndex, clamped to
// the valid range. Returns the selected track, or nil for an empty list.
func (q *PlayingQueue) Replace(tracks []catalog.Track, startIndex int) *catalog.Track {
	q.playlist.Set(tracks)
	q.transient = nil
	if len(tracks) == 0 {
		q.currentIndex = -1
		return nil
	}
	q.currentIndex = min(max(startIndex, 0), len(tracks)-1)
	return q.Current()
}

// Select makes track current. If the playlist contains it, the position
// moves there; otherwise it becomes transient and the position is kept.
func (q *PlayingQueue) Select(track catalog.Track) *catalog.Track {
	if idx := q.playlist.IndexOf(track.ID); idx >= 0 {
		q.currentIndex = idx
		q.transient = nil
		return q.Current()
	}
	t := track
	q.transient = &t
	return q.Current()
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *catalog.Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	q.transient = nil
	return q.Current()
}

// Advance moves forward one step. In shuffle mode the position is pick(len),
// which may select the current position again. Otherwise the position wraps
// to 0 past the end when loop is set and stays on the last track when not.
// Returns nil without changes when the queue is empty.
func (q *PlayingQueue) Advance(loop, shuffle bool, pick PickFunc) *catalog.Track {
	n := q.playlist.Len()
	if n == 0 {
		return nil
	}
	var next int
	switch {
	case shuffle:
		next = pickIndex(pick, n)
	case q.currentIndex+1 >= n:
		if loop {
			next = 0
		} else {
			next = n - 1
		}
	default:
		next = q.currentIndex + 1
	}
	return q.JumpTo(next)
}

// Retreat moves back one step, mirroring Advance: wrap to the last track
// when loop is set, stay on the first when not.
func (q *PlayingQueue) Retreat(loop, shuffle bool, pick PickFunc) *catalog.Track {
	n := q.playlist.Len()
	if n == 0 {
		return nil
	}
	var prev int
	switch {
	case shuffle:
		prev = pickIndex(pick, n)
	case q.currentIndex-1 < 0:
		if loop {
			prev = n - 1
		} else {
			prev = 0
		}
	default:
		prev = q.currentIndex - 1
	}
	return q.JumpTo(prev)
}

func pickIndex(pick PickFunc, n int) int {
	i := pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}

// Add appends tracks without changing the current position.
func (q *PlayingQueue) Add(tracks ...catalog.Track) {
	q.playlist.Add(tracks...)
}

// AddUnique appends track unless an entry with the same id exists.
// Adding the transient current track moves the position onto the new entry.
// Returns true if the track was added.
func (q *PlayingQueue) AddUnique(track catalog.Track) bool {
	if q.playlist.Contains(track.ID) {
		return false
	}
	q.playlist.Add(track)
	if q.transient != nil && q.transient.ID == track.ID {
		q.transient = nil
		q.currentIndex = q.playlist.Len() - 1
	}
	return true
}

// Remove deletes every entry with the given id and keeps the position on
// the same track when it survives. When the current entry itself is
// removed the position stays in place (now pointing at the following
// track), clamped to the new bounds, and removedCurrent is true. A
// transient current track with that id is dropped the same way.
func (q *PlayingQueue) Remove(id string) (removed int, removedCurrent bool) {
	if q.transient != nil && q.transient.ID == id {
		q.transient = nil
		removedCurrent = true
	}
	positions := q.playlist.RemoveID(id)
	if len(positions) == 0 {
		return 0, removedCurrent
	}

	before := 0
	for _, p := range positions {
		if p < q.currentIndex {
			before++
		}
		if p == q.currentIndex && q.transient == nil {
			removedCurrent = true
		}
	}

	n := q.playlist.Len()
	switch {
	case n == 0:
		q.currentIndex = -1
	case q.currentIndex >= 0:
		q.currentIndex = min(q.currentIndex-before, n-1)
	}
	return len(positions), removedCurrent
}

// Clear removes all tracks and resets the position.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = -1
	q.transient = nil
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []catalog.Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
