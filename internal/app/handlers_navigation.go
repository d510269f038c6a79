package app

import (
	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/errmsg"
	"github.com/chillibeats/chilli/internal/search"
	"github.com/chillibeats/chilli/internal/ui/tracklist"
)

// OpenSong shows the song page for track. A song page replaces another
// song page instead of stacking on it.
func (m *Model) OpenSong(track catalog.Track) {
	page := &Page{
		Kind:  PageSong,
		Crumb: track.Title,
		Key:   track.ID,
		Track: track,
		List:  tracklist.New("More from " + track.ArtistName),
	}
	page.List.SetTracks(m.moreFromArtist(track))

	if m.Nav.Current().Kind == PageSong {
		m.Nav.Replace(page)
	} else {
		m.Nav.Push(page)
	}
	m.pageChanged()
}

// moreFromArtist returns up to moreSongsLimit other tracks by the same artist.
func (m *Model) moreFromArtist(track catalog.Track) []catalog.Track {
	if track.ArtistID == "" {
		return nil
	}
	tracks, err := m.Catalog.TracksByArtist(track.ArtistID)
	if err != nil {
		m.log.Warn().Err(err).Str("artist", track.ArtistID).Msg("more songs lookup failed")
		return nil
	}
	more := make([]catalog.Track, 0, moreSongsLimit)
	for _, t := range tracks {
		if t.Is(track) {
			continue
		}
		more = append(more, t)
		if len(more) == moreSongsLimit {
			break
		}
	}
	return more
}

// OpenSongByID looks a track up and shows its song page.
func (m *Model) OpenSongByID(id string) {
	track, err := m.Catalog.TrackByID(id)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpTrackLoad, id, err))
		return
	}
	m.OpenSong(track)
}

// OpenArtist shows every track of an artist. name is used for the crumb
// when known; otherwise the artist profile is looked up.
func (m *Model) OpenArtist(id, name string) {
	tracks, err := m.Catalog.TracksByArtist(id)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpArtistLoad, id, err))
		return
	}
	if artist, err := m.Catalog.ArtistByID(id); err == nil {
		name = artist.Name
	} else if len(tracks) == 0 {
		m.setError(errmsg.FormatWith(errmsg.OpArtistLoad, id, err))
		return
	}
	if name == "" {
		name = id
	}

	page := &Page{Kind: PageArtist, Crumb: name, Key: id, List: tracklist.New(name)}
	page.List.SetTracks(tracks)
	m.Nav.Push(page)
	m.pageChanged()
}

// OpenGenre shows the catalog filtered to one genre.
func (m *Model) OpenGenre(name string) {
	tracks, err := m.Catalog.TracksByGenre(name)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpGenreLoad, name, err))
		return
	}
	page := &Page{Kind: PageGenre, Crumb: name, Key: name, List: tracklist.New(name)}
	page.List.SetTracks(tracks)
	m.Nav.Push(page)
	m.pageChanged()
}

// OpenRandomSong shows the song page of a random catalog track.
func (m *Model) OpenRandomSong() {
	track, err := m.Catalog.RandomTrack()
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpRandomTrack, err))
		return
	}
	m.OpenSong(track)
}

// OpenFullPlayer shows the song page of the current track.
func (m *Model) OpenFullPlayer() {
	cur := m.Store.CurrentTrack()
	if cur == nil {
		m.setStatus("Nothing is playing")
		return
	}
	m.OpenSong(*cur)
}

// StepSong moves the song page to the next or previous catalog track.
func (m *Model) StepSong(forward bool) {
	page := m.Nav.Current()
	if page.Kind != PageSong {
		return
	}
	var (
		track catalog.Track
		err   error
	)
	if forward {
		track, err = m.Catalog.NextTrack(page.Track.ID)
	} else {
		track, err = m.Catalog.PreviousTrack(page.Track.ID)
	}
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpTrackLoad, page.Track.ID, err))
		return
	}
	m.OpenSong(track)
}

// GoBack returns to the previous page.
func (m *Model) GoBack() {
	if _, ok := m.Nav.Pop(); ok {
		m.pageChanged()
	}
}

// OpenSearchResult navigates to the target of a search hit.
func (m *Model) OpenSearchResult(r search.Result) {
	switch r.Kind {
	case search.KindArtist:
		m.OpenArtist(r.ID, r.Title)
	case search.KindSong:
		m.OpenSongByID(r.ID)
	case search.KindGenre:
		m.OpenGenre(r.Title)
	}
}

// pageChanged brings the player surfaces and panels in line with the
// visible page. The full player is mounted exactly while a song page is
// shown; entering one selects its track unless it is already current.
func (m *Model) pageChanged() {
	page := m.Nav.Current()
	m.clearStatus()

	if page.Kind == PageSong {
		if !m.Store.Snapshot().IsCurrent(page.Track) {
			m.Store.SetCurrentTrack(page.Track)
		}
		m.Player.Full.Mount()
	} else {
		m.Player.Full.Unmount()
	}
	m.Snapshot = m.Store.Snapshot()
	m.Player.Sync(m.Snapshot)

	m.log.Debug().Stringer("page", page.Kind).Str("key", page.Key).Msg("page changed")

	m.Layout.QueuePanel().SetSnapshot(m.Snapshot)
	m.applyCurrentMarker()
	m.resizePages()
	m.applyFocus()
}
