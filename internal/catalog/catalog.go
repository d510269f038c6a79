package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	dbutil "github.com/chillibeats/chilli/internal/db"
)

// ErrNotFound is returned when a lookup matches no catalog entry.
var ErrNotFound = errors.New("not found")

// Catalog serves read-only lookups over a loaded index.
// The backing database lives in memory and disappears on Close.
type Catalog struct {
	db          *sql.DB
	lastUpdated time.Time
	log         zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Catalog) { c.log = l }
}

// New loads idx into a fresh in-memory database.
func New(idx *Index, opts ...Option) (*Catalog, error) {
	if idx == nil {
		return nil, errors.New("catalog: nil index")
	}

	c := &Catalog{lastUpdated: idx.LastUpdated, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	db, err := dbutil.OpenMemory()
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog schema: %w", err)
	}
	if err := loadIndex(db, idx); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog load: %w", err)
	}
	c.db = db

	c.log.Debug().
		Int("tracks", len(idx.Videos)).
		Int("artists", len(idx.ArtistProfiles)).
		Time("last_updated", idx.LastUpdated).
		Msg("catalog loaded")

	return c, nil
}

// Open loads the index at path, or the bundled index when path is empty.
func Open(path string, opts ...Option) (*Catalog, error) {
	var (
		idx *Index
		err error
	)
	if path == "" {
		idx, err = DefaultIndex()
	} else {
		idx, err = ReadIndexFile(path)
	}
	if err != nil {
		return nil, err
	}
	return New(idx, opts...)
}

// Close releases the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// AllTracks returns every track in catalog order.
func (c *Catalog) AllTracks() ([]Track, error) {
	return c.queryTracks(`SELECT ` + trackColumns + ` FROM tracks ORDER BY position`)
}

// TracksByArtist returns the artist's tracks in catalog order.
// An unknown artist yields an empty slice.
func (c *Catalog) TracksByArtist(artistID string) ([]Track, error) {
	for _, id := range idVariations(artistID) {
		tracks, err := c.queryTracks(
			`SELECT `+trackColumns+` FROM tracks WHERE artist_id = ? ORDER BY position`, id)
		if err != nil {
			return nil, err
		}
		if len(tracks) > 0 {
			return tracks, nil
		}
	}
	return nil, nil
}

// TracksByGenre returns tracks whose genre matches, ignoring case.
func (c *Catalog) TracksByGenre(genre string) ([]Track, error) {
	return c.queryTracks(
		`SELECT `+trackColumns+` FROM tracks WHERE genre = ? COLLATE NOCASE ORDER BY position`,
		strings.TrimSpace(genre))
}

// TrackByID looks a track up by id, accepting URL-encoded spellings.
func (c *Catalog) TrackByID(id string) (Track, error) {
	for _, candidate := range idVariations(id) {
		t, err := scanTrack(c.db.QueryRow(
			`SELECT `+trackColumns+` FROM tracks WHERE id = ?`, candidate))
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return Track{}, err
		}
	}
	return Track{}, fmt.Errorf("track %q: %w", id, ErrNotFound)
}

// RandomTrack picks any track. Returns ErrNotFound on an empty catalog.
func (c *Catalog) RandomTrack() (Track, error) {
	t, err := scanTrack(c.db.QueryRow(
		`SELECT ` + trackColumns + ` FROM tracks ORDER BY RANDOM() LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return Track{}, fmt.Errorf("random track: %w", ErrNotFound)
	}
	return t, err
}

// NextTrack returns the track after id in catalog order, wrapping to the first.
func (c *Catalog) NextTrack(id string) (Track, error) {
	return c.neighbour(id, 1)
}

// PreviousTrack returns the track before id in catalog order, wrapping to the last.
func (c *Catalog) PreviousTrack(id string) (Track, error) {
	return c.neighbour(id, -1)
}

func (c *Catalog) neighbour(id string, step int) (Track, error) {
	current, err := c.TrackByID(id)
	if err != nil {
		return Track{}, err
	}

	var pos, total int
	if err := c.db.QueryRow(
		`SELECT position, (SELECT COUNT(*) FROM tracks) FROM tracks WHERE id = ?`, current.ID,
	).Scan(&pos, &total); err != nil {
		return Track{}, err
	}

	target := (pos + step + total) % total
	return scanTrack(c.db.QueryRow(
		`SELECT `+trackColumns+` FROM tracks WHERE position = ?`, target))
}

// Artists returns all artist profiles in catalog order.
func (c *Catalog) Artists() ([]Artist, error) {
	rows, err := c.db.Query(
		`SELECT id, name, genre, image_url, keywords FROM artists ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		var a Artist
		var keywords string
		if err := rows.Scan(&a.ID, &a.Name, &a.Genre, &a.ImageURL, &keywords); err != nil {
			return nil, err
		}
		a.Keywords = decodeList(keywords)
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// ArtistByID returns one artist profile.
func (c *Catalog) ArtistByID(id string) (Artist, error) {
	artists, err := c.Artists()
	if err != nil {
		return Artist{}, err
	}
	for _, candidate := range idVariations(id) {
		for _, a := range artists {
			if a.ID == candidate {
				return a, nil
			}
		}
	}
	return Artist{}, fmt.Errorf("artist %q: %w", id, ErrNotFound)
}

// Genres returns all genres in catalog order.
func (c *Catalog) Genres() ([]Genre, error) {
	rows, err := c.db.Query(`SELECT id, name FROM genres ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []Genre
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (c *Catalog) queryTracks(query string, args ...any) ([]Track, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
