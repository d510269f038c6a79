package catalog

import (
	"database/sql"
	"time"

	dbutil "github.com/chillibeats/chilli/internal/db"
)

// ArtistStats counts the tracks of one artist.
type ArtistStats struct {
	ID         string
	Name       string
	TrackCount int
}

// Stats summarizes the catalog.
type Stats struct {
	TotalTracks  int
	TotalArtists int
	TotalBytes   int64
	TotalLength  time.Duration
	LastUpdated  time.Time
	Artists      []ArtistStats
}

// Stats computes catalog totals and per-artist track counts.
func (c *Catalog) Stats() (Stats, error) {
	s := Stats{LastUpdated: c.lastUpdated}

	var (
		bytes   sql.NullInt64
		seconds sql.NullFloat64
	)
	if err := c.db.QueryRow(
		`SELECT COUNT(*), SUM(file_size), SUM(duration) FROM tracks`,
	).Scan(&s.TotalTracks, &bytes, &seconds); err != nil {
		return Stats{}, err
	}
	s.TotalBytes = dbutil.NullInt64Value(bytes)
	if seconds.Valid {
		s.TotalLength = time.Duration(seconds.Float64 * float64(time.Second))
	}

	// Profile names win over the per-track artist_name when present.
	rows, err := c.db.Query(`
		SELECT t.artist_id, a.name, MIN(t.artist_name), COUNT(*)
		FROM tracks t
		LEFT JOIN artists a ON a.id = t.artist_id
		GROUP BY t.artist_id
		ORDER BY MIN(t.position)
	`)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a           ArtistStats
			profileName sql.NullString
			trackName   string
		)
		if err := rows.Scan(&a.ID, &profileName, &trackName, &a.TrackCount); err != nil {
			return Stats{}, err
		}
		a.Name = dbutil.NullStringOr(profileName, trackName)
		s.Artists = append(s.Artists, a)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}
	s.TotalArtists = len(s.Artists)
	return s, nil
}
