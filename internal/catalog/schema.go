package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	dbutil "github.com/chillibeats/chilli/internal/db"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE artists (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			genre TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			keywords TEXT NOT NULL DEFAULT '[]'
		);

		CREATE TABLE genres (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		);

		CREATE TABLE tracks (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			artist_name TEXT NOT NULL,
			artist_id TEXT NOT NULL,
			genre TEXT NOT NULL DEFAULT '',
			media_url TEXT NOT NULL DEFAULT '',
			duration REAL NOT NULL DEFAULT 0,
			thumbnail_url TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL DEFAULT 0,
			file_size INTEGER NOT NULL DEFAULT 0,
			format TEXT NOT NULL DEFAULT '',
			featuring TEXT NOT NULL DEFAULT '[]',
			keywords TEXT NOT NULL DEFAULT '[]',
			collaboration TEXT NOT NULL DEFAULT '[]'
		);

		CREATE INDEX idx_tracks_artist_id ON tracks(artist_id);
		CREATE INDEX idx_tracks_genre ON tracks(genre COLLATE NOCASE);
	`)
	return err
}

func loadIndex(db *sql.DB, idx *Index) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		return insertIndex(tx, idx)
	})
}

func insertIndex(tx *sql.Tx, idx *Index) error {
	for i, a := range idx.ArtistProfiles {
		if _, err := tx.Exec(
			`INSERT INTO artists (position, id, name, genre, image_url, keywords) VALUES (?, ?, ?, ?, ?, ?)`,
			i, a.ID, a.Name, a.Genre, a.Image, encodeList(a.Keywords),
		); err != nil {
			return fmt.Errorf("insert artist %q: %w", a.ID, err)
		}
	}

	for i, g := range idx.Genres {
		if _, err := tx.Exec(
			`INSERT INTO genres (position, id, name) VALUES (?, ?, ?)`,
			i, g.ID, g.Name,
		); err != nil {
			return fmt.Errorf("insert genre %q: %w", g.ID, err)
		}
	}

	for i, v := range idx.Videos {
		t := v.track()
		if _, err := tx.Exec(`
			INSERT INTO tracks (
				position, id, title, artist_name, artist_id, genre, media_url, duration,
				thumbnail_url, created_at, file_size, format, featuring, keywords, collaboration
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, t.ID, t.Title, t.ArtistName, t.ArtistID, t.Genre, t.MediaURL, t.DurationSeconds,
			t.ThumbnailURL, unixOrZero(t.CreatedAt), t.FileSize, t.Format,
			encodeList(t.Featuring), encodeList(t.Keywords), encodeList(t.Collaboration),
		); err != nil {
			return fmt.Errorf("insert track %q: %w", t.ID, err)
		}
	}
	return nil
}

const trackColumns = `id, title, artist_name, artist_id, genre, media_url, duration,
	thumbnail_url, created_at, file_size, format, featuring, keywords, collaboration`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrack(row rowScanner) (Track, error) {
	var t Track
	var createdAt int64
	var featuring, keywords, collaboration string
	err := row.Scan(
		&t.ID, &t.Title, &t.ArtistName, &t.ArtistID, &t.Genre, &t.MediaURL, &t.DurationSeconds,
		&t.ThumbnailURL, &createdAt, &t.FileSize, &t.Format, &featuring, &keywords, &collaboration,
	)
	if err != nil {
		return Track{}, err
	}
	if createdAt > 0 {
		t.CreatedAt = time.Unix(createdAt, 0).UTC()
	}
	t.Featuring = decodeList(featuring)
	t.Keywords = decodeList(keywords)
	t.Collaboration = decodeList(collaboration)
	return t, nil
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func encodeList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeList(s string) []string {
	var values []string
	if err := json.Unmarshal([]byte(s), &values); err != nil || len(values) == 0 {
		return nil
	}
	return values
}
