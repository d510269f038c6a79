package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

//go:embed data/index.json
var defaultIndex []byte

// Index is the on-disk catalog format produced by the media upload pipeline.
type Index struct {
	LastUpdated    time.Time      `json:"lastUpdated"`
	TotalVideos    int            `json:"totalVideos"`
	ArtistProfiles []artistRecord `json:"artistProfiles"`
	Genres         []genreRecord  `json:"genres"`
	Videos         []videoRecord  `json:"videos"`
}

type artistRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Genre    string   `json:"genre"`
	Image    string   `json:"image"`
	Keywords []string `json:"keywords"`
}

type genreRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type videoRecord struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	ArtistID      string    `json:"artistId"`
	Genre         string    `json:"genre"`
	CloudinaryID  string    `json:"cloudinaryId"`
	URL           string    `json:"url"`
	Duration      float64   `json:"duration"`
	Thumbnail     string    `json:"thumbnail"`
	CreatedAt     time.Time `json:"createdAt"`
	FileSize      int64     `json:"fileSize"`
	Format        string    `json:"format"`
	Featuring     []string  `json:"featuring,omitempty"`
	Collaboration []string  `json:"collaboration,omitempty"`
	Keywords      []string  `json:"keywords,omitempty"`
}

func (v videoRecord) track() Track {
	return Track{
		ID:              v.ID,
		Title:           v.Title,
		ArtistName:      v.Artist,
		ArtistID:        v.ArtistID,
		Featuring:       v.Featuring,
		MediaURL:        v.URL,
		DurationSeconds: max(v.Duration, 0),
		ThumbnailURL:    v.Thumbnail,
		Genre:           v.Genre,
		Keywords:        v.Keywords,
		Collaboration:   v.Collaboration,
		FileSize:        v.FileSize,
		Format:          v.Format,
		CreatedAt:       v.CreatedAt,
	}
}

// DecodeIndex reads a catalog index from r.
func DecodeIndex(r io.Reader) (*Index, error) {
	var idx Index
	if err := json.NewDecoder(r).Decode(&idx); err != nil {
		return nil, fmt.Errorf("decode catalog index: %w", err)
	}
	seen := make(map[string]struct{}, len(idx.Videos))
	for i, v := range idx.Videos {
		if v.ID == "" {
			return nil, fmt.Errorf("decode catalog index: video %d has no id", i)
		}
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("decode catalog index: duplicate video id %q", v.ID)
		}
		seen[v.ID] = struct{}{}
	}
	if idx.TotalVideos == 0 {
		idx.TotalVideos = len(idx.Videos)
	}
	return &idx, nil
}

// ReadIndexFile decodes the index stored at path.
func ReadIndexFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeIndex(f)
}

// DefaultIndex returns the index bundled with the binary.
func DefaultIndex() (*Index, error) {
	return DecodeIndex(bytes.NewReader(defaultIndex))
}
