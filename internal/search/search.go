// Package search ranks catalog artists, songs and genres against a free-text
// query. Matching is substring-based on accent-folded text with fixed field
// weights; a trigram matcher supplies fuzzy results when nothing matches
// exactly.
package search

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chillibeats/chilli/internal/catalog"
)

// MaxResults caps every result list.
const MaxResults = 8

// Field weights.
const (
	artistNameWeight    = 100
	artistKeywordWeight = 50
	artistGenreWeight   = 30

	songTitleWeight     = 100
	songArtistWeight    = 80
	songFeaturingWeight = 70
	songKeywordWeight   = 40
	songGenreWeight     = 20

	genreWeight = 60
)

// Kind is the type of a search result.
type Kind string

const (
	KindArtist Kind = "artist"
	KindSong   Kind = "song"
	KindGenre  Kind = "genre"
)

// Result is one ranked search hit.
type Result struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"type"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Image     string `json:"image,omitempty"`
	Target    string `json:"url"`
	Relevance int    `json:"relevance"`
	Fuzzy     bool   `json:"fuzzy,omitempty"`
}

// Source provides the catalog content to index.
type Source interface {
	Artists() ([]catalog.Artist, error)
	AllTracks() ([]catalog.Track, error)
	Genres() ([]catalog.Genre, error)
}

type artistEntry struct {
	artist   catalog.Artist
	name     string
	genre    string
	keywords []string
}

type songEntry struct {
	track     catalog.Track
	title     string
	artist    string
	genre     string
	featuring []string
	keywords  []string
	image     string
}

type genreEntry struct {
	genre   catalog.Genre
	name    string
	artists int
}

// Engine holds a folded, ready-to-search copy of the catalog.
type Engine struct {
	artists []artistEntry
	songs   []songEntry
	genres  []genreEntry
	fuzzy   *TrigramMatcher
	popular []Result
}

// FromSource builds an engine from a catalog.
func FromSource(src Source) (*Engine, error) {
	artists, err := src.Artists()
	if err != nil {
		return nil, fmt.Errorf("load artists: %w", err)
	}
	tracks, err := src.AllTracks()
	if err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}
	genres, err := src.Genres()
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	return NewEngine(artists, tracks, genres), nil
}

// NewEngine indexes the given catalog content. Input order is the
// tie-break order of equally relevant results.
func NewEngine(artists []catalog.Artist, tracks []catalog.Track, genres []catalog.Genre) *Engine {
	e := &Engine{}
	images := make(map[string]string, len(artists))
	genreArtists := make(map[string]int)

	for _, a := range artists {
		e.artists = append(e.artists, artistEntry{
			artist:   a,
			name:     Fold(a.Name),
			genre:    Fold(a.Genre),
			keywords: foldAll(a.Keywords),
		})
		images[a.ID] = a.ImageURL
		genreArtists[Fold(a.Genre)]++
	}
	for _, t := range tracks {
		e.songs = append(e.songs, songEntry{
			track:     t,
			title:     Fold(t.Title),
			artist:    Fold(t.ArtistName),
			genre:     Fold(t.Genre),
			featuring: foldAll(t.Featuring),
			keywords:  foldAll(t.Keywords),
			image:     images[t.ArtistID],
		})
	}
	for _, g := range genres {
		name := Fold(g.Name)
		e.genres = append(e.genres, genreEntry{genre: g, name: name, artists: genreArtists[name]})
	}

	e.fuzzy = NewTrigramMatcher(e.fuzzyItems())
	e.popular = e.buildPopular()
	return e
}

// Search returns at most MaxResults results ordered by relevance. Equal
// relevance keeps artists before songs before genres, each in catalog
// order. A blank query returns nothing.
func (e *Engine) Search(query string) []Result {
	q := Fold(query)
	if q == "" {
		return nil
	}

	var results []Result
	for _, a := range e.artists {
		if r := a.score(q); r > 0 {
			results = append(results, a.result(r))
		}
	}
	for _, s := range e.songs {
		if r := s.score(q); r > 0 {
			results = append(results, s.result(r))
		}
	}
	for _, g := range e.genres {
		if g.artists > 0 && strings.Contains(g.name, q) {
			results = append(results, g.result(genreWeight))
		}
	}

	if len(results) == 0 {
		results = e.fuzzySearch(q)
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return b.Relevance - a.Relevance
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// Popular returns the curated list shown before the user types.
func (e *Engine) Popular() []Result {
	return slices.Clone(e.popular)
}

func (a artistEntry) score(q string) int {
	r := 0
	if strings.Contains(a.name, q) {
		r += artistNameWeight
	}
	r += artistKeywordWeight * countContaining(a.keywords, q)
	if strings.Contains(a.genre, q) {
		r += artistGenreWeight
	}
	return r
}

func (a artistEntry) result(relevance int) Result {
	return Result{
		ID:        a.artist.ID,
		Kind:      KindArtist,
		Title:     a.artist.Name,
		Subtitle:  a.artist.Genre,
		Image:     a.artist.ImageURL,
		Target:    "/artist/" + a.artist.ID,
		Relevance: relevance,
	}
}

func (s songEntry) score(q string) int {
	r := 0
	if strings.Contains(s.title, q) {
		r += songTitleWeight
	}
	if strings.Contains(s.artist, q) {
		r += songArtistWeight
	}
	r += songFeaturingWeight * countContaining(s.featuring, q)
	r += songKeywordWeight * countContaining(s.keywords, q)
	if strings.Contains(s.genre, q) {
		r += songGenreWeight
	}
	return r
}

func (s songEntry) result(relevance int) Result {
	return Result{
		ID:        s.track.ID,
		Kind:      KindSong,
		Title:     s.track.Title,
		Subtitle:  s.track.Credits(),
		Image:     s.image,
		Target:    "/song/" + s.track.ID,
		Relevance: relevance,
	}
}

func (g genreEntry) result(relevance int) Result {
	return Result{
		ID:        g.genre.ID,
		Kind:      KindGenre,
		Title:     g.genre.Name,
		Subtitle:  artistCount(g.artists),
		Target:    "/?genre=" + g.genre.ID,
		Relevance: relevance,
	}
}

func artistCount(n int) string {
	if n == 1 {
		return "1 artist"
	}
	return fmt.Sprintf("%d artists", n)
}

func countContaining(values []string, q string) int {
	n := 0
	for _, v := range values {
		if strings.Contains(v, q) {
			n++
		}
	}
	return n
}
