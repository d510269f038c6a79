package search

// popularPicks lists the curated entries, in display order.
var popularPicks = []struct {
	kind Kind
	id   string
}{
	{KindArtist, "peso-pluma"},
	{KindSong, "peso-pluma-ella-baila-sola"},
	{KindArtist, "bad-bunny"},
	{KindGenre, "reggaeton"},
}

const popularRelevance = 100

// buildPopular resolves the curated picks against the indexed catalog.
// Picks missing from the catalog are skipped.
func (e *Engine) buildPopular() []Result {
	var out []Result
	for _, p := range popularPicks {
		r, ok := e.lookup(p.kind, p.id)
		if !ok {
			continue
		}
		r.Relevance = popularRelevance
		out = append(out, r)
	}
	return out
}

func (e *Engine) lookup(kind Kind, id string) (Result, bool) {
	switch kind {
	case KindArtist:
		for _, a := range e.artists {
			if a.artist.ID == id {
				return a.result(0), true
			}
		}
	case KindSong:
		for _, s := range e.songs {
			if s.track.ID == id {
				return s.result(0), true
			}
		}
	case KindGenre:
		for _, g := range e.genres {
			if g.genre.ID == id {
				return g.result(0), true
			}
		}
	}
	return Result{}, false
}
