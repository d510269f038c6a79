package search

import "strings"

// fuzzyItem is one trigram-indexed entry: the result it produces and the
// text it is matched on.
type fuzzyItem struct {
	text   string
	result Result
}

func (f fuzzyItem) FilterValue() string { return f.text }

func (e *Engine) fuzzyItems() []Item {
	var items []Item
	for _, a := range e.artists {
		items = append(items, fuzzyItem{
			text:   a.artist.Name + " " + strings.Join(a.artist.Keywords, " "),
			result: a.result(0),
		})
	}
	for _, s := range e.songs {
		items = append(items, fuzzyItem{
			text:   s.track.Title + " " + s.track.Credits(),
			result: s.result(0),
		})
	}
	for _, g := range e.genres {
		if g.artists == 0 {
			continue
		}
		items = append(items, fuzzyItem{text: g.genre.Name, result: g.result(0)})
	}
	return items
}

// fuzzySearch ranks approximate matches. Their relevance (1 to 15) stays
// below every weighted score.
func (e *Engine) fuzzySearch(q string) []Result {
	var results []Result
	for _, m := range e.fuzzy.Search(q) {
		r := e.fuzzy.items[m.Index].(fuzzyItem).result
		r.Relevance = max(1, int(m.Score*10))
		r.Fuzzy = true
		results = append(results, r)
	}
	return results
}
