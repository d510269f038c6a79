package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Item is anything the trigram matcher can rank.
type Item interface {
	FilterValue() string
}

// Match is an item index with its score; higher is better.
type Match struct {
	Index int
	Score float64
}

const (
	// minCoverage is the share of a query word's trigrams an item must hold
	// for the word to count as present.
	minCoverage = 0.4
	// substringBonus is added when the word also appears verbatim.
	substringBonus = 0.5
	// shortWord is the longest word matched by substring alone; shorter
	// words have too few trigrams to rank.
	shortWord = 2
)

type trigramSet map[string]struct{}

// trigrams returns the trigrams of s padded by two spaces on each side,
// so prefixes and suffixes get their own grams. All-space grams are skipped.
func trigrams(s string) trigramSet {
	if s == "" {
		return nil
	}
	r := []rune("  " + s + "  ")
	set := make(trigramSet, len(r))
	for i := range len(r) - 2 {
		if g := string(r[i : i+3]); strings.TrimSpace(g) != "" {
			set[g] = struct{}{}
		}
	}
	return set
}

// coverage is |q ∩ other| / |q|: the share of q found in other. Unlike
// Jaccard it does not punish a short query against a long title.
func (q trigramSet) coverage(other trigramSet) float64 {
	if len(q) == 0 {
		return 0
	}
	hits := 0
	for g := range q {
		if _, ok := other[g]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(q))
}

type indexed struct {
	text  string
	grams trigramSet
}

// TrigramMatcher ranks items by trigram overlap with every query word.
type TrigramMatcher struct {
	items []Item
	index []indexed
}

// NewTrigramMatcher folds and indexes the items once.
func NewTrigramMatcher(items []Item) *TrigramMatcher {
	m := &TrigramMatcher{items: items, index: make([]indexed, len(items))}
	for i, it := range items {
		text := Fold(it.FilterValue())
		m.index[i] = indexed{text: text, grams: trigrams(text)}
	}
	return m
}

func (m *TrigramMatcher) Len() int { return len(m.items) }

// Search returns the items that match every word of query, best first with
// ties in item order. A blank query matches nothing.
func (m *TrigramMatcher) Search(query string) []Match {
	words := strings.Fields(Fold(query))
	if len(words) == 0 {
		return nil
	}
	grams := make([]trigramSet, len(words))
	for i, w := range words {
		grams[i] = trigrams(w)
	}

	var out []Match
	for i, entry := range m.index {
		if s := entry.score(words, grams); s > 0 {
			out = append(out, Match{Index: i, Score: s})
		}
	}
	slices.SortStableFunc(out, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// score averages the per-word similarity, or returns 0 as soon as one word
// is missing.
func (e indexed) score(words []string, grams []trigramSet) float64 {
	total := 0.0
	for i, w := range words {
		verbatim := strings.Contains(e.text, w)
		if utf8.RuneCountInString(w) <= shortWord {
			if !verbatim {
				return 0
			}
			total++
			continue
		}
		c := grams[i].coverage(e.grams)
		if c < minCoverage {
			return 0
		}
		if verbatim {
			c += substringBonus
		}
		total += c
	}
	return total / float64(len(words))
}
