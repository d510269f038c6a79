package search

import "testing"

type testItem string

func (t testItem) FilterValue() string { return string(t) }

func TestTrigrams(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "simple word",
			input:    "cat",
			contains: []string{"  c", " ca", "cat", "at "},
			excludes: []string{"   "}, // all-whitespace excluded
		},
		{
			name:     "longer word",
			input:    "hello",
			contains: []string{"  h", " he", "hel", "ell", "llo", "lo ", "o  "},
			excludes: []string{"   "},
		},
		{
			name:     "short word",
			input:    "ab",
			contains: []string{"  a", " ab", "ab ", "b  "},
			excludes: []string{"   "},
		},
		{
			name:     "multibyte",
			input:    "não",
			contains: []string{"  n", " nã", "não", "ão "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := trigrams(tt.input)
			for _, tri := range tt.contains {
				if _, ok := result[tri]; !ok {
					t.Errorf("trigrams(%q) missing trigram %q", tt.input, tri)
				}
			}
			for _, tri := range tt.excludes {
				if _, ok := result[tri]; ok {
					t.Errorf("trigrams(%q) should not contain %q", tt.input, tri)
				}
			}
		})
	}

	if got := trigrams(""); got != nil {
		t.Errorf("trigrams(\"\") = %v, want nil", got)
	}
}

func TestTrigramSet_Coverage(t *testing.T) {
	tests := []struct {
		name     string
		query    trigramSet
		item     trigramSet
		expected float64
	}{
		{
			name:     "empty query",
			query:    trigramSet{},
			item:     trigramSet{"abc": {}},
			expected: 0,
		},
		{
			name:     "full match",
			query:    trigramSet{"abc": {}, "bcd": {}},
			item:     trigramSet{"abc": {}, "bcd": {}, "cde": {}},
			expected: 1.0,
		},
		{
			name:     "partial match",
			query:    trigramSet{"abc": {}, "bcd": {}, "xyz": {}, "zzz": {}},
			item:     trigramSet{"abc": {}, "bcd": {}},
			expected: 0.5,
		},
		{
			name:     "no match",
			query:    trigramSet{"abc": {}, "bcd": {}},
			item:     trigramSet{"xyz": {}, "zzz": {}},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.query.coverage(tt.item)
			if result != tt.expected {
				t.Errorf("coverage() = %f, want %f", result, tt.expected)
			}
		})
	}
}

func TestTrigramMatcher_Search_EmptyQuery(t *testing.T) {
	m := NewTrigramMatcher([]Item{testItem("apple"), testItem("banana")})
	if got := m.Search(""); len(got) != 0 {
		t.Errorf("Search(\"\") returned %d matches, want 0", len(got))
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestTrigramMatcher_Search_MultiWord(t *testing.T) {
	m := NewTrigramMatcher([]Item{
		testItem("Ella Baila Sola"),
		testItem("Baile Inolvidable"),
		testItem("Sola"),
	})

	matches := m.Search("baila sola")
	if len(matches) != 1 || matches[0].Index != 0 {
		t.Fatalf("Search(baila sola) = %+v, want only index 0", matches)
	}
}

func TestTrigramMatcher_Search_Typo(t *testing.T) {
	m := NewTrigramMatcher([]Item{testItem("Pitorro de Coco"), testItem("Goyard")})

	matches := m.Search("pitoro")
	if len(matches) != 1 || matches[0].Index != 0 {
		t.Fatalf("Search(pitoro) = %+v, want index 0", matches)
	}
}

func TestTrigramMatcher_Search_SortedByScore(t *testing.T) {
	m := NewTrigramMatcher([]Item{
		testItem("rapidez"),
		testItem("rapido soy"),
	})

	matches := m.Search("rapido")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Index != 1 {
		t.Errorf("best match index = %d, want 1 (exact substring)", matches[0].Index)
	}
	if matches[0].Score < matches[1].Score {
		t.Error("matches not sorted by score")
	}
}

func TestTrigramMatcher_Search_ShortWord(t *testing.T) {
	m := NewTrigramMatcher([]Item{testItem("Plan B"), testItem("Maluma")})

	matches := m.Search("b")
	if len(matches) != 1 || matches[0].Index != 0 {
		t.Fatalf("Search(b) = %+v, want index 0", matches)
	}
}
