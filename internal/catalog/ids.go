package catalog

import (
	"net/url"
	"strings"
)

// idVariations returns the spellings an id may arrive in after passing
// through a URL: ids such as "j-balvin-+57" are often percent-encoded.
func idVariations(id string) []string {
	if id == "" {
		return nil
	}
	candidates := []string{id}
	if decoded, err := url.PathUnescape(id); err == nil {
		candidates = append(candidates, decoded)
	}
	candidates = append(candidates,
		strings.Replace(id, "%2B", "+", 1),
		strings.Replace(id, "+", "%2B", 1),
		strings.Replace(id, "%20", " ", 1),
		strings.Replace(id, " ", "%20", 1),
	)

	out := candidates[:0]
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
