package app

import (
	"github.com/chillibeats/chilli/internal/catalog"
	"github.com/chillibeats/chilli/internal/ui/tracklist"
)

// PageKind identifies a page.
type PageKind int

const (
	PageHome PageKind = iota
	PageGenre
	PageArtist
	PageSong
)

// String returns the page name used in logs.
func (k PageKind) String() string {
	switch k {
	case PageHome:
		return "home"
	case PageGenre:
		return "genre"
	case PageArtist:
		return "artist"
	case PageSong:
		return "song"
	}
	return "unknown"
}

// moreSongsLimit caps the "more from this artist" list under the full player.
const moreSongsLimit = 6

// Page is one entry of the navigation history.
type Page struct {
	Kind  PageKind
	Crumb string
	// Key is the genre name, artist id or track id the page was opened for.
	Key   string
	Track catalog.Track
	List  tracklist.Model
}

// NavigationManager keeps the page history. The first page is home and is
// never popped.
type NavigationManager struct {
	stack []*Page
}

// NewNavigationManager creates a history holding the home page.
func NewNavigationManager(home *Page) NavigationManager {
	return NavigationManager{stack: []*Page{home}}
}

// Current returns the visible page.
func (n *NavigationManager) Current() *Page {
	return n.stack[len(n.stack)-1]
}

// Home returns the root page.
func (n *NavigationManager) Home() *Page {
	return n.stack[0]
}

// Push makes p the visible page.
func (n *NavigationManager) Push(p *Page) {
	n.stack = append(n.stack, p)
}

// Replace swaps the visible page for p. Home is never replaced.
func (n *NavigationManager) Replace(p *Page) {
	if len(n.stack) == 1 {
		n.Push(p)
		return
	}
	n.stack[len(n.stack)-1] = p
}

// Pop returns to the previous page. It reports false on the home page.
func (n *NavigationManager) Pop() (*Page, bool) {
	if len(n.stack) == 1 {
		return nil, false
	}
	top := n.Current()
	n.stack = n.stack[:len(n.stack)-1]
	return top, true
}

// Depth returns the number of pages in the history.
func (n *NavigationManager) Depth() int {
	return len(n.stack)
}

// Crumbs returns the breadcrumb trail, home first.
func (n *NavigationManager) Crumbs() []string {
	crumbs := make([]string, len(n.stack))
	for i, p := range n.stack {
		crumbs[i] = p.Crumb
	}
	return crumbs
}

// Pages returns the history, home first.
func (n *NavigationManager) Pages() []*Page {
	return n.stack
}
