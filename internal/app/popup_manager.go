package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chillibeats/chilli/internal/ui/confirm"
	"github.com/chillibeats/chilli/internal/ui/helpbindings"
	"github.com/chillibeats/chilli/internal/ui/popup"
	"github.com/chillibeats/chilli/internal/ui/searchpopup"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupConfirm
	PopupSearch
)

// PopupManager manages all modal popups.
type PopupManager struct {
	help     helpbindings.Model
	showHelp bool
	confirm  confirm.Model
	search   *searchpopup.Model
	searcher searchpopup.Searcher

	width  int
	height int
}

// NewPopupManager creates a PopupManager whose search popup queries searcher.
func NewPopupManager(searcher searchpopup.Searcher) PopupManager {
	return PopupManager{
		help:     helpbindings.New(),
		confirm:  confirm.New(),
		searcher: searcher,
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.help.SetSize(width, height)
	p.confirm.SetSize(width, height)
	if p.search != nil {
		p.search.SetSize(p.searchSize())
	}
}

// ActivePopup returns which popup is currently active, highest priority first.
func (p *PopupManager) ActivePopup() PopupType {
	switch {
	case p.confirm.Active():
		return PopupConfirm
	case p.showHelp:
		return PopupHelp
	case p.search != nil:
		return PopupSearch
	}
	return PopupNone
}

// ShowHelp opens the key binding list for the given contexts.
func (p *PopupManager) ShowHelp(contexts []string) {
	p.help.SetContexts(contexts)
	p.help.SetSize(p.width, p.height)
	p.showHelp = true
}

// HideHelp closes the help popup.
func (p *PopupManager) HideHelp() {
	p.showHelp = false
}

// ShowConfirm opens a yes/no question. context comes back in the result.
func (p *PopupManager) ShowConfirm(title, message string, context any) {
	p.confirm.Show(title, message, context, p.width, p.height)
}

// ShowSearch opens a fresh search popup and returns its init command.
func (p *PopupManager) ShowSearch() tea.Cmd {
	if p.searcher == nil {
		return nil
	}
	p.search = searchpopup.New(p.searcher)
	p.search.SetSize(p.searchSize())
	return p.search.Init()
}

// HideSearch closes the search popup.
func (p *PopupManager) HideSearch() {
	p.search = nil
}

// Search returns the open search popup, or nil.
func (p *PopupManager) Search() *searchpopup.Model {
	return p.search
}

// searchSize is the content area inside the bordered search box.
func (p *PopupManager) searchSize() (width, height int) {
	w := p.width * popup.SizeSearch.WidthPct / 100
	if popup.SizeSearch.MaxWidth > 0 {
		w = min(w, popup.SizeSearch.MaxWidth)
	}
	h := p.height * popup.SizeSearch.HeightPct / 100
	// border plus padding
	return max(w-6, 10), max(h-4, 4)
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *PopupManager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	var cmd tea.Cmd
	switch p.ActivePopup() {
	case PopupConfirm:
		_, cmd = p.confirm.Update(msg)
	case PopupHelp:
		_, cmd = p.help.Update(msg)
	case PopupSearch:
		_, cmd = p.search.Update(msg)
	default:
		return false, nil
	}
	return true, cmd
}

// Update forwards non-key messages (cursor blink) to the search input.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	if p.search == nil {
		return nil
	}
	_, cmd := p.search.Update(msg)
	return cmd
}

// RenderOverlay renders active popups on top of the base view.
func (p *PopupManager) RenderOverlay(base string) string {
	if p.search != nil {
		view := popup.RenderBordered(p.search.View(), p.width, p.height, popup.SizeSearch)
		base = popup.Compose(base, view, p.width, p.height)
	}
	if p.showHelp {
		view := popup.RenderBordered(p.help.View(), p.width, p.height, popup.SizeAuto)
		base = popup.Compose(base, view, p.width, p.height)
	}
	if p.confirm.Active() {
		view := popup.RenderBordered(p.confirm.View(), p.width, p.height, popup.SizeAuto)
		base = popup.Compose(base, view, p.width, p.height)
	}
	return base
}
