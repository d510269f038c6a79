package app

import (
	"github.com/chillibeats/chilli/internal/ui/layout"
	"github.com/chillibeats/chilli/internal/ui/playerbar"
	"github.com/chillibeats/chilli/internal/ui/queuepanel"
)

const (
	headerHeight = 1
	statusHeight = 1
)

// LayoutManager manages window dimensions, playlist panel visibility and
// the playlist panel itself.
type LayoutManager struct {
	width        int
	height       int
	queueVisible bool
	queuePanel   queuepanel.Model
}

// NewLayoutManager creates a LayoutManager with a visible playlist panel.
func NewLayoutManager(queuePanel queuepanel.Model) LayoutManager {
	return LayoutManager{
		queueVisible: true,
		queuePanel:   queuePanel,
	}
}

// SetSize updates the window dimensions.
func (l *LayoutManager) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the window width.
func (l *LayoutManager) Width() int {
	return l.width
}

// Height returns the window height.
func (l *LayoutManager) Height() int {
	return l.height
}

// IsNarrowMode reports whether the playlist panel is stacked under the page.
func (l *LayoutManager) IsNarrowMode() bool {
	return layout.IsNarrowMode(l.width)
}

// IsQueueVisible reports whether the playlist panel is shown.
func (l *LayoutManager) IsQueueVisible() bool {
	return l.queueVisible
}

// ToggleQueue shows or hides the playlist panel.
func (l *LayoutManager) ToggleQueue() {
	l.queueVisible = !l.queueVisible
}

// QueuePanel returns a pointer to the playlist panel.
func (l *LayoutManager) QueuePanel() *queuepanel.Model {
	return &l.queuePanel
}

// ContentHeight is the height shared by the page and the playlist panel.
func (l *LayoutManager) ContentHeight() int {
	return layout.ContentHeight(l.height, layout.ContentOpts{
		HeaderHeight:     headerHeight,
		MiniPlayerHeight: playerbar.Height(playerbar.ModeMini),
		StatusHeight:     statusHeight,
	})
}

// PageWidth returns the page column width.
func (l *LayoutManager) PageWidth() int {
	return layout.PageWidth(l.width, l.IsNarrowMode(), l.queueVisible)
}

// PageHeight returns the page height.
func (l *LayoutManager) PageHeight() int {
	return layout.PageHeight(l.ContentHeight(), l.IsNarrowMode(), l.queueVisible)
}

// ResizeQueue sizes the playlist panel for the current layout.
func (l *LayoutManager) ResizeQueue() {
	narrow := l.IsNarrowMode()
	l.queuePanel.SetSize(
		layout.QueueWidth(l.width, narrow, l.queueVisible),
		layout.QueueHeight(l.ContentHeight(), narrow, l.queueVisible),
	)
}
