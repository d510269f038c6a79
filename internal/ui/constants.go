// Package ui holds what the UI components share: the Base embed and the
// panel geometry constants.
package ui

const (
	// ScrollMargin is how many rows stay visible above and below a list cursor.
	ScrollMargin = 3

	// A bordered panel loses two columns and two rows to its border.
	BorderWidth  = 2
	BorderHeight = 2

	// HeaderHeight is the title row plus the separator under it.
	HeaderHeight = 2

	// PanelOverhead is the number of rows in a panel that are not list items.
	PanelOverhead = BorderHeight + HeaderHeight

	// MinProgressBarWidth is the narrowest progress bar worth drawing.
	MinProgressBarWidth = 5

	// MinFullPlayerWidth is the narrowest inner width for the full player.
	MinFullPlayerWidth = 40
)
