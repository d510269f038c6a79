// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the layout switches to narrow mode.
// In narrow mode, the queue panel is displayed below the page instead of beside it.
const NarrowThreshold = 100

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight     int
	MiniPlayerHeight int // 0 when the mini player is hidden
	StatusHeight     int // 0 when there is no status message
}

// ContentHeight calculates the available height for the main content area
// (page + queue).
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.MiniPlayerHeight-opts.StatusHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// PageHeight calculates the available height for the page.
// In narrow mode with queue visible, returns 2/3 of content height.
func PageHeight(contentHeight int, narrowMode, queueVisible bool) int {
	if narrowMode && queueVisible {
		return contentHeight * 2 / 3
	}
	return contentHeight
}

// QueueHeight calculates the available height for the queue panel.
// In narrow mode the queue is stacked below the page and gets the rest;
// otherwise it sits beside the page with the same height.
func QueueHeight(contentHeight int, narrowMode, queueVisible bool) int {
	if narrowMode {
		return contentHeight - PageHeight(contentHeight, narrowMode, queueVisible)
	}
	return contentHeight
}

// PageWidth calculates the available width for the page.
// With the queue beside it, the page gets 2/3 of the width.
func PageWidth(windowWidth int, narrowMode, queueVisible bool) int {
	if queueVisible && !narrowMode {
		return windowWidth * 2 / 3
	}
	return windowWidth
}

// QueueWidth calculates the width for the queue panel.
func QueueWidth(windowWidth int, narrowMode, queueVisible bool) int {
	if narrowMode {
		return windowWidth
	}
	return windowWidth - PageWidth(windowWidth, narrowMode, queueVisible)
}
