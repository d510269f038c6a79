package ui

// Base carries the size and focus every panel and popup needs. Embed it to
// get SetSize, SetFocused and the matching getters.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }
func (b Base) IsFocused() bool          { return b.focused }

func (b *Base) SetSize(width, height int) { b.width, b.height = width, height }
func (b Base) Size() (width, height int)  { return b.width, b.height }
func (b Base) Width() int                 { return b.width }
func (b Base) Height() int                { return b.height }

// ListHeight is the number of rows left for items once overhead rows of
// border and header are taken out.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
