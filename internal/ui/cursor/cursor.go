// Package cursor tracks the selected row and scroll offset of a list whose
// length and viewport height are owned by the caller.
package cursor

// Cursor is a selected row plus the first visible row. margin is how many
// rows to keep visible above and below the selection while scrolling.
type Cursor struct {
	pos, offset, margin int
}

func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int    { return c.pos }
func (c Cursor) Offset() int { return c.offset }

// Move shifts the selection by delta rows.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump selects row pos, clamped to [0, n), and scrolls it into view.
// It does nothing on an empty list.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		return
	}
	c.pos = min(max(pos, 0), n-1)
	c.scroll(n, height)
}

func (c *Cursor) JumpEnd(n, height int) {
	c.Jump(n-1, n, height)
}

// Follow selects pos only when it is a row of the list, so callers can pass
// the index of the playing entry unchecked.
func (c *Cursor) Follow(pos, n, height int) {
	if pos >= 0 && pos < n {
		c.Jump(pos, n, height)
	}
}

// Reset selects the first row and scrolls to the top.
func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
}

// ClampToBounds pulls the selection back inside a list that shrank to n rows
// and reports whether it moved.
func (c *Cursor) ClampToBounds(n int) bool {
	old := *c
	if n == 0 {
		c.Reset()
		return old.pos != 0 || old.offset != 0
	}
	c.pos = min(c.pos, n-1)
	c.offset = min(c.offset, c.pos)
	return c.pos != old.pos
}

// VisibleRange returns the rows [start, end) that fit in height.
func (c Cursor) VisibleRange(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, n)
	return start, min(start+height, n)
}

// HandleKey applies the shared list motions (j/k, arrows, g/G, home/end and
// ctrl+d/ctrl+u half pages) and reports whether key was one of them.
func (c *Cursor) HandleKey(key string, n, height int) bool {
	half := max(height/2, 1)
	switch key {
	case "j", "down":
		c.Move(1, n, height)
	case "k", "up":
		c.Move(-1, n, height)
	case "g", "home":
		c.Reset()
	case "G", "end":
		c.JumpEnd(n, height)
	case "ctrl+d":
		c.Move(half, n, height)
	case "ctrl+u":
		c.Move(-half, n, height)
	default:
		return false
	}
	return true
}

// scroll adjusts the offset so the selection sits at least margin rows from
// either edge of the viewport, without scrolling past the end of the list.
func (c *Cursor) scroll(n, height int) {
	if height <= 0 {
		return
	}
	m := min(c.margin, (height-1)/2)
	if top := c.pos - m; top < c.offset {
		c.offset = top
	}
	if bottom := c.pos + m + 1; bottom > c.offset+height {
		c.offset = bottom - height
	}
	c.offset = min(max(c.offset, 0), max(n-height, 0))
}
