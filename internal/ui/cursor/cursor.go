// Package cursor tracks a selected row and scroll offset for list panels.
package cursor

// Cursor holds a selection position and the scroll offset needed to keep
// it visible inside a viewport. List length and viewport height are passed
// to methods rather than stored, since both change as the panel resizes.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// New returns a cursor at the top of the list. margin is the number of
// rows kept visible above and below the selection while scrolling.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected row index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the selection by delta rows, clamped to [0, n), and scrolls
// to keep it visible in a viewport of height rows.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump moves the selection to pos, clamped to [0, n).
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		c.pos = 0
		c.offset = 0
		return
	}
	c.pos = clamp(pos, 0, n-1)
	c.EnsureVisible(n, height)
}

// JumpStart moves the selection to the first row.
func (c *Cursor) JumpStart(n, height int) {
	c.Jump(0, n, height)
}

// JumpEnd moves the selection to the last row.
func (c *Cursor) JumpEnd(n, height int) {
	c.Jump(n-1, n, height)
}

// EnsureVisible adjusts the offset so the selection stays within the
// viewport, honoring the scroll margin where the list allows it.
func (c *Cursor) EnsureVisible(n, height int) {
	if height <= 0 || n == 0 {
		c.offset = 0
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = c.pos - c.margin
	}
	if c.pos > c.offset+height-1-c.margin {
		c.offset = c.pos - height + 1 + c.margin
	}
	maxOffset := n - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	c.offset = clamp(c.offset, 0, maxOffset)
}

// ClampToBounds pulls the selection and offset back into range after the
// list shrinks.
func (c *Cursor) ClampToBounds(n, height int) {
	c.Jump(c.pos, n, height)
}

// VisibleRange returns the half-open interval of row indices to render
// for a viewport of height rows.
func (c Cursor) VisibleRange(n, height int) (start, end int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	end = c.offset + height
	if end > n {
		end = n
	}
	return c.offset, end
}

// HandleKey applies a navigation key and reports whether it was handled.
// Supported keys: j/down, k/up, g/home, G/end, ctrl+d and ctrl+u for half
// a page at a time.
func (c *Cursor) HandleKey(key string, n, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, n, height)
	case "k", "up":
		c.Move(-1, n, height)
	case "g", "home":
		c.JumpStart(n, height)
	case "G", "end":
		c.JumpEnd(n, height)
	case "ctrl+d":
		c.Move(height/2, n, height)
	case "ctrl+u":
		c.Move(-height/2, n, height)
	default:
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
