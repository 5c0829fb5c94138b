package buffer

// Cursor is a position in raw coordinates: X is the character offset into
// row Y. Y may equal the row count, the virtual line past the end.
type Cursor struct {
	X, Y int
}

// Clamp pulls c back inside d: Y into [0, Len()], X into the row's length.
func (c Cursor) Clamp(d *Document) Cursor {
	c.Y = min(max(c.Y, 0), d.Len())
	c.X = min(max(c.X, 0), d.RowLen(c.Y))
	return c
}
