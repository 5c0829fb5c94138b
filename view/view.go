package view

import "pound/buffer"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
)

// Viewport owns the cursor and the visible window over a document. The
// cursor is kept in raw coordinates; RenderX is derived on every Scroll.
type Viewport struct {
	Cursor    buffer.Cursor
	RenderX   int
	RowOffset int
	ColOffset int
	Width     int
	Height    int
}

func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize sets the text area size. Both dimensions are at least 1.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 1)
	v.Height = max(height, 1)
}

// Move applies one cursor step. X is clamped to the destination row after
// every move.
func (v *Viewport) Move(dir Direction, doc *buffer.Document) {
	c := &v.Cursor
	n := doc.Len()

	switch dir {
	case Up:
		if c.Y > 0 {
			c.Y--
		}
	case Down:
		if c.Y < n {
			c.Y++
		}
	case Left:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = doc.RowLen(c.Y)
		}
	case Right:
		if c.Y < n {
			if c.X < doc.RowLen(c.Y) {
				c.X++
			} else if c.Y+1 < n {
				c.Y++
				c.X = 0
			}
		}
	case Home:
		c.X = 0
	case End:
		c.X = doc.RowLen(c.Y)
	case PageUp, PageDown:
		v.Page(dir, doc)
		return
	}

	*c = c.Clamp(doc)
}

// Page moves to the top or bottom edge of the window and then replays
// Height single steps, so every step goes through the row-length clamp.
func (v *Viewport) Page(dir Direction, doc *buffer.Document) {
	step := Up
	if dir == PageUp {
		v.Cursor.Y = v.RowOffset
	} else {
		v.Cursor.Y = min(doc.Len(), v.RowOffset+v.Height-1)
		step = Down
	}
	v.Cursor = v.Cursor.Clamp(doc)
	for range v.Height {
		v.Move(step, doc)
	}
}

// Scroll recomputes RenderX and shifts the offsets just enough to keep the
// cursor inside the window.
func (v *Viewport) Scroll(doc *buffer.Document) {
	v.RenderX = 0
	if row := doc.Row(v.Cursor.Y); row != nil {
		v.RenderX = row.CursorXToRenderX(v.Cursor.X)
	}

	v.RowOffset = min(v.RowOffset, v.Cursor.Y)
	if v.Cursor.Y >= v.RowOffset+v.Height {
		v.RowOffset = v.Cursor.Y - v.Height + 1
	}

	v.ColOffset = min(v.ColOffset, v.RenderX)
	if v.RenderX >= v.ColOffset+v.Width {
		v.ColOffset = v.RenderX - v.Width + 1
	}
}

// ScreenPosition is the cursor's 0-based (col, row) inside the window.
func (v *Viewport) ScreenPosition() (int, int) {
	return v.RenderX - v.ColOffset, v.Cursor.Y - v.RowOffset
}
