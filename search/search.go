package search

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"pound/buffer"
	"pound/highlight"
	"pound/view"
)

type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

type overlay struct {
	row int
	hl  []highlight.Tag
}

// State is the incremental search state of one find session. At most one
// row carries the SearchMatch overlay; its original tags are kept in saved.
type State struct {
	XIndex, YIndex int
	XDir, YDir     Direction
	saved          *overlay
}

// Reset clears the match position and directions. Any overlay must have
// been restored first.
func (s *State) Reset() {
	*s = State{}
}

// Restore puts back the tags the last overlay replaced.
func (s *State) Restore(doc *buffer.Document) {
	if s.saved == nil {
		return
	}
	doc.SetHighlight(s.saved.row, s.saved.hl)
	s.saved = nil
}

// HasOverlay reports whether a row is currently showing a match.
func (s *State) HasOverlay() bool { return s.saved != nil }

// Step runs one keystroke of the search for query and reports whether a
// match was found. Escape and Enter end the session: state is reset and no
// search happens. The scan never wraps around the document.
func (s *State) Step(query string, ev *tcell.EventKey, doc *buffer.Document, v *view.Viewport) bool {
	s.Restore(doc)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		s.Reset()
		return false
	}

	s.XDir, s.YDir = None, None
	switch ev.Key() {
	case tcell.KeyDown:
		s.YDir = Forward
	case tcell.KeyUp:
		s.YDir = Backward
	case tcell.KeyLeft:
		s.XDir = Backward
	case tcell.KeyRight:
		s.XDir = Forward
	}

	needle := []rune(query)
	if len(needle) == 0 {
		return false
	}

	n := doc.Len()
	for i := 0; i < n; i++ {
		y, ok := s.nextRow(i, n)
		if !ok {
			break
		}

		render := doc.Row(y).Render()
		var x int
		switch s.XDir {
		case None:
			x = index(render, needle, 0)
		case Forward:
			x = index(render, needle, min(len(render), s.XIndex+1))
		case Backward:
			x = lastIndex(render[:min(max(s.XIndex, 0), len(render))], needle)
		}
		if x < 0 {
			if s.XDir != None {
				break
			}
			continue
		}

		s.mark(doc, y, x, len(needle))
		s.XIndex, s.YIndex = x, y
		v.Cursor = buffer.Cursor{X: doc.Row(y).RenderXToCursorX(x), Y: y}
		// push the offset past the end so the next scroll lands on the match
		v.RowOffset = n
		return true
	}
	return false
}

// nextRow picks the row for iteration i: every row in order with no
// direction, the current row when only refining horizontally, otherwise one
// step further from YIndex.
func (s *State) nextRow(i, n int) (int, bool) {
	var y int
	switch s.YDir {
	case None:
		if s.XDir == None {
			s.YIndex = i
		}
		y = s.YIndex
	case Forward:
		y = s.YIndex + i + 1
	case Backward:
		y = s.YIndex - i - 1
	}
	if y < 0 || y >= n {
		return 0, false
	}
	return y, true
}

func (s *State) mark(doc *buffer.Document, y, x, length int) {
	hl := doc.Highlight(y)
	s.saved = &overlay{row: y, hl: slices.Clone(hl)}
	for j := x; j < x+length && j < len(hl); j++ {
		hl[j] = highlight.TagSearchMatch
	}
	doc.SetHighlight(y, hl)
}

func index(s, sub []rune, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if slices.Equal(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func lastIndex(s, sub []rune) int {
	for i := len(s) - len(sub); i >= 0; i-- {
		if slices.Equal(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}
