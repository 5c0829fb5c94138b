package buffer

import (
	"slices"

	"pound/highlight"
)

// TabStop is the column multiple a tab expands to.
const TabStop = 8

// Row is one line of a document: its raw characters, the tab-expanded text
// that is drawn, and one highlight tag per drawn character.
type Row struct {
	chars     []rune
	render    []rune
	highlight []highlight.Tag
}

func newRow(s string) *Row {
	r := &Row{chars: []rune(s)}
	r.update()
	return r
}

// Render expands tabs to the next multiple of TabStop. Every other
// character is copied through.
func Render(raw []rune) []rune {
	out := make([]rune, 0, len(raw))
	for _, c := range raw {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%TabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// update re-renders the row. The highlight array is resized to match and
// must be recomputed by the caller's syntax.
func (r *Row) update() {
	r.render = Render(r.chars)
	r.highlight = highlight.Fill(len(r.render))
}

func (r *Row) Len() int { return len(r.chars) }

func (r *Row) String() string { return string(r.chars) }

func (r *Row) Render() []rune { return r.render }

func (r *Row) Highlight() []highlight.Tag { return r.highlight }

// CursorXToRenderX maps a raw column to a render column.
func (r *Row) CursorXToRenderX(cx int) int {
	rx := 0
	for i := 0; i < cx && i < len(r.chars); i++ {
		if r.chars[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RenderXToCursorX maps a render column back to the raw column whose
// expansion covers it. Columns past the end map to Len().
func (r *Row) RenderXToCursorX(rx int) int {
	cur := 0
	for cx, c := range r.chars {
		if c == '\t' {
			cur += (TabStop - 1) - (cur % TabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}

func (r *Row) insertChar(at int, ch rune) {
	at = min(max(at, 0), len(r.chars))
	r.chars = slices.Insert(r.chars, at, ch)
	r.update()
}

func (r *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = slices.Delete(r.chars, at, at+1)
	r.update()
	return true
}

func (r *Row) appendChars(chars []rune) {
	r.chars = append(r.chars, chars...)
	r.update()
}

// setHighlight stores tags, padding with Normal or truncating so the array
// always has one tag per render character.
func (r *Row) setHighlight(tags []highlight.Tag) {
	switch {
	case len(tags) == len(r.render):
		r.highlight = tags
	case len(tags) > len(r.render):
		r.highlight = tags[:len(r.render)]
	default:
		hl := highlight.Fill(len(r.render))
		copy(hl, tags)
		r.highlight = hl
	}
}
