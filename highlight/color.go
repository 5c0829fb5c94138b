package highlight

import (
	"bytes"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
)

var defaultForeground = ansi.Style{}.DefaultForegroundColor().String()

// Foreground returns the SGR sequence selecting c as the foreground color.
// The first 16 palette entries use the basic 30-37 and 90-97 forms.
func Foreground(c tcell.Color) string {
	if c == tcell.ColorDefault || c == tcell.ColorReset || !c.Valid() {
		return defaultForeground
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return ansi.Style{}.ForegroundColor(ansi.RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}).String()
	}
	idx := int(c - tcell.ColorValid)
	switch {
	case idx < 0 || idx > 255:
		return defaultForeground
	case idx < 16:
		return ansi.Style{}.ForegroundColor(ansi.BasicColor(idx)).String()
	}
	return ansi.Style{}.ForegroundColor(ansi.IndexedColor(idx)).String()
}

// ColorRow writes render to out, switching the foreground only where the
// color changes between adjacent characters, and resets it at the end.
func ColorRow(s Syntax, render []rune, tags []Tag, out *bytes.Buffer) {
	var current string
	for i, r := range render {
		tag := TagNormal
		if i < len(tags) {
			tag = tags[i]
		}
		seq := Foreground(s.SyntaxColor(tag))
		if seq != current {
			out.WriteString(seq)
			current = seq
		}
		out.WriteRune(r)
	}
	out.WriteString(defaultForeground)
}
