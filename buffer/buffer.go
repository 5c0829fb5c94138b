package buffer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"pound/highlight"
)

// ErrNoPath is returned by Save when the document has no backing file.
var ErrNoPath = errors.New("no file name specified")

// IOError reports a failed read or write of the backing file.
type IOError struct {
	Op   string // "load" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Document is the ordered row store of the open file.
type Document struct {
	rows   []*Row
	path   string
	dirty  int
	syntax highlight.Syntax
}

// New returns an empty document highlighted by s. A nil syntax means plain
// text.
func New(s highlight.Syntax) *Document {
	if s == nil {
		s = &highlight.Plain{}
	}
	return &Document{syntax: s}
}

// Load reads path into a new document. Rows are split on '\n' with a
// trailing '\r' dropped; a final newline does not add an empty row.
func Load(path string, s highlight.Syntax) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}

	d := New(s)
	d.path = path

	content := string(data)
	content = strings.TrimSuffix(content, "\n")
	if len(data) > 0 {
		for _, line := range strings.Split(content, "\n") {
			d.rows = append(d.rows, newRow(strings.TrimSuffix(line, "\r")))
		}
	}
	for i := range d.rows {
		d.syntax.UpdateSyntax(i, d)
	}
	return d, nil
}

func (d *Document) Len() int { return len(d.rows) }

// Row returns row i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// RowLen is the raw length of row i, zero past the end.
func (d *Document) RowLen(i int) int {
	if r := d.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

func (d *Document) Path() string { return d.path }

func (d *Document) SetPath(path string) { d.path = path }

// FileName is the base name of the path, or "" when there is none.
func (d *Document) FileName() string {
	if d.path == "" {
		return ""
	}
	return filepath.Base(d.path)
}

func (d *Document) Dirty() int { return d.dirty }

func (d *Document) IsDirty() bool { return d.dirty > 0 }

func (d *Document) Syntax() highlight.Syntax { return d.syntax }

// SetSyntax switches highlighter and recomputes every row with it.
func (d *Document) SetSyntax(s highlight.Syntax) {
	if s == nil {
		s = &highlight.Plain{}
	}
	d.syntax = s
	for i := range d.rows {
		d.syntax.UpdateSyntax(i, d)
	}
}

// RowRender and SetHighlight let the syntax read and retag rows.

func (d *Document) RowRender(at int) []rune {
	if r := d.Row(at); r != nil {
		return r.render
	}
	return nil
}

func (d *Document) SetHighlight(at int, tags []highlight.Tag) {
	if r := d.Row(at); r != nil {
		r.setHighlight(tags)
	}
}

// Highlight returns a copy of row i's highlight array.
func (d *Document) Highlight(i int) []highlight.Tag {
	if r := d.Row(i); r != nil {
		return slices.Clone(r.highlight)
	}
	return nil
}

func (d *Document) touch(i int) {
	d.syntax.UpdateSyntax(i, d)
	d.dirty++
}

// InsertRow inserts a new row holding content before index i.
func (d *Document) InsertRow(i int, content string) {
	if i < 0 || i > len(d.rows) {
		return
	}
	d.rows = slices.Insert(d.rows, i, newRow(content))
	d.touch(i)
}

// InsertChar inserts ch at c and returns the cursor after it. Typing on the
// virtual line past the end appends a row first.
func (d *Document) InsertChar(c Cursor, ch rune) Cursor {
	c = c.Clamp(d)
	if c.Y == len(d.rows) {
		d.InsertRow(c.Y, "")
	}
	d.rows[c.Y].insertChar(c.X, ch)
	d.touch(c.Y)
	return Cursor{X: c.X + 1, Y: c.Y}
}

// InsertNewline splits the row at c and returns the start of the new row.
func (d *Document) InsertNewline(c Cursor) Cursor {
	c = c.Clamp(d)
	if c.X == 0 {
		d.InsertRow(c.Y, "")
	} else {
		d.SplitRow(c.Y, c.X)
	}
	return Cursor{X: 0, Y: c.Y + 1}
}

// SplitRow moves the characters of row i from x onward into a new row i+1.
// Both rows are retagged.
func (d *Document) SplitRow(i, x int) {
	r := d.Row(i)
	if r == nil {
		return
	}
	x = min(max(x, 0), r.Len())
	tail := string(r.chars[x:])
	r.chars = slices.Clone(r.chars[:x])
	r.update()
	d.rows = slices.Insert(d.rows, i+1, newRow(tail))
	d.syntax.UpdateSyntax(i, d)
	d.touch(i + 1)
}

// JoinRow appends row i onto row i-1 and removes row i.
func (d *Document) JoinRow(i int) {
	if i <= 0 || i >= len(d.rows) {
		return
	}
	cur := d.rows[i]
	d.rows = slices.Delete(d.rows, i, i+1)
	d.rows[i-1].appendChars(cur.chars)
	d.touch(i - 1)
}

// DeleteChar deletes the character before c, joining with the previous row
// at column 0, and returns the new cursor.
func (d *Document) DeleteChar(c Cursor) Cursor {
	c = c.Clamp(d)
	if c.Y == len(d.rows) || (c.X == 0 && c.Y == 0) {
		return c
	}
	if c.X > 0 {
		if d.rows[c.Y].deleteChar(c.X - 1) {
			d.touch(c.Y)
		}
		return Cursor{X: c.X - 1, Y: c.Y}
	}
	prev := d.rows[c.Y-1].Len()
	d.JoinRow(c.Y)
	return Cursor{X: prev, Y: c.Y - 1}
}

// Bytes is the file content Save writes: the rows joined with '\n'.
func (d *Document) Bytes() []byte {
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.String()
	}
	return []byte(strings.Join(lines, "\n"))
}

// Save truncates and rewrites the backing file and returns the number of
// bytes written. The dirty counter resets only on success.
func (d *Document) Save() (int, error) {
	if d.path == "" {
		return 0, ErrNoPath
	}
	data := d.Bytes()
	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return 0, &IOError{Op: "write", Path: d.path, Err: err}
	}
	d.dirty = 0
	return len(data), nil
}
