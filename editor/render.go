package editor

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"pound/highlight"
)

// refreshScreen builds one whole frame and hands it to the terminal in a
// single write.
func (e *Editor) refreshScreen() error {
	cols, rows, err := e.term.Size()
	if err != nil {
		return err
	}
	e.view.Resize(cols, rows-2)
	e.view.Scroll(e.doc)

	if e.prompt != nil {
		e.setTemporaryMessage(e.prompt.Message())
	}

	var out bytes.Buffer
	out.WriteString(ansi.HideCursor)
	out.WriteString(ansi.CursorHomePosition)
	e.drawRows(&out)
	e.drawStatusBar(&out)
	e.message.Render(&out, e.view.Width, time.Now(), e.cfg.MessageTTL())

	col, row := e.view.ScreenPosition()
	out.WriteString(ansi.CursorPosition(col+1, row+1))
	out.WriteString(ansi.ShowCursor)

	if _, err := e.term.Write(out.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func (e *Editor) drawRows(out *bytes.Buffer) {
	width, height := e.view.Width, e.view.Height
	for y := 0; y < height; y++ {
		fileRow := y + e.view.RowOffset
		if row := e.doc.Row(fileRow); row != nil {
			render, hl := row.Render(), row.Highlight()
			start := min(e.view.ColOffset, len(render))
			end := min(start+width, len(render))
			highlight.ColorRow(e.doc.Syntax(), render[start:end], hl[start:end], out)
		} else if e.doc.Len() == 0 && y == height/3 {
			e.drawWelcome(out, width)
		} else {
			out.WriteByte('~')
		}
		out.WriteString(ansi.EraseLineRight)
		out.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(out *bytes.Buffer, width int) {
	welcome := runewidth.Truncate("Pound editor -- version "+version, width, "")
	padding := (width - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		out.WriteByte('~')
		padding--
	}
	out.WriteString(strings.Repeat(" ", padding))
	out.WriteString(welcome)
}

func (e *Editor) drawStatusBar(out *bytes.Buffer) {
	e.statusBar.Filename = e.doc.FileName()
	e.statusBar.Lines = e.doc.Len()
	e.statusBar.Row = e.view.Cursor.Y + 1
	e.statusBar.Modified = e.doc.IsDirty()
	e.statusBar.FileType = e.doc.Syntax().FileType()
	e.statusBar.ExternallyModified = e.externallyModified
	e.statusBar.Render(out, e.view.Width)
}
