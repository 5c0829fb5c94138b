package ui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"pound/highlight"
)

var reverseVideo = ansi.Style{}.Reverse().String()

type StatusBar struct {
	Filename string // empty for an unnamed document
	Lines    int
	Row      int // 1-based cursor row
	Modified bool
	FileType string

	ExternallyModified bool // file changed on disk while the document had edits
}

func (s *StatusBar) left() string {
	name := s.Filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if s.Modified {
		modified = " (modified)"
	}
	if s.ExternallyModified {
		modified += " [changed on disk]"
	}
	return fmt.Sprintf("%s - %d lines%s", name, s.Lines, modified)
}

func (s *StatusBar) right() string {
	ft := s.FileType
	if ft == "" {
		ft = "no file type"
	}
	return fmt.Sprintf("%s | %d/%d", ft, s.Row, s.Lines)
}

// Render draws the bar in reverse video across width columns, the right
// segment flush against the edge when it fits.
func (s *StatusBar) Render(out *bytes.Buffer, width int) {
	left := runewidth.Truncate(s.left(), width, "")
	right := s.right()
	lw, rw := runewidth.StringWidth(left), runewidth.StringWidth(right)

	out.WriteString(reverseVideo)
	out.WriteString(left)
	if gap := width - lw - rw; gap >= 0 {
		out.WriteString(strings.Repeat(" ", gap))
		out.WriteString(right)
	} else {
		out.WriteString(strings.Repeat(" ", width-lw))
	}
	out.WriteString(ansi.ResetStyle)
	out.WriteString("\r\n")
}

// MessageBar holds one transient message and the time it was set.
type MessageBar struct {
	Text    string
	Time    time.Time
	IsError bool
}

func (m *MessageBar) Set(msg string, isError bool) {
	m.Text = msg
	m.Time = time.Now()
	m.IsError = isError
}

func (m *MessageBar) Clear() {
	*m = MessageBar{}
}

// Visible returns the message while it is younger than ttl.
func (m *MessageBar) Visible(now time.Time, ttl time.Duration) string {
	if m.Text == "" || now.Sub(m.Time) >= ttl {
		return ""
	}
	return m.Text
}

// Render clears the line and draws the live message clipped to width.
func (m *MessageBar) Render(out *bytes.Buffer, width int, now time.Time, ttl time.Duration) {
	out.WriteString(ansi.EraseLineRight)
	msg := runewidth.Truncate(m.Visible(now, ttl), width, "")
	if msg == "" {
		return
	}
	if m.IsError {
		out.WriteString(highlight.Foreground(tcell.ColorRed))
		out.WriteString(msg)
		out.WriteString(highlight.Foreground(tcell.ColorDefault))
		return
	}
	out.WriteString(msg)
}
