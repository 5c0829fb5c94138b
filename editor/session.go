package editor

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pound/buffer"
)

// SessionData is the position remembered for one file between runs.
type SessionData struct {
	Path      string `json:"path"`
	CursorX   int    `json:"cursor_x"`
	CursorY   int    `json:"cursor_y"`
	RowOffset int    `json:"row_offset"`
	ColOffset int    `json:"col_offset"`
}

func sessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "pound", "sessions")
}

func sessionPath(file string) string {
	hash := sha256.Sum256([]byte(file))
	return filepath.Join(sessionDir(), fmt.Sprintf("%x.json", hash[:8]))
}

// SaveSession records the cursor and scroll position of the open file.
func (e *Editor) SaveSession() {
	if !e.cfg.RememberPosition || e.doc.Path() == "" || sessionDir() == "" {
		return
	}
	abs, err := filepath.Abs(e.doc.Path())
	if err != nil {
		return
	}

	session := SessionData{
		Path:      abs,
		CursorX:   e.view.Cursor.X,
		CursorY:   e.view.Cursor.Y,
		RowOffset: e.view.RowOffset,
		ColOffset: e.view.ColOffset,
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return
	}
	os.MkdirAll(sessionDir(), 0755)
	os.WriteFile(sessionPath(abs), data, 0644)
}

// RestoreSession moves the cursor to where the open file was left, as far
// as the current content allows.
func (e *Editor) RestoreSession() bool {
	if !e.cfg.RememberPosition || e.doc.Path() == "" {
		return false
	}
	abs, err := filepath.Abs(e.doc.Path())
	if err != nil {
		return false
	}
	data, err := os.ReadFile(sessionPath(abs))
	if err != nil {
		return false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return false
	}
	if session.Path != abs {
		return false
	}

	e.view.Cursor = buffer.Cursor{X: session.CursorX, Y: session.CursorY}.Clamp(e.doc)
	e.view.RowOffset = max(0, min(session.RowOffset, e.view.Cursor.Y))
	e.view.ColOffset = max(0, session.ColOffset)
	return true
}
