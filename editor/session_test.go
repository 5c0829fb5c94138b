package editor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pound/buffer"
	"pound/config"
)

func TestSaveSessionWritesCursor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg := config.Default()
	cfg.WatchFile = false
	e := New(cfg, newFakeTerminal())
	if err := e.Open(path); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	e.view.Cursor = buffer.Cursor{X: 2, Y: 1}
	e.SaveSession()

	data, err := os.ReadFile(sessionPath(path))
	if err != nil {
		t.Fatalf("expected session file, read failed: %v", err)
	}
	var got SessionData
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Path != path || got.CursorX != 2 || got.CursorY != 1 {
		t.Fatalf("unexpected session data: %+v", got)
	}
}

func TestOpenRestoresClampedCursor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "b.txt")
	if err := os.WriteFile(path, []byte("ab\ncd"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.MkdirAll(sessionDir(), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	data, _ := json.Marshal(SessionData{Path: path, CursorX: 9, CursorY: 1})
	if err := os.WriteFile(sessionPath(path), data, 0o644); err != nil {
		t.Fatalf("write session failed: %v", err)
	}

	cfg := config.Default()
	cfg.WatchFile = false
	e := New(cfg, newFakeTerminal())
	if err := e.Open(path); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if e.view.Cursor != (buffer.Cursor{X: 2, Y: 1}) {
		t.Fatalf("expected clamped cursor (2,1), got %+v", e.view.Cursor)
	}
}

func TestSessionDisabled(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	cfg.WatchFile = false
	cfg.RememberPosition = false
	e := New(cfg, newFakeTerminal())
	e.doc.SetPath(filepath.Join(t.TempDir(), "c.txt"))
	e.SaveSession()

	if _, err := os.Stat(sessionDir()); !os.IsNotExist(err) {
		t.Fatalf("expected no session directory, stat err=%v", err)
	}
}
