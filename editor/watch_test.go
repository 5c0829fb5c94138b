package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pound/buffer"
)

func openWatched(t *testing.T, content string) (*Editor, *fakeTerminal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg := testConfig()
	cfg.WatchFile = true
	ft := newFakeTerminal()
	e := New(cfg, ft)
	t.Cleanup(e.closeWatcher)
	if err := e.Open(path); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if e.fileWatcher == nil {
		t.Fatalf("expected a file watcher")
	}
	return e, ft, path
}

// drainUntil polls the watcher until cond holds or two seconds pass.
func drainUntil(t *testing.T, e *Editor, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		e.drainWatcher()
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s (message %q)", what, e.message.Text)
}

func firstRow(e *Editor) string {
	if row := e.doc.Row(0); row != nil {
		return row.String()
	}
	return ""
}

func TestWatchReloadsCleanDocument(t *testing.T) {
	e, _, path := openWatched(t, "old")
	e.view.Cursor = buffer.Cursor{X: 3, Y: 0}

	if err := os.WriteFile(path, []byte("n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	drainUntil(t, e, "reload", func() bool { return firstRow(e) == "n" })

	if e.message.Text != "Reloaded a.txt" {
		t.Fatalf("unexpected message %q", e.message.Text)
	}
	if e.view.Cursor.Y != 0 || e.view.Cursor.X > 1 {
		t.Fatalf("cursor not clamped to the new content: %+v", e.view.Cursor)
	}
	if e.doc.IsDirty() {
		t.Fatalf("reloaded document should be clean")
	}
}

func TestWatchFollowsReplaceByRename(t *testing.T) {
	e, _, path := openWatched(t, "old")

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("new"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	drainUntil(t, e, "reload after rename", func() bool { return firstRow(e) == "new" })

	if err := os.WriteFile(path, []byte("newer"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	drainUntil(t, e, "reload after second write", func() bool { return firstRow(e) == "newer" })
}

func TestWatchMarksDirtyDocument(t *testing.T) {
	e, ft, path := openWatched(t, "old")
	e.view.Cursor = e.doc.InsertChar(buffer.Cursor{}, 'x')

	if err := os.WriteFile(path, []byte("theirs"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	drainUntil(t, e, "external change flag", func() bool { return e.externallyModified })

	if firstRow(e) != "xold" {
		t.Fatalf("dirty document was replaced: %q", firstRow(e))
	}
	if !strings.Contains(e.message.Text, "modified externally") {
		t.Fatalf("unexpected message %q", e.message.Text)
	}
	if err := e.refreshScreen(); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if !strings.Contains(ft.lastFrame(), "[changed on disk]") {
		t.Fatalf("status bar lacks the changed-on-disk marker")
	}

	e.writeDocument()
	if e.externallyModified {
		t.Fatalf("save should clear the changed-on-disk marker")
	}
}

func TestWatchIgnoresOwnSave(t *testing.T) {
	e, _, _ := openWatched(t, "old")
	e.view.Cursor = e.doc.InsertChar(buffer.Cursor{}, 'x')
	e.writeDocument()
	want := e.message.Text
	if !strings.HasSuffix(want, "bytes written to disk") {
		t.Fatalf("unexpected save message %q", want)
	}

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		e.drainWatcher()
		time.Sleep(10 * time.Millisecond)
	}
	if e.message.Text != want || e.externallyModified {
		t.Fatalf("own save was reported as external: %q", e.message.Text)
	}
}

func TestWatchRemoveThenRecreate(t *testing.T) {
	e, _, path := openWatched(t, "old")

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	drainUntil(t, e, "delete warning", func() bool {
		return strings.Contains(e.message.Text, "deleted externally")
	})
	if firstRow(e) != "old" {
		t.Fatalf("removal should keep the document, got %q", firstRow(e))
	}

	if err := os.WriteFile(path, []byte("back"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	drainUntil(t, e, "reload after recreate", func() bool { return firstRow(e) == "back" })
}

func TestWatchIgnoresSiblings(t *testing.T) {
	e, _, path := openWatched(t, "old")
	e.message.Clear()

	sibling := filepath.Join(filepath.Dir(path), "b.txt")
	if err := os.WriteFile(sibling, []byte("other"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		e.drainWatcher()
		time.Sleep(10 * time.Millisecond)
	}
	if e.message.Text != "" || firstRow(e) != "old" {
		t.Fatalf("sibling change leaked: message %q row %q", e.message.Text, firstRow(e))
	}
}
