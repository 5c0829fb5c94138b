package editor

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"pound/buffer"
)

// watch starts watching path for changes made outside the editor. The
// parent directory is watched rather than the file, so a replace by rename
// keeps being seen and a file that does not exist yet is picked up when it
// appears.
func (e *Editor) watch(path string) {
	if !e.cfg.WatchFile || path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	if abs == e.watchedPath {
		return
	}
	if e.fileWatcher == nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			// Graceful degradation - continue without watching
			return
		}
		e.fileWatcher = watcher
	}
	if e.watchedPath != "" {
		e.fileWatcher.Remove(filepath.Dir(e.watchedPath))
		e.watchedPath = ""
	}
	if err := e.fileWatcher.Add(filepath.Dir(abs)); err != nil {
		return
	}
	e.watchedPath = abs
}

func (e *Editor) closeWatcher() {
	if e.fileWatcher != nil {
		e.fileWatcher.Close()
		e.fileWatcher = nil
		e.watchedPath = ""
	}
}

// drainWatcher handles every pending watch event without blocking and
// reports whether any of them changed what is on screen.
func (e *Editor) drainWatcher() bool {
	if e.fileWatcher == nil {
		return false
	}
	changed := false
	for {
		select {
		case event, ok := <-e.fileWatcher.Events:
			if !ok {
				return changed
			}
			if e.handleFileWatchEvent(event) {
				changed = true
			}
		case err, ok := <-e.fileWatcher.Errors:
			if !ok {
				return changed
			}
			e.setTemporaryError("Watch error: " + err.Error())
			changed = true
		default:
			return changed
		}
	}
}

func (e *Editor) handleFileWatchEvent(event fsnotify.Event) bool {
	if e.watchedPath == "" || filepath.Clean(event.Name) != e.watchedPath {
		return false
	}
	name := filepath.Base(event.Name)

	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return false
		}
		// Allow 1 second grace period after our last save
		if !e.lastSaveTime.IsZero() && info.ModTime().Sub(e.lastSaveTime) <= time.Second {
			return false
		}
		if e.doc.IsDirty() || e.prompt != nil {
			e.externallyModified = true
			e.setTemporaryError("Warning: " + name + " was modified externally (unsaved changes)")
			return true
		}
		e.reload()
		return true

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		// The directory watch stays, so a file recreated under the same
		// name is still noticed.
		e.setTemporaryError("Warning: " + name + " was deleted externally")
		return true
	}
	return false
}

// reload replaces a clean document with the file's current content,
// keeping the cursor where it still fits.
func (e *Editor) reload() {
	doc, err := buffer.Load(e.doc.Path(), e.doc.Syntax())
	if err != nil {
		e.setTemporaryError("Reload failed: " + err.Error())
		return
	}
	e.doc = doc
	e.view.Cursor = e.view.Cursor.Clamp(doc)
	e.externallyModified = false
	e.setTemporaryMessage("Reloaded " + filepath.Base(doc.Path()))
}
