package editor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"pound/buffer"
	"pound/clipboardx"
	"pound/config"
	"pound/highlight"
	"pound/search"
	"pound/term"
	"pound/ui"
	"pound/view"
)

const (
	version     = "0.1.0"
	helpMessage = "HELP: Ctrl-S = Save | Ctrl-Q = Quit | Ctrl-F = Find"
)

// Editor is the one editing session: the open document, its viewport and
// the modal state driven by key events.
type Editor struct {
	term     term.Terminal
	cfg      *config.Config
	registry *highlight.Registry
	clip     clipboardx.Clipboard

	doc       *buffer.Document
	view      *view.Viewport
	statusBar *ui.StatusBar
	message   ui.MessageBar
	prompt    *ui.Prompt
	search    search.State

	quitTimes int
	quit      bool

	// File watching
	fileWatcher        *fsnotify.Watcher
	watchedPath        string
	lastSaveTime       time.Time
	externallyModified bool
}

func New(cfg *config.Config, t term.Terminal) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	registry := highlight.NewRegistry(cfg.GetTheme())
	return &Editor{
		term:      t,
		cfg:       cfg,
		registry:  registry,
		clip:      &clipboardx.System{Term: t},
		doc:       buffer.New(registry.Plain()),
		view:      view.New(80, 22),
		statusBar: &ui.StatusBar{},
		quitTimes: cfg.QuitTimes,
	}
}

// SetClipboard replaces the system clipboard.
func (e *Editor) SetClipboard(c clipboardx.Clipboard) {
	e.clip = c
}

func (e *Editor) syntaxFor(path string) highlight.Syntax {
	if s := e.registry.SelectPath(path); s != nil {
		return s
	}
	return e.registry.Plain()
}

// Open loads path into the session. A path that does not exist yet opens
// an empty document that will be created on the first save.
func (e *Editor) Open(path string) error {
	if path == "" {
		return nil
	}
	s := e.syntaxFor(path)
	doc, err := buffer.Load(path, s)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc = buffer.New(s)
		doc.SetPath(path)
		e.setTemporaryMessage("New file: " + filepath.Base(path))
	case err != nil:
		return err
	}
	e.doc = doc
	e.view.Cursor = buffer.Cursor{}
	e.RestoreSession()
	e.watch(path)
	return nil
}

// Run draws a frame, waits for a key and applies it, until the user quits,
// ctx is cancelled or the terminal fails.
func (e *Editor) Run(ctx context.Context) error {
	defer e.closeWatcher()
	defer e.SaveSession()

	if e.message.Text == "" {
		e.setTemporaryMessage(helpMessage)
	}

	for !e.quit {
		if err := e.refreshScreen(); err != nil {
			return err
		}
		ev, err := e.waitKey(ctx)
		if err != nil {
			return err
		}
		if ev == nil {
			return nil
		}
		e.handleKey(ev)
	}
	return nil
}

// waitKey polls for the next key. Between polls it picks up file watch
// events and message expiry, redrawing only when one of them changed
// something. A nil event means ctx is done.
func (e *Editor) waitKey(ctx context.Context) (*tcell.EventKey, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, nil
		default:
		}

		ev, err := e.term.ReadKey(e.cfg.KeyPollInterval())
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		if ev != nil {
			return ev, nil
		}

		changed := e.drainWatcher()
		if e.clearExpiredMessages() {
			changed = true
		}
		if changed {
			if err := e.refreshScreen(); err != nil {
				return nil, err
			}
		}
	}
}

func (e *Editor) setTemporaryMessage(msg string) {
	e.message.Set(msg, false)
}

func (e *Editor) setTemporaryError(msg string) {
	e.message.Set(msg, true)
}

// clearExpiredMessages drops a message past its lifetime and reports
// whether it did.
func (e *Editor) clearExpiredMessages() bool {
	if e.message.Text == "" || e.prompt != nil {
		return false
	}
	if e.message.Visible(time.Now(), e.cfg.MessageTTL()) != "" {
		return false
	}
	e.message.Clear()
	return true
}
