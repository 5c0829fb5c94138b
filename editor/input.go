package editor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"pound/term"
	"pound/ui"
	"pound/view"
)

func (e *Editor) handleKey(ev *tcell.EventKey) {
	ctrl, isCtrl := term.Ctrl(ev)

	// Every key but Ctrl+Q restarts the quit confirmation
	if !isCtrl || ctrl != 'q' || e.prompt != nil {
		e.quitTimes = e.cfg.QuitTimes
	}

	// An open prompt gets every key
	if e.prompt != nil {
		p := e.prompt
		if !p.HandleKey(ev) && e.prompt == p {
			e.setTemporaryMessage(p.Message())
		}
		return
	}

	if isCtrl {
		switch ctrl {
		case 'q':
			e.handleQuit()
		case 's':
			e.save()
		case 'f':
			e.find()
		case 'c':
			e.copyRow()
		case 'v':
			e.paste()
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		e.view.Move(view.Up, e.doc)
	case tcell.KeyDown:
		e.view.Move(view.Down, e.doc)
	case tcell.KeyLeft:
		e.view.Move(view.Left, e.doc)
	case tcell.KeyRight:
		e.view.Move(view.Right, e.doc)
	case tcell.KeyHome:
		e.view.Move(view.Home, e.doc)
	case tcell.KeyEnd:
		e.view.Move(view.End, e.doc)
	case tcell.KeyPgUp:
		e.view.Page(view.PageUp, e.doc)
	case tcell.KeyPgDn:
		e.view.Page(view.PageDown, e.doc)

	case tcell.KeyEnter:
		e.view.Cursor = e.doc.InsertNewline(e.view.Cursor)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.view.Cursor = e.doc.DeleteChar(e.view.Cursor)

	case tcell.KeyDelete:
		e.view.Move(view.Right, e.doc)
		e.view.Cursor = e.doc.DeleteChar(e.view.Cursor)

	case tcell.KeyTab:
		e.insertChar('\t')

	case tcell.KeyRune:
		if ev.Modifiers()&^tcell.ModShift == 0 {
			e.insertChar(ev.Rune())
		}
	}
}

func (e *Editor) insertChar(ch rune) {
	e.view.Cursor = e.doc.InsertChar(e.view.Cursor, ch)
}

// handleQuit counts down quit presses while the document has unsaved
// changes. With a clean document the first press quits.
func (e *Editor) handleQuit() {
	e.quitTimes--
	if !e.doc.IsDirty() || e.quitTimes <= 0 {
		e.quit = true
		return
	}
	e.setTemporaryError(fmt.Sprintf("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes))
}

// openPrompt starts a modal line input. The prompt is cleared from the
// message bar before onSubmit or onCancel run.
func (e *Editor) openPrompt(format string, onKey func(string, *tcell.EventKey), onSubmit func(string), onCancel func()) {
	p := ui.NewPrompt(format)
	p.OnKey = onKey
	p.OnSubmit = func(value string) {
		e.closePrompt()
		if onSubmit != nil {
			onSubmit(value)
		}
	}
	p.OnCancel = func() {
		e.closePrompt()
		if onCancel != nil {
			onCancel()
		}
	}
	e.prompt = p
	e.setTemporaryMessage(p.Message())
}

func (e *Editor) closePrompt() {
	e.prompt = nil
	e.message.Clear()
}

func (e *Editor) copyRow() {
	row := e.doc.Row(e.view.Cursor.Y)
	if row == nil {
		return
	}
	if err := e.clip.Copy(row.String()); err != nil {
		e.setTemporaryError("Copy: " + err.Error())
		return
	}
	e.setTemporaryMessage(fmt.Sprintf("Copied line %d", e.view.Cursor.Y+1))
}

// paste feeds clipboard text through the normal insert paths.
func (e *Editor) paste() {
	text, err := e.clip.Paste()
	if err != nil {
		e.setTemporaryError("Paste: " + err.Error())
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, ch := range text {
		switch ch {
		case '\n':
			e.view.Cursor = e.doc.InsertNewline(e.view.Cursor)
		case '\r':
		default:
			e.insertChar(ch)
		}
	}
}
