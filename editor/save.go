package editor

import (
	"errors"
	"fmt"
	"time"

	"pound/buffer"
)

// save writes the document, asking for a file name first when it has none.
func (e *Editor) save() {
	if e.doc.Path() != "" {
		e.writeDocument()
		return
	}
	e.openPrompt("Save as: %s", nil, func(name string) {
		e.doc.SetPath(name)
		e.doc.SetSyntax(e.syntaxFor(name))
		e.writeDocument()
	}, func() {
		e.setTemporaryMessage("Save Aborted")
	})
}

func (e *Editor) writeDocument() {
	n, err := e.doc.Save()
	var ioErr *buffer.IOError
	switch {
	case errors.Is(err, buffer.ErrNoPath):
		e.setTemporaryMessage("Save Aborted")
		return
	case errors.As(err, &ioErr):
		e.setTemporaryError("Can't save! I/O error: " + ioErr.Err.Error())
		return
	case err != nil:
		e.setTemporaryError("Can't save! I/O error: " + err.Error())
		return
	}
	e.lastSaveTime = time.Now()
	e.externallyModified = false
	e.watch(e.doc.Path())
	e.setTemporaryMessage(fmt.Sprintf("%d bytes written to disk", n))
}
