package editor

import "github.com/gdamore/tcell/v2"

// find runs an incremental search session. Escape, or Enter on an empty
// query, puts the viewport back where the session started.
func (e *Editor) find() {
	saved := *e.view
	e.search.Reset()

	e.openPrompt("Search: %s (Use ESC/Arrows/Enter)",
		func(query string, ev *tcell.EventKey) {
			e.search.Step(query, ev, e.doc, e.view)
		},
		nil,
		func() {
			e.search.Restore(e.doc)
			*e.view = saved
		},
	)
}
