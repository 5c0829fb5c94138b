package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// escapeWait is how long a lone ESC waits for the rest of a sequence.
const escapeWait = 50 * time.Millisecond

// Terminal is the capability the editor draws on: key events in, an escape
// sequence byte stream out.
type Terminal interface {
	// ReadKey waits up to timeout for the next key. It returns nil, nil on
	// timeout.
	ReadKey(timeout time.Duration) (*tcell.EventKey, error)
	Write(p []byte) (int, error)
	Size() (cols, rows int, err error)
	Close() error
}

// TTY is a Terminal on the process's controlling terminal in raw mode.
type TTY struct {
	in    *os.File
	out   *os.File
	state *term.State

	chunks  chan []byte
	readErr error
	pending []byte

	closeOnce sync.Once
	closeErr  error
}

// Open puts stdin into raw mode and starts reading it.
func Open() (*TTY, error) {
	return OpenFiles(os.Stdin, os.Stdout)
}

func OpenFiles(in, out *os.File) (*TTY, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, errors.New("not running in a terminal")
	}
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	t := &TTY{
		in:     in,
		out:    out,
		state:  state,
		chunks: make(chan []byte, 16),
	}
	go t.readLoop()
	return t, nil
}

func (t *TTY) readLoop() {
	buf := make([]byte, 256)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			t.chunks <- chunk
		}
		if err != nil {
			t.readErr = err
			close(t.chunks)
			return
		}
	}
}

// wait appends the next chunk of input to pending. It reports false on
// timeout.
func (t *TTY) wait(timeout time.Duration) (bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case chunk, ok := <-t.chunks:
		if !ok {
			if t.readErr == nil || errors.Is(t.readErr, io.EOF) {
				return false, fmt.Errorf("reading keyboard input: %w", io.EOF)
			}
			return false, fmt.Errorf("reading keyboard input: %w", t.readErr)
		}
		t.pending = append(t.pending, chunk...)
		return true, nil
	case <-timer.C:
		return false, nil
	}
}

func (t *TTY) ReadKey(timeout time.Duration) (*tcell.EventKey, error) {
	deadline := time.Now().Add(timeout)
	for {
		for len(t.pending) > 0 {
			ev, n := Decode(t.pending, false)
			if n == 0 {
				got, err := t.wait(escapeWait)
				if err != nil {
					return nil, err
				}
				if got {
					continue
				}
				ev, n = Decode(t.pending, true)
			}
			t.pending = t.pending[n:]
			if ev != nil {
				return ev, nil
			}
		}

		left := time.Until(deadline)
		if left <= 0 {
			return nil, nil
		}
		got, err := t.wait(left)
		if err != nil {
			return nil, err
		}
		if !got {
			return nil, nil
		}
	}
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *TTY) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}
	return cols, rows, nil
}

// Close clears the screen and leaves raw mode. Only the first call does
// anything.
func (t *TTY) Close() error {
	t.closeOnce.Do(func() {
		t.out.WriteString(ansi.EraseEntireScreen + ansi.CursorHomePosition)
		t.closeErr = term.Restore(int(t.in.Fd()), t.state)
	})
	return t.closeErr
}

// Ctrl reports the letter of a Ctrl-<letter> key, in lower case. Control
// keys may arrive either as a KeyCtrl code or as a rune with ModCtrl.
func Ctrl(ev *tcell.EventKey) (rune, bool) {
	k := ev.Key()
	switch k {
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace:
		return 0, false
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return rune('a' + k - tcell.KeyCtrlA), true
	}
	if k >= tcell.KeySOH && k <= tcell.KeySUB {
		return rune('a' + k - tcell.KeySOH), true
	}
	if k == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		r := ev.Rune()
		if r >= 1 && r <= 26 {
			return 'a' + r - 1, true
		}
		return unicode.ToLower(r), true
	}
	return 0, false
}
