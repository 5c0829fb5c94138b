package term

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

const esc = 0x1b

// Decode turns the front of buf into one key event and reports how many
// bytes it used. A nil event with n > 0 means the bytes were an escape
// sequence nobody binds and should be skipped. n == 0 means buf ends inside
// a sequence and more input is needed; when final is set Decode never asks
// for more.
func Decode(buf []byte, final bool) (*tcell.EventKey, int) {
	if len(buf) == 0 {
		return nil, 0
	}

	b := buf[0]
	switch {
	case b == esc:
		return decodeEscape(buf, final)
	case b == '\r':
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 1
	case b == '\t':
		return tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 1
	case b == 0x7f, b == 0x08:
		return tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), 1
	case b >= 0x01 && b <= 0x1a:
		// Ctrl-A..Ctrl-Z, reported as tcell's KeyCtrlA..KeyCtrlZ
		return tcell.NewEventKey(tcell.KeyRune, rune('a'+b-1), tcell.ModCtrl), 1
	case b < ' ':
		return tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone), 1
	case b < utf8.RuneSelf:
		return tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone), 1
	}

	if !utf8.FullRune(buf) && !final {
		return nil, 0
	}
	r, n := utf8.DecodeRune(buf)
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), n
}

func decodeEscape(buf []byte, final bool) (*tcell.EventKey, int) {
	escape := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if len(buf) == 1 {
		if final {
			return escape, 1
		}
		return nil, 0
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf, final)
	case 'O':
		if len(buf) < 3 {
			if final {
				return escape, 1
			}
			return nil, 0
		}
		switch buf[2] {
		case 'H':
			return tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), 3
		case 'F':
			return tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), 3
		case 'A', 'B', 'C', 'D':
			return tcell.NewEventKey(arrow(buf[2]), 0, tcell.ModNone), 3
		}
		return nil, 3
	}
	return escape, 1
}

// decodeCSI handles ESC [ params final.
func decodeCSI(buf []byte, final bool) (*tcell.EventKey, int) {
	j := 2
	for j < len(buf) && (buf[j] >= '0' && buf[j] <= '9' || buf[j] == ';') {
		j++
	}
	if j >= len(buf) {
		if final {
			return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 1
		}
		return nil, 0
	}

	n := j + 1
	params := strings.Split(string(buf[2:j]), ";")
	mod := tcell.ModNone
	if len(params) > 1 {
		mod = modifiers(params[1])
	}

	switch buf[j] {
	case 'A', 'B', 'C', 'D':
		return tcell.NewEventKey(arrow(buf[j]), 0, mod), n
	case 'H':
		return tcell.NewEventKey(tcell.KeyHome, 0, mod), n
	case 'F':
		return tcell.NewEventKey(tcell.KeyEnd, 0, mod), n
	case '~':
		var k tcell.Key
		switch params[0] {
		case "1", "7":
			k = tcell.KeyHome
		case "4", "8":
			k = tcell.KeyEnd
		case "3":
			k = tcell.KeyDelete
		case "5":
			k = tcell.KeyPgUp
		case "6":
			k = tcell.KeyPgDn
		default:
			return nil, n
		}
		return tcell.NewEventKey(k, 0, mod), n
	}
	return nil, n
}

func arrow(b byte) tcell.Key {
	switch b {
	case 'A':
		return tcell.KeyUp
	case 'B':
		return tcell.KeyDown
	case 'C':
		return tcell.KeyRight
	}
	return tcell.KeyLeft
}

// modifiers decodes the xterm modifier parameter (1 + bitmask).
func modifiers(p string) tcell.ModMask {
	v, err := strconv.Atoi(p)
	if err != nil || v < 2 {
		return tcell.ModNone
	}
	v--
	var mod tcell.ModMask
	if v&1 != 0 {
		mod |= tcell.ModShift
	}
	if v&2 != 0 {
		mod |= tcell.ModAlt
	}
	if v&4 != 0 {
		mod |= tcell.ModCtrl
	}
	return mod
}
