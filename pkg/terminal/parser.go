package terminal

import (
	"unicode/utf8"

	"gitlab.com/tinyland/lab/weft/pkg/event"
)

// tildeKeys maps the numeric CSI ~ codes onto keys. The gaps at 16 and 22
// are real gaps in the protocol.
var tildeKeys = map[int]event.Key{
	1:  {Code: event.KeyHome},
	2:  {Code: event.KeyInsert},
	3:  {Code: event.KeyDelete},
	4:  {Code: event.KeyEnd},
	5:  {Code: event.KeyPageUp},
	6:  {Code: event.KeyPageDown},
	7:  {Code: event.KeyHome},
	8:  {Code: event.KeyEnd},
	11: event.Function(1),
	12: event.Function(2),
	13: event.Function(3),
	14: event.Function(4),
	15: event.Function(5),
	17: event.Function(6),
	18: event.Function(7),
	19: event.Function(8),
	20: event.Function(9),
	21: event.Function(10),
	23: event.Function(11),
	24: event.Function(12),
}

// decodeInput turns raw bytes read from the terminal into key events. A
// partial UTF-8 rune at the end of data is returned as rest for the next
// read; a bare trailing ESC is taken as the escape key, since the inline
// reader hands over whole read chunks.
func decodeInput(data []byte) (events []event.KeyEvent, rest []byte) {
	for len(data) > 0 {
		ev, n, ok := decodeOne(data)
		if n == 0 {
			// Partial rune: wait for the rest of the bytes.
			return events, data
		}
		data = data[n:]
		if ok {
			events = append(events, ev)
		}
	}
	return events, nil
}

// decodeOne decodes the first event in data. n is the number of bytes
// consumed; ok is false for bytes that map to no event.
func decodeOne(data []byte) (ev event.KeyEvent, n int, ok bool) {
	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b == '\r':
		return event.KeyPress(event.Key{Code: event.KeyEnter}), 1, true
	case b == '\t':
		return event.KeyPress(event.Key{Code: event.KeyTab}), 1, true
	case b == 0x08 || b == 0x7f:
		return event.KeyPress(event.Key{Code: event.KeyBackspace}), 1, true
	case b < 0x20:
		// Remaining C0 bytes are Ctrl plus a letter.
		if b >= 0x01 && b <= 0x1a {
			return event.KeyEvent{Key: event.Char('a' + rune(b-1)), Mods: event.ModCtrl}, 1, true
		}
		return event.KeyEvent{}, 1, false
	default:
		if !utf8.FullRune(data) {
			return event.KeyEvent{}, 0, false
		}
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError {
			return event.KeyEvent{}, size, false
		}
		return event.KeyPress(event.Char(r)), size, true
	}
}

// decodeEscape decodes a sequence starting with ESC: CSI and SS3 sequences,
// Alt-prefixed keys, or the escape key itself.
func decodeEscape(data []byte) (event.KeyEvent, int, bool) {
	if len(data) == 1 {
		return event.KeyPress(event.Key{Code: event.KeyEsc}), 1, true
	}
	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		return decodeSS3(data)
	case 0x1b:
		return event.KeyPress(event.Key{Code: event.KeyEsc}), 1, true
	default:
		ev, n, ok := decodeOne(data[1:])
		if n == 0 {
			// Partial rune after the ESC: wait for the rest.
			return event.KeyEvent{}, 0, false
		}
		if !ok {
			return event.KeyEvent{}, 1 + n, false
		}
		ev.Mods |= event.ModAlt
		return ev, 1 + n, true
	}
}

// decodeCSI decodes ESC [ params final, with xterm modifier params.
func decodeCSI(data []byte) (event.KeyEvent, int, bool) {
	// Find the final byte.
	i := 2
	for i < len(data) && (data[i] == ';' || (data[i] >= '0' && data[i] <= '9')) {
		i++
	}
	if i >= len(data) {
		// Sequence split across reads: wait for the final byte.
		return event.KeyEvent{}, 0, false
	}
	final := data[i]
	n := i + 1
	p1, p2 := csiParams(data[2:i])

	mods := xtermMods(p2)
	switch final {
	case 'A':
		return event.KeyEvent{Key: event.Key{Code: event.KeyUp}, Mods: mods}, n, true
	case 'B':
		return event.KeyEvent{Key: event.Key{Code: event.KeyDown}, Mods: mods}, n, true
	case 'C':
		return event.KeyEvent{Key: event.Key{Code: event.KeyRight}, Mods: mods}, n, true
	case 'D':
		return event.KeyEvent{Key: event.Key{Code: event.KeyLeft}, Mods: mods}, n, true
	case 'H':
		return event.KeyEvent{Key: event.Key{Code: event.KeyHome}, Mods: mods}, n, true
	case 'F':
		return event.KeyEvent{Key: event.Key{Code: event.KeyEnd}, Mods: mods}, n, true
	case 'Z':
		return event.KeyEvent{Key: event.Key{Code: event.KeyBackTab}, Mods: mods | event.ModShift}, n, true
	case '~':
		if key, found := tildeKeys[p1]; found {
			return event.KeyEvent{Key: key, Mods: mods}, n, true
		}
	}
	return event.KeyEvent{}, n, false
}

// decodeSS3 decodes ESC O final, the application-mode forms.
func decodeSS3(data []byte) (event.KeyEvent, int, bool) {
	if len(data) < 3 {
		return event.KeyEvent{}, 0, false
	}
	var key event.Key
	switch data[2] {
	case 'A':
		key = event.Key{Code: event.KeyUp}
	case 'B':
		key = event.Key{Code: event.KeyDown}
	case 'C':
		key = event.Key{Code: event.KeyRight}
	case 'D':
		key = event.Key{Code: event.KeyLeft}
	case 'H':
		key = event.Key{Code: event.KeyHome}
	case 'F':
		key = event.Key{Code: event.KeyEnd}
	case 'P', 'Q', 'R', 'S':
		key = event.Function(int(data[2]-'P') + 1)
	default:
		return event.KeyEvent{}, 3, false
	}
	return event.KeyPress(key), 3, true
}

// csiParams splits the parameter bytes of a CSI sequence into the first two
// numeric parameters, zero when absent.
func csiParams(params []byte) (p1, p2 int) {
	cur := 0
	idx := 0
	flush := func() {
		switch idx {
		case 0:
			p1 = cur
		case 1:
			p2 = cur
		}
		idx++
		cur = 0
	}
	for _, b := range params {
		if b == ';' {
			flush()
			continue
		}
		cur = cur*10 + int(b-'0')
	}
	flush()
	return p1, p2
}

// xtermMods decodes the xterm modifier parameter.
func xtermMods(p int) event.KeyMods {
	if p <= 1 {
		return event.ModNone
	}
	p--
	mods := event.ModNone
	if p&1 != 0 {
		mods |= event.ModShift
	}
	if p&2 != 0 {
		mods |= event.ModAlt
	}
	if p&4 != 0 {
		mods |= event.ModCtrl
	}
	return mods
}
