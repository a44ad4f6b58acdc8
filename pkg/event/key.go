package event

import "fmt"

// KeyCode identifies a key on the keyboard. Printable characters use
// KeyChar with the rune carried in Key.Char; numbered function keys use
// KeyFunction with the number in Key.Fn.
type KeyCode uint8

const (
	KeyNull KeyCode = iota
	KeyBackspace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyEsc
	KeyChar
	KeyFunction
)

// Key is a single key identity: a named key, a printable character, or a
// numbered function key. The zero value is KeyNull.
type Key struct {
	Code KeyCode
	Char rune // set when Code is KeyChar
	Fn   int  // set when Code is KeyFunction
}

// Char returns the Key for a printable character.
func Char(r rune) Key { return Key{Code: KeyChar, Char: r} }

// Function returns the Key for function key n (F1 is Function(1)).
func Function(n int) Key { return Key{Code: KeyFunction, Fn: n} }

// String returns a human-readable name for the key, e.g. "a", "F5", "Enter".
func (k Key) String() string {
	switch k.Code {
	case KeyChar:
		return string(k.Char)
	case KeyFunction:
		return fmt.Sprintf("F%d", k.Fn)
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyTab:
		return "Tab"
	case KeyBackTab:
		return "BackTab"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyEsc:
		return "Esc"
	default:
		return "Null"
	}
}

// KeyMods is a bitset of modifier keys held during a key press.
type KeyMods uint8

const (
	ModShift KeyMods = 1 << iota
	ModCtrl
	ModAlt

	// ModNone is the empty modifier set.
	ModNone KeyMods = 0
)

// Has reports whether every modifier in m is present in the set.
func (k KeyMods) Has(m KeyMods) bool { return k&m == m }

// String returns the modifier set as a "Ctrl+Alt+Shift" style prefix.
func (k KeyMods) String() string {
	if k == ModNone {
		return ""
	}
	s := ""
	if k.Has(ModCtrl) {
		s += "Ctrl+"
	}
	if k.Has(ModAlt) {
		s += "Alt+"
	}
	if k.Has(ModShift) {
		s += "Shift+"
	}
	return s[:len(s)-1]
}

// KeyEvent is a key press together with its modifiers. KeyEvent values are
// compared with == when matching keyboard subscriptions.
type KeyEvent struct {
	Key  Key
	Mods KeyMods
}

// KeyPress returns a KeyEvent for the given key with no modifiers.
func KeyPress(k Key) KeyEvent { return KeyEvent{Key: k} }

// String renders the event as e.g. "Ctrl+c" or "F2".
func (e KeyEvent) String() string {
	if e.Mods == ModNone {
		return e.Key.String()
	}
	return e.Mods.String() + "+" + e.Key.String()
}
