// Package event defines the event union delivered by the listener engine to
// the application loop: keyboard input, terminal resizes, periodic ticks, and
// application-defined user events. Events are immutable values; every field is
// comparable so whole events can be compared with == when matching
// subscriptions.
package event

// Type discriminates the event union.
type Type uint8

const (
	TypeNone Type = iota
	TypeKeyboard
	TypeResize
	TypeTick
	TypeUser
)

// Event is a single occurrence produced by a poll source or the tick timer.
// U is the application-defined user event type; applications without custom
// events use NoUserEvent. Only the fields selected by Type are meaningful.
type Event[U comparable] struct {
	Type   Type
	Key    KeyEvent // set when Type is TypeKeyboard
	Width  int      // set when Type is TypeResize
	Height int      // set when Type is TypeResize
	User   U        // set when Type is TypeUser
}

// NoUserEvent is the user-event type for applications that define none.
type NoUserEvent struct{}

// Keyboard builds a keyboard event.
func Keyboard[U comparable](k KeyEvent) Event[U] {
	return Event[U]{Type: TypeKeyboard, Key: k}
}

// Resize builds a window-resize event.
func Resize[U comparable](width, height int) Event[U] {
	return Event[U]{Type: TypeResize, Width: width, Height: height}
}

// Tick builds a tick event.
func Tick[U comparable]() Event[U] {
	return Event[U]{Type: TypeTick}
}

// User builds a user-defined event.
func User[U comparable](u U) Event[U] {
	return Event[U]{Type: TypeUser, User: u}
}

// None builds the empty event.
func None[U comparable]() Event[U] {
	return Event[U]{Type: TypeNone}
}
