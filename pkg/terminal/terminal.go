// Package terminal connects the framework to a real terminal: it detects
// what the session can do, owns the screen for the lifetime of a run, turns
// frames into escape output, and feeds decoded input back as events.
//
// Two backends are provided. TcellBackend drives a full-screen session on
// the alternate screen through tcell. InlineBackend draws below the shell
// prompt with raw ANSI, in the way finder-style tools do, and restores the
// terminal on close.
package terminal

import (
	"errors"

	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/render"
)

var (
	// ErrNotTerminal is returned when the session is not attached to a
	// terminal capable of interactive use.
	ErrNotTerminal = errors.New("terminal: not attached to a terminal")
	// ErrClosed is returned when a backend is used after Fini.
	ErrClosed = errors.New("terminal: backend is closed")
)

// Backend owns one terminal session. Init takes the terminal over and Fini
// must restore it; Present shows a finished frame; PollEvent returns the
// next decoded input event without blocking.
type Backend interface {
	// Init prepares the terminal for interactive use.
	Init() error
	// Fini restores the terminal. It is safe to call more than once.
	Fini()
	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)
	// Clear wipes the visible screen.
	Clear() error
	// Present draws the frame and applies its cursor request.
	Present(f *render.Frame) error
	// PollEvent returns a pending keyboard or resize event, if any.
	// It never blocks; ok is false when no event is pending.
	PollEvent() (ev event.Event[event.NoUserEvent], ok bool, err error)
}
