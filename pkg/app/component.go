package app

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// MockComponent is the behavior and rendering surface of a widget:
// everything except event handling. Widget packages implement this
// interface; an application wraps a widget into a Component by adding On.
type MockComponent interface {
	// View draws the component into area of the frame.
	View(f *render.Frame, area layout.Rect)

	// Query returns the attribute stored under attr, if present.
	Query(attr props.Attr) (props.AttrValue, bool)

	// SetAttr stores an attribute value on the component.
	SetAttr(attr props.Attr, value props.AttrValue)

	// State reports the component's current state.
	State() state.State

	// Perform applies a behavior command and reports its effect.
	Perform(cmd command.Cmd) command.CmdResult
}

// Component is a mountable unit: a MockComponent plus the event handler
// turning incoming events into application messages. On reports false when
// the event produces no message.
type Component[M any, U comparable] interface {
	MockComponent

	On(ev event.Event[U]) (M, bool)
}
