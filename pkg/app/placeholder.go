package app

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Placeholder is a minimal component that stores its attributes and
// renders its text. It exercises mounting, focus, and routing before real
// widgets are wired in, and is the smallest Component implementation to
// copy from.
type Placeholder[M any, U comparable] struct {
	props *props.Props
	state state.State
	on    func(ev event.Event[U]) (M, bool)
}

// NewPlaceholder creates a placeholder rendering the given text.
func NewPlaceholder[M any, U comparable](text string) *Placeholder[M, U] {
	p := &Placeholder[M, U]{props: props.NewProps()}
	p.props.Set(props.AttrText, props.Str(text))
	return p
}

// WithOn sets the event handler. Without one the placeholder produces no
// messages.
func (p *Placeholder[M, U]) WithOn(fn func(ev event.Event[U]) (M, bool)) *Placeholder[M, U] {
	p.on = fn
	return p
}

// WithState sets the state the placeholder reports.
func (p *Placeholder[M, U]) WithState(st state.State) *Placeholder[M, U] {
	p.state = st
	return p
}

// View renders the text attribute into the first row of area.
func (p *Placeholder[M, U]) View(f *render.Frame, area layout.Rect) {
	if area.Empty() {
		return
	}
	text := p.props.GetOr(props.AttrText, props.Str("")).Str()
	var style props.Style
	if fg, ok := p.props.Get(props.AttrForeground); ok {
		style.Fg = fg.Color()
	}
	f.Buffer().SetStringN(area.X, area.Y, text, area.Width, style)
}

// Query returns the attribute stored under attr, if present.
func (p *Placeholder[M, U]) Query(attr props.Attr) (props.AttrValue, bool) {
	return p.props.Get(attr)
}

// SetAttr stores an attribute value.
func (p *Placeholder[M, U]) SetAttr(attr props.Attr, value props.AttrValue) {
	p.props.Set(attr, value)
}

// State reports the configured state, none by default.
func (p *Placeholder[M, U]) State() state.State { return p.state }

// Perform rejects every command; the placeholder has no behavior.
func (p *Placeholder[M, U]) Perform(cmd command.Cmd) command.CmdResult {
	return command.Invalid(cmd)
}

// On forwards to the configured handler.
func (p *Placeholder[M, U]) On(ev event.Event[U]) (M, bool) {
	if p.on == nil {
		var zero M
		return zero, false
	}
	return p.on(ev)
}
