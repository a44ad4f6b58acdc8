package widgets

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Radio is a horizontal group of mutually exclusive choices. Moving the
// cursor changes the selection immediately; the state is the selected
// index.
type Radio struct {
	props  *props.Props
	choice int
}

// NewRadio returns a radio group over the given choices.
func NewRadio(choices ...string) *Radio {
	p := props.NewProps()
	p.Set(props.AttrContent, props.PayloadValue(choicesPayload(choices)))
	return &Radio{props: p}
}

// WithChoice selects the initial choice.
func (r *Radio) WithChoice(idx int) *Radio {
	if idx >= 0 && idx < len(r.choices()) {
		r.choice = idx
	}
	return r
}

// WithRewind makes the selection wrap around at either end.
func (r *Radio) WithRewind(on bool) *Radio {
	r.props.Set(props.AttrRewind, props.Flag(on))
	return r
}

// WithTitle frames the radio group with a title in the top border.
func (r *Radio) WithTitle(title string, align props.Alignment) *Radio {
	r.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return r
}

// WithBorders sets the frame drawn around the choices.
func (r *Radio) WithBorders(b props.Borders) *Radio {
	r.props.Set(props.AttrBorders, props.BordersValue(b))
	return r
}

// WithForeground sets the text color.
func (r *Radio) WithForeground(c props.Color) *Radio {
	r.props.Set(props.AttrForeground, props.ColorValue(c))
	return r
}

// Choice returns the selected index.
func (r *Radio) Choice() int {
	return r.choice
}

// View draws the choices on one row: "(*) One  ( ) Two".
func (r *Radio) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(r.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, r.props)
	inner := drawBorders(buf, area, r.props)
	if inner.Empty() {
		return
	}

	base := baseStyle(r.props)
	focus := focusedStyle(r.props)
	focused := hasFocus(r.props)

	x := inner.X
	for i, choice := range r.choices() {
		mark := "( ) "
		if i == r.choice {
			mark = "(*) "
		}
		style := base
		if focused && i == r.choice {
			style = focus
		}
		n := buf.SetStringN(x, inner.Y, mark+choice, inner.Right()-x, style)
		x += n + 2
		if x >= inner.Right() {
			break
		}
	}
}

// Query returns the attribute value stored under attr.
func (r *Radio) Query(attr props.Attr) (props.AttrValue, bool) {
	return r.props.Get(attr)
}

// SetAttr stores value under attr. Replacing the content resets the
// selection; setting the value attribute selects that index.
func (r *Radio) SetAttr(attr props.Attr, value props.AttrValue) {
	switch attr {
	case props.AttrCurrentValue:
		if idx := value.Size(); idx >= 0 && idx < len(r.choices()) {
			r.choice = idx
		}
		return
	case props.AttrContent:
		r.props.Set(attr, value)
		r.choice = 0
		return
	}
	r.props.Set(attr, value)
}

// State returns the selected index.
func (r *Radio) State() state.State {
	return state.One(state.Int(r.choice))
}

// Perform moves the selection.
func (r *Radio) Perform(cmd command.Cmd) command.CmdResult {
	n := len(r.choices())
	switch cmd.Kind() {
	case command.CmdMove:
		if n == 0 {
			return command.CmdResult{}
		}
		switch cmd.Dir() {
		case command.Right:
			if r.choice+1 < n {
				r.choice++
			} else if r.rewind() {
				r.choice = 0
			}
		case command.Left:
			if r.choice > 0 {
				r.choice--
			} else if r.rewind() {
				r.choice = n - 1
			}
		default:
			return command.CmdResult{}
		}
		return command.Changed(r.State())
	case command.CmdSubmit:
		return command.Submitted(r.State())
	default:
		return command.CmdResult{}
	}
}

func (r *Radio) choices() []string {
	return payloadChoices(r.props.GetOr(props.AttrContent, props.PayloadValue(props.PayloadVec())).Payload())
}

func (r *Radio) rewind() bool {
	return r.props.GetOr(props.AttrRewind, props.Flag(false)).Flag()
}
