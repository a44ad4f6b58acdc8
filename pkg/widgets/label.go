package widgets

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Label is a single line of text. It carries no state and ignores
// commands.
type Label struct {
	props *props.Props
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	p := props.NewProps()
	p.Set(props.AttrText, props.Str(text))
	return &Label{props: p}
}

// WithForeground sets the text color.
func (l *Label) WithForeground(c props.Color) *Label {
	l.props.Set(props.AttrForeground, props.ColorValue(c))
	return l
}

// WithBackground sets the background color.
func (l *Label) WithBackground(c props.Color) *Label {
	l.props.Set(props.AttrBackground, props.ColorValue(c))
	return l
}

// WithModifiers sets the text modifiers.
func (l *Label) WithModifiers(m props.TextModifiers) *Label {
	l.props.Set(props.AttrStyle, props.StyleValue(props.Style{Mods: m}))
	return l
}

// WithAlignment sets the horizontal alignment within the render area.
func (l *Label) WithAlignment(a props.Alignment) *Label {
	l.props.Set(props.AttrAlignment, props.AlignValue(a))
	return l
}

// View draws the label into the first row of area.
func (l *Label) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(l.props) {
		return
	}
	text := l.props.GetOr(props.AttrText, props.Str("")).Str()
	align := l.props.GetOr(props.AttrAlignment, props.AlignValue(props.AlignLeft)).Align()
	style := baseStyle(l.props)

	fillBackground(f.Buffer(), area, l.props)
	text = Truncate(text, area.Width)
	w := VisibleWidth(text)
	x := area.X
	switch align {
	case props.AlignCenter:
		x += (area.Width - w) / 2
	case props.AlignRight:
		x += area.Width - w
	}
	f.Buffer().SetStringN(x, area.Y, text, area.Width, style)
}

// Query returns the attribute value stored under attr.
func (l *Label) Query(attr props.Attr) (props.AttrValue, bool) {
	return l.props.Get(attr)
}

// SetAttr stores value under attr.
func (l *Label) SetAttr(attr props.Attr, value props.AttrValue) {
	l.props.Set(attr, value)
}

// State returns the empty state.
func (l *Label) State() state.State {
	return state.None()
}

// Perform ignores all commands.
func (l *Label) Perform(command.Cmd) command.CmdResult {
	return command.CmdResult{}
}
