package widgets

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Textarea is a read-only scrollable text viewer. Rows come from the
// text attribute, one span per row. Up/Down move one row, Scroll moves
// by the scroll-step attribute, GoTo jumps to either end.
type Textarea struct {
	props  *props.Props
	offset int
}

// NewTextarea returns a textarea showing the given rows.
func NewTextarea(rows ...props.TextSpan) *Textarea {
	p := props.NewProps()
	p.Set(props.AttrText, props.TextValue(rows...))
	return &Textarea{props: p}
}

// WithTitle frames the textarea with a title in the top border.
func (t *Textarea) WithTitle(title string, align props.Alignment) *Textarea {
	t.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return t
}

// WithBorders sets the frame drawn around the text.
func (t *Textarea) WithBorders(b props.Borders) *Textarea {
	t.props.Set(props.AttrBorders, props.BordersValue(b))
	return t
}

// WithForeground sets the default text color.
func (t *Textarea) WithForeground(c props.Color) *Textarea {
	t.props.Set(props.AttrForeground, props.ColorValue(c))
	return t
}

// WithScrollStep sets how many rows one Scroll command moves.
func (t *Textarea) WithScrollStep(n int) *Textarea {
	t.props.Set(props.AttrScrollStep, props.Size(n))
	return t
}

// Offset returns the index of the first visible row.
func (t *Textarea) Offset() int {
	return t.offset
}

// View draws the visible window of rows into area.
func (t *Textarea) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(t.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, t.props)
	inner := drawBorders(buf, area, t.props)
	if inner.Empty() {
		return
	}

	rows := t.rows()
	base := baseStyle(t.props)
	t.clampOffset(inner.Height)

	for i := 0; i < inner.Height; i++ {
		idx := t.offset + i
		if idx >= len(rows) {
			break
		}
		style := mergeSpanStyle(base, rows[idx])
		buf.SetStringN(inner.X, inner.Y+i, rows[idx].Content, inner.Width, style)
	}
}

// Query returns the attribute value stored under attr.
func (t *Textarea) Query(attr props.Attr) (props.AttrValue, bool) {
	return t.props.Get(attr)
}

// SetAttr stores value under attr. Replacing the text keeps the offset,
// clamped on the next draw.
func (t *Textarea) SetAttr(attr props.Attr, value props.AttrValue) {
	t.props.Set(attr, value)
}

// State returns the empty state.
func (t *Textarea) State() state.State {
	return state.None()
}

// Perform scrolls the viewport.
func (t *Textarea) Perform(cmd command.Cmd) command.CmdResult {
	switch cmd.Kind() {
	case command.CmdMove:
		switch cmd.Dir() {
		case command.Up:
			t.scrollBy(-1)
		case command.Down:
			t.scrollBy(1)
		default:
			return command.CmdResult{}
		}
		return command.Changed(t.State())
	case command.CmdScroll:
		step := t.props.GetOr(props.AttrScrollStep, props.Size(8)).Size()
		switch cmd.Dir() {
		case command.Up:
			t.scrollBy(-step)
		case command.Down:
			t.scrollBy(step)
		default:
			return command.CmdResult{}
		}
		return command.Changed(t.State())
	case command.CmdGoTo:
		switch cmd.Pos().Kind {
		case command.PositionBegin:
			t.offset = 0
		case command.PositionEnd:
			t.offset = len(t.rows())
		case command.PositionAt:
			t.offset = clamp(cmd.Pos().Idx, 0, len(t.rows()))
		}
		return command.Changed(t.State())
	default:
		return command.CmdResult{}
	}
}

func (t *Textarea) rows() []props.TextSpan {
	return t.props.GetOr(props.AttrText, props.TextValue()).Text()
}

func (t *Textarea) scrollBy(n int) {
	t.offset = clamp(t.offset+n, 0, len(t.rows()))
}

// clampOffset keeps the last page full when the text shrinks.
func (t *Textarea) clampOffset(height int) {
	maxOffset := len(t.rows()) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if t.offset > maxOffset {
		t.offset = maxOffset
	}
}
