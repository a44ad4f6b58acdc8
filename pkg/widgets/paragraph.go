package widgets

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Paragraph shows styled text rows inside an optional frame. One span per
// row; when wrapping is on, each row is word-wrapped to the interior
// width. Rows that do not fit the area are dropped.
type Paragraph struct {
	props *props.Props
}

// NewParagraph returns a paragraph showing the given rows.
func NewParagraph(rows ...props.TextSpan) *Paragraph {
	p := props.NewProps()
	p.Set(props.AttrText, props.TextValue(rows...))
	return &Paragraph{props: p}
}

// WithTitle frames the paragraph with a title in the top border.
func (pg *Paragraph) WithTitle(title string, align props.Alignment) *Paragraph {
	pg.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return pg
}

// WithBorders sets the frame drawn around the text.
func (pg *Paragraph) WithBorders(b props.Borders) *Paragraph {
	pg.props.Set(props.AttrBorders, props.BordersValue(b))
	return pg
}

// WithForeground sets the default text color.
func (pg *Paragraph) WithForeground(c props.Color) *Paragraph {
	pg.props.Set(props.AttrForeground, props.ColorValue(c))
	return pg
}

// WithBackground sets the background color.
func (pg *Paragraph) WithBackground(c props.Color) *Paragraph {
	pg.props.Set(props.AttrBackground, props.ColorValue(c))
	return pg
}

// WithAlignment sets the horizontal alignment of each row.
func (pg *Paragraph) WithAlignment(a props.Alignment) *Paragraph {
	pg.props.Set(props.AttrAlignment, props.AlignValue(a))
	return pg
}

// WithWrap enables word-wrapping of rows to the interior width.
func (pg *Paragraph) WithWrap(on bool) *Paragraph {
	pg.props.Set(props.AttrWrap, props.Flag(on))
	return pg
}

// View draws the paragraph into area.
func (pg *Paragraph) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(pg.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, pg.props)
	inner := drawBorders(buf, area, pg.props)
	if inner.Empty() {
		return
	}

	spans := pg.props.GetOr(props.AttrText, props.TextValue()).Text()
	align := pg.props.GetOr(props.AttrAlignment, props.AlignValue(props.AlignLeft)).Align()
	wrap := pg.props.GetOr(props.AttrWrap, props.Flag(false)).Flag()
	base := baseStyle(pg.props)

	y := inner.Y
	for _, span := range spans {
		if y >= inner.Bottom() {
			break
		}
		style := mergeSpanStyle(base, span)
		lines := []string{span.Content}
		if wrap {
			lines = Wrap(span.Content, inner.Width)
		}
		for _, line := range lines {
			if y >= inner.Bottom() {
				break
			}
			line = Truncate(line, inner.Width)
			w := VisibleWidth(line)
			x := inner.X
			switch align {
			case props.AlignCenter:
				x += (inner.Width - w) / 2
			case props.AlignRight:
				x += inner.Width - w
			}
			buf.SetStringN(x, y, line, inner.Width, style)
			y++
		}
	}
}

// Query returns the attribute value stored under attr.
func (pg *Paragraph) Query(attr props.Attr) (props.AttrValue, bool) {
	return pg.props.Get(attr)
}

// SetAttr stores value under attr.
func (pg *Paragraph) SetAttr(attr props.Attr, value props.AttrValue) {
	pg.props.Set(attr, value)
}

// State returns the empty state.
func (pg *Paragraph) State() state.State {
	return state.None()
}

// Perform ignores all commands.
func (pg *Paragraph) Perform(command.Cmd) command.CmdResult {
	return command.CmdResult{}
}

// mergeSpanStyle overlays a span's own styling on the widget base style.
func mergeSpanStyle(base props.Style, span props.TextSpan) props.Style {
	s := base
	if span.Fg.Kind() != props.ColorKindDefault {
		s.Fg = span.Fg
	}
	if span.Bg.Kind() != props.ColorKindDefault {
		s.Bg = span.Bg
	}
	if span.Mods != 0 {
		s.Mods = span.Mods
	}
	return s
}
