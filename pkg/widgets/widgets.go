// Package widgets provides the stock component library: labels, inputs,
// choice widgets, progress bars, sparklines, tables and charts. Every
// widget implements app.MockComponent; applications wrap a widget in a
// thin Component that translates events into commands.
//
// Widgets are configured through their props. Builders cover the common
// attributes; anything a builder sets can also be changed later through
// SetAttr, and queried back through Query.
package widgets

import (
	"gitlab.com/tinyland/lab/weft/pkg/app"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
)

// Every widget satisfies the component contract.
var (
	_ app.MockComponent = (*Label)(nil)
	_ app.MockComponent = (*Paragraph)(nil)
	_ app.MockComponent = (*Input)(nil)
	_ app.MockComponent = (*Textarea)(nil)
	_ app.MockComponent = (*Checkbox)(nil)
	_ app.MockComponent = (*Radio)(nil)
	_ app.MockComponent = (*Select)(nil)
	_ app.MockComponent = (*ProgressBar)(nil)
	_ app.MockComponent = (*Sparkline)(nil)
	_ app.MockComponent = (*Table)(nil)
	_ app.MockComponent = (*Chart)(nil)
	_ app.MockComponent = (*Spinner)(nil)
)

// borderGlyphs holds the characters that draw one border style:
// corners, edges, and the tee junctions used by table separators.
type borderGlyphs struct {
	topLeft     rune
	topRight    rune
	bottomLeft  rune
	bottomRight rune
	horizontal  rune
	vertical    rune
	leftTee     rune
	rightTee    rune
}

var borderSets = map[props.BorderType]borderGlyphs{
	props.BorderPlain: {
		topLeft: '┌', topRight: '┐',
		bottomLeft: '└', bottomRight: '┘',
		horizontal: '─', vertical: '│',
		leftTee: '├', rightTee: '┤',
	},
	props.BorderRounded: {
		topLeft: '╭', topRight: '╮',
		bottomLeft: '╰', bottomRight: '╯',
		horizontal: '─', vertical: '│',
		leftTee: '├', rightTee: '┤',
	},
	props.BorderDouble: {
		topLeft: '╔', topRight: '╗',
		bottomLeft: '╚', bottomRight: '╝',
		horizontal: '═', vertical: '║',
		leftTee: '╠', rightTee: '╣',
	},
	props.BorderThick: {
		topLeft: '┏', topRight: '┓',
		bottomLeft: '┗', bottomRight: '┛',
		horizontal: '━', vertical: '┃',
		leftTee: '┣', rightTee: '┫',
	},
}

// drawBorders draws the widget frame described by p into buf and returns
// the interior area left for content. Sides that are not set in the
// borders attribute are not drawn and cost no cells. The title attribute,
// when present, is written into the top edge.
func drawBorders(buf *render.Buffer, area layout.Rect, p *props.Props) layout.Rect {
	bv, ok := p.Get(props.AttrBorders)
	if !ok || area.Empty() {
		return area
	}
	borders := bv.Borders()
	if borders.Sides == props.SidesNone {
		return area
	}

	glyphs := borderSets[borders.Type]
	style := props.Style{Fg: borders.Color}
	inner := area

	top := borders.Sides.Has(props.SideTop)
	bottom := borders.Sides.Has(props.SideBottom)
	left := borders.Sides.Has(props.SideLeft)
	right := borders.Sides.Has(props.SideRight)

	if top {
		for x := area.X; x < area.Right(); x++ {
			buf.Set(x, area.Y, glyphs.horizontal, style)
		}
		inner.Y++
		inner.Height--
	}
	if bottom && area.Height > 1 {
		for x := area.X; x < area.Right(); x++ {
			buf.Set(x, area.Bottom()-1, glyphs.horizontal, style)
		}
		inner.Height--
	}
	if left {
		for y := area.Y; y < area.Bottom(); y++ {
			buf.Set(area.X, y, glyphs.vertical, style)
		}
		inner.X++
		inner.Width--
	}
	if right && area.Width > 1 {
		for y := area.Y; y < area.Bottom(); y++ {
			buf.Set(area.Right()-1, y, glyphs.vertical, style)
		}
		inner.Width--
	}

	if top && left {
		buf.Set(area.X, area.Y, glyphs.topLeft, style)
	}
	if top && right {
		buf.Set(area.Right()-1, area.Y, glyphs.topRight, style)
	}
	if bottom && left {
		buf.Set(area.X, area.Bottom()-1, glyphs.bottomLeft, style)
	}
	if bottom && right {
		buf.Set(area.Right()-1, area.Bottom()-1, glyphs.bottomRight, style)
	}

	if top {
		drawTitle(buf, area, p, style)
	}

	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// drawTitle writes the title attribute into the top border row.
func drawTitle(buf *render.Buffer, area layout.Rect, p *props.Props, style props.Style) {
	tv, ok := p.Get(props.AttrTitle)
	if !ok {
		return
	}
	text, align := tv.Title()
	if text == "" {
		return
	}
	avail := area.Width - 2
	if avail < 1 {
		return
	}
	text = Truncate(text, avail)
	w := VisibleWidth(text)
	var x int
	switch align {
	case props.AlignCenter:
		x = area.X + 1 + (avail-w)/2
	case props.AlignRight:
		x = area.X + 1 + avail - w
	default:
		x = area.X + 1
	}
	buf.SetStringN(x, area.Y, text, avail, style)
}

// baseStyle resolves the widget's resting colors and modifiers from its
// foreground, background and style attributes.
func baseStyle(p *props.Props) props.Style {
	var s props.Style
	if v, ok := p.Get(props.AttrStyle); ok {
		s = v.Style()
	}
	if v, ok := p.Get(props.AttrForeground); ok {
		s.Fg = v.Color()
	}
	if v, ok := p.Get(props.AttrBackground); ok {
		s.Bg = v.Color()
	}
	return s
}

// focusedStyle resolves the style used for the highlighted element of a
// focused widget. It falls back to reversing the base style when no
// focus-style attribute is set.
func focusedStyle(p *props.Props) props.Style {
	if v, ok := p.Get(props.AttrFocusStyle); ok {
		return v.Style()
	}
	s := baseStyle(p)
	s.Mods = s.Mods.With(props.ModifierReversed)
	return s
}

// hasFocus reports the value of the focus attribute.
func hasFocus(p *props.Props) bool {
	v, ok := p.Get(props.AttrFocus)
	return ok && v.Flag()
}

// visible reports the value of the display attribute, defaulting to shown.
func visible(p *props.Props) bool {
	v, ok := p.Get(props.AttrDisplay)
	return !ok || v.Flag()
}

// fillBackground paints the widget background before content is drawn.
func fillBackground(buf *render.Buffer, area layout.Rect, p *props.Props) {
	if v, ok := p.Get(props.AttrBackground); ok {
		buf.FillStyle(area, props.Style{Bg: v.Color()})
	}
}
