package widgets

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Chart plots datasets as Braille dots, one color per dataset. Axes
// auto-scale to the data unless bounds are fixed. With a Y axis on, a
// label column is reserved on the left; with an X axis on, the bottom
// row shows the horizontal bounds.
type Chart struct {
	props      *props.Props
	xLo, xHi   *float64
	yLo, yHi   *float64
	yAxisWidth int
}

// NewChart returns a chart over the given datasets.
func NewChart(datasets ...props.Dataset) *Chart {
	p := props.NewProps()
	p.Set(props.AttrDataset, props.DatasetValue(datasets...))
	return &Chart{props: p, yAxisWidth: 6}
}

// WithTitle frames the chart with a title in the top border.
func (c *Chart) WithTitle(title string, align props.Alignment) *Chart {
	c.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return c
}

// WithBorders sets the frame drawn around the chart.
func (c *Chart) WithBorders(b props.Borders) *Chart {
	c.props.Set(props.AttrBorders, props.BordersValue(b))
	return c
}

// WithXBounds fixes the horizontal range.
func (c *Chart) WithXBounds(lo, hi float64) *Chart {
	c.xLo, c.xHi = &lo, &hi
	return c
}

// WithYBounds fixes the vertical range.
func (c *Chart) WithYBounds(lo, hi float64) *Chart {
	c.yLo, c.yHi = &lo, &hi
	return c
}

// attrAxes toggles axis chrome; kept as a custom attribute so apps can
// flip it through SetAttr like any other flag.
var attrAxes = props.CustomAttr("axes")

// WithAxes toggles the Y label column and the X bounds row.
func (c *Chart) WithAxes(on bool) *Chart {
	c.props.Set(attrAxes, props.Flag(on))
	return c
}

// View plots the datasets into area.
func (c *Chart) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(c.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, c.props)
	inner := drawBorders(buf, area, c.props)
	if inner.Empty() {
		return
	}

	axes := c.props.GetOr(attrAxes, props.Flag(false)).Flag()
	yAxisW := 0
	xAxisH := 0
	if axes && inner.Width >= c.yAxisWidth+4 {
		yAxisW = c.yAxisWidth
	}
	if axes && inner.Height >= 4 {
		xAxisH = 1
	}

	plot := layout.Rect{
		X:      inner.X + yAxisW,
		Y:      inner.Y,
		Width:  inner.Width - yAxisW,
		Height: inner.Height - xAxisH,
	}
	if plot.Empty() {
		return
	}

	datasets := c.datasets()
	xLo, xHi, yLo, yHi := c.bounds(datasets)

	// Braille cells are 2 dots wide and 4 dots tall.
	dotsW := plot.Width * 2
	dotsH := plot.Height * 4

	grid := make([][]uint8, plot.Height)
	owner := make([][]int, plot.Height)
	for r := range grid {
		grid[r] = make([]uint8, plot.Width)
		owner[r] = make([]int, plot.Width)
		for col := range owner[r] {
			owner[r][col] = -1
		}
	}

	for di, ds := range datasets {
		for _, pt := range ds.Points {
			if pt.X < xLo || pt.X > xHi || pt.Y < yLo || pt.Y > yHi {
				continue
			}
			dotX := scaleDot(pt.X, xLo, xHi, dotsW)
			dotY := dotsH - 1 - scaleDot(pt.Y, yLo, yHi, dotsH)
			row, col := dotY/4, dotX/2
			grid[row][col] |= brailleBit(dotX%2, dotY%4)
			owner[row][col] = di
		}
	}

	base := baseStyle(c.props)
	for r := 0; r < plot.Height; r++ {
		for col := 0; col < plot.Width; col++ {
			if grid[r][col] == 0 {
				continue
			}
			style := base
			if di := owner[r][col]; di >= 0 {
				style = mergeStyles(base, datasets[di].Style)
			}
			buf.Set(plot.X+col, plot.Y+r, rune(0x2800+int(grid[r][col])), style)
		}
	}

	if yAxisW > 0 {
		c.drawYAxis(buf, inner, plot, yLo, yHi, base)
	}
	if xAxisH > 0 {
		c.drawXAxis(buf, inner, plot, xLo, xHi, base)
	}
}

// Query returns the attribute value stored under attr.
func (c *Chart) Query(attr props.Attr) (props.AttrValue, bool) {
	return c.props.Get(attr)
}

// SetAttr stores value under attr.
func (c *Chart) SetAttr(attr props.Attr, value props.AttrValue) {
	c.props.Set(attr, value)
}

// State returns the empty state.
func (c *Chart) State() state.State {
	return state.None()
}

// Perform ignores all commands.
func (c *Chart) Perform(command.Cmd) command.CmdResult {
	return command.CmdResult{}
}

func (c *Chart) datasets() []props.Dataset {
	return c.props.GetOr(props.AttrDataset, props.DatasetValue()).Dataset()
}

// bounds resolves the plot ranges, preferring fixed bounds over the
// data's own extent.
func (c *Chart) bounds(datasets []props.Dataset) (xLo, xHi, yLo, yHi float64) {
	xLo, xHi = math.Inf(1), math.Inf(-1)
	yLo, yHi = math.Inf(1), math.Inf(-1)
	for _, ds := range datasets {
		for _, pt := range ds.Points {
			xLo = math.Min(xLo, pt.X)
			xHi = math.Max(xHi, pt.X)
			yLo = math.Min(yLo, pt.Y)
			yHi = math.Max(yHi, pt.Y)
		}
	}
	if math.IsInf(xLo, 1) {
		xLo, xHi, yLo, yHi = 0, 1, 0, 1
	}
	if c.xLo != nil {
		xLo = *c.xLo
	}
	if c.xHi != nil {
		xHi = *c.xHi
	}
	if c.yLo != nil {
		yLo = *c.yLo
	}
	if c.yHi != nil {
		yHi = *c.yHi
	}
	return xLo, xHi, yLo, yHi
}

func (c *Chart) drawYAxis(buf *render.Buffer, inner, plot layout.Rect, yLo, yHi float64, style props.Style) {
	for r := 0; r < plot.Height; r++ {
		var val float64
		if plot.Height <= 1 {
			val = (yLo + yHi) / 2
		} else {
			val = yHi - (yHi-yLo)*float64(r)/float64(plot.Height-1)
		}
		label := PadLeft(compactFloat(val), plot.X-inner.X-1)
		buf.SetStringN(inner.X, plot.Y+r, label, plot.X-inner.X-1, style)
	}
}

func (c *Chart) drawXAxis(buf *render.Buffer, inner, plot layout.Rect, xLo, xHi float64, style props.Style) {
	y := plot.Bottom()
	lo := compactFloat(xLo)
	hi := compactFloat(xHi)
	buf.SetStringN(plot.X, y, lo, plot.Width, style)
	if w := VisibleWidth(hi); w < plot.Width-VisibleWidth(lo) {
		buf.SetStringN(plot.Right()-w, y, hi, w, style)
	}
}

// scaleDot maps v in [lo, hi] to a dot index in [0, dots).
func scaleDot(v, lo, hi float64, dots int) int {
	if hi <= lo {
		return dots / 2
	}
	idx := int((v - lo) / (hi - lo) * float64(dots-1))
	return clamp(idx, 0, dots-1)
}

// brailleBit returns the dot bitmask for offset (offX, offY) in a cell.
//
// Unicode Braille dot numbering:
//
//	1 4   bit: 0x01 0x08
//	2 5        0x02 0x10
//	3 6        0x04 0x20
//	7 8        0x40 0x80
func brailleBit(offX, offY int) uint8 {
	leftBits := [4]uint8{0x01, 0x02, 0x04, 0x40}
	rightBits := [4]uint8{0x08, 0x10, 0x20, 0x80}
	if offX == 0 {
		return leftBits[offY]
	}
	return rightBits[offY]
}

// mergeStyles overlays the set parts of top on base.
func mergeStyles(base, top props.Style) props.Style {
	s := base
	if top.Fg.Kind() != props.ColorKindDefault {
		s.Fg = top.Fg
	}
	if top.Bg.Kind() != props.ColorKindDefault {
		s.Bg = top.Bg
	}
	if top.Mods != 0 {
		s.Mods = top.Mods
	}
	return s
}

// compactFloat formats v with SI suffixes: 1500 -> "1.5K".
func compactFloat(v float64) string {
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e12:
		return sign + trimZero(abs/1e12) + "T"
	case abs >= 1e9:
		return sign + trimZero(abs/1e9) + "G"
	case abs >= 1e6:
		return sign + trimZero(abs/1e6) + "M"
	case abs >= 1e3:
		return sign + trimZero(abs/1e3) + "K"
	case abs == math.Trunc(abs):
		return fmt.Sprintf("%s%d", sign, int(abs))
	default:
		return fmt.Sprintf("%s%.1f", sign, abs)
	}
}

func trimZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s
}
