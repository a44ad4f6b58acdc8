package widgets

import (
	"math"

	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Vertical eighth blocks: 8 levels per cell, lowest to highest.
var sparkBlocks = [8]rune{
	'▁', '▂', '▃', '▄',
	'▅', '▆', '▇', '█',
}

// Sparkline draws a data series as a row of block characters, newest
// value rightmost. Data comes from the dataset attribute; only the Y of
// each point is used. The series is auto-scaled unless fixed bounds are
// set.
type Sparkline struct {
	props *props.Props
	minY  *float64
	maxY  *float64
}

// NewSparkline returns a sparkline over the given values.
func NewSparkline(values ...float64) *Sparkline {
	p := props.NewProps()
	s := &Sparkline{props: p}
	s.SetAttr(props.AttrDataset, props.DatasetValue(valuesDataset(values)))
	return s
}

// WithForeground sets the block color.
func (s *Sparkline) WithForeground(c props.Color) *Sparkline {
	s.props.Set(props.AttrForeground, props.ColorValue(c))
	return s
}

// WithTitle frames the sparkline with a title in the top border.
func (s *Sparkline) WithTitle(title string, align props.Alignment) *Sparkline {
	s.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return s
}

// WithBorders sets the frame drawn around the sparkline.
func (s *Sparkline) WithBorders(b props.Borders) *Sparkline {
	s.props.Set(props.AttrBorders, props.BordersValue(b))
	return s
}

// WithRange fixes the Y bounds instead of auto-scaling.
func (s *Sparkline) WithRange(minY, maxY float64) *Sparkline {
	s.minY = &minY
	s.maxY = &maxY
	return s
}

// Push appends a value to the series.
func (s *Sparkline) Push(v float64) {
	ds := s.datasets()
	if len(ds) == 0 {
		ds = []props.Dataset{props.NewDataset("values")}
	}
	ds[0] = ds[0].Push(float64(len(ds[0].Points)), v)
	s.props.Set(props.AttrDataset, props.DatasetValue(ds...))
}

// View draws the newest values that fit into the interior width.
func (s *Sparkline) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(s.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, s.props)
	inner := drawBorders(buf, area, s.props)
	if inner.Empty() {
		return
	}

	values := s.values()
	if len(values) == 0 {
		return
	}
	if len(values) > inner.Width {
		values = values[len(values)-inner.Width:]
	}

	minY, maxY := autoRange(values)
	if s.minY != nil {
		minY = *s.minY
	}
	if s.maxY != nil {
		maxY = *s.maxY
	}

	style := baseStyle(s.props)
	for i, v := range values {
		buf.Set(inner.X+i, inner.Y, sparkBlocks[blockLevel(v, minY, maxY)], style)
	}
}

// Query returns the attribute value stored under attr.
func (s *Sparkline) Query(attr props.Attr) (props.AttrValue, bool) {
	return s.props.Get(attr)
}

// SetAttr stores value under attr.
func (s *Sparkline) SetAttr(attr props.Attr, value props.AttrValue) {
	s.props.Set(attr, value)
}

// State returns the empty state.
func (s *Sparkline) State() state.State {
	return state.None()
}

// Perform ignores all commands.
func (s *Sparkline) Perform(command.Cmd) command.CmdResult {
	return command.CmdResult{}
}

func (s *Sparkline) datasets() []props.Dataset {
	return s.props.GetOr(props.AttrDataset, props.DatasetValue()).Dataset()
}

func (s *Sparkline) values() []float64 {
	ds := s.datasets()
	if len(ds) == 0 {
		return nil
	}
	out := make([]float64, len(ds[0].Points))
	for i, pt := range ds[0].Points {
		out[i] = pt.Y
	}
	return out
}

// valuesDataset packs plain values into a dataset indexed by position.
func valuesDataset(values []float64) props.Dataset {
	d := props.NewDataset("values")
	for i, v := range values {
		d = d.Push(float64(i), v)
	}
	return d
}

// autoRange finds the bounds of values.
func autoRange(values []float64) (minY, maxY float64) {
	minY, maxY = values[0], values[0]
	for _, v := range values[1:] {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	return minY, maxY
}

// blockLevel maps v to one of the 8 block heights.
func blockLevel(v, minY, maxY float64) int {
	if maxY <= minY {
		return 3
	}
	frac := (v - minY) / (maxY - minY)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	lvl := int(math.Round(frac * 7))
	if lvl > 7 {
		lvl = 7
	}
	return lvl
}
