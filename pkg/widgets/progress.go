package widgets

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Eighth blocks give 8 fill levels per cell.
var progressBlocks = [9]rune{
	' ',
	'▏', // 1/8
	'▎', // 2/8
	'▍', // 3/8
	'▌', // 4/8
	'▋', // 5/8
	'▊', // 6/8
	'▉', // 7/8
	'█', // 8/8
}

// ProgressBar is a horizontal bar filled to a ratio in [0, 1], drawn
// with eighth-block characters for sub-cell precision. The text
// attribute, when set, is drawn after the bar; otherwise a percentage
// is shown.
type ProgressBar struct {
	props *props.Props
	ratio float64
}

// NewProgressBar returns an empty bar.
func NewProgressBar() *ProgressBar {
	return &ProgressBar{props: props.NewProps()}
}

// WithRatio sets the fill ratio, clamped to [0, 1].
func (pb *ProgressBar) WithRatio(r float64) *ProgressBar {
	pb.ratio = clampRatio(r)
	return pb
}

// WithLabel sets the text drawn after the bar in place of the default
// percentage.
func (pb *ProgressBar) WithLabel(text string) *ProgressBar {
	pb.props.Set(props.AttrText, props.Str(text))
	return pb
}

// WithTitle frames the bar with a title in the top border.
func (pb *ProgressBar) WithTitle(title string, align props.Alignment) *ProgressBar {
	pb.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return pb
}

// WithBorders sets the frame drawn around the bar.
func (pb *ProgressBar) WithBorders(b props.Borders) *ProgressBar {
	pb.props.Set(props.AttrBorders, props.BordersValue(b))
	return pb
}

// WithForeground sets the fill color.
func (pb *ProgressBar) WithForeground(c props.Color) *ProgressBar {
	pb.props.Set(props.AttrForeground, props.ColorValue(c))
	return pb
}

// WithBackground sets the empty-portion color.
func (pb *ProgressBar) WithBackground(c props.Color) *ProgressBar {
	pb.props.Set(props.AttrBackground, props.ColorValue(c))
	return pb
}

// Ratio returns the current fill ratio.
func (pb *ProgressBar) Ratio() float64 {
	return pb.ratio
}

// View draws the bar into the first interior row of area.
func (pb *ProgressBar) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(pb.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, pb.props)
	inner := drawBorders(buf, area, pb.props)
	if inner.Empty() {
		return
	}

	label := pb.label()
	barWidth := inner.Width
	if label != "" {
		barWidth -= VisibleWidth(label) + 1
		if barWidth < 1 {
			barWidth = inner.Width
			label = ""
		}
	}

	style := baseStyle(pb.props)

	totalEighths := barWidth * 8
	filled := int(math.Round(pb.ratio * float64(totalEighths)))
	fullCells := filled / 8
	partial := filled % 8

	x := inner.X
	for i := 0; i < fullCells && x < inner.Right(); i++ {
		buf.Set(x, inner.Y, progressBlocks[8], style)
		x++
	}
	if partial > 0 && x < inner.Right() {
		buf.Set(x, inner.Y, progressBlocks[partial], style)
		x++
	}
	for x < inner.X+barWidth {
		buf.Set(x, inner.Y, ' ', style)
		x++
	}
	if label != "" {
		buf.SetStringN(x+1, inner.Y, label, inner.Right()-x-1, style)
	}
}

// Query returns the attribute value stored under attr.
func (pb *ProgressBar) Query(attr props.Attr) (props.AttrValue, bool) {
	return pb.props.Get(attr)
}

// SetAttr stores value under attr. Setting the value attribute replaces
// the ratio with the payload's float.
func (pb *ProgressBar) SetAttr(attr props.Attr, value props.AttrValue) {
	if attr == props.AttrCurrentValue {
		pb.ratio = clampRatio(value.Payload().One().Float())
		return
	}
	pb.props.Set(attr, value)
}

// State returns the fill ratio.
func (pb *ProgressBar) State() state.State {
	return state.One(state.Float(pb.ratio))
}

// Perform ignores all commands.
func (pb *ProgressBar) Perform(command.Cmd) command.CmdResult {
	return command.CmdResult{}
}

func (pb *ProgressBar) label() string {
	if v, ok := pb.props.Get(props.AttrText); ok {
		return v.Str()
	}
	return fmt.Sprintf("%d%%", int(math.Round(pb.ratio*100)))
}

func clampRatio(r float64) float64 {
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
