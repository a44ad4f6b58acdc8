package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Input is a single-line text editor. Typed runes are validated against
// the input-type attribute and capped by the input-length attribute.
// Delete removes the rune before the cursor, Cancel the rune under it.
// The state is always the current text.
type Input struct {
	props  *props.Props
	chars  []rune
	cursor int
	offset int
}

// NewInput returns an empty input.
func NewInput() *Input {
	return &Input{props: props.NewProps()}
}

// WithValue sets the initial text and moves the cursor to its end.
func (in *Input) WithValue(s string) *Input {
	in.chars = []rune(s)
	in.cursor = len(in.chars)
	return in
}

// WithInputType restricts which runes the input accepts and how they are
// echoed.
func (in *Input) WithInputType(t props.InputType) *Input {
	in.props.Set(props.AttrInputType, props.InputTypeValue(t))
	return in
}

// WithMaxLength caps the number of runes the input holds. Zero means
// unlimited.
func (in *Input) WithMaxLength(n int) *Input {
	in.props.Set(props.AttrInputLength, props.Size(n))
	return in
}

// WithTitle frames the input with a title in the top border.
func (in *Input) WithTitle(title string, align props.Alignment) *Input {
	in.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return in
}

// WithBorders sets the frame drawn around the input.
func (in *Input) WithBorders(b props.Borders) *Input {
	in.props.Set(props.AttrBorders, props.BordersValue(b))
	return in
}

// WithForeground sets the text color.
func (in *Input) WithForeground(c props.Color) *Input {
	in.props.Set(props.AttrForeground, props.ColorValue(c))
	return in
}

// Value returns the current text.
func (in *Input) Value() string {
	return string(in.chars)
}

// Cursor returns the rune index of the cursor.
func (in *Input) Cursor() int {
	return in.cursor
}

// View draws the input into area, scrolling horizontally so the cursor
// stays visible, and requests the terminal cursor when focused.
func (in *Input) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(in.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, in.props)
	inner := drawBorders(buf, area, in.props)
	if inner.Empty() {
		return
	}

	echo := in.echoRunes()

	// Keep the cursor inside the window, reserving its own cell.
	cursorCol := runesWidth(echo[:in.cursor])
	if cursorCol < in.offset {
		in.offset = cursorCol
	}
	for cursorCol-in.offset >= inner.Width {
		in.offset += max(runewidth.RuneWidth(echo[visibleIndexAt(echo, in.offset)]), 1)
	}

	line := sliceByWidth(echo, in.offset, inner.Width)
	buf.SetStringN(inner.X, inner.Y, string(line), inner.Width, baseStyle(in.props))

	if hasFocus(in.props) {
		f.SetCursor(inner.X+cursorCol-in.offset, inner.Y)
	}
}

// Query returns the attribute value stored under attr.
func (in *Input) Query(attr props.Attr) (props.AttrValue, bool) {
	return in.props.Get(attr)
}

// SetAttr stores value under attr. Setting the value attribute replaces
// the text.
func (in *Input) SetAttr(attr props.Attr, value props.AttrValue) {
	if attr == props.AttrCurrentValue {
		in.chars = []rune(value.Str())
		in.cursor = len(in.chars)
		in.offset = 0
		return
	}
	in.props.Set(attr, value)
}

// State returns the current text.
func (in *Input) State() state.State {
	return state.One(state.Str(string(in.chars)))
}

// Perform edits the text.
func (in *Input) Perform(cmd command.Cmd) command.CmdResult {
	switch cmd.Kind() {
	case command.CmdMove:
		switch cmd.Dir() {
		case command.Left:
			if in.cursor > 0 {
				in.cursor--
				return command.Changed(in.State())
			}
		case command.Right:
			if in.cursor < len(in.chars) {
				in.cursor++
				return command.Changed(in.State())
			}
		}
		return command.CmdResult{}
	case command.CmdGoTo:
		switch cmd.Pos().Kind {
		case command.PositionBegin:
			in.cursor = 0
		case command.PositionEnd:
			in.cursor = len(in.chars)
		case command.PositionAt:
			in.cursor = clamp(cmd.Pos().Idx, 0, len(in.chars))
		}
		return command.Changed(in.State())
	case command.CmdType:
		return in.typeRune(cmd.Ch())
	case command.CmdDelete:
		if in.cursor == 0 {
			return command.CmdResult{}
		}
		in.chars = append(in.chars[:in.cursor-1], in.chars[in.cursor:]...)
		in.cursor--
		return command.Changed(in.State())
	case command.CmdCancel:
		if in.cursor >= len(in.chars) {
			return command.CmdResult{}
		}
		in.chars = append(in.chars[:in.cursor], in.chars[in.cursor+1:]...)
		return command.Changed(in.State())
	case command.CmdSubmit:
		return command.Submitted(in.State())
	default:
		return command.CmdResult{}
	}
}

func (in *Input) typeRune(ch rune) command.CmdResult {
	t := in.props.GetOr(props.AttrInputType, props.InputTypeValue(props.InputText)).InputType()
	if !t.AcceptRune(ch) {
		return command.Invalid(command.Type(ch))
	}
	if maxLen := in.props.GetOr(props.AttrInputLength, props.Size(0)).Size(); maxLen > 0 && len(in.chars) >= maxLen {
		return command.Invalid(command.Type(ch))
	}
	in.chars = append(in.chars[:in.cursor], append([]rune{ch}, in.chars[in.cursor:]...)...)
	in.cursor++
	return command.Changed(in.State())
}

// echoRunes returns the runes to display, masking when the input type
// asks for it.
func (in *Input) echoRunes() []rune {
	t := in.props.GetOr(props.AttrInputType, props.InputTypeValue(props.InputText)).InputType()
	if mask := t.Mask(); mask != 0 {
		return []rune(strings.Repeat(string(mask), len(in.chars)))
	}
	out := make([]rune, len(in.chars))
	copy(out, in.chars)
	return out
}

// runesWidth sums the cell widths of rs.
func runesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// visibleIndexAt returns the index of the rune occupying the cell at col.
func visibleIndexAt(rs []rune, col int) int {
	w := 0
	for i, r := range rs {
		if w >= col {
			return i
		}
		w += runewidth.RuneWidth(r)
	}
	if len(rs) == 0 {
		return 0
	}
	return len(rs) - 1
}

// sliceByWidth returns the run of rs starting at cell offset that fits
// within width cells.
func sliceByWidth(rs []rune, offset, width int) []rune {
	var out []rune
	w := 0
	for _, r := range rs {
		rw := runewidth.RuneWidth(r)
		if w+rw <= offset {
			w += rw
			continue
		}
		if w-offset+rw > width {
			break
		}
		out = append(out, r)
		w += rw
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
