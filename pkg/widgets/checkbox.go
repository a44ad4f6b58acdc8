package widgets

import (
	"sort"

	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Checkbox is a horizontal group of toggleable choices. Left and Right
// move the cursor, Toggle flips the choice under it. The state lists the
// checked indexes in ascending order.
type Checkbox struct {
	props    *props.Props
	cursor   int
	selected map[int]bool
}

// NewCheckbox returns a checkbox over the given choices.
func NewCheckbox(choices ...string) *Checkbox {
	p := props.NewProps()
	p.Set(props.AttrContent, props.PayloadValue(choicesPayload(choices)))
	return &Checkbox{props: p, selected: make(map[int]bool)}
}

// WithChecked pre-checks the given choice indexes.
func (c *Checkbox) WithChecked(idxs ...int) *Checkbox {
	for _, i := range idxs {
		if i >= 0 && i < len(c.choices()) {
			c.selected[i] = true
		}
	}
	return c
}

// WithRewind makes the cursor wrap around at either end.
func (c *Checkbox) WithRewind(on bool) *Checkbox {
	c.props.Set(props.AttrRewind, props.Flag(on))
	return c
}

// WithTitle frames the checkbox with a title in the top border.
func (c *Checkbox) WithTitle(title string, align props.Alignment) *Checkbox {
	c.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return c
}

// WithBorders sets the frame drawn around the choices.
func (c *Checkbox) WithBorders(b props.Borders) *Checkbox {
	c.props.Set(props.AttrBorders, props.BordersValue(b))
	return c
}

// WithForeground sets the text color.
func (c *Checkbox) WithForeground(col props.Color) *Checkbox {
	c.props.Set(props.AttrForeground, props.ColorValue(col))
	return c
}

// Checked reports whether the choice at idx is checked.
func (c *Checkbox) Checked(idx int) bool {
	return c.selected[idx]
}

// View draws the choices on one row: "[x] One  [ ] Two".
func (c *Checkbox) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(c.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, c.props)
	inner := drawBorders(buf, area, c.props)
	if inner.Empty() {
		return
	}

	base := baseStyle(c.props)
	focus := focusedStyle(c.props)
	focused := hasFocus(c.props)

	x := inner.X
	for i, choice := range c.choices() {
		mark := "[ ] "
		if c.selected[i] {
			mark = "[x] "
		}
		entry := mark + choice
		style := base
		if focused && i == c.cursor {
			style = focus
		}
		n := buf.SetStringN(x, inner.Y, entry, inner.Right()-x, style)
		x += n + 2
		if x >= inner.Right() {
			break
		}
	}
}

// Query returns the attribute value stored under attr.
func (c *Checkbox) Query(attr props.Attr) (props.AttrValue, bool) {
	return c.props.Get(attr)
}

// SetAttr stores value under attr. Replacing the content resets the
// cursor and the checked set.
func (c *Checkbox) SetAttr(attr props.Attr, value props.AttrValue) {
	c.props.Set(attr, value)
	if attr == props.AttrContent {
		c.cursor = 0
		c.selected = make(map[int]bool)
	}
}

// State returns the checked indexes in ascending order.
func (c *Checkbox) State() state.State {
	idxs := make([]int, 0, len(c.selected))
	for i, on := range c.selected {
		if on {
			idxs = append(idxs, i)
		}
	}
	sort.Ints(idxs)
	vs := make([]state.Value, len(idxs))
	for i, idx := range idxs {
		vs[i] = state.Int(idx)
	}
	return state.List(vs...)
}

// Perform moves the cursor and toggles choices.
func (c *Checkbox) Perform(cmd command.Cmd) command.CmdResult {
	n := len(c.choices())
	switch cmd.Kind() {
	case command.CmdMove:
		if n == 0 {
			return command.CmdResult{}
		}
		switch cmd.Dir() {
		case command.Right:
			if c.cursor+1 < n {
				c.cursor++
			} else if c.rewind() {
				c.cursor = 0
			}
		case command.Left:
			if c.cursor > 0 {
				c.cursor--
			} else if c.rewind() {
				c.cursor = n - 1
			}
		default:
			return command.CmdResult{}
		}
		return command.Changed(c.State())
	case command.CmdToggle:
		if n == 0 {
			return command.CmdResult{}
		}
		c.selected[c.cursor] = !c.selected[c.cursor]
		return command.Changed(c.State())
	case command.CmdSubmit:
		return command.Submitted(c.State())
	default:
		return command.CmdResult{}
	}
}

func (c *Checkbox) choices() []string {
	return payloadChoices(c.props.GetOr(props.AttrContent, props.PayloadValue(props.PayloadVec())).Payload())
}

func (c *Checkbox) rewind() bool {
	return c.props.GetOr(props.AttrRewind, props.Flag(false)).Flag()
}

// choicesPayload packs choice labels into a payload.
func choicesPayload(choices []string) props.Payload {
	vs := make([]state.Value, len(choices))
	for i, ch := range choices {
		vs[i] = state.Str(ch)
	}
	return props.PayloadVec(vs...)
}

// payloadChoices unpacks choice labels from a payload.
func payloadChoices(p props.Payload) []string {
	vec := p.Vec()
	out := make([]string, len(vec))
	for i, v := range vec {
		out[i] = v.Str()
	}
	return out
}
