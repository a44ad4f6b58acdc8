package widgets

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Select is a drop-down choice list. Closed, it shows the committed
// choice on a single row. The first Up/Down or Submit opens the list;
// while open, Up/Down move the highlight, Submit commits it and Cancel
// closes without committing. The state is the committed index.
type Select struct {
	props       *props.Props
	selected    int
	highlighted int
	open        bool
}

// NewSelect returns a closed select over the given choices.
func NewSelect(choices ...string) *Select {
	p := props.NewProps()
	p.Set(props.AttrContent, props.PayloadValue(choicesPayload(choices)))
	return &Select{props: p}
}

// WithChoice commits the initial choice.
func (s *Select) WithChoice(idx int) *Select {
	if idx >= 0 && idx < len(s.choices()) {
		s.selected = idx
		s.highlighted = idx
	}
	return s
}

// WithRewind makes the highlight wrap around while the list is open.
func (s *Select) WithRewind(on bool) *Select {
	s.props.Set(props.AttrRewind, props.Flag(on))
	return s
}

// WithTitle frames the select with a title in the top border.
func (s *Select) WithTitle(title string, align props.Alignment) *Select {
	s.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return s
}

// WithBorders sets the frame drawn around the widget.
func (s *Select) WithBorders(b props.Borders) *Select {
	s.props.Set(props.AttrBorders, props.BordersValue(b))
	return s
}

// WithForeground sets the text color.
func (s *Select) WithForeground(c props.Color) *Select {
	s.props.Set(props.AttrForeground, props.ColorValue(c))
	return s
}

// WithHighlight sets the string prefixed to the highlighted choice while
// the list is open.
func (s *Select) WithHighlight(prefix string) *Select {
	s.props.Set(props.AttrHighlightedStr, props.Str(prefix))
	return s
}

// Open reports whether the choice list is showing.
func (s *Select) Open() bool {
	return s.open
}

// Choice returns the committed index.
func (s *Select) Choice() int {
	return s.selected
}

// View draws the committed choice, or the whole list while open.
func (s *Select) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(s.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, s.props)
	inner := drawBorders(buf, area, s.props)
	if inner.Empty() {
		return
	}

	base := baseStyle(s.props)
	focus := focusedStyle(s.props)
	choices := s.choices()

	if !s.open {
		label := ""
		if s.selected >= 0 && s.selected < len(choices) {
			label = choices[s.selected]
		}
		style := base
		if hasFocus(s.props) {
			style = focus
		}
		label = Truncate(label, inner.Width-2)
		buf.SetStringN(inner.X, inner.Y, PadRight(label, inner.Width-2)+" ▼", inner.Width, style)
		return
	}

	prefix := s.props.GetOr(props.AttrHighlightedStr, props.Str("> ")).Str()
	pad := len([]rune(prefix))
	for i, choice := range choices {
		y := inner.Y + i
		if y >= inner.Bottom() {
			break
		}
		if i == s.highlighted {
			buf.SetStringN(inner.X, y, prefix+choice, inner.Width, focus)
			continue
		}
		buf.SetStringN(inner.X+pad, y, choice, inner.Width-pad, base)
	}
}

// Query returns the attribute value stored under attr.
func (s *Select) Query(attr props.Attr) (props.AttrValue, bool) {
	return s.props.Get(attr)
}

// SetAttr stores value under attr. Replacing the content closes the list
// and resets the selection; setting the value attribute commits that
// index.
func (s *Select) SetAttr(attr props.Attr, value props.AttrValue) {
	switch attr {
	case props.AttrCurrentValue:
		if idx := value.Size(); idx >= 0 && idx < len(s.choices()) {
			s.selected = idx
			s.highlighted = idx
		}
		return
	case props.AttrContent:
		s.props.Set(attr, value)
		s.selected = 0
		s.highlighted = 0
		s.open = false
		return
	}
	s.props.Set(attr, value)
}

// State returns the committed index.
func (s *Select) State() state.State {
	return state.One(state.Int(s.selected))
}

// Perform opens the list, moves the highlight and commits choices.
func (s *Select) Perform(cmd command.Cmd) command.CmdResult {
	n := len(s.choices())
	switch cmd.Kind() {
	case command.CmdMove:
		if n == 0 {
			return command.CmdResult{}
		}
		if !s.open {
			s.open = true
			s.highlighted = s.selected
			return command.Changed(s.State())
		}
		switch cmd.Dir() {
		case command.Down:
			if s.highlighted+1 < n {
				s.highlighted++
			} else if s.rewind() {
				s.highlighted = 0
			}
		case command.Up:
			if s.highlighted > 0 {
				s.highlighted--
			} else if s.rewind() {
				s.highlighted = n - 1
			}
		default:
			return command.CmdResult{}
		}
		return command.Changed(s.State())
	case command.CmdSubmit:
		if !s.open {
			s.open = true
			s.highlighted = s.selected
			return command.Changed(s.State())
		}
		s.selected = s.highlighted
		s.open = false
		return command.Submitted(s.State())
	case command.CmdCancel:
		if !s.open {
			return command.CmdResult{}
		}
		s.open = false
		s.highlighted = s.selected
		return command.Changed(s.State())
	default:
		return command.CmdResult{}
	}
}

func (s *Select) choices() []string {
	return payloadChoices(s.props.GetOr(props.AttrContent, props.PayloadValue(props.PayloadVec())).Payload())
}

func (s *Select) rewind() bool {
	return s.props.GetOr(props.AttrRewind, props.Flag(false)).Flag()
}
