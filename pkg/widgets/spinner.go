package widgets

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// CmdAdvance is the custom command a Spinner steps on. Wire it to tick
// events: one Perform(command.Custom(CmdAdvance)) per tick.
const CmdAdvance = "advance"

// Spinner cycles through an animation frame set next to an optional
// label. Frame sets come from the bubbles spinner catalog (spinner.Dot,
// spinner.Line, ...).
type Spinner struct {
	props  *props.Props
	frames spinner.Spinner
	frame  int
}

// NewSpinner returns a spinner using the Line frame set.
func NewSpinner() *Spinner {
	return &Spinner{props: props.NewProps(), frames: spinner.Line}
}

// WithFrames replaces the frame set.
func (s *Spinner) WithFrames(frames spinner.Spinner) *Spinner {
	s.frames = frames
	s.frame = 0
	return s
}

// WithLabel sets the text drawn after the spinner glyph.
func (s *Spinner) WithLabel(text string) *Spinner {
	s.props.Set(props.AttrText, props.Str(text))
	return s
}

// WithForeground sets the glyph color.
func (s *Spinner) WithForeground(c props.Color) *Spinner {
	s.props.Set(props.AttrForeground, props.ColorValue(c))
	return s
}

// Advance steps to the next frame.
func (s *Spinner) Advance() {
	if len(s.frames.Frames) == 0 {
		return
	}
	s.frame = (s.frame + 1) % len(s.frames.Frames)
}

// Frame returns the current frame index.
func (s *Spinner) Frame() int {
	return s.frame
}

// Interval returns the frame set's intended time per frame.
func (s *Spinner) Interval() time.Duration {
	return s.frames.FPS
}

// View draws the current frame and the label.
func (s *Spinner) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(s.props) || len(s.frames.Frames) == 0 {
		return
	}
	buf := f.Buffer()
	style := baseStyle(s.props)
	glyph := s.frames.Frames[s.frame%len(s.frames.Frames)]
	n := buf.SetStringN(area.X, area.Y, glyph, area.Width, style)
	if label := s.props.GetOr(props.AttrText, props.Str("")).Str(); label != "" {
		buf.SetStringN(area.X+n+1, area.Y, label, area.Width-n-1, style)
	}
}

// Query returns the attribute value stored under attr.
func (s *Spinner) Query(attr props.Attr) (props.AttrValue, bool) {
	return s.props.Get(attr)
}

// SetAttr stores value under attr.
func (s *Spinner) SetAttr(attr props.Attr, value props.AttrValue) {
	s.props.Set(attr, value)
}

// State returns the current frame index.
func (s *Spinner) State() state.State {
	return state.One(state.Int(s.frame))
}

// Perform advances the animation on the advance command.
func (s *Spinner) Perform(cmd command.Cmd) command.CmdResult {
	if cmd.Kind() == command.CmdCustom && cmd.CustomName() == CmdAdvance {
		s.Advance()
		return command.Changed(s.State())
	}
	return command.CmdResult{}
}
