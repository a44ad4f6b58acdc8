package theme

import (
	"gitlab.com/tinyland/lab/weft/pkg/app"
	"gitlab.com/tinyland/lab/weft/pkg/props"
)

// Styler pushes a palette into components as they are mounted. Register
// it with Application.AddInjector; every mount then receives the
// palette's base colors, focus style and highlight color without the
// caller styling each widget by hand.
type Styler struct {
	theme Theme
}

// NewStyler returns an injector applying t.
func NewStyler(t Theme) *Styler {
	return &Styler{theme: t}
}

// Theme returns the palette the styler applies.
func (s *Styler) Theme() Theme {
	return s.theme
}

// Inject returns the palette attributes for the component mounted under
// id. Border attributes are left alone: borders carry sides and line
// style next to the color, so overwriting them here would clobber
// per-widget frames. Use Theme.Frame for those.
func (s *Styler) Inject(id string) []app.AttrBinding {
	t := s.theme
	return []app.AttrBinding{
		{Attr: props.AttrForeground, Value: props.ColorValue(t.Foreground)},
		{Attr: props.AttrBackground, Value: props.ColorValue(t.Background)},
		{Attr: props.AttrFocusStyle, Value: props.StyleValue(t.Focused())},
		{Attr: props.AttrHighlightedColor, Value: props.ColorValue(t.Highlight)},
	}
}

// Frame returns the theme's resting widget frame.
func (t Theme) Frame() props.Borders {
	return props.DefaultBorders().WithColor(t.Border)
}

// FocusFrame returns the frame for the focused widget.
func (t Theme) FocusFrame() props.Borders {
	return props.DefaultBorders().WithColor(t.BorderFocus)
}
