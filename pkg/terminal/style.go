package terminal

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"gitlab.com/tinyland/lab/weft/pkg/props"
)

// tcellColor maps a framework color onto tcell's color space.
func tcellColor(c props.Color) tcell.Color {
	switch c.Kind() {
	case props.ColorKindIndexed:
		return tcell.PaletteColor(int(c.Index()))
	case props.ColorKindRGB:
		r, g, b := c.Values()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

// tcellStyle maps a framework style onto a tcell style.
func tcellStyle(s props.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg))
	if s.Mods.Has(props.ModifierBold) {
		st = st.Bold(true)
	}
	if s.Mods.Has(props.ModifierDim) {
		st = st.Dim(true)
	}
	if s.Mods.Has(props.ModifierItalic) {
		st = st.Italic(true)
	}
	if s.Mods.Has(props.ModifierUnderlined) {
		st = st.Underline(true)
	}
	if s.Mods.Has(props.ModifierBlink) {
		st = st.Blink(true)
	}
	if s.Mods.Has(props.ModifierReversed) {
		st = st.Reverse(true)
	}
	if s.Mods.Has(props.ModifierCrossedOut) {
		st = st.StrikeThrough(true)
	}
	return st
}

// lipglossColor maps a framework color onto a lipgloss terminal color.
func lipglossColor(c props.Color) lipgloss.TerminalColor {
	switch c.Kind() {
	case props.ColorKindIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.Index())))
	case props.ColorKindRGB:
		r, g, b := c.Values()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	default:
		return lipgloss.NoColor{}
	}
}

// lipglossStyle maps a framework style onto a lipgloss style bound to the
// given renderer, so the inline backend degrades with the color profile.
func lipglossStyle(r *lipgloss.Renderer, s props.Style) lipgloss.Style {
	st := r.NewStyle().
		Foreground(lipglossColor(s.Fg)).
		Background(lipglossColor(s.Bg))
	if s.Mods.Has(props.ModifierBold) {
		st = st.Bold(true)
	}
	if s.Mods.Has(props.ModifierDim) {
		st = st.Faint(true)
	}
	if s.Mods.Has(props.ModifierItalic) {
		st = st.Italic(true)
	}
	if s.Mods.Has(props.ModifierUnderlined) {
		st = st.Underline(true)
	}
	if s.Mods.Has(props.ModifierBlink) {
		st = st.Blink(true)
	}
	if s.Mods.Has(props.ModifierReversed) {
		st = st.Reverse(true)
	}
	if s.Mods.Has(props.ModifierCrossedOut) {
		st = st.Strikethrough(true)
	}
	return st
}
