package props

import "strings"

// Alignment positions text within its box.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Direction orients widgets that can lay out either way, such as progress
// bars and radio groups.
type Direction uint8

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

// TextModifiers is a bitset of typographic effects.
type TextModifiers uint16

const (
	ModifierBold TextModifiers = 1 << iota
	ModifierDim
	ModifierItalic
	ModifierUnderlined
	ModifierBlink
	ModifierReversed
	ModifierCrossedOut
)

// Has reports whether every modifier in m is set.
func (t TextModifiers) Has(m TextModifiers) bool { return t&m == m }

// With returns t with m added.
func (t TextModifiers) With(m TextModifiers) TextModifiers { return t | m }

// Without returns t with m cleared.
func (t TextModifiers) Without(m TextModifiers) TextModifiers { return t &^ m }

// String lists the set modifiers, pipe separated.
func (t TextModifiers) String() string {
	if t == 0 {
		return "none"
	}
	names := []struct {
		bit  TextModifiers
		name string
	}{
		{ModifierBold, "bold"},
		{ModifierDim, "dim"},
		{ModifierItalic, "italic"},
		{ModifierUnderlined, "underlined"},
		{ModifierBlink, "blink"},
		{ModifierReversed, "reversed"},
		{ModifierCrossedOut, "crossedout"},
	}
	var set []string
	for _, n := range names {
		if t.Has(n.bit) {
			set = append(set, n.name)
		}
	}
	return strings.Join(set, "|")
}

// Style combines colors and modifiers for one run of cells. The zero value
// is the terminal default.
type Style struct {
	Fg   Color
	Bg   Color
	Mods TextModifiers
}

// WithFg returns s with the foreground replaced.
func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

// WithBg returns s with the background replaced.
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// WithMods returns s with the modifiers replaced.
func (s Style) WithMods(m TextModifiers) Style {
	s.Mods = m
	return s
}
