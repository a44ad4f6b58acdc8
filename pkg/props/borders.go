package props

// BorderSides is a bitset naming which edges of a box are drawn.
type BorderSides uint8

const (
	SideTop BorderSides = 1 << iota
	SideBottom
	SideLeft
	SideRight

	SidesNone BorderSides = 0
	SidesAll              = SideTop | SideBottom | SideLeft | SideRight
)

// Has reports whether every side in s is set.
func (b BorderSides) Has(s BorderSides) bool { return b&s == s }

// BorderType selects the line style used to draw borders.
type BorderType uint8

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// Borders describes the frame around a widget.
type Borders struct {
	Sides BorderSides
	Type  BorderType
	Color Color
}

// DefaultBorders returns a plain frame on all sides in the default color.
func DefaultBorders() Borders {
	return Borders{Sides: SidesAll, Type: BorderPlain}
}

// WithSides returns b drawing only the given sides.
func (b Borders) WithSides(s BorderSides) Borders {
	b.Sides = s
	return b
}

// WithType returns b drawn in the given line style.
func (b Borders) WithType(t BorderType) Borders {
	b.Type = t
	return b
}

// WithColor returns b drawn in the given color.
func (b Borders) WithColor(c Color) Borders {
	b.Color = c
	return b
}
