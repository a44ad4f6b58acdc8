package props

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKind discriminates the color variants.
type ColorKind uint8

const (
	// ColorKindDefault leaves the terminal's own foreground or background
	// untouched.
	ColorKindDefault ColorKind = iota
	// ColorKindIndexed addresses one of the 256 palette entries.
	ColorKindIndexed
	// ColorKindRGB is a 24-bit truecolor value.
	ColorKindRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	kind    ColorKind
	idx     uint8
	r, g, b uint8
}

// ColorDefault is the terminal's own default color.
var ColorDefault = Color{}

// The standard ANSI palette.
var (
	ColorBlack        = Indexed(0)
	ColorRed          = Indexed(1)
	ColorGreen        = Indexed(2)
	ColorYellow       = Indexed(3)
	ColorBlue         = Indexed(4)
	ColorMagenta      = Indexed(5)
	ColorCyan         = Indexed(6)
	ColorGray         = Indexed(7)
	ColorDarkGray     = Indexed(8)
	ColorLightRed     = Indexed(9)
	ColorLightGreen   = Indexed(10)
	ColorLightYellow  = Indexed(11)
	ColorLightBlue    = Indexed(12)
	ColorLightMagenta = Indexed(13)
	ColorLightCyan    = Indexed(14)
	ColorWhite        = Indexed(15)
)

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: ColorKindRGB, r: r, g: g, b: b}
}

// Indexed returns the n-th color of the 256-entry palette.
func Indexed(n uint8) Color {
	return Color{kind: ColorKindIndexed, idx: n}
}

// Kind returns the color variant.
func (c Color) Kind() ColorKind { return c.kind }

// Index returns the palette index for indexed colors, zero otherwise.
func (c Color) Index() uint8 { return c.idx }

// Values returns the RGB channels for truecolor values, zeros otherwise.
func (c Color) Values() (r, g, b uint8) { return c.r, c.g, c.b }

// String renders the color in a form ParseColor accepts back.
func (c Color) String() string {
	switch c.kind {
	case ColorKindIndexed:
		if name, ok := colorNames[c.idx]; ok {
			return name
		}
		return strconv.Itoa(int(c.idx))
	case ColorKindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "default"
	}
}

var colorNames = map[uint8]string{
	0: "black", 1: "red", 2: "green", 3: "yellow",
	4: "blue", 5: "magenta", 6: "cyan", 7: "gray",
	8: "darkgray", 9: "lightred", 10: "lightgreen", 11: "lightyellow",
	12: "lightblue", 13: "lightmagenta", 14: "lightcyan", 15: "white",
}

var namedColors = map[string]Color{
	"default":      ColorDefault,
	"reset":        ColorDefault,
	"black":        ColorBlack,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"gray":         ColorGray,
	"grey":         ColorGray,
	"darkgray":     ColorDarkGray,
	"darkgrey":     ColorDarkGray,
	"lightred":     ColorLightRed,
	"lightgreen":   ColorLightGreen,
	"lightyellow":  ColorLightYellow,
	"lightblue":    ColorLightBlue,
	"lightmagenta": ColorLightMagenta,
	"lightcyan":    ColorLightCyan,
	"white":        ColorWhite,
}

// ParseColor parses a color from its textual form: a palette name
// ("lightblue"), a hex triplet ("#e5c07b" or "e5c07b"), an "rgb(r, g, b)"
// tuple, or a bare palette index ("208").
func ParseColor(s string) (Color, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[norm]; ok {
		return c, nil
	}
	if r, g, b, ok := parseHex(norm); ok {
		return RGB(r, g, b), nil
	}
	if c, ok := parseRGBTuple(norm); ok {
		return c, nil
	}
	if n, err := strconv.ParseUint(norm, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}
	return Color{}, fmt.Errorf("props: unknown color %q", s)
}

// parseHex converts "#RRGGBB" or "RRGGBB" into RGB channels.
func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}

// parseRGBTuple converts "rgb(r, g, b)" into a truecolor value.
func parseRGBTuple(s string) (Color, bool) {
	if !strings.HasPrefix(s, "rgb(") || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}
	parts := strings.Split(s[4:len(s)-1], ",")
	if len(parts) != 3 {
		return Color{}, false
	}
	var ch [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB(ch[0], ch[1], ch[2]), true
}
