package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/weft/pkg/props"
)

// VisibleWidth returns the width of s in terminal cells. Wide characters
// (CJK, emoji) count as 2; zero-width joiners and combining marks are
// handled via grapheme clustering.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth cells. If s already fits, it is
// returned unchanged.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail cuts s to at most maxWidth cells, appending tail
// (e.g. "…") when a cut happens. The tail counts toward maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to exactly width cells. Wider
// strings are returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleWidth(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces to exactly width cells. Wider
// strings are returned unchanged.
func PadLeft(s string, width int) string {
	vis := VisibleWidth(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// PadCenter centers s within width cells; an odd leftover space goes on
// the right. Wider strings are returned unchanged.
func PadCenter(s string, width int) string {
	vis := VisibleWidth(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// PadAlign pads s to width cells according to align.
func PadAlign(s string, width int, align props.Alignment) string {
	switch align {
	case props.AlignCenter:
		return PadCenter(s, width)
	case props.AlignRight:
		return PadLeft(s, width)
	default:
		return PadRight(s, width)
	}
}

// Wrap word-wraps s at width cells, breaking at spaces and hyphens.
// Returns the wrapped lines without trailing newlines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
