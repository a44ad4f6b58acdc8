package render

import (
	"github.com/rivo/uniseg"

	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
)

// Buffer is a rectangular grid of cells covering one area of the terminal.
// Writes outside the area are clipped.
type Buffer struct {
	area  layout.Rect
	cells []Cell
}

// NewBuffer returns a cleared buffer covering area.
func NewBuffer(area layout.Rect) *Buffer {
	b := &Buffer{area: area, cells: make([]Cell, area.Area())}
	b.Clear()
	return b
}

// Area returns the region the buffer covers.
func (b *Buffer) Area() layout.Rect { return b.area }

// Clear resets every cell to a plain blank.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// FillStyle paints every cell's style without touching its content.
func (b *Buffer) FillStyle(area layout.Rect, style props.Style) {
	clipped := b.area.Intersect(area)
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			b.cells[b.index(x, y)].Style = style
		}
	}
}

// Get returns the cell at (x, y), reporting false outside the buffer.
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.area.Contains(x, y) {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

// Set places a single-width rune at (x, y). Writes outside the buffer are
// dropped.
func (b *Buffer) Set(x, y int, r rune, style props.Style) {
	if !b.area.Contains(x, y) {
		return
	}
	b.cells[b.index(x, y)] = Cell{Rune: r, Style: style}
}

// SetString writes s starting at (x, y), clipped to the buffer row, and
// returns the display width written. Wide runes occupy two cells; a wide
// rune that would be cut in half at the clip edge is dropped.
func (b *Buffer) SetString(x, y int, s string, style props.Style) int {
	return b.setClusters(x, y, b.area.Right(), s, style)
}

// SetStringN is SetString bounded to maxWidth display cells.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style props.Style) int {
	return b.setClusters(x, y, min(x+maxWidth, b.area.Right()), s, style)
}

// SetSpans writes styled spans starting at (x, y), bounded to maxWidth
// display cells, and returns the display width written.
func (b *Buffer) SetSpans(x, y int, spans []props.TextSpan, maxWidth int) int {
	limit := min(x+maxWidth, b.area.Right())
	written := 0
	for _, span := range spans {
		written += b.setClusters(x+written, y, limit, span.Content, span.Style())
		if x+written >= limit {
			break
		}
	}
	return written
}

// setClusters writes grapheme clusters until the string runs out or the
// next cluster would cross limit.
func (b *Buffer) setClusters(x, y, limit int, s string, style props.Style) int {
	if y < b.area.Y || y >= b.area.Bottom() {
		return 0
	}
	written := 0
	state := -1
	var cluster string
	var width int
	for len(s) > 0 {
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width <= 0 {
			continue
		}
		pos := x + written
		if pos < b.area.X || pos+width > limit {
			break
		}
		runes := []rune(cluster)
		cell := Cell{Rune: runes[0], Style: style}
		if len(runes) > 1 {
			cell.Comb = runes[1:]
		}
		b.cells[b.index(pos, y)] = cell
		for i := 1; i < width; i++ {
			b.cells[b.index(pos+i, y)] = Cell{Style: style}
		}
		written += width
	}
	return written
}

func (b *Buffer) index(x, y int) int {
	return (y-b.area.Y)*b.area.Width + (x - b.area.X)
}
