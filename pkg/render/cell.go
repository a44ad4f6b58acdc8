// Package render holds the cell buffer widgets draw into and the frame
// handed to component views. Text is written grapheme cluster by grapheme
// cluster so wide runes and combining marks land in the right cells.
package render

import "gitlab.com/tinyland/lab/weft/pkg/props"

// Cell is one terminal cell: a primary rune, any combining runes, and the
// style to draw it with. A zero Rune marks the continuation of a wide rune
// in the cell to its left.
type Cell struct {
	Rune  rune
	Comb  []rune
	Style props.Style
}

// IsContinuation reports whether the cell is covered by a wide rune
// starting in an earlier column.
func (c Cell) IsContinuation() bool { return c.Rune == 0 }

// blank is the cell a cleared buffer is filled with.
var blank = Cell{Rune: ' '}
