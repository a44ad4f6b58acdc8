package layout

// Rect is a rectangular region of the terminal, in cells.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect returns a rect at origin with the given size.
func NewRect(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns the number of cells the rect covers.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the cell at (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the rect shrunk by margin cells on every side. Negative
// margins are ignored; dimensions never go below zero.
func (r Rect) Inner(margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  max(r.Width-2*margin, 0),
		Height: max(r.Height-2*margin, 0),
	}
}

// Intersect returns the overlap of two rects, or the zero rect when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
