// Package layout splits rectangular terminal areas into non-overlapping
// regions according to declarative constraints, in the style of ratatui's
// layout system. A region can ask for a fixed length, a percentage or ratio
// of the whole, a lower or upper bound, or a weighted share of whatever is
// left. Surplus space is positioned by the Flex mode.
//
// The solver works in three passes: fixed requests are sized first, leftover
// space is then shared among growing regions by weight, and finally bounds
// are enforced with the debt settled against the growers.
package layout

// Direction is the axis a Layout splits along.
type Direction uint8

const (
	// Horizontal splits left to right; constraints size widths.
	Horizontal Direction = iota
	// Vertical splits top to bottom; constraints size heights.
	Vertical
)

// Flex positions the surplus left over once every constraint is satisfied.
type Flex uint8

const (
	// FlexStart packs regions at the start, surplus at the end.
	FlexStart Flex = iota
	// FlexEnd packs regions at the end, surplus at the start.
	FlexEnd
	// FlexCenter splits the surplus evenly around the packed regions.
	FlexCenter
	// FlexSpaceBetween spreads the surplus into the inner gaps.
	FlexSpaceBetween
	// FlexSpaceAround gives every region an equal gap on both sides.
	FlexSpaceAround
	// FlexSpaceEvenly spreads the surplus into all gaps, edges included.
	FlexSpaceEvenly
)

// Layout describes one split: a direction, the constraints, and optional
// spacing, margin and flex. Layouts are cheap to build and, once shared
// with a Cache, must not be mutated.
type Layout struct {
	direction   Direction
	constraints []Constraint
	flex        Flex
	spacing     int
	margin      int
}

// NewLayout returns a layout splitting along dir with the given constraints.
func NewLayout(dir Direction, constraints ...Constraint) *Layout {
	return &Layout{direction: dir, constraints: constraints}
}

// WithFlex sets how surplus space is positioned.
func (l *Layout) WithFlex(f Flex) *Layout {
	l.flex = f
	return l
}

// WithSpacing sets the gap between adjacent regions, in cells.
func (l *Layout) WithSpacing(s int) *Layout {
	l.spacing = max(s, 0)
	return l
}

// WithMargin sets the margin around the whole split, in cells.
func (l *Layout) WithMargin(m int) *Layout {
	l.margin = max(m, 0)
	return l
}

// SplitHorizontal splits area left to right with the given constraints.
func SplitHorizontal(area Rect, constraints ...Constraint) []Rect {
	return NewLayout(Horizontal, constraints...).Split(area)
}

// SplitVertical splits area top to bottom with the given constraints.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	return NewLayout(Vertical, constraints...).Split(area)
}

// Split divides area into one rect per constraint. Rects never overlap and
// never extend past the margined area. With no constraints it returns nil.
func (l *Layout) Split(area Rect) []Rect {
	n := len(l.constraints)
	if n == 0 {
		return nil
	}

	inner := area.Inner(l.margin)
	if inner.Empty() {
		rects := make([]Rect, n)
		for i := range rects {
			rects[i] = Rect{X: inner.X, Y: inner.Y}
		}
		return rects
	}

	axis := inner.Width
	if l.direction == Vertical {
		axis = inner.Height
	}
	available := max(axis-l.spacing*(n-1), 0)

	sizes := l.solve(available)
	used := 0
	for _, s := range sizes {
		used += s
	}
	surplus := max(available-used, 0)

	offsets := l.offsets(sizes, surplus)
	rects := make([]Rect, n)
	for i := range rects {
		if l.direction == Horizontal {
			rects[i] = Rect{X: inner.X + offsets[i], Y: inner.Y, Width: sizes[i], Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: inner.Y + offsets[i], Width: inner.Width, Height: sizes[i]}
		}
	}
	return rects
}

// slot is the solver's working state for one constraint.
type slot struct {
	size   int
	grow   bool
	weight int
	lo     int
	hi     int // -1 when unbounded
}

// solve turns the constraint list into sizes summing to at most available.
func (l *Layout) solve(available int) []int {
	n := len(l.constraints)
	slots := make([]slot, n)

	// Pass 1: size the fixed requests. Fill and Max regions grow later.
	fixed := 0
	weight := 0
	for i, c := range l.constraints {
		s := slot{hi: -1}
		switch c.kind {
		case KindLength:
			s.size = c.value
		case KindPercentage:
			s.size = available * c.value / 100
		case KindRatio:
			if c.den > 0 {
				s.size = available * c.num / c.den
			}
		case KindMin:
			s.grow = true
			s.weight = 1
			s.lo = c.value
		case KindMax:
			s.grow = true
			s.weight = 1
			s.hi = c.value
		case KindFill:
			s.grow = true
			s.weight = c.value
		}
		if s.grow {
			weight += s.weight
		} else {
			fixed += s.size
		}
		slots[i] = s
	}

	// Pass 2: share the leftover among growers by weight. The last grower
	// takes the remainder so rounding never loses cells.
	leftover := max(available-fixed, 0)
	if weight > 0 && leftover > 0 {
		last := -1
		for i := range slots {
			if slots[i].grow {
				last = i
			}
		}
		given := 0
		for i := range slots {
			if !slots[i].grow {
				continue
			}
			if i == last {
				slots[i].size = leftover - given
			} else {
				slots[i].size = leftover * slots[i].weight / weight
				given += slots[i].size
			}
		}
	}

	// Pass 3: enforce bounds. Raising a region to its minimum or capping it
	// at its maximum leaves a debt that is settled against the unbounded
	// growers; repeat until nothing moves.
	for range slots {
		debt := 0
		settled := true
		for i := range slots {
			if slots[i].size < slots[i].lo {
				debt += slots[i].lo - slots[i].size
				slots[i].size = slots[i].lo
				settled = false
			}
			if slots[i].hi >= 0 && slots[i].size > slots[i].hi {
				debt -= slots[i].size - slots[i].hi
				slots[i].size = slots[i].hi
				settled = false
			}
		}
		if debt != 0 {
			for i := range slots {
				if slots[i].grow && slots[i].hi < 0 && slots[i].lo == 0 {
					slots[i].size = max(slots[i].size-debt, 0)
					break
				}
			}
		}
		if settled {
			break
		}
	}

	sizes := make([]int, n)
	total := 0
	for i := range slots {
		sizes[i] = max(slots[i].size, 0)
		total += sizes[i]
	}
	if total > available {
		shrinkToFit(sizes, total, available)
	}
	return sizes
}

// shrinkToFit scales oversubscribed sizes down proportionally.
func shrinkToFit(sizes []int, total, target int) {
	if target <= 0 {
		for i := range sizes {
			sizes[i] = 0
		}
		return
	}
	kept := 0
	for i := range sizes {
		sizes[i] = sizes[i] * target / total
		kept += sizes[i]
	}
	// Rounding slack goes to the last region.
	if diff := target - kept; diff > 0 && len(sizes) > 0 {
		sizes[len(sizes)-1] += diff
	}
}

// offsets places each region along the axis per the flex mode.
func (l *Layout) offsets(sizes []int, surplus int) []int {
	n := len(sizes)
	offsets := make([]int, n)

	lead, gap, rem := 0, 0, 0
	switch l.flex {
	case FlexEnd:
		lead = surplus
	case FlexCenter:
		lead = surplus / 2
	case FlexSpaceBetween:
		if n > 1 {
			gap = surplus / (n - 1)
			rem = surplus % (n - 1)
		}
	case FlexSpaceAround:
		half := surplus / (2 * n)
		lead = half
		gap = 2 * half
	case FlexSpaceEvenly:
		gap = surplus / (n + 1)
		rem = surplus % (n + 1)
		lead = gap
		if rem > 0 {
			lead++
			rem--
		}
	}

	pos := lead
	for i := range offsets {
		offsets[i] = pos
		g := gap
		if rem > 0 {
			g++
			rem--
		}
		pos += sizes[i] + l.spacing + g
	}
	return offsets
}
