package preset

import "gitlab.com/tinyland/lab/weft/pkg/layout"

// Resolve splits area into one rectangle per slot id. Row heights are
// solved first down the vertical axis, then each row's slot widths across
// it. An empty area resolves to no rectangles at all; slots squeezed to
// zero size by the solver keep their (empty) rectangle so callers can
// still look every id up.
func (g Grid) Resolve(area layout.Rect) map[string]layout.Rect {
	if area.Empty() {
		return nil
	}

	heights := make([]layout.Constraint, len(g.Rows))
	for i, r := range g.Rows {
		heights[i] = r.Height
	}
	bands := layout.SplitVertical(area, heights...)

	out := make(map[string]layout.Rect)
	for i, r := range g.Rows {
		widths := make([]layout.Constraint, len(r.Slots))
		for j, s := range r.Slots {
			widths[j] = s.Width
		}
		cells := layout.SplitHorizontal(bands[i], widths...)
		for j, s := range r.Slots {
			out[s.ID] = cells[j]
		}
	}
	return out
}
