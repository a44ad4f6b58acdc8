// Package preset maps named screen arrangements to layout splits. A grid
// names the component mounted in each slot; resolving it against an area
// yields the rectangle for every id, ready to hand to Application.View.
// Grids can be built in code or loaded from TOML, and an application can
// carry several and pick the first one that fits the current terminal.
package preset

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/weft/pkg/layout"
)

// ErrInvalidGrid is wrapped by every validation failure.
var ErrInvalidGrid = errors.New("preset: invalid grid")

// Grid is one named screen arrangement: rows of slots, each slot naming
// the component drawn there. MinWidth and MinHeight mark the smallest
// terminal the arrangement is usable at; zero means no requirement.
type Grid struct {
	Name      string
	MinWidth  int
	MinHeight int
	Rows      []Row
}

// Row is one horizontal band of the grid.
type Row struct {
	Height layout.Constraint
	Slots  []Slot
}

// Slot places one component within its row.
type Slot struct {
	ID    string
	Width layout.Constraint
}

// Validate checks that the grid has at least one row, every row at least
// one slot, and that slot ids are non-empty and unique across the grid.
func (g Grid) Validate() error {
	if len(g.Rows) == 0 {
		return fmt.Errorf("%w: %q has no rows", ErrInvalidGrid, g.Name)
	}
	seen := map[string]bool{}
	for i, r := range g.Rows {
		if len(r.Slots) == 0 {
			return fmt.Errorf("%w: %q row %d has no slots", ErrInvalidGrid, g.Name, i)
		}
		for _, s := range r.Slots {
			if s.ID == "" {
				return fmt.Errorf("%w: %q row %d has a slot without an id", ErrInvalidGrid, g.Name, i)
			}
			if seen[s.ID] {
				return fmt.Errorf("%w: %q names %q twice", ErrInvalidGrid, g.Name, s.ID)
			}
			seen[s.ID] = true
		}
	}
	return nil
}

// IDs returns every slot id in row-major order.
func (g Grid) IDs() []string {
	var ids []string
	for _, r := range g.Rows {
		for _, s := range r.Slots {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Fits reports whether the grid's minimum size is met by area.
func (g Grid) Fits(area layout.Rect) bool {
	return area.Width >= g.MinWidth && area.Height >= g.MinHeight
}

// Pick returns the first grid that fits the area. The last grid is the
// fallback when none fit; ok is false only for an empty list.
func Pick(grids []Grid, area layout.Rect) (Grid, bool) {
	if len(grids) == 0 {
		return Grid{}, false
	}
	for _, g := range grids {
		if g.Fits(area) {
			return g, true
		}
	}
	return grids[len(grids)-1], true
}
