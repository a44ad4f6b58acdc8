package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/weft/pkg/layout"
)

// tomlGrid is the TOML shape of a grid. Sizes are strings in the
// "kind:value" form accepted by ParseSize.
type tomlGrid struct {
	Name      string    `toml:"name"`
	MinWidth  int       `toml:"min_width"`
	MinHeight int       `toml:"min_height"`
	Rows      []tomlRow `toml:"rows"`
}

type tomlRow struct {
	Height string     `toml:"height"`
	Slots  []tomlSlot `toml:"slots"`
}

type tomlSlot struct {
	ID    string `toml:"id"`
	Width string `toml:"width"`
}

// FromTOML parses and validates a grid. An omitted height or width
// defaults to "fill:1".
func FromTOML(data []byte) (Grid, error) {
	var raw tomlGrid
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Grid{}, fmt.Errorf("preset: parse TOML: %w", err)
	}
	if raw.Name == "" {
		return Grid{}, fmt.Errorf("%w: missing required field %q", ErrInvalidGrid, "name")
	}

	g := Grid{Name: raw.Name, MinWidth: raw.MinWidth, MinHeight: raw.MinHeight}
	for i, r := range raw.Rows {
		h, err := sizeOrFill(r.Height)
		if err != nil {
			return Grid{}, fmt.Errorf("preset: %q row %d height: %w", raw.Name, i, err)
		}
		row := Row{Height: h}
		for _, s := range r.Slots {
			w, err := sizeOrFill(s.Width)
			if err != nil {
				return Grid{}, fmt.Errorf("preset: %q slot %q width: %w", raw.Name, s.ID, err)
			}
			row.Slots = append(row.Slots, Slot{ID: s.ID, Width: w})
		}
		g.Rows = append(g.Rows, row)
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

func sizeOrFill(s string) (layout.Constraint, error) {
	if s == "" {
		return layout.Fill(1), nil
	}
	return ParseSize(s)
}

// ParseSize reads a constraint from its text form: "length:3",
// "percentage:30", "ratio:1/3", "min:5", "max:10", or "fill:2".
func ParseSize(s string) (layout.Constraint, error) {
	kind, arg, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return layout.Constraint{}, fmt.Errorf("size %q is not in kind:value form", s)
	}

	if kind == "ratio" {
		numStr, denStr, ok := strings.Cut(arg, "/")
		if !ok {
			return layout.Constraint{}, fmt.Errorf("ratio %q is not in num/den form", s)
		}
		num, err := strconv.Atoi(strings.TrimSpace(numStr))
		if err != nil {
			return layout.Constraint{}, fmt.Errorf("size %q: %w", s, err)
		}
		den, err := strconv.Atoi(strings.TrimSpace(denStr))
		if err != nil {
			return layout.Constraint{}, fmt.Errorf("size %q: %w", s, err)
		}
		if den <= 0 {
			return layout.Constraint{}, fmt.Errorf("ratio %q has a non-positive denominator", s)
		}
		return layout.Ratio(num, den), nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return layout.Constraint{}, fmt.Errorf("size %q: %w", s, err)
	}
	switch kind {
	case "length":
		return layout.Length(n), nil
	case "percentage":
		return layout.Percentage(n), nil
	case "min":
		return layout.Min(n), nil
	case "max":
		return layout.Max(n), nil
	case "fill":
		return layout.Fill(n), nil
	default:
		return layout.Constraint{}, fmt.Errorf("unknown size kind %q", kind)
	}
}
