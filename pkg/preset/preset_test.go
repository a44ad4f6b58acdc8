package preset

import (
	"errors"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/weft/pkg/layout"
)

// demoGrid is a header row with two slots over a full-width body.
func demoGrid() Grid {
	return Grid{
		Name: "demo",
		Rows: []Row{
			{Height: layout.Length(1), Slots: []Slot{
				{ID: "title", Width: layout.Fill(1)},
				{ID: "clock", Width: layout.Length(8)},
			}},
			{Height: layout.Fill(1), Slots: []Slot{
				{ID: "body", Width: layout.Fill(1)},
			}},
		},
	}
}

// --- Validation ---

func TestValidateAcceptsDemoGrid(t *testing.T) {
	if err := demoGrid().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsEmptyGrid(t *testing.T) {
	err := Grid{Name: "empty"}.Validate()
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("Validate() = %v, want ErrInvalidGrid", err)
	}
}

func TestValidateRejectsEmptyRow(t *testing.T) {
	g := Grid{Name: "hollow", Rows: []Row{{Height: layout.Fill(1)}}}
	if err := g.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("Validate() = %v, want ErrInvalidGrid", err)
	}
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	g := Grid{Name: "dup", Rows: []Row{
		{Height: layout.Fill(1), Slots: []Slot{
			{ID: "a", Width: layout.Fill(1)},
			{ID: "a", Width: layout.Fill(1)},
		}},
	}}
	err := g.Validate()
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("Validate() = %v, want ErrInvalidGrid", err)
	}
	if !strings.Contains(err.Error(), `"a"`) {
		t.Errorf("Validate() error %q does not name the duplicate id", err)
	}
}

func TestIDsRowMajor(t *testing.T) {
	got := demoGrid().IDs()
	want := []string{"title", "clock", "body"}
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	}
}

// --- Resolution ---

func TestResolveSplitsRowsThenSlots(t *testing.T) {
	areas := demoGrid().Resolve(layout.NewRect(40, 10))

	want := map[string]layout.Rect{
		"title": {X: 0, Y: 0, Width: 32, Height: 1},
		"clock": {X: 32, Y: 0, Width: 8, Height: 1},
		"body":  {X: 0, Y: 1, Width: 40, Height: 9},
	}
	for id, w := range want {
		if areas[id] != w {
			t.Errorf("Resolve()[%q] = %+v, want %+v", id, areas[id], w)
		}
	}
}

func TestResolveEmptyArea(t *testing.T) {
	if areas := demoGrid().Resolve(layout.Rect{}); areas != nil {
		t.Errorf("Resolve(empty) = %v, want nil", areas)
	}
}

func TestResolveKeepsSqueezedSlots(t *testing.T) {
	areas := demoGrid().Resolve(layout.NewRect(4, 1))
	if _, ok := areas["body"]; !ok {
		t.Error("Resolve() dropped a slot squeezed to zero height")
	}
}

// --- Selection ---

func TestPickFirstFit(t *testing.T) {
	wide := demoGrid()
	wide.Name, wide.MinWidth = "wide", 60
	narrow := demoGrid()
	narrow.Name = "narrow"
	grids := []Grid{wide, narrow}

	if g, ok := Pick(grids, layout.NewRect(80, 24)); !ok || g.Name != "wide" {
		t.Errorf("Pick(80x24) = %q, %t, want wide, true", g.Name, ok)
	}
	if g, ok := Pick(grids, layout.NewRect(50, 24)); !ok || g.Name != "narrow" {
		t.Errorf("Pick(50x24) = %q, %t, want narrow, true", g.Name, ok)
	}
}

func TestPickFallsBackToLast(t *testing.T) {
	wide := demoGrid()
	wide.Name, wide.MinWidth = "wide", 100
	tall := demoGrid()
	tall.Name, tall.MinHeight = "tall", 50

	if g, ok := Pick([]Grid{wide, tall}, layout.NewRect(20, 5)); !ok || g.Name != "tall" {
		t.Errorf("Pick(no fit) = %q, %t, want the last grid, true", g.Name, ok)
	}
	if _, ok := Pick(nil, layout.NewRect(20, 5)); ok {
		t.Error("Pick(no grids) reported ok")
	}
}

// --- TOML ---

const demoTOML = `
name = "demo"
min_width = 40

[[rows]]
height = "length:1"
slots = [
  { id = "title" },
  { id = "clock", width = "length:8" },
]

[[rows]]
slots = [{ id = "body" }]
`

func TestFromTOML(t *testing.T) {
	g, err := FromTOML([]byte(demoTOML))
	if err != nil {
		t.Fatalf("FromTOML() error: %v", err)
	}
	if g.Name != "demo" || g.MinWidth != 40 {
		t.Errorf("FromTOML() = %q min %d, want demo min 40", g.Name, g.MinWidth)
	}

	areas := g.Resolve(layout.NewRect(40, 10))
	if got, want := areas["clock"], (layout.Rect{X: 32, Y: 0, Width: 8, Height: 1}); got != want {
		t.Errorf("resolved clock = %+v, want %+v", got, want)
	}
	if got, want := areas["body"], (layout.Rect{X: 0, Y: 1, Width: 40, Height: 9}); got != want {
		t.Errorf("resolved body = %+v, want %+v", got, want)
	}
}

func TestFromTOMLRejectsMissingName(t *testing.T) {
	if _, err := FromTOML([]byte(`[[rows]]` + "\n" + `slots = [{ id = "a" }]`)); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("FromTOML() = %v, want ErrInvalidGrid", err)
	}
}

func TestFromTOMLRejectsBadSize(t *testing.T) {
	doc := strings.Replace(demoTOML, "length:8", "flex:8", 1)
	_, err := FromTOML([]byte(doc))
	if err == nil {
		t.Fatal("FromTOML() accepted an unknown size kind")
	}
	if !strings.Contains(err.Error(), `"clock"`) {
		t.Errorf("FromTOML() error %q does not name the bad slot", err)
	}
}

func TestFromTOMLValidates(t *testing.T) {
	doc := strings.Replace(demoTOML, `id = "body"`, `id = "title"`, 1)
	if _, err := FromTOML([]byte(doc)); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("FromTOML() = %v, want ErrInvalidGrid for a duplicate id", err)
	}
}

// --- Size parsing ---

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want layout.Constraint
	}{
		{"length:3", layout.Length(3)},
		{"percentage:30", layout.Percentage(30)},
		{"ratio:1/3", layout.Ratio(1, 3)},
		{"min:5", layout.Min(5)},
		{"max:10", layout.Max(10)},
		{"fill:2", layout.Fill(2)},
		{" length:3 ", layout.Length(3)},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if err != nil {
			t.Errorf("ParseSize(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSizeErrors(t *testing.T) {
	for _, in := range []string{"", "length", "length:x", "ratio:1", "ratio:1/0", "flex:1"} {
		if _, err := ParseSize(in); err == nil {
			t.Errorf("ParseSize(%q) accepted invalid input", in)
		}
	}
}
