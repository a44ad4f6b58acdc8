package termtest

import (
	"strings"

	"gitlab.com/tinyland/lab/weft/pkg/render"
)

// Snapshot is a rendered screen captured row by row for comparison
// testing. Styles are not captured; the rows carry visible runes only.
type Snapshot struct {
	Name   string
	Width  int
	Height int
	Rows   []string
}

// Capture reads every row of the buffer. Continuation cells of wide
// runes are skipped and trailing blanks trimmed, so snapshots compare
// stably across buffer widths.
func Capture(name string, buf *render.Buffer) Snapshot {
	area := buf.Area()
	s := Snapshot{Name: name, Width: area.Width, Height: area.Height}
	for y := area.Y; y < area.Bottom(); y++ {
		var sb strings.Builder
		for x := area.X; x < area.Right(); x++ {
			cell, ok := buf.Get(x, y)
			if !ok || cell.IsContinuation() {
				continue
			}
			sb.WriteRune(cell.Rune)
			for _, r := range cell.Comb {
				sb.WriteRune(r)
			}
		}
		s.Rows = append(s.Rows, strings.TrimRight(sb.String(), " "))
	}
	return s
}

// Diff is one differing row between two snapshots.
type Diff struct {
	Row  int // 0-based row index
	Want string
	Got  string
}

// Compare returns the row differences between two snapshots, nil when
// they are identical. A missing row compares as empty.
func Compare(want, got Snapshot) []Diff {
	rows := max(len(want.Rows), len(got.Rows))
	var diffs []Diff
	for i := 0; i < rows; i++ {
		var w, g string
		if i < len(want.Rows) {
			w = want.Rows[i]
		}
		if i < len(got.Rows) {
			g = got.Rows[i]
		}
		if w != g {
			diffs = append(diffs, Diff{Row: i, Want: w, Got: g})
		}
	}
	return diffs
}
