package layout

import "testing"

// area returns a rect at origin with the given size.
func area(w, h int) Rect {
	return Rect{Width: w, Height: h}
}

// assertRects fails the test if got and want differ.
func assertRects(t *testing.T, label string, got, want []Rect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len(got)=%d, want %d\ngot:  %v\nwant: %v", label, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", label, i, got[i], want[i])
		}
	}
}

// --- Fill Tests ---

func TestSingleFillTakesEverything(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1)).Split(area(100, 50))
	assertRects(t, "single fill", rects, []Rect{
		{X: 0, Y: 0, Width: 100, Height: 50},
	})
}

func TestTwoFillsSplitEvenly(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).Split(area(100, 50))
	assertRects(t, "two fills", rects, []Rect{
		{X: 0, Y: 0, Width: 50, Height: 50},
		{X: 50, Y: 0, Width: 50, Height: 50},
	})
}

func TestFillWeights(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(2), Fill(1)).Split(area(90, 30))
	assertRects(t, "fill 2:1", rects, []Rect{
		{X: 0, Y: 0, Width: 60, Height: 30},
		{X: 60, Y: 0, Width: 30, Height: 30},
	})
}

func TestFillZeroWeightCountsAsOne(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(0), Fill(0)).Split(area(80, 20))
	assertRects(t, "fill zero weight", rects, []Rect{
		{X: 0, Y: 0, Width: 40, Height: 20},
		{X: 40, Y: 0, Width: 40, Height: 20},
	})
}

func TestThreeFillsWeighted(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(2), Fill(1)).Split(area(80, 40))
	assertRects(t, "3 fills", rects, []Rect{
		{X: 0, Y: 0, Width: 20, Height: 40},
		{X: 20, Y: 0, Width: 40, Height: 40},
		{X: 60, Y: 0, Width: 20, Height: 40},
	})
}

// --- Fixed Request Tests ---

func TestLengthPlusFill(t *testing.T) {
	rects := NewLayout(Horizontal, Length(10), Fill(1)).Split(area(100, 50))
	assertRects(t, "length+fill", rects, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 50},
		{X: 10, Y: 0, Width: 90, Height: 50},
	})
}

func TestPercentages(t *testing.T) {
	rects := NewLayout(Horizontal, Percentage(30), Percentage(70)).Split(area(100, 50))
	assertRects(t, "pct 30+70", rects, []Rect{
		{X: 0, Y: 0, Width: 30, Height: 50},
		{X: 30, Y: 0, Width: 70, Height: 50},
	})
}

func TestPercentageRoundsDown(t *testing.T) {
	rects := NewLayout(Horizontal, Percentage(50), Percentage(50)).Split(area(101, 50))
	if rects[0].Width+rects[1].Width > 101 {
		t.Errorf("percentages exceed available width: %d + %d", rects[0].Width, rects[1].Width)
	}
}

func TestPercentageClamped(t *testing.T) {
	rects := NewLayout(Horizontal, Percentage(150)).Split(area(100, 50))
	if rects[0].Width != 100 {
		t.Errorf("Percentage(150) width = %d, want 100", rects[0].Width)
	}
	rects = NewLayout(Horizontal, Percentage(-10)).Split(area(100, 50))
	if rects[0].Width != 0 {
		t.Errorf("Percentage(-10) width = %d, want 0", rects[0].Width)
	}
}

func TestRatios(t *testing.T) {
	rects := NewLayout(Horizontal, Ratio(1, 3), Ratio(2, 3)).Split(area(90, 30))
	if rects[0].Width != 30 || rects[1].Width != 60 {
		t.Errorf("ratio widths = %d, %d, want 30, 60", rects[0].Width, rects[1].Width)
	}
}

func TestRatioZeroDenominator(t *testing.T) {
	rects := NewLayout(Horizontal, Ratio(1, 0)).Split(area(100, 50))
	if rects[0].Width != 0 {
		t.Errorf("Ratio(1,0) width = %d, want 0", rects[0].Width)
	}
}

func TestNegativeLengthClamped(t *testing.T) {
	rects := NewLayout(Horizontal, Length(-5), Fill(1)).Split(area(100, 50))
	if rects[0].Width != 0 {
		t.Errorf("Length(-5) width = %d, want 0", rects[0].Width)
	}
	if rects[1].Width != 100 {
		t.Errorf("fill width = %d, want 100", rects[1].Width)
	}
}

// --- Bound Tests ---

func TestMinHoldsWhenTight(t *testing.T) {
	rects := NewLayout(Horizontal, Min(20), Min(20)).Split(area(50, 10))
	if rects[0].Width < 20 || rects[1].Width < 20 {
		t.Errorf("Min(20) violated: widths %d, %d", rects[0].Width, rects[1].Width)
	}
}

func TestMinGrowsIntoSurplus(t *testing.T) {
	rects := NewLayout(Horizontal, Min(10)).Split(area(100, 50))
	if rects[0].Width != 100 {
		t.Errorf("lone Min(10) width = %d, want 100", rects[0].Width)
	}
}

func TestMaxCaps(t *testing.T) {
	rects := NewLayout(Horizontal, Max(50)).Split(area(100, 50))
	if rects[0].Width > 50 {
		t.Errorf("Max(50) violated: width %d", rects[0].Width)
	}
}

func TestMaxFreesSpaceForFill(t *testing.T) {
	rects := NewLayout(Horizontal, Max(30), Fill(1)).Split(area(100, 50))
	if rects[0].Width > 30 {
		t.Errorf("Max(30) violated: width %d", rects[0].Width)
	}
	if total := rects[0].Width + rects[1].Width; total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
}

func TestOverAllocationShrinks(t *testing.T) {
	rects := NewLayout(Horizontal, Length(80), Length(80)).Split(area(100, 50))
	if total := rects[0].Width + rects[1].Width; total > 100 {
		t.Errorf("oversubscribed split exceeds area: total=%d", total)
	}
}

// --- Spacing and Margin Tests ---

func TestSpacingBetweenRegions(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).WithSpacing(4).Split(area(104, 50))
	assertRects(t, "spacing", rects, []Rect{
		{X: 0, Y: 0, Width: 50, Height: 50},
		{X: 54, Y: 0, Width: 50, Height: 50},
	})
}

func TestSpacingVertical(t *testing.T) {
	rects := NewLayout(Vertical, Fill(1), Fill(1)).WithSpacing(2).Split(area(80, 42))
	assertRects(t, "vertical spacing", rects, []Rect{
		{X: 0, Y: 0, Width: 80, Height: 20},
		{X: 0, Y: 22, Width: 80, Height: 20},
	})
}

func TestMarginShrinksArea(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1)).WithMargin(5).Split(area(100, 50))
	assertRects(t, "margin", rects, []Rect{
		{X: 5, Y: 5, Width: 90, Height: 40},
	})
}

func TestOversizedMarginYieldsEmptyRects(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1)).WithMargin(60).Split(area(100, 50))
	if rects[0].Width != 0 || rects[0].Height != 0 {
		t.Errorf("oversized margin rect = %v, want empty", rects[0])
	}
}

func TestNegativeSpacingAndMarginIgnored(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).WithSpacing(-5).Split(area(100, 50))
	if total := rects[0].Width + rects[1].Width; total != 100 {
		t.Errorf("total with negative spacing = %d, want 100", total)
	}
	rects = NewLayout(Horizontal, Fill(1)).WithMargin(-10).Split(area(100, 50))
	if rects[0].Width != 100 {
		t.Errorf("width with negative margin = %d, want 100", rects[0].Width)
	}
}

func TestSpacingExceedsSpace(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).WithSpacing(200).Split(area(100, 50))
	for i, r := range rects {
		if r.Width != 0 {
			t.Errorf("rect[%d].Width = %d, want 0", i, r.Width)
		}
	}
}

// --- Direction Tests ---

func TestVerticalSplit(t *testing.T) {
	rects := NewLayout(Vertical, Length(10), Fill(1)).Split(area(80, 50))
	assertRects(t, "vertical", rects, []Rect{
		{X: 0, Y: 0, Width: 80, Height: 10},
		{X: 0, Y: 10, Width: 80, Height: 40},
	})
}

func TestOffsetAreaPreserved(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).Split(Rect{X: 10, Y: 20, Width: 100, Height: 50})
	if rects[0].X != 10 || rects[1].X != 60 {
		t.Errorf("X offsets = %d, %d, want 10, 60", rects[0].X, rects[1].X)
	}
	if rects[0].Y != 20 || rects[1].Y != 20 {
		t.Errorf("Y = %d, %d, want 20, 20", rects[0].Y, rects[1].Y)
	}
}

// --- Flex Tests ---

func TestFlexModes(t *testing.T) {
	cases := []struct {
		name  string
		flex  Flex
		wantX int
	}{
		{"start", FlexStart, 0},
		{"end", FlexEnd, 70},
		{"center", FlexCenter, 35},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rects := NewLayout(Horizontal, Length(30)).WithFlex(tc.flex).Split(area(100, 50))
			if rects[0].X != tc.wantX {
				t.Errorf("X = %d, want %d", rects[0].X, tc.wantX)
			}
		})
	}
}

func TestFlexSpaceBetween(t *testing.T) {
	rects := NewLayout(Horizontal, Length(10), Length(10), Length(10)).
		WithFlex(FlexSpaceBetween).Split(area(100, 50))
	wantX := []int{0, 45, 90}
	for i, r := range rects {
		if r.X != wantX[i] {
			t.Errorf("rect[%d].X = %d, want %d", i, r.X, wantX[i])
		}
	}
}

func TestFlexSpaceBetweenSingleRegion(t *testing.T) {
	rects := NewLayout(Horizontal, Length(30)).WithFlex(FlexSpaceBetween).Split(area(100, 50))
	if rects[0].X != 0 {
		t.Errorf("X = %d, want 0", rects[0].X)
	}
}

func TestFlexSpaceEvenly(t *testing.T) {
	rects := NewLayout(Horizontal, Length(20), Length(20)).
		WithFlex(FlexSpaceEvenly).Split(area(100, 50))
	if rects[0].X != 20 || rects[1].X != 60 {
		t.Errorf("X = %d, %d, want 20, 60", rects[0].X, rects[1].X)
	}
}

func TestFlexEndWithSpacing(t *testing.T) {
	rects := NewLayout(Horizontal, Length(10), Length(10)).
		WithFlex(FlexEnd).WithSpacing(5).Split(area(100, 50))
	if rects[0].X != 75 || rects[1].X != 90 {
		t.Errorf("X = %d, %d, want 75, 90", rects[0].X, rects[1].X)
	}
}

// --- Edge Case Tests ---

func TestZeroSizeArea(t *testing.T) {
	rects := NewLayout(Horizontal, Fill(1), Fill(1)).Split(area(0, 0))
	if len(rects) != 2 {
		t.Fatalf("len = %d, want 2", len(rects))
	}
	for i, r := range rects {
		if !r.Empty() {
			t.Errorf("rect[%d] = %v, want empty", i, r)
		}
	}
}

func TestNoConstraints(t *testing.T) {
	if rects := NewLayout(Horizontal).Split(area(100, 50)); rects != nil {
		t.Errorf("Split with no constraints = %v, want nil", rects)
	}
}

func TestNoOverlap(t *testing.T) {
	for _, dir := range []Direction{Horizontal, Vertical} {
		rects := NewLayout(dir, Fill(1), Length(20), Percentage(30), Fill(2)).Split(area(200, 100))
		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				if inter := rects[i].Intersect(rects[j]); !inter.Empty() {
					t.Errorf("dir %v: rects[%d] and rects[%d] overlap at %v", dir, i, j, inter)
				}
			}
		}
	}
}

func TestManyFillsCoverArea(t *testing.T) {
	cs := make([]Constraint, 10)
	for i := range cs {
		cs[i] = Fill(1)
	}
	rects := NewLayout(Horizontal, cs...).Split(area(100, 50))
	total := 0
	for _, r := range rects {
		total += r.Width
	}
	if total != 100 {
		t.Errorf("total width = %d, want 100", total)
	}
}

// --- Nested Split Tests ---

func TestAppFrameLayout(t *testing.T) {
	// Header, body, status bar; body splits into sidebar and content.
	rows := SplitVertical(area(120, 40), Length(3), Fill(1), Length(1))
	if rows[0].Height != 3 || rows[2].Height != 1 {
		t.Errorf("frame heights = %d, %d, want 3, 1", rows[0].Height, rows[2].Height)
	}
	if rows[1].Height != 36 {
		t.Errorf("body height = %d, want 36", rows[1].Height)
	}

	cols := SplitHorizontal(rows[1], Length(24), Fill(1))
	if cols[0].Width != 24 {
		t.Errorf("sidebar width = %d, want 24", cols[0].Width)
	}
	if cols[0].Y != 3 {
		t.Errorf("sidebar Y = %d, want 3", cols[0].Y)
	}
}

// --- Rect Tests ---

func TestRectGeometry(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Area() != 1200 {
		t.Errorf("Area = %d, want 1200", r.Area())
	}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right, Bottom = %d, %d, want 40, 60", r.Right(), r.Bottom())
	}
	if !(Rect{Width: 0, Height: 5}).Empty() || (Rect{Width: 5, Height: 5}).Empty() {
		t.Error("Empty misreported")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{39, 59, true},
		{40, 60, false},
		{9, 20, false},
		{25, 15, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	want := Rect{X: 5, Y: 5, Width: 5, Height: 5}
	if got := a.Intersect(b); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	c := Rect{X: 20, Y: 20, Width: 5, Height: 5}
	if got := a.Intersect(c); !got.Empty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
}

func TestRectInner(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 100, Height: 50}
	want := Rect{X: 15, Y: 15, Width: 90, Height: 40}
	if got := r.Inner(5); got != want {
		t.Errorf("Inner(5) = %v, want %v", got, want)
	}
	small := Rect{Width: 10, Height: 10}
	if got := small.Inner(20); got.Width != 0 || got.Height != 0 {
		t.Errorf("Inner(20) on 10x10 = %v, want zero size", got)
	}
	if got := small.Inner(-3); got != small {
		t.Errorf("Inner(-3) = %v, want unchanged", got)
	}
}

// --- Cache Tests ---

func TestCacheMemoizes(t *testing.T) {
	cache := NewCache()
	l := NewLayout(Horizontal, Fill(1), Fill(1))

	r1 := cache.Split(l, area(100, 50))
	r2 := cache.Split(l, area(100, 50))
	assertRects(t, "cache hit", r1, r2)
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}

	cache.Split(l, area(200, 50))
	if cache.Len() != 2 {
		t.Errorf("Len after second area = %d, want 2", cache.Len())
	}
}

func TestCacheKeysOnLayoutIdentity(t *testing.T) {
	cache := NewCache()
	a := NewLayout(Horizontal, Fill(1))
	b := NewLayout(Horizontal, Fill(1))
	cache.Split(a, area(100, 50))
	cache.Split(b, area(100, 50))
	if cache.Len() != 2 {
		t.Errorf("Len = %d, want 2 (distinct layouts)", cache.Len())
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewCache()
	l := NewLayout(Horizontal, Fill(1))
	cache.Split(l, area(100, 50))
	cache.Invalidate()
	if cache.Len() != 0 {
		t.Errorf("Len after Invalidate = %d, want 0", cache.Len())
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := NewCache()
	l := NewLayout(Horizontal, Fill(1))

	r1 := cache.Split(l, area(100, 50))
	r1[0].Width = 999
	r2 := cache.Split(l, area(100, 50))
	if r2[0].Width == 999 {
		t.Error("mutation of a returned slice leaked into the cache")
	}
}
