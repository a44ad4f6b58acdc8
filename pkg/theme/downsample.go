package theme

import (
	"math"

	"gitlab.com/tinyland/lab/weft/pkg/props"
)

// Downsample converts every truecolor entry in a palette to the nearest
// 256-palette index, for terminals without 24-bit color. Indexed and
// default entries pass through unchanged. Callers gate on the backend's
// capabilities:
//
//	if !caps.TrueColor {
//		t = theme.Downsample(t)
//	}
func Downsample(t Theme) Theme {
	for _, c := range []*props.Color{
		&t.Background, &t.Foreground, &t.Dim, &t.Accent,
		&t.Border, &t.BorderFocus, &t.Title,
		&t.Good, &t.Warn, &t.Bad,
		&t.BarFilled, &t.BarEmpty,
		&t.ChartLine, &t.ChartGrid,
		&t.Highlight,
	} {
		*c = to256(*c)
	}
	return t
}

// to256 maps a truecolor value to the closer of its nearest color-cube
// entry and its nearest grayscale-ramp entry.
func to256(c props.Color) props.Color {
	if c.Kind() != props.ColorKindRGB {
		return c
	}
	r, g, b := c.Values()

	cubeIdx := nearestCubeIndex(r, g, b)
	grayIdx := nearestGray(r, g, b)

	cubeDist := cubeDistance(r, g, b, cubeIdx)
	grayDist := grayDistance(r, g, b, grayIdx)

	idx := cubeIdx
	if grayDist < cubeDist {
		idx = grayIdx
	}
	return props.Indexed(uint8(idx))
}

// cubeLevels are the channel values of the 6x6x6 color cube occupying
// palette indices 16-231.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// nearestCubeIndex finds the nearest color in the 6x6x6 cube.
func nearestCubeIndex(r, g, b uint8) int {
	ri := nearestCubeComponent(r)
	gi := nearestCubeComponent(g)
	bi := nearestCubeComponent(b)
	return 16 + 36*ri + 6*gi + bi
}

// nearestCubeComponent maps a 0-255 channel to the nearest cube level.
func nearestCubeComponent(v uint8) int {
	best := 0
	bestDist := math.MaxInt32
	for i, lv := range cubeLevels {
		d := int(v) - lv
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// nearestGray finds the nearest entry of the 24-step grayscale ramp at
// palette indices 232-255, values 8, 18, ..., 238.
func nearestGray(r, g, b uint8) int {
	gray := (int(r) + int(g) + int(b)) / 3
	if gray < 4 {
		return 232
	}
	if gray > 243 {
		return 255
	}
	idx := (gray - 8 + 5) / 10
	if idx < 0 {
		idx = 0
	}
	if idx > 23 {
		idx = 23
	}
	return 232 + idx
}

func cubeDistance(r, g, b uint8, cubeIdx int) float64 {
	cr, cg, cb := cubeToRGB(cubeIdx)
	return colorDistance(r, g, b, cr, cg, cb)
}

func grayDistance(r, g, b uint8, grayIdx int) float64 {
	gv := grayToValue(grayIdx)
	return colorDistance(r, g, b, gv, gv, gv)
}

// cubeToRGB converts a cube index (16-231) back to channel values.
func cubeToRGB(idx int) (r, g, b uint8) {
	idx -= 16
	ri := idx / 36
	gi := (idx % 36) / 6
	bi := idx % 6
	return uint8(cubeLevels[ri]), uint8(cubeLevels[gi]), uint8(cubeLevels[bi])
}

// grayToValue converts a grayscale index (232-255) to its gray level.
func grayToValue(idx int) uint8 {
	return uint8(8 + (idx-232)*10)
}

func colorDistance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
