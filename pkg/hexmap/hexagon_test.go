package hexmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-hexpath/pkg/hexmap"
)

func TestHexagonPoints(t *testing.T) {
	centers := []hexmap.Point{{0, 0}, {75, 43.3}, {-120.5, 999}, {1e4, -1e4}}
	for _, c := range centers {
		points := hexmap.HexagonPoints(c)
		assert.Len(t, points, 6)

		for i, p := range points {
			assert.InDelta(t, hexmap.HexagonRadius, math.Hypot(p.X-c.X, p.Y-c.Y), 1e-9)

			angle := math.Atan2(p.Y-c.Y, p.X-c.X) * 180 / math.Pi
			diff := math.Mod(angle-float64(60*i)+540, 360) - 180
			assert.InDelta(t, 0, diff, 1e-6, "vertex %d", i)
		}
	}
}

func TestHexagonPoints_TranslationInvariant(t *testing.T) {
	origin := hexmap.HexagonPoints(hexmap.Point{})
	moved := hexmap.HexagonPoints(hexmap.Point{X: 33, Y: -7})
	for i := range origin {
		assert.InDelta(t, origin[i].X+33, moved[i].X, 1e-9)
		assert.InDelta(t, origin[i].Y-7, moved[i].Y, 1e-9)
	}
}

func TestIsPointInsideHexagon(t *testing.T) {
	center := hexmap.Point{X: 200, Y: 100}
	cases := []struct {
		name   string
		offset hexmap.Point
		inside bool
	}{
		{"Center", hexmap.Point{0, 0}, true},
		{"NearRightVertex", hexmap.Point{49, 0}, true},
		{"BeyondRightVertex", hexmap.Point{51, 0}, false},
		{"NearTopEdge", hexmap.Point{10, 43}, true},
		{"AboveTopEdge", hexmap.Point{0, 44}, false},
		{"CornerNotch", hexmap.Point{45, 40}, false},
		{"InsideBelowHypotenuse", hexmap.Point{30, 30}, true},
		{"OutsideAboveHypotenuse", hexmap.Point{30, 40}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := hexmap.Point{X: center.X + tc.offset.X, Y: center.Y + tc.offset.Y}
			assert.Equal(t, tc.inside, hexmap.IsPointInsideHexagon(p, center))
		})
	}
}

func TestIsPointInsideHexagon_QuadrantSymmetry(t *testing.T) {
	center := hexmap.Point{X: -40, Y: 60}
	for dx := 0.0; dx <= 60; dx += 2.5 {
		for dy := 0.0; dy <= 50; dy += 2.5 {
			want := hexmap.IsPointInsideHexagon(hexmap.Point{X: center.X + dx, Y: center.Y + dy}, center)
			for _, sign := range [][2]float64{{-1, 1}, {1, -1}, {-1, -1}} {
				p := hexmap.Point{X: center.X + sign[0]*dx, Y: center.Y + sign[1]*dy}
				assert.Equal(t, want, hexmap.IsPointInsideHexagon(p, center), "offset (%v, %v)", sign[0]*dx, sign[1]*dy)
			}
		}
	}
}

func TestRectangle(t *testing.T) {
	r := hexmap.Rectangle{Left: 0, Right: 10, Top: 0, Bottom: 5}
	assert.True(t, r.Contains(hexmap.Point{0, 0}))
	assert.True(t, r.Contains(hexmap.Point{10, 5}))
	assert.False(t, r.Contains(hexmap.Point{10.1, 5}))

	assert.True(t, r.Intersects(hexmap.Rectangle{Left: 9, Right: 20, Top: -1, Bottom: 1}))
	assert.False(t, r.Intersects(hexmap.Rectangle{Left: 10, Right: 20, Top: 0, Bottom: 5}))
}

func TestTileCenter(t *testing.T) {
	assert.Equal(t, hexmap.Point{0, 0}, hexmap.TileCenter(0, 0))

	c := hexmap.TileCenter(1, 0)
	assert.InDelta(t, 75, c.X, 1e-9)
	assert.InDelta(t, hexmap.HexagonVerticalDistance, c.Y, 1e-9)

	c = hexmap.TileCenter(2, 3)
	assert.InDelta(t, 150, c.X, 1e-9)
	assert.InDelta(t, 6*hexmap.HexagonVerticalDistance, c.Y, 1e-9)
}
