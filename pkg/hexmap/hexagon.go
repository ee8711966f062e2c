// pkg/hexmap/hexagon.go
package hexmap

import "math"

// Point is a position in world (map) pixels.
type Point struct {
	X, Y float64
}

// Rectangle is an axis-aligned box, edges inclusive.
type Rectangle struct {
	Left, Right, Top, Bottom float64
}

// Contains reports whether p lies inside r or on its border.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersects reports whether both rectangles overlap with a non-empty area.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Left < o.Right && r.Right > o.Left && r.Top < o.Bottom && r.Bottom > o.Top
}

const radians = math.Pi / 180

// Размеры гекса (flat top: острые углы слева и справа)
const HexagonRadius = 50.0

var (
	HexagonInnerHorizontalDistance = math.Cos(60*radians) * HexagonRadius
	HexagonHorizontalDistance      = HexagonRadius + HexagonInnerHorizontalDistance
	HexagonVerticalDistance        = math.Sin(60*radians) * HexagonRadius
)

var (
	quadrantBoundingBox = Rectangle{
		Left:   0,
		Right:  HexagonRadius,
		Top:    0,
		Bottom: HexagonVerticalDistance,
	}
	triangleSlope = -HexagonVerticalDistance / HexagonInnerHorizontalDistance
	trianglePoint = Point{X: HexagonInnerHorizontalDistance, Y: HexagonVerticalDistance}
)

// HexagonPoints returns the six vertices of the hexagon centred on center,
// starting at 0° and going +60° each step.
func HexagonPoints(center Point) [6]Point {
	var points [6]Point
	for i := range points {
		angle := 60 * float64(i) * radians
		points[i] = Point{
			X: math.Cos(angle)*HexagonRadius + center.X,
			Y: math.Sin(angle)*HexagonRadius + center.Y,
		}
	}
	return points
}

// IsPointInsideHexagon reports whether point lies inside the hexagon centred
// on center.
//
// The point is moved into the hexagon's lower right quadrant, where both
// coordinates are positive. Points outside the quadrant's bounding box are
// rejected right away; the rest are accepted when they are not above the
// hypotenuse of the empty corner triangle.
func IsPointInsideHexagon(point, center Point) bool {
	local := Point{
		X: math.Abs(point.X - center.X),
		Y: math.Abs(point.Y - center.Y),
	}

	if !quadrantBoundingBox.Contains(local) {
		return false
	}
	return local.Y <= LineY(local.X, trianglePoint, triangleSlope)
}

// LineY returns the Y of the line through point with the given slope at x.
func LineY(x float64, point Point, slope float64) float64 {
	return slope*(x-point.X) + point.Y
}

// TileCenter returns the world position of the tile at column x, row y.
// Odd columns are shoved down half a row.
func TileCenter(x, y int) Point {
	return Point{
		X: HexagonHorizontalDistance * float64(x),
		Y: HexagonVerticalDistance * float64(y*2+x%2),
	}
}
