// internal/utils/math.go
package utils

import (
	"math"

	"go-hexpath/pkg/hexmap"
)

// AngleBetween возвращает угол в радианах от a к b.
func AngleBetween(a, b hexmap.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// DistanceBetween возвращает евклидово расстояние между точками.
func DistanceBetween(a, b hexmap.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// TranslatePoint сдвигает точку на distance в направлении angle (радианы).
func TranslatePoint(p hexmap.Point, distance, angle float64) hexmap.Point {
	return hexmap.Point{
		X: p.X + distance*math.Cos(angle),
		Y: p.Y + distance*math.Sin(angle),
	}
}
