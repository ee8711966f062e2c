// pkg/view/camera.go
package view

import (
	"math"

	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/utils"
)

const (
	scaleSpeed      = 3.0
	scaleMultiplier = 2.0
	scaleLowerLimit = 1 / (scaleMultiplier * scaleMultiplier)
	scaleUpperLimit = scaleMultiplier * scaleMultiplier
)

// Camera maps map coordinates to screen pixels. Center is the map point
// shown in the middle of the screen.
type Camera struct {
	Center hexmap.Point
	Scale  float64
	Width  float64
	Height float64

	scaleDestination float64
	scaleStep        float64
}

func NewCamera(width, height float64) *Camera {
	return &Camera{
		Scale:            1,
		Width:            width,
		Height:           height,
		scaleDestination: 1,
	}
}

// CenterOn moves the camera to p.
func (c *Camera) CenterOn(p hexmap.Point) {
	c.Center = p
}

// ScreenToMap converts a screen pixel to map coordinates.
func (c *Camera) ScreenToMap(x, y float64) hexmap.Point {
	return hexmap.Point{
		X: c.Center.X + (x-c.Width/2)/c.Scale,
		Y: c.Center.Y + (y-c.Height/2)/c.Scale,
	}
}

// MapToScreen converts map coordinates to a screen pixel.
func (c *Camera) MapToScreen(p hexmap.Point) (float64, float64) {
	return (p.X-c.Center.X)*c.Scale + c.Width/2, (p.Y-c.Center.Y)*c.Scale + c.Height/2
}

// Viewport is the part of the map currently on screen.
func (c *Camera) Viewport() hexmap.Rectangle {
	halfW := c.Width / 2 / c.Scale
	halfH := c.Height / 2 / c.Scale
	return hexmap.Rectangle{
		Left:   c.Center.X - halfW,
		Right:  c.Center.X + halfW,
		Top:    c.Center.Y - halfH,
		Bottom: c.Center.Y + halfH,
	}
}

// Contains reports whether the screen pixel lies inside the camera.
func (c *Camera) Contains(x, y float64) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Zoom requests a scale change: positive direction zooms in, negative out.
// Ignored while a previous zoom is still animating.
func (c *Camera) Zoom(direction int, dt float64) {
	if c.Scale != c.scaleDestination || direction == 0 {
		return
	}
	if direction > 0 && c.scaleDestination < scaleUpperLimit {
		c.scaleDestination *= scaleMultiplier
	} else if direction < 0 && c.scaleDestination > scaleLowerLimit {
		c.scaleDestination /= scaleMultiplier
	}
	if c.Scale != c.scaleDestination {
		c.scaleStep = scaleSpeed * dt * math.Abs(c.scaleDestination-c.Scale)
	}
}

// ScaleDestination is the scale the camera is moving towards.
func (c *Camera) ScaleDestination() float64 {
	return c.scaleDestination
}

// Update moves the scale one step towards its destination.
func (c *Camera) Update() {
	if c.Scale == c.scaleDestination {
		return
	}
	diff := c.scaleDestination - c.Scale
	if math.Abs(diff) <= c.scaleStep || c.scaleStep <= 0 {
		c.Scale = c.scaleDestination
		return
	}
	c.Scale += math.Copysign(c.scaleStep, diff)
}

// Scroll moves the camera by a screen-space offset.
func (c *Camera) Scroll(dx, dy float64) {
	c.Center.X += dx / c.Scale
	c.Center.Y += dy / c.Scale
}

// KeepInside clamps the center to bounds.
func (c *Camera) KeepInside(bounds hexmap.Rectangle) {
	c.Center.X = utils.Clamp(bounds.Left, c.Center.X, bounds.Right)
	c.Center.Y = utils.Clamp(bounds.Top, c.Center.Y, bounds.Bottom)
}
