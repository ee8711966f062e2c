// internal/app/character.go
package app

import (
	"go-hexpath/internal/config"
	"go-hexpath/internal/utils"
	"go-hexpath/pkg/hexmap"
)

const (
	CharacterRadius         = hexmap.HexagonRadius / 2
	characterBoundingRadius = CharacterRadius * 1.5
)

// Character walks along a found path, one tile center at a time.
type Character struct {
	Position    hexmap.Point
	BoundingBox hexmap.Rectangle

	path  []*hexmap.Tile
	index int
	speed float64
}

func NewCharacter(position hexmap.Point) *Character {
	c := &Character{}
	c.SetPosition(position)
	return c
}

// SetPosition moves the character and updates its bounding box. The box is
// a bit larger than the drawn body.
func (c *Character) SetPosition(p hexmap.Point) {
	c.Position = p
	c.BoundingBox = hexmap.Rectangle{
		Left:   p.X - characterBoundingRadius,
		Right:  p.X + characterBoundingRadius,
		Top:    p.Y - characterBoundingRadius,
		Bottom: p.Y + characterBoundingRadius,
	}
}

// HasPath reports whether a path is assigned.
func (c *Character) HasPath() bool {
	return c.path != nil
}

// Path returns the assigned path.
func (c *Character) Path() []*hexmap.Tile {
	return c.path
}

// Speed in map pixels per frame.
func (c *Character) Speed() float64 {
	return c.speed
}

// SendToSelectedPath assigns path unless one is already assigned. A path of
// a single tile is the character's own tile, so it is ignored.
// Longer paths are walked faster, up to config.CharacterMaxSpeed.
func (c *Character) SendToSelectedPath(path []*hexmap.Tile) bool {
	if c.HasPath() || len(path) <= 1 {
		return false
	}

	c.path = path
	c.index = 0
	multiplier := float64(len(path)/config.CharacterTilesPerSpeedBoost + 1)
	c.speed = min(config.CharacterBaseSpeed*multiplier, config.CharacterMaxSpeed)
	return true
}

// MoveThroughPath advances one frame along the assigned path. The character
// may overshoot tile centers in between; it lands exactly on the last one.
func (c *Character) MoveThroughPath() {
	if !c.HasPath() || c.index >= len(c.path) {
		return
	}

	target := c.path[c.index].Center
	if c.Position == target {
		c.index++
		return
	}

	next := utils.TranslatePoint(c.Position, c.speed, utils.AngleBetween(c.Position, target))
	if utils.DistanceBetween(c.Position, target) <= c.speed {
		c.index++
		if c.index >= len(c.path) {
			next = target
		}
	}
	c.SetPosition(next)
}

// Arrived reports whether the whole assigned path was walked.
func (c *Character) Arrived() bool {
	return c.HasPath() && c.index >= len(c.path)
}

// ClearOnDestination drops the assigned path once the character arrived and
// reports whether it did. Call it on the frame after arrival, before looking
// for a new path, so the old path is never drawn for an extra frame.
func (c *Character) ClearOnDestination() bool {
	if !c.Arrived() {
		return false
	}
	c.path = nil
	c.index = 0
	c.speed = 0
	return true
}
