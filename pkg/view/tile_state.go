// pkg/view/tile_state.go
package view

import (
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pathfinding"
)

// TileState is what a tile looks like given the current search.
type TileState int

const (
	StatePassable TileState = iota
	StateImpassable
	StateChecked
	StateCandidate
	StateNext
	StateCurrent
	StatePath
)

// Classify picks the state to draw for t. The cursor tiles of a running
// search win over the queue flags, and path tiles win over everything.
func Classify(t *hexmap.Tile, s *pathfinding.Session) TileState {
	switch {
	case t.Impassable:
		return StateImpassable
	case t.Path.Used:
		return StatePath
	}

	if s != nil && s.Pending {
		if s.DestinationReached && t.ID == s.NextTile {
			return StateNext
		}
		if !s.DestinationReached && t.ID == s.CurrentTile {
			return StateCurrent
		}
	}

	switch {
	case t.Path.Candidate:
		return StateCandidate
	case t.Path.Checked:
		return StateChecked
	}
	return StatePassable
}

// ParentDirection returns the unit vector from t towards its parent, or
// false when t has none.
func ParentDirection(hm *hexmap.HexMap, t *hexmap.Tile) (hexmap.Point, bool) {
	parent := hm.ByID(t.Path.Parent)
	if parent == nil {
		return hexmap.Point{}, false
	}
	dx := parent.Center.X - t.Center.X
	dy := parent.Center.Y - t.Center.Y
	length := hexmap.HexagonVerticalDistance * 2
	return hexmap.Point{X: dx / length, Y: dy / length}, true
}
