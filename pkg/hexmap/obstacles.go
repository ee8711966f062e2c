// pkg/hexmap/obstacles.go
package hexmap

import (
	"fmt"
	"strings"
)

// ObstacleFrequency controls how many tiles become impassable on generation.
type ObstacleFrequency int

const (
	ObstaclesNone ObstacleFrequency = iota
	ObstaclesLow
	ObstaclesMedium
	ObstaclesHigh
)

var obstacleFrequencyNames = [...]string{"None", "Low", "Medium", "High"}

// Вероятность непроходимого гекса в процентах
var obstacleFrequencyPercents = [...]int{0, 15, 25, 45}

func (f ObstacleFrequency) String() string {
	if f < ObstaclesNone || f > ObstaclesHigh {
		return fmt.Sprintf("ObstacleFrequency(%d)", int(f))
	}
	return obstacleFrequencyNames[f]
}

// Percent returns the chance, 0-100, of a tile being impassable.
func (f ObstacleFrequency) Percent() int {
	if f < ObstaclesNone || f > ObstaclesHigh {
		return 0
	}
	return obstacleFrequencyPercents[f]
}

// Next cycles None → Low → Medium → High → None.
func (f ObstacleFrequency) Next() ObstacleFrequency {
	return (f + 1) % (ObstaclesHigh + 1)
}

// MarshalText implements encoding.TextMarshaler.
func (f ObstacleFrequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, case-insensitive.
func (f *ObstacleFrequency) UnmarshalText(text []byte) error {
	for i, name := range obstacleFrequencyNames {
		if strings.EqualFold(name, string(text)) {
			*f = ObstacleFrequency(i)
			return nil
		}
	}
	return fmt.Errorf("hexmap: unknown obstacle frequency %q", text)
}

func (f ObstacleFrequency) roll(rng RandomSource) bool {
	if rng == nil {
		return false
	}
	return rng.Intn(100) < f.Percent()
}

// Regenerate re-rolls the impassable flag of every tile and then clears the
// area around clearPosition so the caller's agent is never walled in.
//
// Tile search bookkeeping is left untouched; callers must clear their
// pathfinding session afterwards.
func (hm *HexMap) Regenerate(freq ObstacleFrequency, rng RandomSource, clearPosition Point) {
	for i := range hm.tiles {
		hm.tiles[i].Impassable = freq.roll(rng)
	}
	hm.ClearAroundPoint(clearPosition)
}

// ClearAroundPoint makes the tile under p, its neighbours and their
// neighbours passable. It reports false when p is not on the map.
func (hm *HexMap) ClearAroundPoint(p Point) bool {
	tile := hm.TileByPoint(p)
	if tile == nil {
		return false
	}

	toClear := []*Tile{tile}
	neighbors := hm.Neighbors(tile)
	toClear = append(toClear, neighbors...)
	for _, n := range neighbors {
		toClear = append(toClear, hm.Neighbors(n)...)
	}

	for _, t := range toClear {
		t.Impassable = false
	}
	return true
}
