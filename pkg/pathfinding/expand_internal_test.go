package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hexpath/pkg/hexmap"
)

func TestExpand_SkipsStaleEntries(t *testing.T) {
	hm, err := hexmap.NewHexMap(6, 6, hexmap.ObstaclesNone, nil)
	require.NoError(t, err)

	s := NewSession()
	start, dest := hm.Tile(1, 1), hm.Tile(4, 4)
	s.hexMap = hm
	s.StartingTile = start.ID
	s.DestinationTile = dest.ID
	s.begin(start)

	// A leftover entry that outranks the start but is no longer live.
	stale := hm.Tile(5, 0)
	s.candidates.Add(stale.ID, -10)

	require.True(t, s.expand())
	assert.Equal(t, start.ID, s.CurrentTile)
	assert.False(t, stale.Path.Checked)
	assert.Equal(t, 6, s.candidates.Len(), "one entry per neighbour")
}

func TestExpand_ReportsEmptyQueue(t *testing.T) {
	hm, err := hexmap.NewHexMap(3, 3, hexmap.ObstaclesNone, nil)
	require.NoError(t, err)

	s := NewSession()
	s.hexMap = hm
	s.DestinationTile = hm.Tile(2, 2).ID

	assert.False(t, s.expand())
}

func TestExpand_RelaxesCheaperRoute(t *testing.T) {
	hm, err := hexmap.NewHexMap(4, 4, hexmap.ObstaclesNone, nil)
	require.NoError(t, err)

	s := NewSession()
	s.Algorithm = Dijkstra
	s.hexMap = hm
	s.DestinationTile = hm.Tile(3, 3).ID

	current := hm.Tile(1, 1)
	current.Path.Candidate = true
	current.Path.Checked = true
	current.Path.Cost = 2
	s.candidates.Add(current.ID, 2)

	// Already reached through a longer detour.
	neighbor := hm.Tile(1, 2)
	neighbor.Path.Checked = true
	neighbor.Path.Candidate = true
	neighbor.Path.Cost = 7
	neighbor.Path.Parent = hm.Tile(0, 3).ID
	s.CheckedTiles = append(s.CheckedTiles, current.ID, neighbor.ID)

	require.True(t, s.expand())
	assert.Equal(t, 3, neighbor.Path.Cost)
	assert.Equal(t, current.ID, neighbor.Path.Parent)
	assert.True(t, neighbor.Path.Candidate)

	count := 0
	for _, id := range s.CheckedTiles {
		if id == neighbor.ID {
			count++
		}
	}
	assert.Equal(t, 1, count, "relaxed tile is not listed twice")
}
