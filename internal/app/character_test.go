package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hexpath/internal/app"
	"go-hexpath/pkg/hexmap"
)

func straightPath(t *testing.T, n int) []*hexmap.Tile {
	t.Helper()
	hm, err := hexmap.NewHexMap(1, n, hexmap.ObstaclesNone, nil)
	require.NoError(t, err)
	path := make([]*hexmap.Tile, n)
	for y := range path {
		path[y] = hm.Tile(0, y)
	}
	return path
}

func TestCharacter_SendToSelectedPath(t *testing.T) {
	cases := []struct {
		length    int
		wantSent  bool
		wantSpeed float64
	}{
		{0, false, 0},
		{1, false, 0},
		{2, true, 5},
		{9, true, 5},
		{10, true, 10},
		{19, true, 10},
		{20, true, 15},
		{45, true, 15},
	}
	for _, tc := range cases {
		c := app.NewCharacter(hexmap.Point{})
		sent := c.SendToSelectedPath(straightPath(t, max(tc.length, 1))[:tc.length])
		assert.Equal(t, tc.wantSent, sent, "length %d", tc.length)
		assert.Equal(t, tc.wantSent, c.HasPath(), "length %d", tc.length)
		assert.InDelta(t, tc.wantSpeed, c.Speed(), 1e-9, "length %d", tc.length)
	}
}

func TestCharacter_KeepsAssignedPath(t *testing.T) {
	c := app.NewCharacter(hexmap.Point{})
	first := straightPath(t, 3)
	require.True(t, c.SendToSelectedPath(first))
	assert.False(t, c.SendToSelectedPath(straightPath(t, 12)))
	assert.Equal(t, first, c.Path())
}

func TestCharacter_WalksToLastTile(t *testing.T) {
	path := straightPath(t, 4)
	c := app.NewCharacter(path[0].Center)
	require.True(t, c.SendToSelectedPath(path))

	frames := 0
	for !c.Arrived() {
		c.MoveThroughPath()
		frames++
		require.Less(t, frames, 1000)
	}

	last := path[len(path)-1].Center
	assert.Equal(t, last, c.Position)
	assert.InDelta(t, last.X, (c.BoundingBox.Left+c.BoundingBox.Right)/2, 1e-9)
	assert.InDelta(t, last.Y, (c.BoundingBox.Top+c.BoundingBox.Bottom)/2, 1e-9)

	// Stays put once arrived.
	c.MoveThroughPath()
	assert.Equal(t, last, c.Position)

	assert.True(t, c.ClearOnDestination())
	assert.False(t, c.HasPath())
	assert.Zero(t, c.Speed())
	assert.False(t, c.ClearOnDestination())
}

func TestCharacter_ClearOnDestinationWhileWalking(t *testing.T) {
	path := straightPath(t, 3)
	c := app.NewCharacter(path[0].Center)
	require.True(t, c.SendToSelectedPath(path))
	c.MoveThroughPath()
	c.MoveThroughPath()

	assert.False(t, c.ClearOnDestination())
	assert.True(t, c.HasPath())
}
