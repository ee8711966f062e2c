package pathfinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pathfinding"
)

// Test maps in the layout understood by hexmap.ParseLayout: dots are normal
// tiles and Xs impassable ones.
var testMaps = map[string]string{
	"open": `
    .       .       .       .       .
        .       .       .       .       .
    .       .       .       .       .
        .       .       .       .       .
    .       .       .       .       .
        .       .       .       .       .
    .       .       .       .       .
        .       .       .       .       .
    .       .       .       .       .
        .       .       .       .       .
`,
	"obstacles": `
    .       .       .       .       .
        .       .       .       X       .
    X       X       X       .       .
        X       X       X       X       .
    .       .       .       .       .
        .       .       .       X       X
    .       X       X       X       X
        X       X       X       X       X
    .       .       .       .       .
        .       .       .       .       .
`,
}

func loadMap(t *testing.T, name string) *hexmap.HexMap {
	t.Helper()
	hm, err := hexmap.ParseLayout(testMaps[name])
	require.NoError(t, err)
	return hm
}

func route(s *pathfinding.Session, hm *hexmap.HexMap) [][2]int {
	out := [][2]int{}
	for _, tile := range s.Path(hm) {
		out = append(out, [2]int{tile.Index.X, tile.Index.Y})
	}
	return out
}

func newSession(algorithm pathfinding.Algorithm, style pathfinding.Style) *pathfinding.Session {
	s := pathfinding.NewSession()
	s.Algorithm = algorithm
	s.Style = style
	return s
}

// runSteps drives a step-by-step search until it finishes.
func runSteps(t *testing.T, s *pathfinding.Session, hm *hexmap.HexMap, start, destination *hexmap.Tile) int {
	t.Helper()
	calls := 0
	for s.Phase() != pathfinding.PhaseFinished {
		pathfinding.FindPath(s, hm, start, destination, pathfinding.Options{})
		calls++
		require.Less(t, calls, 10*hm.Len(), "step-by-step search does not terminate")
	}
	return calls
}

var allAlgorithms = []pathfinding.Algorithm{pathfinding.Dijkstra, pathfinding.Greedy, pathfinding.AStar}

func TestFindPath_Routes(t *testing.T) {
	cases := []struct {
		name        string
		mapName     string
		start, dest [2]int
		want        [][2]int
	}{
		{
			"OpenCornerToCorner", "open", [2]int{0, 0}, [2]int{9, 4},
			[][2]int{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}, {6, 3}, {7, 3}, {8, 4}, {9, 4}},
		},
		{
			"ObstaclesCornerToCorner", "obstacles", [2]int{0, 0}, [2]int{9, 4},
			[][2]int{
				{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 1}, {6, 2},
				{5, 2}, {4, 2}, {3, 2}, {2, 2}, {1, 2}, {0, 3}, {0, 4}, {1, 4},
				{2, 4}, {3, 4}, {4, 4}, {5, 4}, {6, 4}, {7, 4}, {8, 4}, {9, 4},
			},
		},
		{
			"ObstaclesRightSection", "obstacles", [2]int{8, 0}, [2]int{8, 2},
			[][2]int{{8, 0}, {8, 1}, {8, 2}},
		},
		{"ObstaclesLeftToWalledRight", "obstacles", [2]int{0, 0}, [2]int{9, 0}, [][2]int{}},
		{"ObstaclesWalledRightToLeft", "obstacles", [2]int{9, 0}, [2]int{0, 0}, [][2]int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hm := loadMap(t, tc.mapName)
			s := pathfinding.NewSession()

			phase := pathfinding.FindPath(s, hm, hm.Tile(tc.start[0], tc.start[1]), hm.Tile(tc.dest[0], tc.dest[1]), pathfinding.Options{})

			assert.Equal(t, pathfinding.PhaseFinished, phase)
			assert.True(t, s.Finished)
			assert.False(t, s.Pending)
			assert.Equal(t, len(tc.want) > 0, s.DestinationReached)
			assert.Equal(t, tc.want, route(s, hm))
		})
	}
}

func TestFindPath_AllAlgorithmsOnObstacles(t *testing.T) {
	for _, algorithm := range allAlgorithms {
		t.Run(algorithm.String(), func(t *testing.T) {
			hm := loadMap(t, "obstacles")
			s := newSession(algorithm, pathfinding.Instant)
			pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 4), pathfinding.Options{})
			assert.Len(t, s.FoundPath, 24)
		})
	}
}

func TestFindPath_TieBreaksAreDeterministic(t *testing.T) {
	cases := []struct {
		algorithm pathfinding.Algorithm
		want      [][2]int
	}{
		{pathfinding.AStar, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 1}, {7, 0}, {8, 0}, {9, 0}}},
		{pathfinding.Dijkstra, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 1}, {5, 0}, {6, 1}, {7, 0}, {8, 0}, {9, 0}}},
		{pathfinding.Greedy, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {8, 0}, {9, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			hm := loadMap(t, "open")
			s := newSession(tc.algorithm, pathfinding.Instant)
			pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 0), pathfinding.Options{})
			assert.Equal(t, tc.want, route(s, hm))
		})
	}
}

func TestFindPath_OpenMapPathLengthIsDistancePlusOne(t *testing.T) {
	hm := loadMap(t, "open")
	corners := [][2]int{{0, 0}, {9, 0}, {0, 4}, {9, 4}}

	for _, algorithm := range []pathfinding.Algorithm{pathfinding.Dijkstra, pathfinding.AStar} {
		for _, from := range corners {
			for _, to := range corners {
				s := newSession(algorithm, pathfinding.Instant)
				start, dest := hm.Tile(from[0], from[1]), hm.Tile(to[0], to[1])
				pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})

				path := s.Path(hm)
				require.Len(t, path, hexmap.Distance(start, dest)+1, "%s %v -> %v", algorithm, from, to)
				assert.Equal(t, start.ID, path[0].ID)
				assert.Equal(t, dest.ID, path[len(path)-1].ID)
				for i := 1; i < len(path); i++ {
					assert.Equal(t, 1, hexmap.Distance(path[i-1], path[i]))
					assert.True(t, path[i].Path.Used)
				}
				pathfinding.ClearSession(s)
			}
		}
	}
}

func TestFindPath_StepByStepMatchesInstant(t *testing.T) {
	pairs := []struct {
		mapName     string
		start, dest [2]int
	}{
		{"open", [2]int{0, 0}, [2]int{9, 4}},
		{"open", [2]int{9, 0}, [2]int{0, 0}},
		{"open", [2]int{4, 2}, [2]int{4, 2}},
		{"obstacles", [2]int{0, 0}, [2]int{9, 4}},
		{"obstacles", [2]int{8, 0}, [2]int{8, 2}},
		{"obstacles", [2]int{0, 0}, [2]int{9, 0}},
	}
	for _, algorithm := range allAlgorithms {
		for _, p := range pairs {
			hm := loadMap(t, p.mapName)
			start, dest := hm.Tile(p.start[0], p.start[1]), hm.Tile(p.dest[0], p.dest[1])

			instant := newSession(algorithm, pathfinding.Instant)
			pathfinding.FindPath(instant, hm, start, dest, pathfinding.Options{})
			want := route(instant, hm)
			pathfinding.ClearSession(instant)

			stepped := newSession(algorithm, pathfinding.StepByStep)
			runSteps(t, stepped, hm, start, dest)

			assert.Equal(t, want, route(stepped, hm), "%s %s %v -> %v", algorithm, p.mapName, p.start, p.dest)
		}
	}
}

func TestFindPath_StepByStepPhases(t *testing.T) {
	hm := loadMap(t, "open")
	s := newSession(pathfinding.AStar, pathfinding.StepByStep)
	start, dest := hm.Tile(0, 0), hm.Tile(9, 4)

	assert.Equal(t, pathfinding.PhaseIdle, s.Phase())

	phase := pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
	assert.Equal(t, pathfinding.PhaseExpanding, phase)
	assert.True(t, s.Pending)
	assert.Equal(t, start.ID, s.CurrentTile)
	assert.False(t, start.Path.Candidate, "start was expanded")
	assert.True(t, hm.Tile(1, 0).Path.Candidate)

	for s.Phase() == pathfinding.PhaseExpanding {
		pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
	}
	require.Equal(t, pathfinding.PhaseReconstructing, s.Phase())
	assert.True(t, s.DestinationReached)
	assert.Empty(t, s.FoundPath)

	reconstructCalls := 0
	for s.Phase() == pathfinding.PhaseReconstructing {
		pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
		reconstructCalls++
		if s.Phase() == pathfinding.PhaseReconstructing {
			assert.Len(t, s.FoundPath, reconstructCalls)
		}
	}
	assert.Equal(t, 10, reconstructCalls)
	assert.Equal(t, pathfinding.PhaseFinished, s.Phase())
	assert.False(t, s.Pending)
	assert.Len(t, s.FoundPath, 10)
	assert.Equal(t, start.ID, s.FoundPath[0])
}

func TestFindPath_ForceInstantFinishesStepSearch(t *testing.T) {
	hm := loadMap(t, "obstacles")
	s := newSession(pathfinding.AStar, pathfinding.StepByStep)
	start, dest := hm.Tile(0, 0), hm.Tile(9, 4)

	pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
	pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
	require.Equal(t, pathfinding.PhaseExpanding, s.Phase())

	phase := pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{ForceInstant: true})
	assert.Equal(t, pathfinding.PhaseFinished, phase)
	assert.Len(t, s.FoundPath, 24)
}

func TestFindPath_InterruptBeforeLastStep(t *testing.T) {
	hm := loadMap(t, "open")
	s := newSession(pathfinding.AStar, pathfinding.StepByStep)
	start, dest := hm.Tile(0, 0), hm.Tile(9, 4)
	held := pathfinding.Options{InterruptBeforeLastStep: true}

	for i := 0; i < 10*hm.Len(); i++ {
		pathfinding.FindPath(s, hm, start, dest, held)
	}
	assert.Equal(t, pathfinding.PhaseReconstructing, s.Phase())
	assert.Len(t, s.FoundPath, 9, "everything but the start tile")
	assert.Equal(t, start.ID, s.NextTile)
	assert.False(t, start.Path.Used)

	phase := pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
	assert.Equal(t, pathfinding.PhaseFinished, phase)
	require.Len(t, s.FoundPath, 10)
	assert.Equal(t, start.ID, s.FoundPath[0])
	assert.Equal(t, dest.ID, s.FoundPath[9])
}

func TestFindPath_InterruptIgnoredWhenInstant(t *testing.T) {
	hm := loadMap(t, "open")
	s := newSession(pathfinding.AStar, pathfinding.Instant)

	phase := pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 4), pathfinding.Options{InterruptBeforeLastStep: true})
	assert.Equal(t, pathfinding.PhaseFinished, phase)
	assert.Len(t, s.FoundPath, 10)
}

func TestFindPath_WithoutStartTile(t *testing.T) {
	hm := loadMap(t, "open")
	s := pathfinding.NewSession()
	s.AppendStartTile = false
	start, dest := hm.Tile(0, 0), hm.Tile(9, 4)

	pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
	require.Len(t, s.FoundPath, 9)
	assert.Equal(t, [2]int{1, 0}, route(s, hm)[0])
	assert.False(t, start.Path.Used)
	assert.True(t, s.Finished)
}

func TestFindPath_SameStartAndDestination(t *testing.T) {
	hm := loadMap(t, "open")
	s := pathfinding.NewSession()
	tile := hm.Tile(3, 3)

	pathfinding.FindPath(s, hm, tile, tile, pathfinding.Options{})
	assert.True(t, s.DestinationReached)
	assert.Equal(t, [][2]int{{3, 3}}, route(s, hm))
}

func TestFindPath_Unreachable(t *testing.T) {
	t.Run("Instant", func(t *testing.T) {
		hm := loadMap(t, "obstacles")
		s := newSession(pathfinding.AStar, pathfinding.Instant)
		pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 0), pathfinding.Options{})

		assert.True(t, s.Finished)
		assert.False(t, s.DestinationReached)
		assert.Empty(t, s.FoundPath)
		assert.NotEmpty(t, s.CheckedTiles, "instant searches keep their visuals")
	})

	t.Run("StepByStep", func(t *testing.T) {
		hm := loadMap(t, "obstacles")
		s := newSession(pathfinding.AStar, pathfinding.StepByStep)
		runSteps(t, s, hm, hm.Tile(0, 0), hm.Tile(9, 0))

		assert.True(t, s.Finished)
		assert.Empty(t, s.FoundPath)
		assert.Empty(t, s.CheckedTiles)
		for _, tile := range hm.Tiles() {
			assert.Equal(t, hexmap.NewPathNode(), tile.Path, "tile %v", tile.Index)
		}

		// Still bound to the same request, so nothing restarts.
		phase := pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 0), pathfinding.Options{})
		assert.Equal(t, pathfinding.PhaseFinished, phase)
		assert.Empty(t, s.CheckedTiles)
	})
}

func TestFindPath_Guards(t *testing.T) {
	hm := loadMap(t, "obstacles")
	wall := hm.Tile(7, 0)
	require.True(t, wall.Impassable)

	cases := []struct {
		name        string
		start, dest *hexmap.Tile
	}{
		{"NilStart", nil, hm.Tile(0, 0)},
		{"NilDestination", hm.Tile(0, 0), nil},
		{"ImpassableDestination", hm.Tile(0, 0), wall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := pathfinding.NewSession()
			phase := pathfinding.FindPath(s, hm, tc.start, tc.dest, pathfinding.Options{})

			assert.Equal(t, pathfinding.PhaseIdle, phase)
			assert.Equal(t, hexmap.NoTile, s.StartingTile)
			assert.Equal(t, hexmap.NoTile, s.DestinationTile)
			assert.Empty(t, s.CheckedTiles)
			assert.Zero(t, s.Candidates())
		})
	}

	t.Run("ImpassableDestinationKeepsPreviousSearch", func(t *testing.T) {
		s := pathfinding.NewSession()
		pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 4), pathfinding.Options{})
		checked := len(s.CheckedTiles)

		pathfinding.FindPath(s, hm, hm.Tile(0, 0), wall, pathfinding.Options{})
		assert.Equal(t, hm.Tile(9, 4).ID, s.DestinationTile)
		assert.Len(t, s.CheckedTiles, checked)
		assert.Len(t, s.FoundPath, 24)
	})
}

func TestFindPath_FinishedIsNoOp(t *testing.T) {
	hm := loadMap(t, "obstacles")
	s := pathfinding.NewSession()
	start, dest := hm.Tile(0, 0), hm.Tile(9, 4)

	pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{})
	path := append([]hexmap.TileID(nil), s.FoundPath...)
	checked := len(s.CheckedTiles)

	for i := 0; i < 3; i++ {
		phase := pathfinding.FindPath(s, hm, start, dest, pathfinding.Options{ForceInstant: true})
		assert.Equal(t, pathfinding.PhaseFinished, phase)
	}
	assert.Equal(t, path, s.FoundPath)
	assert.Len(t, s.CheckedTiles, checked)
}

func TestFindPath_NewRequestClearsPrevious(t *testing.T) {
	hm := loadMap(t, "open")
	s := pathfinding.NewSession()

	pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 4), pathfinding.Options{})
	previous := append([]hexmap.TileID(nil), s.CheckedTiles...)

	pathfinding.FindPath(s, hm, hm.Tile(9, 4), hm.Tile(9, 3), pathfinding.Options{})
	assert.Equal(t, [][2]int{{9, 4}, {9, 3}}, route(s, hm))

	current := make(map[hexmap.TileID]bool, len(s.CheckedTiles))
	for _, id := range s.CheckedTiles {
		current[id] = true
	}
	for _, id := range previous {
		if current[id] {
			continue
		}
		assert.Equal(t, hexmap.NewPathNode(), hm.ByID(id).Path, "tile %v", hm.ByID(id).Index)
	}
}

func TestFindPath_CheckedTilesAreUnique(t *testing.T) {
	for _, algorithm := range allAlgorithms {
		hm := loadMap(t, "obstacles")
		s := newSession(algorithm, pathfinding.Instant)
		pathfinding.FindPath(s, hm, hm.Tile(0, 0), hm.Tile(9, 4), pathfinding.Options{})

		seen := make(map[hexmap.TileID]bool)
		for _, id := range s.CheckedTiles {
			assert.False(t, seen[id], "%s: tile %d listed twice", algorithm, id)
			seen[id] = true
			assert.True(t, hm.ByID(id).Path.Checked)
		}
		for _, tile := range hm.Tiles() {
			assert.Equal(t, seen[tile.ID], tile.Path.Checked)
		}
	}
}

func TestFindPath_ParentsFormTreeRootedAtStart(t *testing.T) {
	hm := loadMap(t, "obstacles")
	s := pathfinding.NewSession()
	start := hm.Tile(0, 0)
	pathfinding.FindPath(s, hm, start, hm.Tile(9, 4), pathfinding.Options{})

	for _, id := range s.CheckedTiles {
		steps := 0
		for tile := hm.ByID(id); tile.Path.HasParent(); tile = hm.ByID(tile.Path.Parent) {
			steps++
			require.LessOrEqual(t, steps, hm.Len(), "cycle through tile %d", id)
		}
	}
	assert.False(t, start.Path.HasParent())
}

func TestFindPath_HeuristicUsage(t *testing.T) {
	cases := []struct {
		algorithm     pathfinding.Algorithm
		wantCost      bool
		wantHeuristic bool
	}{
		{pathfinding.Dijkstra, true, false},
		{pathfinding.Greedy, false, true},
		{pathfinding.AStar, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			hm := loadMap(t, "open")
			s := newSession(tc.algorithm, pathfinding.Instant)
			dest := hm.Tile(9, 4)
			pathfinding.FindPath(s, hm, hm.Tile(0, 0), dest, pathfinding.Options{})

			neighbor := hm.Tile(1, 0)
			require.True(t, neighbor.Path.Checked)
			if tc.wantCost {
				assert.Equal(t, 1, neighbor.Path.Cost)
			} else {
				assert.Zero(t, neighbor.Path.Cost)
			}
			if tc.wantHeuristic {
				assert.Equal(t, hexmap.Distance(neighbor, dest), neighbor.Path.Heuristic)
			} else {
				assert.Zero(t, neighbor.Path.Heuristic)
			}
		})
	}
}
