// pkg/pathfinding/session.go
package pathfinding

import (
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pqueue"
)

// Session is the state of one path request, kept between FindPath calls so
// a step-by-step search can resume where it stopped.
//
// Tile costs live in the tiles themselves so renderers can show them. The
// session remembers every tile it touched in CheckedTiles and resets only
// those on Clear, instead of walking the whole map.
type Session struct {
	Algorithm Algorithm
	Style     Style
	// AppendStartTile controls whether the starting tile ends up in
	// FoundPath. Defaults to true.
	AppendStartTile bool

	StartingTile    hexmap.TileID
	DestinationTile hexmap.TileID

	Pending            bool
	DestinationReached bool
	Finished           bool

	// CheckedTiles lists every tile touched by the search, in order.
	CheckedTiles []hexmap.TileID
	// CurrentTile is the tile popped by the latest expansion step.
	CurrentTile hexmap.TileID
	// NextTile is where path reconstruction continues from.
	NextTile hexmap.TileID
	// FoundPath runs from start to destination once the search finished and
	// the destination was reached.
	FoundPath []hexmap.TileID

	candidates *pqueue.Queue[hexmap.TileID, int]
	hexMap     *hexmap.HexMap
}

// NewSession returns an idle A-Star session in instant style.
func NewSession() *Session {
	return &Session{
		Algorithm:       AStar,
		Style:           Instant,
		AppendStartTile: true,
		StartingTile:    hexmap.NoTile,
		DestinationTile: hexmap.NoTile,
		CurrentTile:     hexmap.NoTile,
		NextTile:        hexmap.NoTile,
		candidates:      pqueue.New[hexmap.TileID, int](),
	}
}

// Phase reports the session's current stage.
func (s *Session) Phase() Phase {
	switch {
	case s.Finished:
		return PhaseFinished
	case !s.Pending:
		return PhaseIdle
	case s.DestinationReached:
		return PhaseReconstructing
	default:
		return PhaseExpanding
	}
}

// Candidates returns the number of queue entries, stale ones included.
func (s *Session) Candidates() int {
	return s.candidates.Len()
}

// Path resolves FoundPath against hm.
func (s *Session) Path(hm *hexmap.HexMap) []*hexmap.Tile {
	path := make([]*hexmap.Tile, 0, len(s.FoundPath))
	for _, id := range s.FoundPath {
		if t := hm.ByID(id); t != nil {
			path = append(path, t)
		}
	}
	return path
}

// Clear resets the bookkeeping of every tile the session touched and brings
// the session back to idle. Algorithm, style and AppendStartTile are kept.
func (s *Session) Clear() {
	s.clearBookkeeping()

	s.StartingTile = hexmap.NoTile
	s.DestinationTile = hexmap.NoTile
	s.Pending = false
	s.DestinationReached = false
	s.Finished = false
	s.FoundPath = nil
	s.hexMap = nil
}

// clearBookkeeping resets touched tiles, the queue and the cursors but keeps
// the request binding and the outcome flags.
func (s *Session) clearBookkeeping() {
	if s.hexMap != nil {
		for _, id := range s.CheckedTiles {
			if t := s.hexMap.ByID(id); t != nil {
				t.Path.Reset()
			}
		}
	}
	s.CheckedTiles = s.CheckedTiles[:0]
	s.candidates.Clear()
	s.CurrentTile = hexmap.NoTile
	s.NextTile = hexmap.NoTile
}

// ClearSession is the only way tile bookkeeping gets reset. Call it whenever
// the start or destination changes outside FindPath, or to cancel a search.
func ClearSession(s *Session) {
	s.Clear()
}

// ChangeAlgorithm cycles to the next algorithm.
func ChangeAlgorithm(s *Session) {
	s.Algorithm = s.Algorithm.Next()
}

// ChangeStyle cycles to the next style and clears the session.
func ChangeStyle(s *Session) {
	s.Style = s.Style.Next()
	s.Clear()
}

// AllowOptionChanges reports whether algorithm and style may change now:
// not while a search is pending, nor while something is moving along a
// found path.
func AllowOptionChanges(s *Session, characterMoving bool) bool {
	return !s.Pending && !characterMoving
}
