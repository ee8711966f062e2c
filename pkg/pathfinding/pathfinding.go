// pkg/pathfinding/pathfinding.go
package pathfinding

import (
	"slices"

	"go-hexpath/pkg/hexmap"
)

// Стоимость перехода между соседними гексами
const tileDistanceCost = 1

// Options tune a single FindPath call.
type Options struct {
	// InterruptBeforeLastStep stops a step-driven reconstruction right before
	// its final unit of work, so a held "advance" input never completes the
	// path by itself. Ignored when the call runs instantly.
	InterruptBeforeLastStep bool
	// ForceInstant runs a step-by-step search to completion in this call.
	ForceInstant bool
}

// FindPath starts or advances the search from start to destination on hm
// and returns the session phase afterwards.
//
// The search is specialised to hexagonal maps: it walks tile neighbours
// directly and uses the hex distance as heuristic. A nil start or
// destination, or an impassable destination, leaves the session untouched.
// Asking for a different start, destination or map clears the previous
// search first. Once finished, further calls for the same request do nothing.
//
// In Instant style (or with ForceInstant) the whole search runs in one call.
// In StepByStep style each call pops and expands one tile, or adds one tile
// to the reconstructed path.
//
// The queue has no decrease-key. A tile reached again with a lower cost is
// pushed a second time; the older entry is recognised as stale by the tile's
// Candidate flag and skipped when it surfaces.
func FindPath(s *Session, hm *hexmap.HexMap, start, destination *hexmap.Tile, opts Options) Phase {
	if hm == nil || start == nil || destination == nil || destination.Impassable {
		return s.Phase()
	}

	if s.hexMap != hm || s.StartingTile != start.ID || s.DestinationTile != destination.ID {
		s.Clear()
		s.hexMap = hm
		s.StartingTile = start.ID
		s.DestinationTile = destination.ID
	}

	if s.Finished {
		return PhaseFinished
	}

	instant := s.Style == Instant || opts.ForceInstant

	if !s.Pending {
		s.begin(start)
	}

	for {
		if !s.DestinationReached {
			if !s.expand() {
				s.giveUp()
				return s.Phase()
			}
		} else {
			if !instant && opts.InterruptBeforeLastStep && s.atLastStep() {
				return s.Phase()
			}
			s.reconstruct()
			if s.Finished {
				return s.Phase()
			}
		}

		if !instant {
			return s.Phase()
		}
	}
}

func (s *Session) begin(start *hexmap.Tile) {
	start.Path.Candidate = true
	start.Path.Checked = true
	s.candidates.Add(start.ID, 0)
	s.CheckedTiles = append(s.CheckedTiles, start.ID)
	s.Pending = true
}

// expand pops the next live candidate and pushes its passable neighbours.
// It reports false when the queue ran dry.
func (s *Session) expand() bool {
	hm := s.hexMap
	destination := hm.ByID(s.DestinationTile)

	for {
		id, ok := s.candidates.Poll()
		if !ok {
			return false
		}

		current := hm.ByID(id)
		if !current.Path.Candidate {
			continue // устаревшая запись очереди
		}

		s.CurrentTile = id
		if id == s.DestinationTile {
			s.DestinationReached = true
			s.NextTile = id
			return true
		}

		current.Path.Candidate = false

		for _, neighbor := range hm.Neighbors(current) {
			if neighbor.Impassable {
				continue
			}

			newCost := 0
			if s.Algorithm.UsesCost() {
				newCost = current.Path.Cost + tileDistanceCost
			}

			if neighbor.Path.Checked && newCost >= neighbor.Path.Cost {
				continue
			}

			if !neighbor.Path.Checked {
				if s.Algorithm.UsesHeuristic() {
					neighbor.Path.Heuristic = hexmap.Distance(neighbor, destination)
				}
				neighbor.Path.Checked = true
				s.CheckedTiles = append(s.CheckedTiles, neighbor.ID)
			}

			neighbor.Path.Cost = newCost
			neighbor.Path.Parent = current.ID
			neighbor.Path.Candidate = true
			s.candidates.Add(neighbor.ID, newCost+neighbor.Path.Heuristic)
		}
		return true
	}
}

// giveUp finishes a search whose destination cannot be reached. Step-driven
// searches drop their bookkeeping right away so no stale visuals linger.
func (s *Session) giveUp() {
	s.Finished = true
	s.Pending = false
	if s.Style == StepByStep {
		s.clearBookkeeping()
	}
}

func (s *Session) atLastStep() bool {
	t := s.hexMap.ByID(s.NextTile)
	return t == nil || !t.Path.HasParent()
}

// reconstruct adds one tile to FoundPath, walking parents back to the start.
func (s *Session) reconstruct() {
	tile := s.hexMap.ByID(s.NextTile)

	if tile.Path.HasParent() || s.AppendStartTile {
		s.FoundPath = append(s.FoundPath, tile.ID)
		tile.Path.Used = true
	}

	s.NextTile = tile.Path.Parent
	if s.NextTile == hexmap.NoTile {
		slices.Reverse(s.FoundPath)
		s.Finished = true
		s.Pending = false
	}
}
