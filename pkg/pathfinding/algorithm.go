// pkg/pathfinding/algorithm.go
package pathfinding

import (
	"fmt"
	"strings"
)

// Algorithm selects which of travel cost and heuristic drive the search.
type Algorithm int

const (
	// Dijkstra uses travel cost only.
	Dijkstra Algorithm = iota
	// Greedy uses the heuristic only.
	Greedy
	// AStar uses travel cost plus heuristic.
	AStar
)

func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "Dijkstra's"
	case Greedy:
		return "Greedy"
	case AStar:
		return "A-Star"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// UsesCost reports whether the accumulated travel cost counts in priorities.
func (a Algorithm) UsesCost() bool {
	return a == Dijkstra || a == AStar
}

// UsesHeuristic reports whether the distance to the destination counts in
// priorities.
func (a Algorithm) UsesHeuristic() bool {
	return a == Greedy || a == AStar
}

// Next cycles Dijkstra → Greedy → A-Star → Dijkstra.
func (a Algorithm) Next() Algorithm {
	return (a + 1) % (AStar + 1)
}

// Style selects how much work a single FindPath call performs.
type Style int

const (
	// Instant runs the whole search in one call.
	Instant Style = iota
	// StepByStep expands or reconstructs one tile per call.
	StepByStep
)

func (s Style) String() string {
	switch s {
	case Instant:
		return "Instant"
	case StepByStep:
		return "Step by step"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Next toggles between the two styles.
func (s Style) Next() Style {
	return (s + 1) % (StepByStep + 1)
}

// Phase is where a session stands in its search.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExpanding
	PhaseReconstructing
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseExpanding:
		return "Expanding"
	case PhaseReconstructing:
		return "Reconstructing"
	case PhaseFinished:
		return "Finished"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// ParseAlgorithm accepts the String form or a short alias ("dijkstra",
// "greedy", "astar"), case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra's", "dijkstra":
		return Dijkstra, nil
	case "greedy":
		return Greedy, nil
	case "a-star", "astar", "a*":
		return AStar, nil
	}
	return AStar, fmt.Errorf("pathfinding: unknown algorithm %q", name)
}

// ParseStyle accepts the String form or "step", case-insensitively.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "instant":
		return Instant, nil
	case "step by step", "step", "stepbystep":
		return StepByStep, nil
	}
	return Instant, fmt.Errorf("pathfinding: unknown style %q", name)
}
