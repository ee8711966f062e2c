// pkg/hexmap/tile.go
package hexmap

// TileID addresses a tile inside its HexMap arena (row-major).
type TileID int

// NoTile marks a missing tile reference, e.g. the parent of a search root.
const NoTile TileID = -1

// Index holds offset coordinates: X is the column, Y the row.
type Index struct {
	X, Y int
}

// PathNode is the per-tile search bookkeeping. Only the pathfinding engine
// writes it; renderers read it.
type PathNode struct {
	// Candidate is true while the tile's latest queue entry is still live.
	Candidate bool
	// Checked is true once the current search touched the tile.
	Checked bool
	// Used is true when the tile belongs to the reconstructed path.
	Used      bool
	Cost      int
	Heuristic int
	Parent    TileID
}

// NewPathNode returns a node with no parent.
func NewPathNode() PathNode {
	return PathNode{Parent: NoTile}
}

// Reset clears the node back to its defaults.
func (n *PathNode) Reset() {
	*n = NewPathNode()
}

// HasParent reports whether the node points back to another tile.
func (n PathNode) HasParent() bool {
	return n.Parent != NoTile
}

// Tile is a single hex cell. Tiles are owned by their HexMap; everything else
// refers to them by TileID or by pointer into the map's arena.
type Tile struct {
	ID         TileID
	Index      Index
	Center     Point
	Impassable bool
	Path       PathNode
}

func newTile(id TileID, x, y int, impassable bool) Tile {
	return Tile{
		ID:         id,
		Index:      Index{X: x, Y: y},
		Center:     TileCenter(x, y),
		Impassable: impassable,
		Path:       NewPathNode(),
	}
}
