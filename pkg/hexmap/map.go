// pkg/hexmap/map.go
package hexmap

import (
	"fmt"
	"math"

	"go-hexpath/pkg/utils"
)

// Смещения соседей по часовой стрелке, начиная с верхнего левого.
// Нечётные столбцы сдвинуты вниз на полряда, поэтому таблиц две.
var neighborOffsets = [2][6]Index{
	{{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}},
	{{-1, 0}, {0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}},
}

// RandomSource is the subset of a PRNG needed to scatter obstacles.
type RandomSource interface {
	Intn(n int) int
}

// HexMap is a width×height grid of hexagons in offset coordinates with odd
// columns shoved down.
type HexMap struct {
	width  int
	height int
	tiles  []Tile

	// BoundingBox covers every hexagon including the zig-zag gaps on the
	// borders; Boundaries excludes the gaps and is slightly smaller.
	BoundingBox Rectangle
	Boundaries  Rectangle
}

// NewHexMap builds a map and marks tiles impassable according to freq. A nil
// rng yields an obstacle-free map.
func NewHexMap(width, height int, freq ObstacleFrequency, rng RandomSource) (*HexMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	hm := &HexMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := hm.id(x, y)
			hm.tiles[id] = newTile(id, x, y, freq.roll(rng))
		}
	}
	hm.calculateBoundingBoxAndBoundaries()

	return hm, nil
}

func (hm *HexMap) id(x, y int) TileID {
	return TileID(y*hm.width + x)
}

// Width returns the number of columns.
func (hm *HexMap) Width() int { return hm.width }

// Height returns the number of rows.
func (hm *HexMap) Height() int { return hm.height }

// Len returns the number of tiles.
func (hm *HexMap) Len() int { return len(hm.tiles) }

// Contains reports whether column x, row y is on the map.
func (hm *HexMap) Contains(x, y int) bool {
	return x >= 0 && x < hm.width && y >= 0 && y < hm.height
}

// Tile returns the tile at column x, row y, or nil when out of bounds.
func (hm *HexMap) Tile(x, y int) *Tile {
	if !hm.Contains(x, y) {
		return nil
	}
	return &hm.tiles[hm.id(x, y)]
}

// ByID returns the tile with the given id, or nil for NoTile and unknown ids.
func (hm *HexMap) ByID(id TileID) *Tile {
	if id < 0 || int(id) >= len(hm.tiles) {
		return nil
	}
	return &hm.tiles[id]
}

// Tiles returns the backing arena. Callers may mutate tiles in place.
func (hm *HexMap) Tiles() []Tile {
	return hm.tiles
}

// CenterTile returns the centermost tile.
func (hm *HexMap) CenterTile() *Tile {
	return hm.Tile(hm.width/2, hm.height/2)
}

// NearestPassable returns the passable tile closest to t, t itself when it
// is passable, or nil when the map has no passable tile at all. Ties go to
// the tile met first walking rings outward in Neighbors order.
func (hm *HexMap) NearestPassable(t *Tile) *Tile {
	if t == nil {
		return nil
	}
	seen := make([]bool, len(hm.tiles))
	seen[t.ID] = true
	queue := []*Tile{t}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if !current.Impassable {
			return current
		}
		for _, n := range hm.Neighbors(current) {
			if !seen[n.ID] {
				seen[n.ID] = true
				queue = append(queue, n)
			}
		}
	}
	return nil
}

// Neighbors returns the up to six tiles around t in clockwise order starting
// from the upper left one. Off-map positions are skipped.
func (hm *HexMap) Neighbors(t *Tile) []*Tile {
	parity := 0
	if !utils.IsEven(t.Index.X) {
		parity = 1
	}

	neighbors := make([]*Tile, 0, 6)
	for _, off := range neighborOffsets[parity] {
		if n := hm.Tile(t.Index.X+off.X, t.Index.Y+off.Y); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Distance returns how many tile-to-tile moves separate a and b.
func Distance(a, b *Tile) int {
	return IndexDistance(a.Index, b.Index)
}

// IndexDistance is Distance over raw offset coordinates.
//
// Offset coordinates need a correction when the columns have different
// parity: the even column sits half a row higher than the odd one.
func IndexDistance(a, b Index) int {
	offset := 0
	aEven, bEven := utils.IsEven(a.X), utils.IsEven(b.X)
	if aEven && !bEven && a.Y < b.Y {
		offset = 1
	} else if !aEven && bEven && a.Y > b.Y {
		offset = 1
	}

	dx := utils.Abs(a.X - b.X)
	dy := utils.Abs(a.Y-b.Y) + dx/2 + offset

	return max(dx, dy)
}

// TileByPoint returns the tile whose hexagon contains p, or nil.
//
// Hexagon bounding boxes overlap, so plain division only gives an
// approximate index. The 2x2 block of tiles around it is then checked with
// the exact hexagon test instead of scanning the whole map.
func (hm *HexMap) TileByPoint(p Point) *Tile {
	if !hm.BoundingBox.Contains(p) {
		return nil
	}

	approxX := int(math.Floor((p.X + HexagonInnerHorizontalDistance) / HexagonHorizontalDistance))
	approxY := int(math.Floor((p.Y + HexagonVerticalDistance) / (HexagonVerticalDistance * 2)))

	left := utils.Clamp(0, approxX, hm.width-1)
	right := utils.Clamp(0, approxX+1, hm.width-1)
	top := utils.Clamp(0, approxY-1, hm.height-1)
	bottom := utils.Clamp(0, approxY, hm.height-1)

	for x := left; x <= right; x++ {
		for y := top; y <= bottom; y++ {
			t := hm.Tile(x, y)
			if IsPointInsideHexagon(p, t.Center) {
				return t
			}
		}
	}
	return nil
}

// IndexRect is an inclusive range of columns and rows.
type IndexRect struct {
	Left, Right, Top, Bottom int
}

// VisibleTilesIndices returns the columns and rows of tiles that overlap the
// viewport. Even columns are offset vertically, so the result may include a
// row of invisible tiles at the top and bottom.
func (hm *HexMap) VisibleTilesIndices(viewport Rectangle) IndexRect {
	r := IndexRect{
		Left:   int(math.Floor((viewport.Left + HexagonInnerHorizontalDistance) / HexagonHorizontalDistance)),
		Right:  int(math.Floor((viewport.Right + HexagonRadius) / HexagonHorizontalDistance)),
		Top:    int(math.Floor(viewport.Top / (HexagonVerticalDistance * 2))),
		Bottom: int(math.Floor((viewport.Bottom + HexagonVerticalDistance) / (HexagonVerticalDistance * 2))),
	}

	r.Left = utils.Clamp(0, r.Left, hm.width-1)
	r.Right = utils.Clamp(0, r.Right, hm.width-1)
	r.Top = utils.Clamp(0, r.Top, hm.height-1)
	r.Bottom = utils.Clamp(0, r.Bottom, hm.height-1)

	return r
}

// VisibleTiles returns the tiles inside VisibleTilesIndices, column by column.
func (hm *HexMap) VisibleTiles(viewport Rectangle) []*Tile {
	r := hm.VisibleTilesIndices(viewport)

	tiles := make([]*Tile, 0, (r.Right-r.Left+1)*(r.Bottom-r.Top+1))
	for x := r.Left; x <= r.Right; x++ {
		for y := r.Top; y <= r.Bottom; y++ {
			tiles = append(tiles, hm.Tile(x, y))
		}
	}
	return tiles
}

func (hm *HexMap) calculateBoundingBoxAndBoundaries() {
	leftTile := hm.Tile(0, 0)
	rightTile := hm.Tile(hm.width-1, 0)
	topTile := hm.Tile(0, 0)
	bottomTile := hm.Tile(0, hm.height-1)
	if hm.width > 1 {
		bottomTile = hm.Tile(1, hm.height-1)
	}

	hm.BoundingBox = Rectangle{
		Left:   leftTile.Center.X - HexagonRadius,
		Right:  rightTile.Center.X + HexagonRadius,
		Top:    topTile.Center.Y - HexagonVerticalDistance,
		Bottom: bottomTile.Center.Y + HexagonVerticalDistance,
	}
	hm.Boundaries = Rectangle{
		Left:   hm.BoundingBox.Left + HexagonInnerHorizontalDistance,
		Right:  hm.BoundingBox.Right - HexagonInnerHorizontalDistance,
		Top:    hm.BoundingBox.Top + HexagonVerticalDistance,
		Bottom: hm.BoundingBox.Bottom - HexagonVerticalDistance,
	}
}
