// pkg/hexmap/layout.go
package hexmap

import (
	"fmt"
	"strings"
)

const (
	layoutPassable   = '.'
	layoutImpassable = 'X'
)

// ParseLayout builds a map from its text drawing, where '.' is a passable
// tile and 'X' an impassable one. Each map row takes two lines: the first
// lists the even columns, the second the odd columns (drawn shifted, as they
// sit half a row lower). Blank lines and whitespace are ignored.
//
//	.       .       .
//	    .       X
//	X       .       .
//	    .       .
//
// The drawing above is a 5x2 map. Layouts need at least two columns.
func ParseLayout(layout string) (*HexMap, error) {
	var lines [][]bool
	for n, line := range strings.Split(layout, "\n") {
		var row []bool
		for _, ch := range line {
			switch ch {
			case layoutPassable:
				row = append(row, false)
			case layoutImpassable:
				row = append(row, true)
			case ' ', '\t', '\r':
			default:
				return nil, fmt.Errorf("%w %q on line %d", ErrLayoutChar, ch, n+1)
			}
		}
		if len(row) > 0 {
			lines = append(lines, row)
		}
	}

	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}
	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("%w: %d lines, expected pairs of even/odd column lines", ErrRaggedLayout, len(lines))
	}

	even, odd := len(lines[0]), len(lines[1])
	if odd != even && odd != even-1 {
		return nil, fmt.Errorf("%w: %d even and %d odd columns", ErrRaggedLayout, even, odd)
	}
	for i, row := range lines {
		want := even
		if i%2 == 1 {
			want = odd
		}
		if len(row) != want {
			return nil, fmt.Errorf("%w: line %d has %d tiles, expected %d", ErrRaggedLayout, i+1, len(row), want)
		}
	}

	hm, err := NewHexMap(even+odd, len(lines)/2, ObstaclesNone, nil)
	if err != nil {
		return nil, err
	}
	for i, row := range lines {
		y := i / 2
		for k, impassable := range row {
			hm.Tile(2*k+i%2, y).Impassable = impassable
		}
	}
	return hm, nil
}

// Layout draws the map in the format read by ParseLayout.
func (hm *HexMap) Layout() string {
	var b strings.Builder
	for y := 0; y < hm.height; y++ {
		for parity := 0; parity < 2; parity++ {
			if parity == 1 && hm.width < 2 {
				continue
			}
			b.WriteString(strings.Repeat(" ", 4+4*parity))
			for x := parity; x < hm.width; x += 2 {
				if x > 1 {
					b.WriteString("       ")
				}
				if hm.Tile(x, y).Impassable {
					b.WriteByte(layoutImpassable)
				} else {
					b.WriteByte(layoutPassable)
				}
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
