// internal/terminal/viewport.go
package terminal

import (
	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/utils"
)

const (
	cellWidth   = 3 // два символа гекса и пробел
	cellHeight  = 2 // нечётные столбцы сдвинуты на строку вниз
	statusLines = 4
)

// Viewport — прямоугольник гексов, который помещается в терминал.
type Viewport struct {
	Origin     hexmap.Index // левый верхний видимый гекс
	Cols, Rows int
}

// NewViewport подбирает размер окна под экран width x height символов.
func NewViewport(width, height int) Viewport {
	v := Viewport{}
	v.Resize(width, height)
	return v
}

// Resize пересчитывает число видимых столбцов и рядов.
func (v *Viewport) Resize(width, height int) {
	v.Cols = max(width/cellWidth, 1)
	// одна строка уходит на сдвиг нечётных столбцов
	v.Rows = max((height-statusLines-1)/cellHeight, 1)
}

// Follow сдвигает окно так, чтобы idx был виден, не выходя за карту.
func (v *Viewport) Follow(idx hexmap.Index, mapWidth, mapHeight int) {
	if idx.X < v.Origin.X {
		v.Origin.X = idx.X
	} else if idx.X >= v.Origin.X+v.Cols {
		v.Origin.X = idx.X - v.Cols + 1
	}
	if idx.Y < v.Origin.Y {
		v.Origin.Y = idx.Y
	} else if idx.Y >= v.Origin.Y+v.Rows {
		v.Origin.Y = idx.Y - v.Rows + 1
	}

	v.Origin.X = utils.Clamp(0, v.Origin.X, max(mapWidth-v.Cols, 0))
	v.Origin.Y = utils.Clamp(0, v.Origin.Y, max(mapHeight-v.Rows, 0))
}

// Contains reports whether idx falls inside the window.
func (v Viewport) Contains(idx hexmap.Index) bool {
	return idx.X >= v.Origin.X && idx.X < v.Origin.X+v.Cols &&
		idx.Y >= v.Origin.Y && idx.Y < v.Origin.Y+v.Rows
}

// CellOf возвращает экранную позицию первого символа гекса.
func (v Viewport) CellOf(idx hexmap.Index) (x, y int, ok bool) {
	if !v.Contains(idx) {
		return 0, 0, false
	}
	x = (idx.X - v.Origin.X) * cellWidth
	y = (idx.Y-v.Origin.Y)*cellHeight + idx.X%2
	return x, y, true
}

// IndexAt переводит экранную позицию (например, клик мыши) в индекс гекса.
func (v Viewport) IndexAt(x, y int) (hexmap.Index, bool) {
	if x < 0 || y < 0 {
		return hexmap.Index{}, false
	}
	col := v.Origin.X + x/cellWidth
	y -= col % 2
	if y < 0 {
		return hexmap.Index{}, false
	}
	idx := hexmap.Index{X: col, Y: v.Origin.Y + y/cellHeight}
	return idx, v.Contains(idx)
}
