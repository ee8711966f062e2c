// pkg/hexmap/errors.go
package hexmap

import "errors"

var (
	// ErrInvalidDimensions is returned when a map would have no tiles.
	ErrInvalidDimensions = errors.New("hexmap: width and height must be positive")
	// ErrEmptyLayout is returned when a text layout contains no tiles.
	ErrEmptyLayout = errors.New("hexmap: layout has no tiles")
	// ErrRaggedLayout is returned when layout lines do not describe a rectangle.
	ErrRaggedLayout = errors.New("hexmap: layout rows have inconsistent widths")
	// ErrLayoutChar is returned for characters other than '.', 'X' and blanks.
	ErrLayoutChar = errors.New("hexmap: unexpected layout character")
	// ErrNoPassableTile is returned when a map has nowhere to stand.
	ErrNoPassableTile = errors.New("hexmap: map has no passable tile")
)
