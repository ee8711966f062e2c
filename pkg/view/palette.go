// pkg/view/palette.go
package view

import (
	"image/color"

	"go-hexpath/internal/config"
)

// TileFill returns the fill color of a tile state in the given palette.
func TileFill(state TileState, colors config.TileColors) color.RGBA {
	switch state {
	case StateImpassable:
		return colors.Impassable
	case StateChecked:
		return colors.Checked
	case StateCandidate:
		return colors.Candidate
	case StateNext:
		return colors.Next
	case StateCurrent:
		return colors.Current
	case StatePath:
		return colors.Path
	}
	return colors.Passable
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ContrastText picks light or dark text for the background.
func ContrastText(background color.RGBA) color.RGBA {
	if (int(background.R)+int(background.G)+int(background.B))/3 > 128 {
		return config.TextDarkColor
	}
	return config.TextLightColor
}
