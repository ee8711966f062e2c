// internal/config/theme.go
package config

import (
	"fmt"
	"image/color"
	"sort"
)

// TileColors — цвета гексов в зависимости от их состояния в поиске.
type TileColors struct {
	Passable   color.RGBA
	Impassable color.RGBA
	Current    color.RGBA
	Next       color.RGBA
	Candidate  color.RGBA
	Checked    color.RGBA
	Path       color.RGBA
	Outline    color.RGBA
	Text       color.RGBA
}

// CharacterColors — цвета персонажа.
type CharacterColors struct {
	Outline color.RGBA
	Body    color.RGBA
	Feet    color.RGBA
}

// Theme объединяет палитры карты и персонажа.
type Theme struct {
	Name      string
	Tiles     TileColors
	Character CharacterColors
}

const DefaultTheme = "Default"

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{r, g, b, 255} }

var themes = map[string]Theme{
	"Default": {
		Tiles: TileColors{
			Passable:   rgb(0x00, 0xFF, 0x00),
			Impassable: rgb(0xFF, 0x00, 0x00),
			Current:    rgb(0x00, 0xAA, 0x88),
			Next:       rgb(0xAA, 0xFF, 0xDD),
			Candidate:  rgb(0xFF, 0xFF, 0xFF),
			Checked:    rgb(0xCC, 0xCC, 0xCC),
			Path:       rgb(0x22, 0xBB, 0xFF),
			Outline:    rgb(0x00, 0x00, 0x00),
			Text:       rgb(0x00, 0x00, 0x00),
		},
		Character: CharacterColors{Outline: rgb(0, 0, 0), Body: rgb(0xFF, 0xFF, 0x00), Feet: rgb(0xFF, 0xFF, 0x00)},
	},
	"Old School": {
		Tiles: TileColors{
			Passable:   rgb(0xEA, 0xDB, 0xCB),
			Impassable: rgb(0xCD, 0xA8, 0x82),
			Current:    rgb(0xF7, 0xCB, 0x9D),
			Next:       rgb(0xFC, 0xE0, 0xC2),
			Candidate:  rgb(0xFB, 0xF7, 0xF3),
			Checked:    rgb(0xDA, 0xD3, 0xCB),
			Path:       rgb(0xFF, 0xBF, 0x7B),
			Outline:    rgb(0x56, 0x3A, 0x1D),
			Text:       rgb(0x56, 0x3A, 0x1D),
		},
		Character: CharacterColors{Outline: rgb(0x56, 0x3A, 0x1D), Body: rgb(0xFF, 0xD6, 0xAD), Feet: rgb(0x56, 0x3A, 0x10)},
	},
	"Spooky": {
		Tiles: TileColors{
			Passable:   rgb(0x11, 0x00, 0x00),
			Impassable: rgb(0x33, 0x00, 0x33),
			Current:    rgb(0x44, 0x55, 0x00),
			Next:       rgb(0x11, 0x22, 0x33),
			Candidate:  rgb(0x22, 0x00, 0x44),
			Checked:    rgb(0x00, 0x00, 0x22),
			Path:       rgb(0x00, 0x44, 0x22),
			Outline:    rgb(0x77, 0x00, 0x77),
			Text:       rgb(0xFF, 0xFF, 0xFF),
		},
		Character: CharacterColors{Outline: rgb(0, 0, 0), Body: rgb(0xFF, 0xFF, 0xFF), Feet: rgb(0xFF, 0xFF, 0xFF)},
	},
	"Explorer": {
		Tiles: TileColors{
			Passable:   rgb(0x00, 0x00, 0xFF),
			Impassable: rgb(0x00, 0xCC, 0x00),
			Current:    rgb(0xFF, 0xAA, 0x55),
			Next:       rgb(0xFF, 0xDD, 0xAA),
			Candidate:  rgb(0xDD, 0xDD, 0xFF),
			Checked:    rgb(0xAA, 0xAA, 0xDD),
			Path:       rgb(0xFF, 0x88, 0x55),
			Outline:    rgb(0x00, 0x00, 0x00),
			Text:       rgb(0x00, 0x00, 0x00),
		},
		Character: CharacterColors{Outline: rgb(0, 0, 0), Body: rgb(0xCC, 0x99, 0x66), Feet: rgb(0x66, 0x44, 0x22)},
	},
	"Heck": {
		Tiles: TileColors{
			Passable:   rgb(0xFF, 0x55, 0x00),
			Impassable: rgb(0xDD, 0x00, 0x00),
			Current:    rgb(0x55, 0xDD, 0x55),
			Next:       rgb(0xCC, 0xDD, 0xBB),
			Candidate:  rgb(0xFF, 0xBB, 0xBB),
			Checked:    rgb(0xFF, 0x99, 0x99),
			Path:       rgb(0x88, 0x88, 0xFF),
			Outline:    rgb(0x55, 0x00, 0x00),
			Text:       rgb(0x55, 0x00, 0x00),
		},
		Character: CharacterColors{Outline: rgb(0x55, 0, 0), Body: rgb(0xFF, 0x00, 0x00), Feet: rgb(0x55, 0x00, 0x00)},
	},
}

// ThemeByName возвращает тему по имени.
func ThemeByName(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}
	t.Name = name
	return t, nil
}

// ThemeNames возвращает имена всех тем в алфавитном порядке.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme возвращает тему, следующую за name по алфавиту.
func NextTheme(name string) Theme {
	names := ThemeNames()
	next := names[0]
	for i, n := range names {
		if n == name && i+1 < len(names) {
			next = names[i+1]
		}
	}
	t, _ := ThemeByName(next)
	return t
}
