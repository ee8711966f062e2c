// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-hexpath/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Enabled    bool
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Face       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		Enabled:    true,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
		Face:       basicfont.Face7x13,
	}
}

// Contains проверяет, находится ли точка экрана над кнопкой.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет клик по включённой кнопке.
func (b *Button) IsClicked(x, y int, pressed bool) bool {
	return pressed && b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabled
	case b.Contains(mouseX, mouseY):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextLightColor, true)

	bounds := text.BoundString(b.Face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2 - config.TextOffsetY/2
	text.Draw(screen, b.Text, b.Face, textX, textY, b.TextColor)
}
