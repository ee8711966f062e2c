// internal/ui/info_panel.go
package ui

import (
	"go-hexpath/internal/app"
	"go-hexpath/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// InfoPanel показывает состояние поиска и подсказку по управлению.
type InfoPanel struct {
	X, Y    int
	Message string // последнее событие, например "Path found"
}

func NewInfoPanel(x, y int) *InfoPanel {
	return &InfoPanel{X: x, Y: y}
}

// Lines собирает строки панели.
func (p *InfoPanel) Lines(w *app.World) []string {
	lines := w.SearchSummary()
	if p.Message != "" {
		lines = append(lines, p.Message)
	}
	lines = append(lines, "Space: step/follow  F: finish  Wheel: zoom  WASD: scroll")
	return lines
}

func (p *InfoPanel) Draw(screen *ebiten.Image, w *app.World) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 2
	for i, line := range p.Lines(w) {
		text.Draw(screen, line, face, p.X, p.Y+i*lineHeight, config.TextLightColor)
	}
}
