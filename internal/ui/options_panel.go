// internal/ui/options_panel.go
package ui

import (
	"fmt"
	"image"

	"go-hexpath/internal/app"
	"go-hexpath/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// OptionAction — что выбрал пользователь на панели.
type OptionAction int

const (
	ActionNone OptionAction = iota
	ActionAlgorithm
	ActionStyle
	ActionObstacles
	ActionRegenerate
	ActionTheme
)

// OptionsPanel — колонка кнопок настроек в левом верхнем углу.
type OptionsPanel struct {
	buttons []*Button
	actions []OptionAction
}

func NewOptionsPanel() *OptionsPanel {
	p := &OptionsPanel{}
	for i, action := range []OptionAction{ActionAlgorithm, ActionStyle, ActionObstacles, ActionRegenerate, ActionTheme} {
		y := config.ButtonMargin + i*(config.ButtonHeight+config.ButtonMargin)
		rect := image.Rect(config.ButtonMargin, y, config.ButtonMargin+config.ButtonWidth, y+config.ButtonHeight)
		p.buttons = append(p.buttons, NewButton(rect, ""))
		p.actions = append(p.actions, action)
	}
	return p
}

// Sync обновляет подписи и доступность кнопок по состоянию мира.
// Тема не влияет на поиск и меняется всегда.
func (p *OptionsPanel) Sync(w *app.World, theme string) {
	allowed := w.OptionsAllowed()
	for i, b := range p.buttons {
		switch p.actions[i] {
		case ActionAlgorithm:
			b.Text = fmt.Sprintf("Algorithm: %s", w.Session.Algorithm)
			b.Enabled = allowed
		case ActionStyle:
			b.Text = fmt.Sprintf("Style: %s", w.Session.Style)
			b.Enabled = allowed
		case ActionObstacles:
			b.Text = fmt.Sprintf("Obstacles: %s", w.ObstacleFrequency)
			b.Enabled = allowed
		case ActionRegenerate:
			b.Text = "Regenerate"
			b.Enabled = allowed
		case ActionTheme:
			b.Text = fmt.Sprintf("Theme: %s", theme)
			b.Enabled = true
		}
	}
}

// Contains сообщает, что курсор над панелью, чтобы клик не ушёл на карту.
func (p *OptionsPanel) Contains(x, y int) bool {
	for _, b := range p.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Click возвращает действие нажатой кнопки.
func (p *OptionsPanel) Click(x, y int, pressed bool) OptionAction {
	for i, b := range p.buttons {
		if b.IsClicked(x, y, pressed) {
			return p.actions[i]
		}
	}
	return ActionNone
}

func (p *OptionsPanel) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	for _, b := range p.buttons {
		b.Draw(screen, mouseX, mouseY)
	}
}
