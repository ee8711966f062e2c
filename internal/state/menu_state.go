// internal/state/menu_state.go
package state

import (
	"go-hexpath/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — заставка перед картой
type MenuState struct {
	sm   *StateMachine
	next func() State
}

// NewMenuState создаёт заставку; next строит состояние, в которое
// переходим по пробелу.
func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"Hexagonal pathfinding",
		"",
		"Dijkstra's, Greedy and A-Star on an offset hex grid",
		"Press Space to start",
	}
	for i, line := range lines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		y := config.ScreenHeight/2 - 40 + i*20
		text.Draw(screen, line, face, x, y, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
