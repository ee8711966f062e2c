// internal/state/pause_state.go
package state

import (
	"image/color"
	"log"

	"go-hexpath/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState лежит поверх карты и рисует её под затемнением.
type PauseState struct {
	stateMachine *StateMachine
}

// pauseKeys ставят игру на паузу и снимают с неё
var pauseKeys = keysByName(config.PauseKeys)

func keysByName(names []string) []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			log.Printf("unknown key %q: %v", name, err)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func pausePressed() bool {
	for _, k := range pauseKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func NewPauseState(sm *StateMachine) *PauseState {
	return &PauseState{stateMachine: sm}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if below, ok := s.stateMachine.Below(); ok {
		below.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)

	label := "PAUSED"
	x := (config.ScreenWidth - len(label)*config.TextCharWidth) / 2
	text.Draw(screen, label, basicfont.Face7x13, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
