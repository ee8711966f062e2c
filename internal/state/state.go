// internal/state/state.go
package state

import (
	"go-hexpath/internal/state/stack"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — экран приложения: заставка, карта или пауза
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine обновляет верхний экран стека. Пауза кладётся поверх
// карты, и карта не теряет подписки и камеру.
type StateMachine struct {
	stack.Stack[State]
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает все экраны и открывает newState
func (sm *StateMachine) SetState(newState State) {
	sm.Replace(newState)
}

// Update обновляет только верхний экран
func (sm *StateMachine) Update(deltaTime float64) {
	if top, ok := sm.Top(); ok {
		top.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if top, ok := sm.Top(); ok {
		top.Draw(screen)
	}
}
