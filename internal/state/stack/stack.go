// internal/state/stack/stack.go
package stack

// Scene — то, что умеет входить и выходить; рисование и обновление
// остаются за вызывающим пакетом.
type Scene interface {
	Enter()
	Exit()
}

// Stack хранит сцены: верхняя активна, нижние заморожены.
// Замороженная сцена не получает ни Exit, ни повторного Enter.
type Stack[S Scene] struct {
	scenes []S
}

// Len — глубина стека
func (s *Stack[S]) Len() int {
	return len(s.scenes)
}

// Top возвращает активную сцену.
func (s *Stack[S]) Top() (S, bool) {
	return s.at(len(s.scenes) - 1)
}

// Below возвращает сцену под активной (например, карту под паузой).
func (s *Stack[S]) Below() (S, bool) {
	return s.at(len(s.scenes) - 2)
}

func (s *Stack[S]) at(i int) (S, bool) {
	if i < 0 || i >= len(s.scenes) {
		var zero S
		return zero, false
	}
	return s.scenes[i], true
}

// Push кладёт сцену поверх текущей.
func (s *Stack[S]) Push(scene S) {
	s.scenes = append(s.scenes, scene)
	scene.Enter()
}

// Pop снимает активную сцену; под ней продолжает работу предыдущая.
// Последнюю сцену снять нельзя.
func (s *Stack[S]) Pop() bool {
	if len(s.scenes) < 2 {
		return false
	}
	top := s.scenes[len(s.scenes)-1]
	var zero S
	s.scenes[len(s.scenes)-1] = zero
	s.scenes = s.scenes[:len(s.scenes)-1]
	top.Exit()
	return true
}

// Replace закрывает все сцены сверху вниз и оставляет одну новую.
func (s *Stack[S]) Replace(scene S) {
	for i := len(s.scenes) - 1; i >= 0; i-- {
		s.scenes[i].Exit()
	}
	s.scenes = append(s.scenes[:0], scene)
	scene.Enter()
}
