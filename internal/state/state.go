// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры: меню, партия, пауза или итог.
// Enter и Exit вызываются при смене экрана, Update и Draw — каждый кадр.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран. Пустая машина ничего не делает.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает текущий экран и открывает новый: меню → партия,
// партия → пауза или итог, портал → партия на другой карте.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

// Resume возвращает партию из паузы. Enter не вызывается: партия продолжается с того же кадра.
func (sm *StateMachine) Resume(prev State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = prev
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
