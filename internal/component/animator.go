// internal/component/animator.go
package component

// AnimState — состояние анимации врага.
type AnimState int

const (
	AnimWalk AnimState = iota
	AnimWalk2
	AnimDeath
	AnimDead
)

func (s AnimState) String() string {
	switch s {
	case AnimWalk:
		return "WALK"
	case AnimWalk2:
		return "WALK2"
	case AnimDeath:
		return "DEATH"
	case AnimDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Animator — конечный автомат анимаций врага. DEAD — терминальное состояние.
type Animator struct {
	state     AnimState
	StateTime float64
	Walk      *Animation
	Walk2     *Animation // подгружается лениво
	Death     *Animation
}

func NewAnimator(walk, death *Animation) *Animator {
	return &Animator{state: AnimWalk, Walk: walk, Death: death}
}

func (a *Animator) State() AnimState {
	return a.state
}

// SetState переключает состояние и сбрасывает время. Из DEAD выйти нельзя.
// Возвращает true, если состояние изменилось.
func (a *Animator) SetState(s AnimState) bool {
	if a.state == AnimDead || a.state == s {
		return false
	}
	a.state = s
	a.StateTime = 0
	return true
}

func (a *Animator) Update(deltaTime float64) {
	a.StateTime += deltaTime
}

// Current — анимация текущего состояния (nil для DEAD или если не загружена).
func (a *Animator) Current() *Animation {
	switch a.state {
	case AnimWalk:
		return a.Walk
	case AnimWalk2:
		if a.Walk2 != nil {
			return a.Walk2
		}
		return a.Walk
	case AnimDeath:
		return a.Death
	default:
		return nil
	}
}

// DeathFinished — анимация смерти доиграна (или её нет).
func (a *Animator) DeathFinished() bool {
	return a.state == AnimDeath && a.Death.IsFinished(a.StateTime)
}
