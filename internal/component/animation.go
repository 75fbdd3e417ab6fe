// internal/component/animation.go
package component

import "github.com/hajimehoshi/ebiten/v2"

// Animation — последовательность кадров с фиксированной длительностью кадра.
type Animation struct {
	Frames        []*ebiten.Image
	FrameDuration float64
	Loop          bool
}

// NewAnimation возвращает nil, если кадров нет: отсутствующая анимация не ошибка.
func NewAnimation(frames []*ebiten.Image, frameDuration float64, loop bool) *Animation {
	if len(frames) == 0 {
		return nil
	}
	return &Animation{Frames: frames, FrameDuration: frameDuration, Loop: loop}
}

// Duration — длительность одного прохода.
func (a *Animation) Duration() float64 {
	if a == nil {
		return 0
	}
	return float64(len(a.Frames)) * a.FrameDuration
}

// IsFinished — нецикличная анимация проиграна до конца. Отсутствующая анимация считается законченной.
func (a *Animation) IsFinished(stateTime float64) bool {
	if a == nil || len(a.Frames) == 0 {
		return true
	}
	if a.Loop {
		return false
	}
	return stateTime >= a.Duration()
}

// FrameIndex — номер кадра для момента stateTime.
func (a *Animation) FrameIndex(stateTime float64) int {
	if a == nil || len(a.Frames) == 0 {
		return -1
	}
	if a.FrameDuration <= 0 {
		return 0
	}
	i := int(stateTime / a.FrameDuration)
	if a.Loop {
		return i % len(a.Frames)
	}
	if i >= len(a.Frames) {
		return len(a.Frames) - 1
	}
	return i
}

// Frame — кадр для момента stateTime, nil если кадров нет.
func (a *Animation) Frame(stateTime float64) *ebiten.Image {
	i := a.FrameIndex(stateTime)
	if i < 0 {
		return nil
	}
	return a.Frames[i]
}
