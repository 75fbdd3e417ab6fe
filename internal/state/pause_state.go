// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-wasnowl/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var pauseOverlay = color.RGBA{0, 0, 0, 128}

// PauseState замораживает игру: предыдущее состояние рисуется, но не обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	res           *Resources
}

func NewPauseState(sm *StateMachine, prevState State, res *Resources) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		res:           res,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.Resume(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, pauseOverlay, false)
	drawCenteredText(screen, s.res.BigFont, "PAUSED", config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
