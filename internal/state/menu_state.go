// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-wasnowl/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm  *StateMachine
	res *Resources
	err error
}

func NewMenuState(sm *StateMachine, res *Resources) *MenuState {
	return &MenuState{sm: sm, res: res}
}

func (m *MenuState) Enter() {
	m.err = nil
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs, err := NewGameState(m.sm, m.res)
		if err != nil {
			m.res.Log.Error().Err(err).Msg("failed to start game")
			m.err = err
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCenteredText(screen, m.res.BigFont, "WASNOWL", config.ScreenHeight/2-40, config.TextLightColor)
	drawCenteredText(screen, m.res.Font, "Press Space to start", config.ScreenHeight/2+10, config.TextLightColor)
	if best := m.res.Progress.BestWave(); best > 0 {
		drawCenteredText(screen, m.res.Font, fmt.Sprintf("Best wave: %d", best), config.ScreenHeight/2+40, config.RewardTextColor)
	}
	if m.err != nil {
		drawCenteredText(screen, m.res.Font, m.err.Error(), config.ScreenHeight-40, config.WaveStateColor)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
