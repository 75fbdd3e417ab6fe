// internal/state/gameover_state.go
package state

import (
	"fmt"

	"go-wasnowl/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — итог партии: поражение или победа.
type GameOverState struct {
	sm       *StateMachine
	res      *Resources
	wave     int
	bestWave int
	victory  bool
}

func NewGameOverState(sm *StateMachine, res *Resources, wave, bestWave int, victory bool) *GameOverState {
	return &GameOverState{sm: sm, res: res, wave: wave, bestWave: bestWave, victory: victory}
}

func (s *GameOverState) Enter() {
	s.res.Log.Info().Int("wave", s.wave).Bool("victory", s.victory).Msg("showing results")
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		gs, err := NewGameState(s.sm, s.res)
		if err != nil {
			s.res.Log.Error().Err(err).Msg("failed to restart game")
			return
		}
		s.sm.SetState(gs)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.res))
	}
}

func (s *GameOverState) Title() string {
	if s.victory {
		return "VICTORY"
	}
	return "GAME OVER"
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	titleColor := config.WaveStateColor
	if s.victory {
		titleColor = config.RewardTextColor
	}
	drawCenteredText(screen, s.res.BigFont, s.Title(), config.ScreenHeight/2-40, titleColor)
	drawCenteredText(screen, s.res.Font, fmt.Sprintf("Wave reached: %d   Best: %d", s.wave, s.bestWave), config.ScreenHeight/2, config.TextLightColor)
	drawCenteredText(screen, s.res.Font, "Space: play again   Esc: menu", config.ScreenHeight/2+30, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
