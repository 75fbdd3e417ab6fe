// internal/system/state.go
package system

import (
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/event"
	"go-wasnowl/internal/interfaces"

	"github.com/rs/zerolog"
)

// PhaseSystem переключает фазы BUILD и WAVE.
type PhaseSystem struct {
	world       *entity.World
	gameContext interfaces.GameContext
	log         zerolog.Logger
}

func NewPhaseSystem(world *entity.World, gameContext interfaces.GameContext, d *event.Dispatcher, log zerolog.Logger) *PhaseSystem {
	ps := &PhaseSystem{
		world:       world,
		gameContext: gameContext,
		log:         log,
	}
	if d != nil {
		d.Subscribe(event.WaveCleared, ps)
	}
	return ps
}

func (s *PhaseSystem) OnEvent(e event.Event) {
	if e.Type == event.WaveCleared {
		s.SwitchToBuildState()
	}
}

// SwitchToBuildState — волна закончилась, летящие снаряды больше не нужны.
func (s *PhaseSystem) SwitchToBuildState() {
	if s.world.Phase == component.BuildPhase {
		return
	}
	s.world.Phase = component.BuildPhase
	s.gameContext.ClearProjectiles()
	s.log.Debug().Msg("switched to build phase")
}

// SwitchToWaveState запускает следующую волну. Если волн больше нет, фаза не меняется.
func (s *PhaseSystem) SwitchToWaveState() bool {
	if s.world.Phase == component.WavePhase {
		return false
	}
	if !s.gameContext.StartWave() {
		return false
	}
	s.world.Phase = component.WavePhase
	s.log.Debug().Msg("switched to wave phase")
	return true
}

func (s *PhaseSystem) Current() component.GamePhase {
	return s.world.Phase
}
