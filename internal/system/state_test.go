package system

import (
	"testing"

	"go-wasnowl/internal/component"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/event"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeGameContext struct {
	wavesLeft int
	started   int
	cleared   int
}

func (f *fakeGameContext) StartWave() bool {
	if f.wavesLeft == 0 {
		return false
	}
	f.wavesLeft--
	f.started++
	return true
}

func (f *fakeGameContext) ClearProjectiles() { f.cleared++ }

func TestPhaseSwitching(t *testing.T) {
	world := entity.NewWorld()
	ctx := &fakeGameContext{wavesLeft: 1}
	d := event.NewDispatcher()
	ps := NewPhaseSystem(world, ctx, d, zerolog.Nop())

	assert.Equal(t, component.BuildPhase, ps.Current())

	assert.True(t, ps.SwitchToWaveState())
	assert.Equal(t, component.WavePhase, ps.Current())
	assert.False(t, ps.SwitchToWaveState(), "wave already running")
	assert.Equal(t, 1, ctx.started)

	d.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: 1}})
	assert.Equal(t, component.BuildPhase, ps.Current())
	assert.Equal(t, 1, ctx.cleared)

	assert.False(t, ps.SwitchToWaveState(), "no waves left")
	assert.Equal(t, component.BuildPhase, ps.Current())
}
