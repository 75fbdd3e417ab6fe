package system

import (
	"testing"

	"go-wasnowl/internal/event"
	"go-wasnowl/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardTextFloatsAndExpires(t *testing.T) {
	d := event.NewDispatcher()
	s := NewVisualEffectSystem(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{Position: geom.V(100, 100), Reward: 3}})
	require.Len(t, s.Texts(), 1)
	txt := s.Texts()[0]
	assert.Equal(t, "+3", txt.Text)

	s.Update(0.4)
	assert.Less(t, txt.Position().Y, 100.0)
	assert.Less(t, txt.Alpha(), float32(1))
	require.Len(t, s.Texts(), 1)

	s.Update(0.5)
	assert.True(t, txt.Finished())
	assert.Empty(t, s.Texts())
}

func TestNoTextWithoutReward(t *testing.T) {
	d := event.NewDispatcher()
	s := NewVisualEffectSystem(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{Reward: 0}})
	assert.Empty(t, s.Texts())
}
