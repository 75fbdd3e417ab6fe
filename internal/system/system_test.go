package system

import (
	"testing"

	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/economy"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/event"
	"go-wasnowl/internal/utils"
	"go-wasnowl/pkg/geom"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fixedPath всегда отдаёт один и тот же маршрут.
type fixedPath []geom.Vec2

func (p fixedPath) ForWave(int) PathStrategy {
	return NewWaypointPath("test", p)
}

type waveFixture struct {
	world      *entity.World
	currency   *economy.CurrencyManager
	dispatcher *event.Dispatcher
	waves      *WaveSystem
	events     []event.Event
}

func newWaveFixture(t *testing.T, paths PathSelector) *waveFixture {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	require.NoError(t, err)

	f := &waveFixture{
		world:      entity.NewWorld(),
		currency:   economy.NewCurrencyManager(50),
		dispatcher: event.NewDispatcher(),
	}
	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	for _, et := range []event.EventType{event.WaveStarted, event.WaveCleared, event.EnemyKilled, event.EnemyReachedEnd} {
		f.dispatcher.Subscribe(et, record)
	}

	f.waves, err = NewWaveSystem(WaveConfig{
		World:      f.world,
		Catalog:    catalog,
		Currency:   f.currency,
		Paths:      paths,
		RNG:        utils.NewPRNGService(42),
		Dispatcher: f.dispatcher,
		Log:        zerolog.Nop(),
	})
	require.NoError(t, err)
	return f
}

func (f *waveFixture) eventsOf(et event.EventType) []event.Event {
	var out []event.Event
	for _, e := range f.events {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}

// staticEnemy создаёт неподвижного врага в точке pos.
func staticEnemy(pos geom.Vec2, hp float64) *entity.Enemy {
	return entity.NewEnemy(0, entity.EnemySpec{
		TypeID:    1,
		Start:     pos,
		Path:      []geom.Vec2{pos.Add(geom.V(10000, 0))},
		MaxHealth: hp,
	}, zerolog.Nop())
}

var simpleType = defs.NewProjectileType(defs.ProjectileSimple, 25, 200, 5, false, 14)
