package app

import (
	"testing"

	"go-wasnowl/internal/component"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/event"
	"go-wasnowl/internal/level"
	"go-wasnowl/internal/system"
	"go-wasnowl/pkg/geom"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore map[string][]byte

func (m memoryStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memoryStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Catalog == nil {
		c, err := defs.DefaultCatalog()
		require.NoError(t, err)
		opts.Catalog = c
	}
	opts.Seed = 7
	opts.Log = zerolog.Nop()
	g, err := NewGame(opts)
	require.NoError(t, err)
	return g
}

func TestNewGameRequiresCatalog(t *testing.T) {
	_, err := NewGame(Options{})
	assert.ErrorIs(t, err, ErrMissingCatalog)
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, Options{})

	assert.Equal(t, 50, g.Currency.Balance())
	assert.Equal(t, 100, g.Lives.Current())
	assert.Equal(t, component.BuildPhase, g.Phase())
	assert.Equal(t, 0, g.Wave())
	assert.Equal(t, 3, g.TotalWaves())
	assert.Equal(t, geom.V(400, 300), g.Player.Position())
}

func TestPlaceTower(t *testing.T) {
	g := newTestGame(t, Options{})
	var placed []event.TowerData
	g.Dispatcher.Subscribe(event.TowerPlaced, event.ListenerFunc(func(e event.Event) {
		placed = append(placed, e.Data.(event.TowerData))
	}))

	tower, err := g.PlaceTower(defs.TowerSimple, geom.V(100, 100))
	require.NoError(t, err)
	assert.Equal(t, 40, g.Currency.Balance())
	assert.Equal(t, 1, g.World.Towers.Len())
	assert.Equal(t, 200.0, tower.Range)
	assert.Equal(t, 1.5, tower.FireRate)
	assert.Equal(t, entity.VariantStandard, tower.Variant)
	require.Len(t, placed, 1)
	assert.Equal(t, 10, placed[0].Cost)

	ricochet, err := g.PlaceTower(defs.TowerRicochet, geom.V(300, 100))
	require.NoError(t, err)
	assert.Equal(t, entity.VariantRicochet, ricochet.Variant)
	assert.True(t, ricochet.ShotType().IsRicochet())
	assert.Equal(t, 10, g.Currency.Balance())
}

func TestPlaceTowerRejections(t *testing.T) {
	l := level.Default(800, 600)
	l.Solids = []geom.Rect{{X: 500, Y: 500, W: 32, H: 32}}
	g := newTestGame(t, Options{Level: l, StartingBalance: 25})

	_, err := g.PlaceTower(defs.TowerSimple, geom.V(100, 100))
	require.NoError(t, err)

	_, err = g.PlaceTower(defs.TowerSimple, geom.V(120, 100))
	assert.ErrorIs(t, err, ErrTooClose)

	_, err = g.PlaceTower(defs.TowerSimple, geom.V(510, 510))
	assert.ErrorIs(t, err, ErrBlocked)

	_, err = g.PlaceTower(defs.TowerSimple, geom.V(-5, 100))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = g.PlaceTower(defs.TowerAOE, geom.V(200, 200))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 15, g.Currency.Balance())

	_, err = g.PlaceTower("LASER", geom.V(200, 200))
	assert.ErrorIs(t, err, defs.ErrUnknownTower)

	assert.Equal(t, 1, g.World.Towers.Len())
}

func TestWavePhaseCycle(t *testing.T) {
	g := newTestGame(t, Options{})

	require.True(t, g.StartNextWave())
	assert.Equal(t, component.WavePhase, g.Phase())
	assert.Equal(t, 1, g.Wave())
	assert.False(t, g.StartNextWave(), "wave already running")

	// Побеждаем волну вручную: добиваем каждого появившегося врага.
	for i := 0; i < 1000 && g.Phase() == component.WavePhase; i++ {
		g.Update(0.1)
		for _, e := range g.World.Enemies.Items() {
			e.TakeDamage(1000)
		}
	}
	assert.Equal(t, component.BuildPhase, g.Phase())
	assert.Greater(t, g.Currency.Balance(), 50)
	assert.Equal(t, 0, g.ProjectileSystem.ActiveCount())
}

func TestGameOverRecordsBestWave(t *testing.T) {
	l := level.Default(800, 600)
	l.Path = []geom.Vec2{geom.V(10, 10), geom.V(10, 10)}
	store := memoryStore{}
	g := newTestGame(t, Options{
		Level:      l,
		BaseHealth: 1,
		Progress:   system.NewProgressStore(store, zerolog.Nop()),
	})
	gameOver := 0
	g.Dispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { gameOver++ }))

	require.True(t, g.StartNextWave())
	g.Update(1.5)
	g.Update(0.1)

	assert.True(t, g.IsGameOver())
	assert.Equal(t, 0, g.Lives.Current())
	assert.Equal(t, 1, gameOver)
	assert.Equal(t, 1, g.BestWave())
	assert.False(t, g.StartNextWave())

	_, err := g.PlaceTower(defs.TowerSimple, geom.V(100, 100))
	assert.ErrorIs(t, err, ErrGameOver)

	again := newTestGame(t, Options{Progress: system.NewProgressStore(store, zerolog.Nop())})
	assert.Equal(t, 1, again.BestWave())
}

func TestTowerKindAt(t *testing.T) {
	g := newTestGame(t, Options{})
	kind, ok := g.TowerKindAt(2)
	assert.True(t, ok)
	assert.Equal(t, defs.TowerRicochet, kind)
	_, ok = g.TowerKindAt(3)
	assert.False(t, ok)
}

func TestBalanceChangedEvents(t *testing.T) {
	g := newTestGame(t, Options{})
	var balances []int
	g.Dispatcher.Subscribe(event.BalanceChanged, event.ListenerFunc(func(e event.Event) {
		balances = append(balances, e.Data.(event.BalanceData).Balance)
	}))

	_, err := g.PlaceTower(defs.TowerSimple, geom.V(100, 100))
	require.NoError(t, err)
	assert.Equal(t, []int{40}, balances)

	require.True(t, g.StartNextWave())
	for i := 0; i < 1000 && g.Phase() == component.WavePhase; i++ {
		g.Update(0.1)
		for _, e := range g.World.Enemies.Items() {
			e.TakeDamage(1000)
		}
	}
	require.Greater(t, len(balances), 1)
	assert.Equal(t, g.Currency.Balance(), balances[len(balances)-1])
}

func TestPlayerSpawnAvoidsSolids(t *testing.T) {
	l := level.Default(800, 600)
	wall := geom.Rect{X: 350, Y: 250, W: 100, H: 100}
	l.Solids = []geom.Rect{wall}
	g := newTestGame(t, Options{Level: l})

	assert.False(t, wall.Intersects(g.Player.Bounds()))
}

func TestEnterPortal(t *testing.T) {
	g := newTestGame(t, Options{})
	var entered []level.Portal
	g.Dispatcher.Subscribe(event.PortalEntered, event.ListenerFunc(func(e event.Event) {
		entered = append(entered, e.Data.(event.PortalData).Portal)
	}))

	_, ok := g.TakePortal()
	assert.False(t, ok)

	g.enterPortal(level.Portal{Target: "combat/SideBoss", Kind: level.PortalCombat})
	_, ok = g.TakePortal()
	assert.False(t, ok, "combat portals do not change the map")

	g.enterPortal(level.Portal{Target: "maps/next.tmx", Kind: level.PortalMap})
	p, ok := g.TakePortal()
	require.True(t, ok)
	assert.Equal(t, "maps/next.tmx", p.Target)
	_, ok = g.TakePortal()
	assert.False(t, ok)

	assert.Len(t, entered, 2)
}

func TestPlayerWalksIntoPortal(t *testing.T) {
	l := level.Default(800, 600)
	l.Portals = []level.Portal{{Bounds: geom.Rect{X: 450, Y: 280, W: 40, H: 40}, Target: "maps/next.tmx", Kind: level.PortalMap}}
	g := newTestGame(t, Options{Level: l})

	g.Player.Intent = component.MoveIntent{X: 1}
	for i := 0; i < 10; i++ {
		g.Update(0.1)
	}
	p, ok := g.TakePortal()
	require.True(t, ok)
	assert.Equal(t, "maps/next.tmx", p.Target)
}
