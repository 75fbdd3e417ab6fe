package system

import (
	"testing"

	"go-wasnowl/internal/component"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/level"
	"go-wasnowl/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T, world *entity.World, pos geom.Vec2) *entity.Player {
	t.Helper()
	tower, err := entity.NewTowerBuilder().
		At(pos).
		WithEnemies(world.Enemies).
		WithProjectiles(world.Projectiles).
		WithPool(entity.NewProjectilePool()).
		WithProjectileType(simpleType).
		Build()
	require.NoError(t, err)
	return entity.NewPlayer(tower)
}

func TestPlayerMovesAtConfiguredSpeed(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(400, 400)
	player := newTestPlayer(t, world, geom.V(100, 100))
	sys := NewPlayerSystem(player, l, level.NewSpace(l, 16))

	player.Intent = component.MoveIntent{X: 1}
	sys.Update(0.5)

	assert.InDelta(t, 190.0, player.Position().X, 1e-9)
	assert.InDelta(t, 100.0, player.Position().Y, 1e-9)
}

func TestPlayerDiagonalIsNormalized(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(400, 400)
	player := newTestPlayer(t, world, geom.V(100, 100))
	sys := NewPlayerSystem(player, l, level.NewSpace(l, 16))

	player.Intent = component.MoveIntent{X: 1, Y: 1}
	sys.Update(0.1)

	assert.InDelta(t, 18.0, player.Position().Dist(geom.V(100, 100)), 1e-9)
}

func TestPlayerStopsAtWall(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(200, 200)
	l.Solids = []geom.Rect{{X: 100, Y: 0, W: 32, H: 200}}
	player := newTestPlayer(t, world, geom.V(50, 50))
	sys := NewPlayerSystem(player, l, level.NewSpace(l, 16))

	player.Intent = component.MoveIntent{X: 1}
	for i := 0; i < 10; i++ {
		sys.Update(0.1)
	}

	// Правый край тела упирается в стену.
	assert.InDelta(t, 100.0-player.Size/2, player.Position().X, 1e-9)
	assert.InDelta(t, 50.0, player.Position().Y, 1e-9)
}

func TestPlayerClampedToBounds(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(200, 200)
	player := newTestPlayer(t, world, geom.V(20, 20))
	sys := NewPlayerSystem(player, l, nil)

	player.Intent = component.MoveIntent{X: -1, Y: -1}
	sys.Update(1)

	assert.Equal(t, geom.V(player.Size/2, player.Size/2), player.Position())
}

func TestPlayerFiresLikeTower(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(400, 400)
	player := newTestPlayer(t, world, geom.V(100, 100))
	sys := NewPlayerSystem(player, l, level.NewSpace(l, 16))
	world.Enemies.Add(staticEnemy(geom.V(150, 100), 100))

	sys.Update(1.0 / 60)
	assert.Equal(t, 1, world.Projectiles.Len())
}

func TestPlayerSpawnInsideSolidIsMoved(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(400, 400)
	wall := geom.Rect{X: 150, Y: 150, W: 100, H: 100}
	l.Solids = []geom.Rect{wall}
	player := newTestPlayer(t, world, geom.V(200, 200))
	sys := NewPlayerSystem(player, l, level.NewSpace(l, 16))

	assert.False(t, wall.Intersects(player.Bounds()))
	assert.Equal(t, geom.V(104, 104), player.Position())

	// После переноса движение идёт в сторону ввода.
	player.Intent = component.MoveIntent{X: 1}
	for i := 0; i < 5; i++ {
		sys.Update(0.1)
		assert.False(t, wall.Intersects(player.Bounds()))
	}
	assert.InDelta(t, 194.0, player.Position().X, 1e-9)
	assert.InDelta(t, 104.0, player.Position().Y, 1e-9)
}

func TestPlayerEntersPortalOnce(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(400, 400)
	l.Portals = []level.Portal{{
		Bounds: geom.Rect{X: 200, Y: 80, W: 40, H: 40},
		Target: "maps/next.tmx",
		Kind:   level.PortalMap,
	}}
	player := newTestPlayer(t, world, geom.V(100, 100))
	sys := NewPlayerSystem(player, l, level.NewSpace(l, 16))

	var entered []level.Portal
	sys.OnPortal = func(p level.Portal) { entered = append(entered, p) }

	player.Intent = component.MoveIntent{X: 1}
	for i := 0; i < 4; i++ {
		sys.Update(0.1)
	}
	assert.Empty(t, entered)

	sys.Update(0.1)
	sys.Update(0.1)
	require.Len(t, entered, 1)
	assert.Equal(t, "maps/next.tmx", entered[0].Target)
	assert.Equal(t, level.PortalMap, entered[0].Kind)
}

func TestPlayerSpawnedInPortalDoesNotTeleport(t *testing.T) {
	world := entity.NewWorld()
	l := level.Default(400, 400)
	l.Portals = []level.Portal{{Bounds: geom.Rect{X: 80, Y: 80, W: 40, H: 40}, Target: "maps/next.tmx", Kind: level.PortalMap}}
	player := newTestPlayer(t, world, geom.V(100, 100))
	sys := NewPlayerSystem(player, l, nil)

	called := false
	sys.OnPortal = func(level.Portal) { called = true }
	sys.Update(0.1)
	assert.False(t, called)
}
