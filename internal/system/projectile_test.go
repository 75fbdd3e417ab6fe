package system

import (
	"testing"

	"go-wasnowl/internal/entity"
	"go-wasnowl/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectileSystemRequiresDependencies(t *testing.T) {
	_, err := NewProjectileSystem(nil, entity.NewProjectilePool(), nil)
	assert.ErrorIs(t, err, ErrMissingDependency)
	_, err = NewProjectileSystem(entity.NewList[*entity.Projectile](), nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestProjectileSystemReleasesFinished(t *testing.T) {
	list := entity.NewList[*entity.Projectile]()
	pool := entity.NewProjectilePool()
	sys, err := NewProjectileSystem(list, pool, nil)
	require.NoError(t, err)

	target := staticEnemy(geom.V(3, 0), 100)
	enemies := entity.NewList[*entity.Enemy]()
	enemies.Add(target)
	list.Add(pool.Acquire(geom.V(0, 0), target, simpleType, enemies))

	sys.Update(1.0 / 60)

	assert.Equal(t, 0, sys.ActiveCount())
	assert.Equal(t, 1, pool.Available())
	assert.Equal(t, 75.0, target.Health.Current)
}

func TestProjectileSystemClear(t *testing.T) {
	list := entity.NewList[*entity.Projectile]()
	pool := entity.NewProjectilePool()
	sys, err := NewProjectileSystem(list, pool, nil)
	require.NoError(t, err)

	target := staticEnemy(geom.V(500, 0), 100)
	enemies := entity.NewList[*entity.Enemy]()
	enemies.Add(target)
	list.Add(pool.Acquire(geom.V(0, 0), target, simpleType, enemies))
	list.Add(pool.Acquire(geom.V(0, 10), target, simpleType, enemies))

	sys.Update(1.0 / 60)
	require.Equal(t, 2, sys.ActiveCount())

	sys.Clear()
	assert.Equal(t, 0, sys.ActiveCount())
	assert.Equal(t, 2, pool.Available())
	assert.Equal(t, 2, pool.Created())
}

func TestCombatSystemUpdatesTowers(t *testing.T) {
	world := entity.NewWorld()
	pool := entity.NewProjectilePool()
	tower, err := entity.NewTowerBuilder().
		WithEnemies(world.Enemies).
		WithProjectiles(world.Projectiles).
		WithPool(pool).
		WithProjectileType(simpleType).
		Build()
	require.NoError(t, err)
	world.Towers.Add(tower)
	world.Enemies.Add(staticEnemy(geom.V(100, 0), 100))

	NewCombatSystem(world.Towers).Update(1.0 / 60)
	assert.Equal(t, 1, world.Projectiles.Len())
}
