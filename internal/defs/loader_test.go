package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	simple, err := c.Projectile(ProjectileSimple)
	require.NoError(t, err)
	assert.Equal(t, 25.0, simple.Damage())
	assert.Equal(t, 200.0, simple.Speed())
	assert.Equal(t, 5.0, simple.ExplosionRadius())
	assert.False(t, simple.IsAOE())

	aoe, err := c.Projectile(ProjectileAOE)
	require.NoError(t, err)
	assert.Equal(t, 40.0, aoe.Damage())
	assert.Equal(t, 180.0, aoe.Speed())
	assert.Equal(t, 10.0, aoe.ExplosionRadius())
	assert.True(t, aoe.IsAOE())

	ricochet, err := c.Projectile(ProjectileRicochet)
	require.NoError(t, err)
	assert.True(t, ricochet.IsRicochet())
	assert.False(t, ricochet.IsAOE())
}

func TestCatalogSharesProjectileInstances(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	a, _ := c.Projectile(ProjectileAOEStrong)
	b, _ := c.Projectile(ProjectileAOEStrong)
	assert.Same(t, a, b)
}

func TestCatalogTowers(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	tests := []struct {
		id         TowerKind
		cost       int
		projectile ProjectileKind
	}{
		{TowerSimple, 10, ProjectileSimple},
		{TowerAOE, 20, ProjectileAOEStrong},
		{TowerRicochet, 30, ProjectileRicochet},
	}
	for _, tt := range tests {
		tower, err := c.Tower(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.cost, tower.Cost)
		assert.Equal(t, tt.projectile, tower.Projectile)
	}

	_, err = c.Tower("LASER")
	assert.ErrorIs(t, err, ErrUnknownTower)
}

func TestCatalogRewardAndLifeDamage(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	for id := 1; id <= 4; id++ {
		assert.Equal(t, id, c.Reward(id))
		assert.Equal(t, id, c.LifeDamage(id))
	}
	assert.Equal(t, 0, c.Reward(99))
	assert.Equal(t, 1, c.LifeDamage(99))
	assert.Equal(t, 0, c.Reward(-1))
}

func TestCatalogWaves(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	waves := c.Waves()
	require.Len(t, waves, 3)
	assert.Equal(t, 12, waves[0].Size())
	assert.Equal(t, 10, waves[1].Size())
	assert.Equal(t, 15, waves[2].Size())
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"broken yaml", "projectiles: [\n"},
		{"unknown kind", "projectiles:\n  - {kind: LASER, speed: 1}\n"},
		{"missing kinds", "projectiles:\n  - {kind: SIMPLE, speed: 1}\nwaves:\n  - count: 1\n    enemies: [{enemy: 1, weight: 1}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalog_BadTower(t *testing.T) {
	data := string(defaultDefs) + "\n"
	c, err := ParseCatalog([]byte(data))
	require.NoError(t, err)

	c.towers = append(c.towers, TowerType{ID: "BROKEN", Projectile: ProjectileSimple, FireRate: 0})
	assert.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
}

func TestLoadCatalog_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	require.NoError(t, os.WriteFile(path, defaultDefs, 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, c.Towers(), 3)

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
