package entity

import (
	"testing"

	"go-wasnowl/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flyUntilDead обновляет снаряд, пока он не исчезнет.
func flyUntilDead(t *testing.T, p *Projectile) {
	t.Helper()
	for i := 0; i < 10000 && !p.IsDead(); i++ {
		p.Update(1.0 / 60)
	}
	require.True(t, p.IsDead())
}

func TestProjectileSingleTarget(t *testing.T) {
	target := staticEnemy(geom.V(100, 0), 100)
	bystander := staticEnemy(geom.V(102, 0), 100)
	enemies := enemyList(target, bystander)

	p := NewProjectilePool().Acquire(geom.V(0, 0), target, simpleType, enemies)
	flyUntilDead(t, p)

	assert.Equal(t, 75.0, target.Health.Current)
	assert.Equal(t, 100.0, bystander.Health.Current)
}

func TestProjectileTracksMovingTarget(t *testing.T) {
	target := NewEnemy(0, EnemySpec{
		Start:     geom.V(100, 0),
		Path:      []geom.Vec2{geom.V(100, 300)},
		Speed:     50,
		MaxHealth: 100,
	}, nopLog)
	p := NewProjectilePool().Acquire(geom.V(0, 0), target, simpleType, enemyList(target))

	for i := 0; i < 10000 && !p.IsDead(); i++ {
		target.Update(1.0 / 60)
		p.Update(1.0 / 60)
	}
	assert.Equal(t, 75.0, target.Health.Current)
}

func TestProjectileAOEDamagesEnemiesWithinRadius(t *testing.T) {
	target := staticEnemy(geom.V(100, 100), 100)
	near := staticEnemy(geom.V(108, 100), 100)
	edge := staticEnemy(geom.V(100, 110), 100)
	far := staticEnemy(geom.V(120, 100), 100)
	dying := staticEnemy(geom.V(101, 100), 100)
	dying.TakeDamage(100)

	enemies := enemyList(target, near, edge, far, dying)
	p := NewProjectilePool().Acquire(geom.V(100, 100), target, aoeType, enemies)
	p.Update(1.0 / 60)

	require.True(t, p.IsDead())
	assert.Equal(t, 60.0, target.Health.Current)
	assert.Equal(t, 60.0, near.Health.Current)
	assert.Equal(t, 60.0, edge.Health.Current)
	assert.Equal(t, 100.0, far.Health.Current)
	assert.Equal(t, 0.0, dying.Health.Current)
}

func TestProjectileAOEWithoutListHitsTarget(t *testing.T) {
	target := staticEnemy(geom.V(0, 0), 100)
	p := NewProjectilePool().Acquire(geom.V(0, 0), target, aoeType, nil)
	p.Update(1.0 / 60)
	assert.Equal(t, 60.0, target.Health.Current)
}

func TestProjectileDropsDeadTarget(t *testing.T) {
	target := staticEnemy(geom.V(100, 0), 100)
	other := staticEnemy(geom.V(110, 0), 100)
	p := NewProjectilePool().Acquire(geom.V(0, 0), target, simpleType, enemyList(target, other))

	target.TakeDamage(100)
	p.Update(1.0 / 60)

	assert.True(t, p.IsDead())
	assert.Equal(t, 100.0, other.Health.Current)

	nilTarget := NewProjectilePool().Acquire(geom.V(0, 0), nil, simpleType, nil)
	nilTarget.Update(1.0 / 60)
	assert.True(t, nilTarget.IsDead())
}

func TestRicochetBouncesAtMostThreeTimes(t *testing.T) {
	var line []*Enemy
	for i := 0; i < 6; i++ {
		line = append(line, staticEnemy(geom.V(float64(i)*50, 0), 100))
	}
	enemies := enemyList(line...)

	p := NewProjectilePool().Acquire(geom.V(0, 0), line[0], ricochetType, enemies)
	flyUntilDead(t, p)

	for i := 0; i < 4; i++ {
		assert.Equal(t, 80.0, line[i].Health.Current, "enemy %d struck exactly once", i)
	}
	assert.Equal(t, 100.0, line[4].Health.Current)
	assert.Equal(t, 100.0, line[5].Health.Current)
	assert.Equal(t, 0, p.BouncesRemaining())
}

func TestRicochetNeverStrikesTwice(t *testing.T) {
	a := staticEnemy(geom.V(0, 0), 100)
	b := staticEnemy(geom.V(40, 0), 100)
	p := NewProjectilePool().Acquire(geom.V(0, 0), a, ricochetType, enemyList(a, b))
	flyUntilDead(t, p)

	assert.Equal(t, 80.0, a.Health.Current)
	assert.Equal(t, 80.0, b.Health.Current)
}

func TestRicochetIgnoresEnemiesOutOfRange(t *testing.T) {
	a := staticEnemy(geom.V(0, 0), 100)
	b := staticEnemy(geom.V(150, 0), 100)
	p := NewProjectilePool().Acquire(geom.V(0, 0), a, ricochetType, enemyList(a, b))
	flyUntilDead(t, p)

	assert.Equal(t, 80.0, a.Health.Current)
	assert.Equal(t, 100.0, b.Health.Current)
}

func TestRicochetRetargetsWhenTargetDies(t *testing.T) {
	a := staticEnemy(geom.V(200, 0), 100)
	b := staticEnemy(geom.V(60, 0), 100)
	p := NewProjectilePool().Acquire(geom.V(0, 0), a, ricochetType, enemyList(a, b))

	p.Update(1.0 / 60)
	a.TakeDamage(100)
	p.Update(1.0 / 60)

	require.False(t, p.IsDead())
	assert.Same(t, b, p.Target())
	assert.Equal(t, 3, p.BouncesRemaining())
}
