// internal/entity/tower.go
package entity

import (
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/types"
	"go-wasnowl/pkg/geom"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TowerVariant — вариант поведения башни.
type TowerVariant int

const (
	VariantStandard TowerVariant = iota
	VariantRicochet              // всегда стреляет рикошетом
)

// Tower — неподвижная (или ведомая игроком) турель.
// Списки врагов и снарядов, как и пул, принадлежат миру; башня лишь ссылается на них.
type Tower struct {
	ID       types.EntityID
	Position geom.Vec2
	Range    float64
	FireRate float64 // выстрелов в секунду
	Variant  TowerVariant
	Type     *defs.TowerType // nil для башен, созданных не из каталога (игрок)
	Sprite   *component.Animation
	Color    color.RGBA

	cooldown     float64
	stateTime    float64
	projectile   *defs.ProjectileType
	ricochetType *defs.ProjectileType
	enemies      *List[*Enemy]
	projectiles  *List[*Projectile]
	pool         *ProjectilePool
}

// Update уменьшает перезарядку и стреляет по первой подходящей цели.
func (t *Tower) Update(deltaTime float64) {
	t.stateTime += deltaTime
	t.cooldown -= deltaTime
	if t.FireRate <= 0 {
		return
	}

	target := t.FindTarget()
	if target != nil && t.cooldown <= 0 {
		t.shoot(target)
		t.cooldown = 1.0 / t.FireRate
	}
}

// FindTarget возвращает первого живого врага в радиусе, в порядке списка.
func (t *Tower) FindTarget() *Enemy {
	for _, e := range t.enemies.Items() {
		if e.IsAlive() && e.Position().Dist(t.Position) <= t.Range {
			return e
		}
	}
	return nil
}

func (t *Tower) shoot(target *Enemy) {
	p := t.pool.Acquire(t.Position, target, t.ShotType(), t.enemies)
	t.projectiles.Add(p)
}

// ShotType — вид снаряда следующего выстрела.
func (t *Tower) ShotType() *defs.ProjectileType {
	if t.Variant == VariantRicochet {
		return t.ricochetType
	}
	return t.projectile
}

// Cooldown — оставшееся время перезарядки (может быть отрицательным, пока нет цели).
func (t *Tower) Cooldown() float64 {
	return t.cooldown
}

// Cost — стоимость постройки, 0 для башен вне каталога.
func (t *Tower) Cost() int {
	if t.Type == nil {
		return 0
	}
	return t.Type.Cost
}

func (t *Tower) Draw(screen *ebiten.Image) {
	if frame := t.Sprite.Frame(t.stateTime); frame != nil {
		drawCentered(screen, frame, t.Position, config.TowerSize)
		return
	}
	x, y := float32(t.Position.X), float32(t.Position.Y)
	half := float32(config.TowerSize / 2)
	vector.DrawFilledCircle(screen, x, y, half*0.7+float32(config.StrokeWidth), config.TowerStrokeColor, true)
	vector.DrawFilledCircle(screen, x, y, half*0.7, t.Color, true)
}

// DrawRange рисует радиус атаки (при выборе места постройки).
func (t *Tower) DrawRange(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(t.Position.X), float32(t.Position.Y), float32(t.Range), config.RangePreviewColor, true)
}
