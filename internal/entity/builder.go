// internal/entity/builder.go
package entity

import (
	"errors"
	"fmt"
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/types"
	"go-wasnowl/pkg/geom"
	"image/color"
)

var (
	ErrMissingEnemies        = errors.New("tower: enemy list is required")
	ErrMissingProjectiles    = errors.New("tower: projectile list is required")
	ErrMissingPool           = errors.New("tower: projectile pool is required")
	ErrMissingProjectileType = errors.New("tower: projectile type is required")
	ErrInvalidFireRate       = errors.New("tower: fire rate must be positive")
)

// TowerBuilder собирает башню. Без списков врагов и снарядов сборка завершается ошибкой.
type TowerBuilder struct {
	id           types.EntityID
	position     geom.Vec2
	rangeR       float64
	fireRate     float64
	variant      TowerVariant
	towerType    *defs.TowerType
	projectile   *defs.ProjectileType
	ricochetType *defs.ProjectileType
	enemies      *List[*Enemy]
	projectiles  *List[*Projectile]
	pool         *ProjectilePool
	sprite       *component.Animation
	color        color.RGBA
}

func NewTowerBuilder() *TowerBuilder {
	return &TowerBuilder{
		rangeR:   config.DefaultTowerRange,
		fireRate: config.DefaultTowerFireRate,
		color:    config.TowerColors[0],
	}
}

func (b *TowerBuilder) WithID(id types.EntityID) *TowerBuilder {
	b.id = id
	return b
}

func (b *TowerBuilder) At(pos geom.Vec2) *TowerBuilder {
	b.position = pos
	return b
}

func (b *TowerBuilder) WithRange(r float64) *TowerBuilder {
	b.rangeR = r
	return b
}

func (b *TowerBuilder) WithFireRate(rate float64) *TowerBuilder {
	b.fireRate = rate
	return b
}

func (b *TowerBuilder) WithProjectileType(pt *defs.ProjectileType) *TowerBuilder {
	b.projectile = pt
	return b
}

// WithTowerType берёт стоимость, радиус, темп стрельбы и вариант из типа башни.
func (b *TowerBuilder) WithTowerType(tt defs.TowerType, pt *defs.ProjectileType) *TowerBuilder {
	b.towerType = &tt
	b.projectile = pt
	if tt.Range > 0 {
		b.rangeR = tt.Range
	}
	b.fireRate = tt.FireRate
	if tt.Ricochet {
		b.variant = VariantRicochet
		b.ricochetType = pt
	}
	return b
}

// Ricochet делает башню рикошетной: любой выстрел использует вид rt.
func (b *TowerBuilder) Ricochet(rt *defs.ProjectileType) *TowerBuilder {
	b.variant = VariantRicochet
	b.ricochetType = rt
	return b
}

func (b *TowerBuilder) WithEnemies(l *List[*Enemy]) *TowerBuilder {
	b.enemies = l
	return b
}

func (b *TowerBuilder) WithProjectiles(l *List[*Projectile]) *TowerBuilder {
	b.projectiles = l
	return b
}

func (b *TowerBuilder) WithPool(p *ProjectilePool) *TowerBuilder {
	b.pool = p
	return b
}

func (b *TowerBuilder) WithSprite(a *component.Animation) *TowerBuilder {
	b.sprite = a
	return b
}

func (b *TowerBuilder) WithColor(c color.RGBA) *TowerBuilder {
	b.color = c
	return b
}

// Build проверяет обязательные зависимости и создаёт башню.
func (b *TowerBuilder) Build() (*Tower, error) {
	if b.enemies == nil {
		return nil, ErrMissingEnemies
	}
	if b.projectiles == nil {
		return nil, ErrMissingProjectiles
	}
	if b.pool == nil {
		return nil, ErrMissingPool
	}
	if b.fireRate <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFireRate, b.fireRate)
	}
	switch b.variant {
	case VariantRicochet:
		if b.ricochetType == nil || !b.ricochetType.IsRicochet() {
			return nil, fmt.Errorf("%w: ricochet tower needs a RICOCHET projectile", ErrMissingProjectileType)
		}
		if b.projectile == nil {
			b.projectile = b.ricochetType
		}
	default:
		if b.projectile == nil {
			return nil, ErrMissingProjectileType
		}
	}

	return &Tower{
		ID:           b.id,
		Position:     b.position,
		Range:        b.rangeR,
		FireRate:     b.fireRate,
		Variant:      b.variant,
		Type:         b.towerType,
		Sprite:       b.sprite,
		Color:        b.color,
		projectile:   b.projectile,
		ricochetType: b.ricochetType,
		enemies:      b.enemies,
		projectiles:  b.projectiles,
		pool:         b.pool,
	}, nil
}
