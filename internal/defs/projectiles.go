// internal/defs/projectiles.go
package defs

// ProjectileType — неизменяемое описание вида снаряда (flyweight).
// Экземпляры создаются каталогом один раз и разделяются всеми снарядами.
// Визуальная часть хранится отдельно, в assets.ProjectileVisuals.
type ProjectileType struct {
	kind            ProjectileKind
	damage          float64
	speed           float64
	explosionRadius float64
	aoe             bool
	size            float64
}

// NewProjectileType создаёт описание снаряда.
func NewProjectileType(kind ProjectileKind, damage, speed, explosionRadius float64, aoe bool, size float64) *ProjectileType {
	return &ProjectileType{
		kind:            kind,
		damage:          damage,
		speed:           speed,
		explosionRadius: explosionRadius,
		aoe:             aoe,
		size:            size,
	}
}

func (p *ProjectileType) Kind() ProjectileKind     { return p.kind }
func (p *ProjectileType) Damage() float64          { return p.damage }
func (p *ProjectileType) Speed() float64           { return p.speed }
func (p *ProjectileType) ExplosionRadius() float64 { return p.explosionRadius }
func (p *ProjectileType) IsAOE() bool              { return p.aoe }
func (p *ProjectileType) Size() float64            { return p.size }

// IsRicochet — снаряд этого вида отскакивает между врагами.
func (p *ProjectileType) IsRicochet() bool { return p.kind == ProjectileRicochet }
