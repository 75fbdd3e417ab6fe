// internal/entity/projectile.go
package entity

import (
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Projectile — самонаводящийся снаряд. Вариант определяется видом снаряда:
// для RICOCHET используется состояние отскоков.
type Projectile struct {
	Position  geom.Vec2
	Velocity  geom.Vec2
	StateTime float64

	ptype   *defs.ProjectileType
	target  *Enemy
	enemies *List[*Enemy]
	dead    bool
	pooled  bool

	// Состояние рикошета.
	bounces       int
	ricochetRange float64
	struck        map[*Enemy]struct{}
}

// Reset переинициализирует снаряд для повторного использования.
func (p *Projectile) Reset(start geom.Vec2, target *Enemy, ptype *defs.ProjectileType, enemies *List[*Enemy]) {
	p.Position = start
	p.Velocity = geom.Vec2{}
	p.StateTime = 0
	p.ptype = ptype
	p.target = target
	p.enemies = enemies
	p.dead = false
	p.pooled = false

	clear(p.struck)
	p.bounces = 0
	p.ricochetRange = 0
	if p.IsRicochet() {
		p.bounces = config.RicochetMaxBounces
		p.ricochetRange = config.RicochetRange
		if p.struck == nil {
			p.struck = make(map[*Enemy]struct{}, config.RicochetMaxBounces+1)
		}
	}
}

// release обнуляет ссылки, чтобы снаряд в пуле не удерживал врагов.
func (p *Projectile) release() {
	p.target = nil
	p.enemies = nil
	clear(p.struck)
	p.dead = true
	p.pooled = true
}

func (p *Projectile) Type() *defs.ProjectileType { return p.ptype }
func (p *Projectile) Target() *Enemy             { return p.target }
func (p *Projectile) IsDead() bool               { return p.dead }
func (p *Projectile) BouncesRemaining() int      { return p.bounces }

// IsRicochet — снаряд отскакивает между врагами.
func (p *Projectile) IsRicochet() bool {
	return p.ptype != nil && p.ptype.IsRicochet()
}

// Update перенаводит снаряд на текущую позицию цели и проверяет попадание.
func (p *Projectile) Update(deltaTime float64) {
	if p.dead {
		return
	}
	p.StateTime += deltaTime

	if p.target == nil || !p.target.IsAlive() {
		if !p.retarget() {
			p.dead = true
			return
		}
	}

	toTarget := p.target.Position().Sub(p.Position)
	dist := toTarget.Len()
	if dist < config.ProjectileImpactDistance {
		p.impact()
		return
	}

	step := p.ptype.Speed() * deltaTime
	if dist <= step {
		p.Position = p.target.Position()
		p.impact()
		return
	}
	p.Velocity = toTarget.Scale(p.ptype.Speed() / dist)
	p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
}

// retarget выбирает новую цель для рикошета, потерявшего свою. Отскок не расходуется.
func (p *Projectile) retarget() bool {
	if !p.IsRicochet() || p.bounces <= 0 {
		return false
	}
	next := p.nextRicochetTarget()
	if next == nil {
		return false
	}
	p.target = next
	return true
}

func (p *Projectile) impact() {
	damage := p.ptype.Damage()

	switch {
	case p.IsRicochet():
		p.target.TakeDamage(damage)
		p.struck[p.target] = struct{}{}
		if p.bounces > 0 {
			if next := p.nextRicochetTarget(); next != nil {
				p.target = next
				p.bounces--
				return
			}
		}
	case p.ptype.IsAOE() && p.enemies != nil:
		radius := p.ptype.ExplosionRadius()
		for _, e := range p.enemies.Items() {
			if e.IsAlive() && e.Position().Dist(p.Position) <= radius {
				e.TakeDamage(damage)
			}
		}
	default:
		p.target.TakeDamage(damage)
	}
	p.dead = true
}

// nextRicochetTarget — ближайший живой, ещё не поражённый враг в радиусе рикошета.
func (p *Projectile) nextRicochetTarget() *Enemy {
	if p.enemies == nil {
		return nil
	}
	var best *Enemy
	bestDist := p.ricochetRange
	for _, e := range p.enemies.Items() {
		if !e.IsAlive() {
			continue
		}
		if _, hit := p.struck[e]; hit {
			continue
		}
		if d := e.Position().Dist(p.Position); d <= bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

// Draw рисует кадр анимации снаряда; без анимации — круг цвета его вида.
func (p *Projectile) Draw(screen *ebiten.Image, anim *component.Animation) {
	if p.dead || p.ptype == nil {
		return
	}
	if frame := anim.Frame(p.StateTime); frame != nil {
		drawCentered(screen, frame, p.Position, p.ptype.Size())
		return
	}
	c := config.ProjectileColors[0]
	if i := p.ptype.Kind().Index(); i >= 0 && i < len(config.ProjectileColors) {
		c = config.ProjectileColors[i]
	}
	vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.ptype.Size()/3), c, true)
}
