// internal/entity/pool.go
package entity

import (
	"go-wasnowl/internal/defs"
	"go-wasnowl/pkg/geom"
)

// ProjectilePool переиспользует снаряды, чтобы не выделять память на каждый выстрел.
// Не потокобезопасен: используется только из игрового цикла.
type ProjectilePool struct {
	free    []*Projectile
	created int
}

func NewProjectilePool() *ProjectilePool {
	return &ProjectilePool{}
}

// Acquire берёт снаряд из пула (или создаёт новый) и инициализирует его.
// Вариант снаряда определяется видом: RICOCHET получает состояние отскоков.
func (pp *ProjectilePool) Acquire(start geom.Vec2, target *Enemy, ptype *defs.ProjectileType, enemies *List[*Enemy]) *Projectile {
	var p *Projectile
	if n := len(pp.free); n > 0 {
		p = pp.free[n-1]
		pp.free[n-1] = nil
		pp.free = pp.free[:n-1]
	} else {
		p = &Projectile{}
		pp.created++
	}
	p.Reset(start, target, ptype, enemies)
	return p
}

// Release возвращает снаряд в пул. nil и повторный возврат игнорируются.
func (pp *ProjectilePool) Release(p *Projectile) {
	if p == nil || p.pooled {
		return
	}
	p.release()
	pp.free = append(pp.free, p)
}

// Available — число свободных снарядов.
func (pp *ProjectilePool) Available() int {
	return len(pp.free)
}

// Created — сколько снарядов было выделено за всё время.
func (pp *ProjectilePool) Created() int {
	return pp.created
}
