// internal/entity/world.go
package entity

import (
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/types"
)

// World хранит общие списки сущностей. Системы получают ссылки на списки, но не владеют ими.
type World struct {
	GameTime    float64
	NextID      types.EntityID
	Enemies     *List[*Enemy]
	Towers      *List[*Tower]
	Projectiles *List[*Projectile]
	Phase       component.GamePhase
}

func NewWorld() *World {
	return &World{
		NextID:      1,
		Enemies:     NewList[*Enemy](),
		Towers:      NewList[*Tower](),
		Projectiles: NewList[*Projectile](),
		Phase:       component.BuildPhase,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}
