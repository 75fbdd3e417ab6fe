// internal/system/projectile.go
package system

import (
	"go-wasnowl/internal/assets"
	"go-wasnowl/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
)

// ProjectileSystem обновляет летящие снаряды и возвращает отработавшие в пул.
type ProjectileSystem struct {
	projectiles *entity.List[*entity.Projectile]
	pool        *entity.ProjectilePool
	visuals     assets.ProjectileVisuals
}

func NewProjectileSystem(projectiles *entity.List[*entity.Projectile], pool *entity.ProjectilePool, visuals assets.ProjectileVisuals) (*ProjectileSystem, error) {
	if projectiles == nil || pool == nil {
		return nil, ErrMissingDependency
	}
	return &ProjectileSystem{
		projectiles: projectiles,
		pool:        pool,
		visuals:     visuals,
	}, nil
}

// Update обходит список с конца, чтобы удалять по индексу без пропусков.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for i := s.projectiles.Len() - 1; i >= 0; i-- {
		p := s.projectiles.At(i)
		p.Update(deltaTime)
		if p.IsDead() {
			s.projectiles.RemoveAt(i)
			s.pool.Release(p)
		}
	}
}

func (s *ProjectileSystem) Draw(screen *ebiten.Image) {
	for _, p := range s.projectiles.Items() {
		p.Draw(screen, s.visuals.Get(p.Type().Kind()))
	}
}

func (s *ProjectileSystem) ActiveCount() int {
	return s.projectiles.Len()
}

// Clear возвращает все снаряды в пул.
func (s *ProjectileSystem) Clear() {
	for _, p := range s.projectiles.Items() {
		s.pool.Release(p)
	}
	s.projectiles.Clear()
}
