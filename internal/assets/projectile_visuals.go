// internal/assets/projectile_visuals.go
package assets

import (
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
)

// projectileSheets — файл анимации для каждого вида снаряда.
var projectileSheets = map[defs.ProjectileKind]string{
	defs.ProjectileSimple:    "projectiles/simple.png",
	defs.ProjectileAOE:       "projectiles/aoe.png",
	defs.ProjectileAOEStrong: "projectiles/aoe.png",
	defs.ProjectileRicochet:  "projectiles/ricochet.png",
}

// ProjectileVisuals связывает вид снаряда с его анимацией.
// Сами виды снарядов неизменяемы; графика живёт только здесь.
type ProjectileVisuals map[defs.ProjectileKind]*component.Animation

// LoadProjectileVisuals загружает все доступные анимации снарядов. Отсутствующие файлы пропускаются.
func LoadProjectileVisuals(m *SpriteManager) ProjectileVisuals {
	v := make(ProjectileVisuals, len(projectileSheets))
	for kind, file := range projectileSheets {
		frames, err := m.LoadSheet(file, config.ProjectileAnimationColumns, 1)
		if err != nil {
			m.log.Debug().Err(err).Str("kind", string(kind)).Msg("projectile sprite unavailable")
			continue
		}
		v[kind] = component.NewAnimation(frames, config.AnimationFrameDuration, true)
	}
	return v
}

// Get возвращает анимацию вида или nil.
func (v ProjectileVisuals) Get(kind defs.ProjectileKind) *component.Animation {
	if v == nil {
		return nil
	}
	return v[kind]
}
