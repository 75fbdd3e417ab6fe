// internal/component/animation_names.go
package component

// Имена листов анимаций врага (см. assets.SpriteManager).
const (
	SheetWalk  = "walk"
	SheetWalk2 = "walk2"
	SheetDeath = "death"
)
