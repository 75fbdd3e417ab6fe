// internal/defs/towers.go
package defs

// TowerType holds the static data for a buildable tower.
type TowerType struct {
	ID         TowerKind      `yaml:"id"`
	Name       string         `yaml:"name"`
	Cost       int            `yaml:"cost"`
	Projectile ProjectileKind `yaml:"projectile"`
	Range      float64        `yaml:"range"`
	FireRate   float64        `yaml:"fireRate"` // выстрелов в секунду
	Ricochet   bool           `yaml:"ricochet"` // башня всегда стреляет рикошетом
	Sprite     int            `yaml:"sprite"`   // номер спрайта в towers/Idle
}
