// internal/defs/types.go
package defs

// ProjectileKind — вид снаряда.
type ProjectileKind string

const (
	ProjectileSimple    ProjectileKind = "SIMPLE"
	ProjectileAOE       ProjectileKind = "AOE"
	ProjectileAOEStrong ProjectileKind = "AOE_STRONG"
	ProjectileRicochet  ProjectileKind = "RICOCHET"
)

// ProjectileKinds — все виды в порядке объявления.
var ProjectileKinds = []ProjectileKind{
	ProjectileSimple,
	ProjectileAOE,
	ProjectileAOEStrong,
	ProjectileRicochet,
}

// Valid сообщает, известен ли вид.
func (k ProjectileKind) Valid() bool {
	for _, known := range ProjectileKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Index — порядковый номер вида (для таблиц цветов), -1 для неизвестного.
func (k ProjectileKind) Index() int {
	for i, known := range ProjectileKinds {
		if k == known {
			return i
		}
	}
	return -1
}

// TowerKind — вид башни, доступный игроку для постройки.
type TowerKind string

const (
	TowerSimple   TowerKind = "SIMPLE"
	TowerAOE      TowerKind = "AOE"
	TowerRicochet TowerKind = "RICOCHET"
)
