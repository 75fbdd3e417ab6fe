// internal/system/combat.go
package system

import (
	"go-wasnowl/internal/entity"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	towers *entity.List[*entity.Tower]
}

func NewCombatSystem(towers *entity.List[*entity.Tower]) *CombatSystem {
	return &CombatSystem{towers: towers}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, t := range s.towers.Items() {
		t.Update(deltaTime)
	}
}
