package entity

import (
	"errors"

	"go-wasnowl/internal/component"
	"go-wasnowl/internal/defs"
	"go-wasnowl/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// fakeFrames — загрузчик кадров для тестов: кадры пустые, важна только длина.
type fakeFrames struct {
	sheets map[string]int
	calls  int
}

func (f *fakeFrames) LoadAnimationFrames(entityID int, animation string, cols, rows int) ([]*ebiten.Image, error) {
	f.calls++
	n, ok := f.sheets[animation]
	if !ok {
		return nil, errors.New("sheet not found")
	}
	return make([]*ebiten.Image, n), nil
}

func testFrames(n int) []*ebiten.Image {
	return make([]*ebiten.Image, n)
}

// staticEnemy создаёт неподвижного врага в точке pos.
func staticEnemy(pos geom.Vec2, hp float64) *Enemy {
	return NewEnemy(0, EnemySpec{
		TypeID:    1,
		Start:     pos,
		Path:      []geom.Vec2{pos.Add(geom.V(10000, 0))},
		Speed:     0,
		MaxHealth: hp,
	}, zerolog.Nop())
}

func enemyList(enemies ...*Enemy) *List[*Enemy] {
	l := NewList[*Enemy]()
	for _, e := range enemies {
		l.Add(e)
	}
	return l
}

var (
	simpleType   = defs.NewProjectileType(defs.ProjectileSimple, 25, 200, 5, false, 14)
	aoeType      = defs.NewProjectileType(defs.ProjectileAOE, 40, 180, 10, true, 14)
	ricochetType = defs.NewProjectileType(defs.ProjectileRicochet, 20, 260, 0, false, 10)
)

func walkAnim() *component.Animation {
	return component.NewAnimation(testFrames(6), 0.1, true)
}

func deathAnim() *component.Animation {
	return component.NewAnimation(testFrames(6), 0.1, false)
}
