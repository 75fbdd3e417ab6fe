// internal/system/movement.go
package system

import (
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/level"
	"go-wasnowl/pkg/geom"

	"github.com/solarlune/resolv"
)

// PlayerSystem двигает игрока по намерению из ввода, не пуская сквозь препятствия и за края карты.
// Стрельба игрока — как у обычной башни.
type PlayerSystem struct {
	player *entity.Player
	level  *level.Level
	space  *resolv.Space
	body   *resolv.Object
	bounds geom.Rect

	// OnPortal вызывается, когда игрок заходит в портал. Может быть nil.
	OnPortal func(level.Portal)
	inPortal bool
}

// NewPlayerSystem ставит игрока на ближайшее к его позиции свободное место
// и регистрирует тело в space (nil — без столкновений).
func NewPlayerSystem(player *entity.Player, l *level.Level, space *resolv.Space) *PlayerSystem {
	player.Tower.Position = l.FreeSpot(player.Position(), player.Size)
	b := player.Bounds()
	body := resolv.NewObject(b.X, b.Y, b.W, b.H, "player")
	body.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	if space != nil {
		space.Add(body)
	}
	s := &PlayerSystem{
		player: player,
		level:  l,
		space:  space,
		body:   body,
		bounds: l.Bounds(),
	}
	// Портал под точкой появления не срабатывает, пока игрок из него не выйдет.
	_, s.inPortal = l.PortalAt(b)
	return s
}

func (s *PlayerSystem) Update(deltaTime float64) {
	s.move(deltaTime)
	s.checkPortals()
	s.player.Tower.Update(deltaTime)
}

func (s *PlayerSystem) checkPortals() {
	portal, ok := s.level.PortalAt(s.player.Bounds())
	if !ok {
		s.inPortal = false
		return
	}
	if s.inPortal {
		return
	}
	s.inPortal = true
	if s.OnPortal != nil {
		s.OnPortal(portal)
	}
}

func (s *PlayerSystem) move(deltaTime float64) {
	if s.player.Intent.IsZero() {
		return
	}
	velocity := s.player.Intent.Direction().Scale(s.player.Speed * deltaTime)

	// Сначала по горизонтали, затем по вертикали: так игрок скользит вдоль стен.
	dx := velocity.X
	if dx != 0 && s.space != nil {
		if check := s.body.Check(dx, 0, level.SolidTag); check != nil {
			if solids := check.ObjectsByTags(level.SolidTag); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
	}
	s.body.X += dx

	dy := velocity.Y
	if dy != 0 && s.space != nil {
		if check := s.body.Check(0, dy, level.SolidTag); check != nil {
			if solids := check.ObjectsByTags(level.SolidTag); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
	}
	s.body.Y += dy

	half := s.player.Size / 2
	s.body.X = geom.Clamp(s.body.X, s.bounds.X, s.bounds.X+s.bounds.W-s.player.Size)
	s.body.Y = geom.Clamp(s.body.Y, s.bounds.Y, s.bounds.Y+s.bounds.H-s.player.Size)
	s.body.Update()

	s.player.Tower.Position = geom.V(s.body.X+half, s.body.Y+half)
}
