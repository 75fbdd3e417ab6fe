// internal/entity/player.go
package entity

import (
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Player — башня, которой управляет игрок. Стреляет как обычная башня.
type Player struct {
	Tower  *Tower
	Intent component.MoveIntent
	Speed  float64
	Size   float64
}

func NewPlayer(t *Tower) *Player {
	return &Player{Tower: t, Speed: config.PlayerSpeed, Size: config.PlayerSize}
}

func (p *Player) Position() geom.Vec2 {
	return p.Tower.Position
}

// Bounds — прямоугольник тела игрока с центром в его позиции.
func (p *Player) Bounds() geom.Rect {
	pos := p.Tower.Position
	return geom.Rect{X: pos.X - p.Size/2, Y: pos.Y - p.Size/2, W: p.Size, H: p.Size}
}

func (p *Player) Draw(screen *ebiten.Image) {
	if frame := p.Tower.Sprite.Frame(p.Tower.stateTime); frame != nil {
		drawCentered(screen, frame, p.Tower.Position, p.Size)
		return
	}
	b := p.Bounds()
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), config.PlayerColor, true)
}
