// internal/system/render.go
package system

import (
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/level"
	"go-wasnowl/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует карту и сущности
type RenderSystem struct {
	world  *entity.World
	level  *level.Level
	paths  PathSelector
	waves  *WaveSystem
	player *entity.Player
}

func NewRenderSystem(world *entity.World, l *level.Level, paths PathSelector, waves *WaveSystem, player *entity.Player) *RenderSystem {
	return &RenderSystem{world: world, level: l, paths: paths, waves: waves, player: player}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawLevel(screen)

	for _, t := range s.world.Towers.Items() {
		t.Draw(screen)
	}
	for _, e := range s.world.Enemies.Items() {
		e.Draw(screen)
	}
	if s.player != nil {
		s.player.Draw(screen)
	}
}

func (s *RenderSystem) drawLevel(screen *ebiten.Image) {
	if s.level != nil {
		for _, r := range s.level.Solids {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.WallColor, false)
		}
		for _, p := range s.level.Portals {
			b := p.Bounds
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, config.PortalColor, false)
		}
	}

	wave := 1
	if s.waves != nil && s.waves.CurrentWave() > 0 {
		wave = s.waves.CurrentWave()
	}
	drawPath(screen, s.paths.ForWave(wave).Path())
}

func drawPath(screen *ebiten.Image, points []geom.Vec2) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(config.EnemySize), config.PathColor, true)
	}
}
