// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"image/color"

	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/event"
	"go-wasnowl/pkg/geom"
)

var (
	ErrInsufficientFunds = errors.New("not enough gold")
	ErrTooClose          = errors.New("too close to another tower")
	ErrBlocked           = errors.New("position is blocked")
	ErrOutOfBounds       = errors.New("position is outside the map")
	ErrGameOver          = errors.New("game is over")
)

// PlaceTower attempts to place a tower of the given kind at pos.
func (g *Game) PlaceTower(kind defs.TowerKind, pos geom.Vec2) (*entity.Tower, error) {
	if g.gameOver {
		return nil, ErrGameOver
	}
	tt, err := g.Catalog.Tower(kind)
	if err != nil {
		return nil, err
	}
	if err := g.CanPlaceTower(pos); err != nil {
		return nil, err
	}
	if !g.Currency.CanAfford(tt.Cost) {
		return nil, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, tt.Name, tt.Cost, g.Currency.Balance())
	}

	t, err := g.buildTower(tt, pos)
	if err != nil {
		return nil, fmt.Errorf("failed to build tower %s: %w", tt.ID, err)
	}
	if !g.Currency.Spend(tt.Cost) {
		return nil, ErrInsufficientFunds
	}
	g.World.Towers.Add(t)
	g.balanceChanged()

	g.log.Info().Str("tower", string(tt.ID)).Float64("x", pos.X).Float64("y", pos.Y).Int("balance", g.Currency.Balance()).Msg("tower placed")
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{Kind: tt.ID, Position: pos, Cost: tt.Cost}})
	return t, nil
}

// CanPlaceTower проверяет место без учёта денег.
func (g *Game) CanPlaceTower(pos geom.Vec2) error {
	if !g.Level.Bounds().Contains(pos) {
		return ErrOutOfBounds
	}
	for _, r := range g.Level.Solids {
		if r.Contains(pos) {
			return ErrBlocked
		}
	}
	for _, t := range g.World.Towers.Items() {
		if t.Position.Dist(pos) < config.TowerMinSpacing {
			return ErrTooClose
		}
	}
	return nil
}

func (g *Game) buildTower(tt defs.TowerType, pos geom.Vec2) (*entity.Tower, error) {
	pt, err := g.Catalog.Projectile(tt.Projectile)
	if err != nil {
		return nil, err
	}
	b := entity.NewTowerBuilder().
		WithID(g.World.NewEntity()).
		At(pos).
		WithTowerType(tt, pt).
		WithEnemies(g.World.Enemies).
		WithProjectiles(g.World.Projectiles).
		WithPool(g.Pool).
		WithColor(g.towerColor(tt.ID))

	if g.sprites != nil {
		frames, err := g.sprites.LoadTowerFrames(tt.Sprite, config.TowerAnimationColumns)
		if err != nil {
			g.log.Debug().Err(err).Int("sprite", tt.Sprite).Msg("tower sprite unavailable")
		} else {
			b.WithSprite(component.NewAnimation(frames, config.AnimationFrameDuration, true))
		}
	}
	return b.Build()
}

func (g *Game) towerColor(kind defs.TowerKind) color.RGBA {
	for i, t := range g.Catalog.Towers() {
		if t.ID == kind {
			return config.TowerColors[i%len(config.TowerColors)]
		}
	}
	return config.TowerColors[0]
}

// TowerKindAt — вид башни по номеру клавиши выбора (с нуля), false если такого нет.
func (g *Game) TowerKindAt(index int) (defs.TowerKind, bool) {
	towers := g.Catalog.Towers()
	if index < 0 || index >= len(towers) {
		return "", false
	}
	return towers[index].ID, true
}
