// internal/state/game_state.go
package state

import (
	"fmt"

	"go-wasnowl/internal/app"
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/event"
	"go-wasnowl/internal/ui"
	"go-wasnowl/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const messageDuration = 2.0

var selectionKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	res  *Resources
	game *app.Game

	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	health        *ui.BaseHealthIndicator
	progress      *ui.WaveProgressIndicator
	infoPanel     *ui.InfoPanel

	selected     int
	message      string
	messageTimer float64
}

func NewGameState(sm *StateMachine, res *Resources) (*GameState, error) {
	g, err := res.NewGame()
	if err != nil {
		return nil, err
	}
	gs := &GameState{
		sm:   sm,
		res:  res,
		game: g,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffset),
			float32(config.IndicatorOffset),
			float32(config.IndicatorRadius),
		),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 8, config.TextLightColor),
		health:        ui.NewBaseHealthIndicator(12, 28),
		progress:      ui.NewWaveProgressIndicator(config.ScreenWidth-150, 48),
		infoPanel:     ui.NewInfoPanel(res.Font),
	}
	gs.infoPanel.SetBalance(g.Currency.Balance())
	g.Dispatcher.Subscribe(event.BalanceChanged, gs.infoPanel)
	return gs, nil
}

func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

// readMoveIntent собирает направление из WASD и стрелок.
func readMoveIntent(pressed func(ebiten.Key) bool) component.MoveIntent {
	var m component.MoveIntent
	if pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft) {
		m.X--
	}
	if pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight) {
		m.X++
	}
	if pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp) {
		m.Y--
	}
	if pressed(ebiten.KeyS) || pressed(ebiten.KeyArrowDown) {
		m.Y++
	}
	return m
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g, g.res))
		return
	}

	g.game.Player.Intent = readMoveIntent(ebiten.IsKeyPressed)
	for i, k := range selectionKeys {
		if inpututil.IsKeyJustPressed(k) {
			if _, ok := g.game.TowerKindAt(i); ok {
				g.selected = i
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}

	// Обработка левой кнопки
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.indicator.IsClicked(x, y) {
			g.startWave()
		} else if !g.infoPanel.Contains(x, y) {
			g.handleGameClick(x, y)
		}
	}

	g.game.Update(deltaTime)
	if p, ok := g.game.TakePortal(); ok {
		g.travel(p.Target)
		return
	}

	if g.game.Phase() == component.BuildPhase {
		g.infoPanel.Show()
	} else {
		g.infoPanel.Hide()
	}
	g.infoPanel.Update()

	if g.messageTimer > 0 {
		g.messageTimer -= deltaTime
	}

	switch {
	case g.game.IsGameOver():
		g.sm.SetState(NewGameOverState(g.sm, g.res, g.game.Wave(), g.game.BestWave(), false))
	case g.game.Victory():
		best := g.res.Progress.RecordGame(g.game.Wave())
		g.sm.SetState(NewGameOverState(g.sm, g.res, g.game.Wave(), best, true))
	}
}

// travel начинает партию на карте портала. Если карта не читается, игрок остаётся здесь.
func (g *GameState) travel(mapPath string) {
	l, err := g.res.LoadLevel(mapPath)
	if err != nil {
		g.res.Log.Error().Err(err).Str("map", mapPath).Msg("failed to load portal map")
		g.showMessage("Portal is closed")
		return
	}
	prev := g.res.Level
	g.res.Level = l
	next, err := NewGameState(g.sm, g.res)
	if err != nil {
		g.res.Level = prev
		g.res.Log.Error().Err(err).Str("map", mapPath).Msg("failed to start game on portal map")
		g.showMessage("Portal is closed")
		return
	}
	g.res.Log.Info().Str("map", mapPath).Msg("map changed")
	g.sm.SetState(next)
}

func (g *GameState) startWave() {
	g.indicator.HandleClick()
	if !g.game.StartNextWave() && g.game.Phase() == component.BuildPhase {
		g.showMessage("No more waves")
	}
}

func (g *GameState) handleGameClick(x, y int) {
	kind, ok := g.game.TowerKindAt(g.selected)
	if !ok {
		return
	}
	if _, err := g.game.PlaceTower(kind, geom.V(float64(x), float64(y))); err != nil {
		g.showMessage(err.Error())
	}
}

func (g *GameState) showMessage(msg string) {
	g.message = msg
	g.messageTimer = messageDuration
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen, g.res.Font)
	if g.game.Phase() == component.BuildPhase {
		g.drawPlacementPreview(screen)
	}
	g.drawHUD(screen)
}

// drawPlacementPreview показывает радиус выбранной башни под курсором.
func (g *GameState) drawPlacementPreview(screen *ebiten.Image) {
	kind, ok := g.game.TowerKindAt(g.selected)
	if !ok {
		return
	}
	tt, err := g.game.Catalog.Tower(kind)
	if err != nil {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.infoPanel.Contains(x, y) {
		return
	}
	c := config.RangePreviewColor
	if g.game.CanPlaceTower(geom.V(float64(x), float64(y))) != nil || !g.game.Currency.CanAfford(tt.Cost) {
		c = config.InvalidPreviewColor
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(tt.Range), c, true)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	face := g.res.Font
	if face != nil {
		text.Draw(screen, fmt.Sprintf("Gold: %d", g.game.Currency.Balance()), face, 12, 18, config.RewardTextColor)
	}
	g.health.Draw(screen, g.game.Lives.Current(), g.game.Lives.Max(), face)
	g.waveIndicator.Draw(screen, g.game.Wave(), g.game.TotalWaves(), g.res.BigFont)

	completed := g.game.Wave()
	if g.game.Phase() == component.WavePhase {
		completed--
	}
	waves := g.game.WaveSystem
	progress := ui.WaveProgress(len(waves.SpawnQueue()), waves.Remaining(), g.game.World.Enemies.Len())
	g.progress.Draw(screen, completed, g.game.TotalWaves(), progress)

	stateColor := config.BuildStateColor
	if g.game.Phase() == component.WavePhase {
		stateColor = config.WaveStateColor
	}
	g.indicator.Draw(screen, stateColor)

	g.infoPanel.Draw(screen, g.game.Catalog.Towers(), g.selected)

	if g.messageTimer > 0 {
		drawCenteredText(screen, face, g.message, config.ScreenHeight/2, config.WaveStateColor)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
