// internal/app/game.go
package app

import (
	"errors"

	"go-wasnowl/internal/assets"
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/economy"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/event"
	"go-wasnowl/internal/level"
	"go-wasnowl/internal/logging"
	"go-wasnowl/internal/system"
	"go-wasnowl/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
)

var ErrMissingCatalog = errors.New("game: catalog is required")

// Options — всё, что нужно для новой партии.
type Options struct {
	Catalog         *defs.Catalog
	Level           *level.Level          // nil — пустая карта размером с экран
	Sprites         *assets.SpriteManager // nil — рисуем фигурами
	Progress        *system.ProgressStore // nil — без сохранений
	StartingBalance int                   // 0 — config.StartingBalance
	BaseHealth      int                   // 0 — config.BaseHealth
	Seed            int64                 // 0 — от времени
	Log             zerolog.Logger
}

// Game holds the main game state and logic.
type Game struct {
	World      *entity.World
	Pool       *entity.ProjectilePool
	Catalog    *defs.Catalog
	Level      *level.Level
	Currency   *economy.CurrencyManager
	Lives      *economy.Lives
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
	Player     *entity.Player

	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	PlayerSystem       *system.PlayerSystem
	PhaseSystem        *system.PhaseSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem

	sprites  *assets.SpriteManager
	progress *system.ProgressStore
	log      zerolog.Logger

	gameOver bool
	bestWave int
	portal   *level.Portal // портал на карту, ждёт обработки состоянием
}

// NewGame initializes a new game instance.
func NewGame(opts Options) (*Game, error) {
	if opts.Catalog == nil {
		return nil, ErrMissingCatalog
	}
	if opts.Level == nil {
		opts.Level = level.Default(config.ScreenWidth, config.ScreenHeight)
	}
	if opts.StartingBalance <= 0 {
		opts.StartingBalance = config.StartingBalance
	}
	if opts.BaseHealth <= 0 {
		opts.BaseHealth = config.BaseHealth
	}
	if opts.Progress == nil {
		opts.Progress = system.NewProgressStore(nil, opts.Log)
	}

	world := entity.NewWorld()
	g := &Game{
		World:      world,
		Pool:       entity.NewProjectilePool(),
		Catalog:    opts.Catalog,
		Level:      opts.Level,
		Currency:   economy.NewCurrencyManager(opts.StartingBalance),
		Lives:      economy.NewLives(opts.BaseHealth),
		Dispatcher: event.NewDispatcher(),
		Rng:        utils.NewPRNGService(opts.Seed),
		sprites:    opts.Sprites,
		progress:   opts.Progress,
		log:        logging.For(opts.Log, "game"),
	}
	g.bestWave = g.progress.BestWave()

	paths := system.NewPathSelector(opts.Level)
	waveCfg := system.WaveConfig{
		World:      world,
		Catalog:    opts.Catalog,
		Currency:   g.Currency,
		Paths:      paths,
		RNG:        g.Rng,
		Dispatcher: g.Dispatcher,
		Log:        logging.For(opts.Log, "wave"),
	}
	if opts.Sprites != nil {
		waveCfg.Sprites = opts.Sprites
	}
	var err error
	if g.WaveSystem, err = system.NewWaveSystem(waveCfg); err != nil {
		return nil, err
	}
	g.WaveSystem.OnLifeLost = g.loseLives
	g.WaveSystem.OnMoneyChanged = g.balanceChanged

	var visuals assets.ProjectileVisuals
	if opts.Sprites != nil {
		visuals = assets.LoadProjectileVisuals(opts.Sprites)
	}
	if g.ProjectileSystem, err = system.NewProjectileSystem(world.Projectiles, g.Pool, visuals); err != nil {
		return nil, err
	}

	if g.Player, err = g.createPlayer(); err != nil {
		return nil, err
	}
	space := level.NewSpace(opts.Level, config.CollisionCellSize)
	g.PlayerSystem = system.NewPlayerSystem(g.Player, opts.Level, space)
	g.PlayerSystem.OnPortal = g.enterPortal

	g.CombatSystem = system.NewCombatSystem(world.Towers)
	g.PhaseSystem = system.NewPhaseSystem(world, g, g.Dispatcher, logging.For(opts.Log, "phase"))
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.Dispatcher)
	g.RenderSystem = system.NewRenderSystem(world, opts.Level, paths, g.WaveSystem, g.Player)

	g.log.Info().
		Int("balance", g.Currency.Balance()).
		Int("lives", g.Lives.Current()).
		Int64("seed", g.Rng.Seed()).
		Int("best_wave", g.bestWave).
		Msg("game created")
	return g, nil
}

func (g *Game) createPlayer() (*entity.Player, error) {
	pt, err := g.Catalog.Projectile(defs.ProjectileSimple)
	if err != nil {
		return nil, err
	}
	b := entity.NewTowerBuilder().
		WithID(g.World.NewEntity()).
		At(g.Level.PlayerSpawn).
		WithRange(config.PlayerRange).
		WithFireRate(config.PlayerFireRate).
		WithProjectileType(pt).
		WithEnemies(g.World.Enemies).
		WithProjectiles(g.World.Projectiles).
		WithPool(g.Pool).
		WithColor(config.PlayerColor)
	if g.sprites != nil {
		if frames, err := g.sprites.LoadPlayerFrames(config.TowerAnimationColumns); err == nil {
			b.WithSprite(component.NewAnimation(frames, config.AnimationFrameDuration, true))
		} else {
			g.log.Debug().Err(err).Msg("player sprite unavailable")
		}
	}
	t, err := b.Build()
	if err != nil {
		return nil, err
	}
	return entity.NewPlayer(t), nil
}

// Update продвигает партию на один кадр: волна и враги, игрок и башни, снаряды, эффекты.
func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}
	g.World.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	if g.gameOver {
		return
	}
	g.PlayerSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

func (g *Game) Draw(screen *ebiten.Image, face font.Face) {
	g.RenderSystem.Draw(screen)
	g.ProjectileSystem.Draw(screen)
	g.VisualEffectSystem.Draw(screen, face)
}

// StartNextWave переходит в фазу волны. false — волна уже идёт, волн больше нет или игра окончена.
func (g *Game) StartNextWave() bool {
	if g.gameOver {
		return false
	}
	return g.PhaseSystem.SwitchToWaveState()
}

// StartWave реализует interfaces.GameContext.
func (g *Game) StartWave() bool {
	return g.WaveSystem.StartNextWave()
}

// ClearProjectiles реализует interfaces.GameContext.
func (g *Game) ClearProjectiles() {
	g.ProjectileSystem.Clear()
}

func (g *Game) balanceChanged() {
	g.Dispatcher.Dispatch(event.Event{Type: event.BalanceChanged, Data: event.BalanceData{Balance: g.Currency.Balance()}})
}

// enterPortal запоминает переход на другую карту. Бой сбоку не поддерживается, такие порталы только логируются.
func (g *Game) enterPortal(p level.Portal) {
	if g.gameOver {
		return
	}
	g.Dispatcher.Dispatch(event.Event{Type: event.PortalEntered, Data: event.PortalData{Portal: p}})
	if p.Kind != level.PortalMap {
		g.log.Warn().Str("target", p.Target).Str("kind", string(p.Kind)).Msg("portal kind not supported")
		return
	}
	g.log.Info().Str("target", p.Target).Msg("portal entered")
	g.portal = &p
}

// TakePortal возвращает портал, в который вошёл игрок, и сбрасывает его.
func (g *Game) TakePortal() (level.Portal, bool) {
	if g.portal == nil {
		return level.Portal{}, false
	}
	p := *g.portal
	g.portal = nil
	return p, true
}

func (g *Game) loseLives(amount int) {
	if g.gameOver {
		return
	}
	depleted := g.Lives.Lose(amount)
	g.log.Debug().Int("amount", amount).Int("lives", g.Lives.Current()).Msg("lives lost")
	if depleted {
		g.endGame()
	}
}

func (g *Game) endGame() {
	g.gameOver = true
	wave := g.WaveSystem.CurrentWave()
	g.bestWave = g.progress.RecordGame(wave)
	g.log.Info().Int("wave", wave).Int("best_wave", g.bestWave).Msg("game over")
	g.Dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{Wave: wave}})
}

func (g *Game) IsGameOver() bool { return g.gameOver }

func (g *Game) Phase() component.GamePhase { return g.PhaseSystem.Current() }

func (g *Game) Wave() int { return g.WaveSystem.CurrentWave() }

func (g *Game) TotalWaves() int { return g.WaveSystem.TotalWaves() }

// BestWave — лучший результат с учётом текущей партии, если она окончена.
func (g *Game) BestWave() int { return g.bestWave }

// Victory — все волны пройдены, база цела.
func (g *Game) Victory() bool {
	return !g.gameOver && !g.WaveSystem.HasMoreWaves() && g.WaveSystem.IsWaveFinished()
}
