// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go-wasnowl/internal/assets"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/level"
	"go-wasnowl/internal/logging"
	"go-wasnowl/internal/state"
	"go-wasnowl/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const defaultMapPath = "maps/level1.tmx"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("config", "", "path to settings YAML file")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		bootLog := logging.New("info", os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load settings")
	}
	log := logging.New(settings.LogLevel, os.Stderr)

	res, err := loadResources(settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load resources")
	}

	sm := state.NewStateMachine()
	if settings.Game.StartInMenu {
		sm.SetState(state.NewMenuState(sm, res))
	} else {
		gs, err := state.NewGameState(sm, res)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start game")
		}
		sm.SetState(gs)
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal().Err(err).Msg("game loop stopped")
	}
}

func loadResources(settings *config.Settings, log zerolog.Logger) (*state.Resources, error) {
	catalog, err := defs.LoadCatalog(settings.Game.DefsPath)
	if err != nil {
		return nil, err
	}

	font, err := assets.LoadFace(config.HUDFontSize)
	if err != nil {
		return nil, err
	}
	bigFont, err := assets.LoadFace(config.WaveFontSize)
	if err != nil {
		return nil, err
	}

	res := &state.Resources{
		Settings: settings,
		Catalog:  catalog,
		Font:     font,
		BigFont:  bigFont,
		Log:      log,
	}

	if info, err := os.Stat(settings.Assets.Dir); err == nil && info.IsDir() {
		fsys := os.DirFS(settings.Assets.Dir)
		res.Sprites = assets.NewSpriteManager(fsys, logging.For(log, "assets"))
		res.Maps = fsys
		res.Level = loadLevel(fsys, settings.Assets.MapPath, log)
	} else {
		log.Warn().Str("dir", settings.Assets.Dir).Msg("assets directory not found, drawing shapes")
	}

	progress, err := system.OpenProgressStore(settings.SaveName, logging.For(log, "persistence"))
	if err != nil {
		log.Warn().Err(err).Msg("progress will not be saved")
	}
	res.Progress = progress
	return res, nil
}

// loadLevel читает карту; без карты игра идёт на пустом поле по основному маршруту.
func loadLevel(fsys fs.FS, mapPath string, log zerolog.Logger) *level.Level {
	explicit := mapPath != ""
	if !explicit {
		mapPath = defaultMapPath
	}
	l, err := level.Load(fsys, filepath.ToSlash(mapPath))
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			log.Error().Err(err).Str("map", mapPath).Msg("failed to load map")
		}
		return nil
	}
	log.Info().Str("map", mapPath).Int("solids", len(l.Solids)).Int("path_points", len(l.Path)).Msg("map loaded")
	return l
}
