// internal/state/resources.go
package state

import (
	"errors"
	"io/fs"

	"go-wasnowl/internal/app"
	"go-wasnowl/internal/assets"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/level"
	"go-wasnowl/internal/system"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
)

var ErrNoMaps = errors.New("maps are not available")

// Resources — общие для всех состояний данные, загружаются один раз при старте.
type Resources struct {
	Settings *config.Settings
	Catalog  *defs.Catalog
	Level    *level.Level
	Sprites  *assets.SpriteManager // может быть nil
	Maps     fs.FS                 // откуда порталы загружают карты, может быть nil
	Progress *system.ProgressStore
	Font     font.Face
	BigFont  font.Face
	Log      zerolog.Logger
}

// NewGame создаёт новую партию с текущими настройками.
func (r *Resources) NewGame() (*app.Game, error) {
	opts := app.Options{
		Catalog:  r.Catalog,
		Level:    r.Level,
		Sprites:  r.Sprites,
		Progress: r.Progress,
		Log:      r.Log,
	}
	if r.Settings != nil {
		opts.StartingBalance = r.Settings.Game.StartingBalance
		opts.BaseHealth = r.Settings.Game.BaseHealth
		opts.Seed = r.Settings.Game.Seed
	}
	return app.NewGame(opts)
}

// LoadLevel читает карту, на которую ведёт портал.
func (r *Resources) LoadLevel(path string) (*level.Level, error) {
	if r.Maps == nil {
		return nil, ErrNoMaps
	}
	return level.Load(r.Maps, path)
}
