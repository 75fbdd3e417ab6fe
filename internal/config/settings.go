// internal/config/settings.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix — префикс переменных окружения, переопределяющих настройки (WASNOWL_GAME_SEED и т.п.).
const EnvPrefix = "WASNOWL"

// WindowSettings — параметры окна.
type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// GameSettings — стартовые параметры партии.
type GameSettings struct {
	StartingBalance int    `mapstructure:"startingBalance"`
	BaseHealth      int    `mapstructure:"baseHealth"`
	Seed            int64  `mapstructure:"seed"`
	StartInMenu     bool   `mapstructure:"startInMenu"`
	DefsPath        string `mapstructure:"defsPath"` // пусто — встроенные определения
}

// AssetSettings — где искать спрайты и карту.
type AssetSettings struct {
	Dir     string `mapstructure:"dir"`
	MapPath string `mapstructure:"mapPath"` // относительно Dir, пусто — путь по умолчанию
}

// Settings — всё, что можно настроить без перекомпиляции.
type Settings struct {
	LogLevel string         `mapstructure:"logLevel"`
	SaveName string         `mapstructure:"saveName"`
	Window   WindowSettings `mapstructure:"window"`
	Game     GameSettings   `mapstructure:"game"`
	Assets   AssetSettings  `mapstructure:"assets"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("saveName", "wasnowl")

	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.title", "Wasnowl Tower Defense")

	v.SetDefault("game.startingBalance", StartingBalance)
	v.SetDefault("game.baseHealth", BaseHealth)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.startInMenu", true)
	v.SetDefault("game.defsPath", "")

	v.SetDefault("assets.dir", "assets")
	v.SetDefault("assets.mapPath", "")
}

// LoadSettings читает настройки: значения по умолчанию, затем YAML-файл (если path не пуст),
// затем переменные окружения с префиксом WASNOWL_.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate отбрасывает заведомо неиграбельные значения.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Game.StartingBalance < 0 {
		return fmt.Errorf("starting balance must not be negative, got %d", s.Game.StartingBalance)
	}
	if s.Game.BaseHealth <= 0 {
		return fmt.Errorf("base health must be positive, got %d", s.Game.BaseHealth)
	}
	return nil
}
