// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	StartingBalance = 50
	BaseHealth      = 100 // Здоровье базы игрока

	EnemySpeed           = 50.0
	EnemyHealth          = 100
	EnemySize            = 32.0
	EnemyRadius          = 10.0 // Радиус круга-заглушки без спрайта
	WaypointSnapDistance = 1.0
	Walk2HealthRatio     = 0.5

	SpawnInterval = 1.5 // секунд между появлением врагов

	ProjectileImpactDistance = 5.0
	RicochetRange            = 100.0
	RicochetMaxBounces       = 3

	DefaultTowerRange    = 150.0
	DefaultTowerFireRate = 1.0
	TowerMinSpacing      = 32.0 // Башни ближе этого расстояния считаются перекрывающимися
	TowerSize            = 32.0

	PlayerSpeed    = 180.0
	PlayerSize     = 32.0
	PlayerRange    = 150.0
	PlayerFireRate = 1.0

	AnimationFrameDuration     = 0.1
	EnemyAnimationColumns      = 6
	ProjectileAnimationColumns = 2
	TowerAnimationColumns      = 4

	FloatingTextDuration = 0.8
	FloatingTextRise     = 24.0

	CollisionCellSize = 16

	HUDFontSize     = 16
	WaveFontSize    = 28
	IndicatorOffset = 30
	IndicatorRadius = 10.0
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	PathColor           = color.RGBA{70, 100, 120, 220}
	WallColor           = color.RGBA{150, 70, 70, 220}
	PortalColor         = color.RGBA{140, 90, 220, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDarkColor       = color.RGBA{20, 20, 30, 255}
	RewardTextColor     = color.RGBA{255, 215, 0, 255}
	BuildStateColor     = color.RGBA{70, 130, 180, 220}
	WaveStateColor      = color.RGBA{220, 60, 60, 220}
	IndicatorStroke     = color.RGBA{240, 240, 240, 255}
	EnemyColor          = color.RGBA{200, 40, 40, 255}
	DyingEnemyColor     = color.RGBA{90, 20, 20, 200}
	PlayerColor         = color.RGBA{50, 205, 50, 255}
	TowerStrokeColor    = color.RGBA{255, 255, 255, 255}
	RangePreviewColor   = color.RGBA{255, 255, 0, 60}
	InvalidPreviewColor = color.RGBA{255, 0, 0, 90}
	StrokeWidth         = 2.0
	TowerColors         = []color.RGBA{
		{50, 100, 255, 255}, // SIMPLE
		{255, 140, 0, 255},  // AOE
		{180, 50, 230, 255}, // RICOCHET
	}
	ProjectileColors = []color.RGBA{
		{240, 240, 240, 255}, // SIMPLE
		{255, 170, 60, 255},  // AOE
		{255, 90, 0, 255},    // AOE_STRONG
		{160, 220, 255, 255}, // RICOCHET
	}
)
