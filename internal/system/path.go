// internal/system/path.go
package system

import (
	"go-wasnowl/internal/level"
	"go-wasnowl/pkg/geom"
)

// PathStrategy задаёт маршрут врагов.
type PathStrategy interface {
	Name() string
	Path() []geom.Vec2
}

// MainPath — основной маршрут по умолчанию.
type MainPath struct{}

var mainPathPoints = []geom.Vec2{
	{X: 0, Y: 0},
	{X: 0, Y: 5},
	{X: 530, Y: 5},
	{X: 530, Y: 410},
	{X: 180, Y: 410},
}

func (MainPath) Name() string { return "Main Path" }

func (MainPath) Path() []geom.Vec2 { return mainPathPoints }

// WaypointPath — маршрут из точек карты.
type WaypointPath struct {
	name   string
	points []geom.Vec2
}

func NewWaypointPath(name string, points []geom.Vec2) WaypointPath {
	return WaypointPath{name: name, points: points}
}

func (p WaypointPath) Name() string      { return p.name }
func (p WaypointPath) Path() []geom.Vec2 { return p.points }

// PathSelector выбирает маршрут для номера волны (с единицы).
type PathSelector interface {
	ForWave(wave int) PathStrategy
}

// LevelPathSelector использует путь карты, если он задан, иначе основной маршрут.
// Пока все волны идут одним маршрутом.
type LevelPathSelector struct {
	strategy PathStrategy
}

func NewPathSelector(l *level.Level) *LevelPathSelector {
	if l != nil && len(l.Path) >= 2 {
		return &LevelPathSelector{strategy: NewWaypointPath("Level Path", l.Path)}
	}
	return &LevelPathSelector{strategy: MainPath{}}
}

func (s *LevelPathSelector) ForWave(wave int) PathStrategy {
	return s.strategy
}
