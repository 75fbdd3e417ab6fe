// internal/component/movement.go
package component

import (
	"go-wasnowl/internal/config"
	"go-wasnowl/pkg/geom"
)

// Movement — движение по ломаной из путевых точек.
type Movement struct {
	Position     geom.Vec2
	Path         []geom.Vec2
	CurrentIndex int
	Speed        float64
	Moving       bool
}

// NewMovement создаёт компонент движения. Путь не копируется: он разделяется между врагами волны.
func NewMovement(start geom.Vec2, path []geom.Vec2, speed float64) *Movement {
	return &Movement{
		Position: start,
		Path:     path,
		Speed:    speed,
		Moving:   len(path) > 0,
	}
}

// Update продвигает позицию к текущей путевой точке.
func (m *Movement) Update(deltaTime float64) {
	if !m.Moving || m.CurrentIndex >= len(m.Path) {
		return
	}
	target := m.Path[m.CurrentIndex]
	dir := target.Sub(m.Position)
	dist := dir.Len()

	if dist < config.WaypointSnapDistance {
		m.Position = target
		m.CurrentIndex++
		if m.CurrentIndex >= len(m.Path) {
			m.Moving = false
		}
		return
	}

	step := m.Speed * deltaTime
	if step >= dist {
		m.Position = target
		return
	}
	m.Position = m.Position.Add(dir.Scale(step / dist))
}

// HasReachedEnd — все путевые точки пройдены.
func (m *Movement) HasReachedEnd() bool {
	return m.CurrentIndex >= len(m.Path)
}

// Stop останавливает движение (умирающий враг стоит на месте).
func (m *Movement) Stop() {
	m.Moving = false
}
