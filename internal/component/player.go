// internal/component/player.go
package component

import "go-wasnowl/pkg/geom"

// MoveIntent — желаемое направление движения игрока, собранное из ввода.
// Каждая ось в диапазоне [-1, 1].
type MoveIntent struct {
	X, Y float64
}

// Direction — нормализованное направление (диагональ не быстрее осей).
func (m MoveIntent) Direction() geom.Vec2 {
	return geom.V(m.X, m.Y).Normalized()
}

func (m MoveIntent) IsZero() bool {
	return m.X == 0 && m.Y == 0
}
