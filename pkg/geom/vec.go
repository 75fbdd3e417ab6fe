// pkg/geom/vec.go
package geom

import "math"

// Vec2 — точка или вектор на плоскости мира (пиксели).
type Vec2 struct {
	X, Y float64
}

// V — короткий конструктор.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len возвращает длину вектора.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist возвращает расстояние между двумя точками.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Normalized возвращает единичный вектор того же направления.
// Для нулевого вектора возвращается нулевой вектор.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp ограничивает значение отрезком [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
