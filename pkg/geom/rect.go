// pkg/geom/rect.go
package geom

// Rect — прямоугольник с левым верхним углом в (X, Y).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains проверяет, лежит ли точка внутри прямоугольника (правая и нижняя границы не включаются).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects проверяет пересечение двух прямоугольников.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
