// internal/level/collision.go
package level

import "github.com/solarlune/resolv"

// SolidTag — тег препятствий в пространстве столкновений.
const SolidTag = "solid"

// NewSpace строит пространство resolv со всеми препятствиями карты.
func NewSpace(l *Level, cellSize int) *resolv.Space {
	space := resolv.NewSpace(int(l.Width), int(l.Height), cellSize, cellSize)
	for _, r := range l.Solids {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, SolidTag)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}
	return space
}
