// internal/level/level.go
package level

import (
	"fmt"
	"io/fs"
	"math"
	"sort"

	"go-wasnowl/pkg/geom"

	"github.com/lafriks/go-tiled"
)

// Имена слоёв и групп объектов в TMX.
const (
	CollisionLayer = "collision" // тайловый слой и/или группа прямоугольников
	PathGroup      = "path"      // точки пути врагов, свойство order задаёт порядок
	PlayerGroup    = "player"    // точка появления игрока
	PortalGroup    = "portal"    // зоны перехода, свойства target и type
	orderProperty  = "order"
	targetProperty = "target"
	typeProperty   = "type"

	defaultTileSize = 32
)

// PortalKind — куда ведёт портал.
type PortalKind string

const (
	PortalMap    PortalKind = "map"    // другая карта сверху
	PortalCombat PortalKind = "combat" // бой в виде сбоку
)

// Portal — зона, при входе в которую игрок уходит на другую карту.
type Portal struct {
	Bounds geom.Rect
	Target string
	Kind   PortalKind
}

// Level — данные карты, нужные игровой логике.
type Level struct {
	Width, Height float64
	Solids        []geom.Rect
	Path          []geom.Vec2
	PlayerSpawn   geom.Vec2
	Portals       []Portal
	TileSize      float64 // шаг поиска свободного места
}

// Default — пустая карта размером w x h: без препятствий и без собственного пути.
func Default(w, h float64) *Level {
	return &Level{
		Width:       w,
		Height:      h,
		PlayerSpawn: geom.V(w/2, h/2),
		TileSize:    defaultTileSize,
	}
}

// Bounds — прямоугольник мира.
func (l *Level) Bounds() geom.Rect {
	return geom.Rect{W: l.Width, H: l.Height}
}

// Load читает TMX-карту из fsys.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	l := &Level{
		Width:    float64(levelMap.Width) * tileW,
		Height:   float64(levelMap.Height) * tileH,
		TileSize: math.Min(tileW, tileH),
	}
	if l.TileSize <= 0 {
		l.TileSize = defaultTileSize
	}
	l.PlayerSpawn = geom.V(l.Width/2, l.Height/2)

	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				l.Solids = append(l.Solids, geom.Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH})
			}
		}
	}

	type waypoint struct {
		order int
		pos   geom.Vec2
	}
	var waypoints []waypoint

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case CollisionLayer:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				l.Solids = append(l.Solids, geom.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PathGroup:
			for _, o := range og.Objects {
				waypoints = append(waypoints, waypoint{order: o.Properties.GetInt(orderProperty), pos: geom.V(o.X, o.Y)})
			}
		case PlayerGroup:
			if len(og.Objects) > 0 {
				l.PlayerSpawn = geom.V(og.Objects[0].X, og.Objects[0].Y)
			}
		case PortalGroup:
			for _, o := range og.Objects {
				target := o.Properties.GetString(targetProperty)
				if target == "" || o.Width <= 0 || o.Height <= 0 {
					continue
				}
				kind := PortalKind(o.Properties.GetString(typeProperty))
				if kind != PortalCombat {
					kind = PortalMap
				}
				l.Portals = append(l.Portals, Portal{
					Bounds: geom.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Target: target,
					Kind:   kind,
				})
			}
		}
	}

	sort.SliceStable(waypoints, func(i, j int) bool {
		return waypoints[i].order < waypoints[j].order
	})
	for _, w := range waypoints {
		l.Path = append(l.Path, w.pos)
	}

	return l, nil
}

// Blocked — тело пересекает препятствие или выходит за карту.
func (l *Level) Blocked(body geom.Rect) bool {
	if body.X < 0 || body.Y < 0 || body.X+body.W > l.Width || body.Y+body.H > l.Height {
		return true
	}
	for _, r := range l.Solids {
		if r.Intersects(body) {
			return true
		}
	}
	return false
}

// FreeSpot ищет ближайшую к center позицию, где тело size x size ничего не задевает.
// Обходит квадратные кольца с шагом TileSize до max(Width, Height). Если места нет, возвращает center.
func (l *Level) FreeSpot(center geom.Vec2, size float64) geom.Vec2 {
	body := func(p geom.Vec2) geom.Rect {
		return geom.Rect{X: p.X - size/2, Y: p.Y - size/2, W: size, H: size}
	}
	if !l.Blocked(body(center)) {
		return center
	}
	step := l.TileSize
	if step <= 0 {
		step = defaultTileSize
	}
	radius := math.Max(l.Width, l.Height)
	for r := step; r <= radius; r += step {
		for _, p := range ring(center, r, step) {
			if !l.Blocked(body(p)) {
				return p
			}
		}
	}
	return center
}

// ring — точки на границе квадрата с полустороной r: верх и низ слева направо, затем боковые стороны.
func ring(c geom.Vec2, r, step float64) []geom.Vec2 {
	var pts []geom.Vec2
	for dx := -r; dx <= r; dx += step {
		pts = append(pts, geom.V(c.X+dx, c.Y-r), geom.V(c.X+dx, c.Y+r))
	}
	for dy := -r + step; dy < r; dy += step {
		pts = append(pts, geom.V(c.X-r, c.Y+dy), geom.V(c.X+r, c.Y+dy))
	}
	return pts
}

// PortalAt — первый портал, который пересекает тело.
func (l *Level) PortalAt(body geom.Rect) (Portal, bool) {
	for _, p := range l.Portals {
		if p.Bounds.Intersects(body) {
			return p, true
		}
	}
	return Portal{}, false
}
