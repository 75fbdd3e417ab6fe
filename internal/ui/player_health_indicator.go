// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 160
	healthBarHeight = 12
)

var (
	healthHighColor  = color.RGBA{60, 110, 220, 255}
	healthLowColor   = color.RGBA{220, 40, 40, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// BaseHealthIndicator отображает здоровье базы.
type BaseHealthIndicator struct {
	X, Y float32
}

func NewBaseHealthIndicator(x, y float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y}
}

// healthColor — синий, пока здоровья больше половины, потом красный.
func healthColor(health, maxHealth int) color.RGBA {
	if health*2 > maxHealth {
		return healthHighColor
	}
	return healthLowColor
}

// Draw рисует полосу здоровья и подпись над ней.
func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int, face font.Face) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, healthEmptyColor, true)
	if maxHealth > 0 && health > 0 {
		w := float32(healthBarWidth-borderWidth*2) * float32(health) / float32(maxHealth)
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, w, healthBarHeight-borderWidth*2, healthColor(health, maxHealth), true)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, borderColor, true)

	if face != nil {
		healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
		tw := text.BoundString(face, healthText).Dx()
		text.Draw(screen, healthText, face, int(i.X)+(healthBarWidth-tw)/2, int(i.Y)-4, borderColor)
	}
}
