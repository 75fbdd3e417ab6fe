// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-wasnowl/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator показывает фазу игры. Клик по нему в фазе строительства запускает волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.IndicatorStroke, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick запускает короткую пульсацию
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
