// internal/state/text.go
package state

import (
	"image/color"

	"go-wasnowl/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// drawCenteredText рисует строку по центру экрана по горизонтали, y — базовая линия.
func drawCenteredText(screen *ebiten.Image, face font.Face, s string, y int, c color.Color) {
	if face == nil {
		return
	}
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, (config.ScreenWidth-w)/2, y, c)
}
