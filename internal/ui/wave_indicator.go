// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var bossWaveColor = color.RGBA{220, 40, 40, 255}

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны. X — центр надписи.
func NewWaveIndicator(x, y float32, c color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            c,
		OutlineColor:     color.RGBA{255, 255, 255, 255},
		OutlineThickness: 2, // Явная толщина обводки
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// waveColor — последняя волна и каждая десятая выделяются красным.
func (i *WaveIndicator) waveColor(waveNumber, totalWaves int) color.RGBA {
	if waveNumber == totalWaves || waveNumber%10 == 0 {
		return bossWaveColor
	}
	return i.Color
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber, totalWaves int, face font.Face) {
	if waveNumber <= 0 || face == nil {
		return
	}

	s := toRoman(waveNumber)
	textColor := i.waveColor(waveNumber, totalWaves)

	// Центрируем текст
	bounds := text.BoundString(face, s)
	textX := int(i.X) - bounds.Dx()/2
	textY := int(i.Y) + bounds.Dy()

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, s, face, textX+x, textY+y, i.OutlineColor)
		}
	}

	// Рисуем основной текст
	text.Draw(screen, s, face, textX, textY, textColor)
}
