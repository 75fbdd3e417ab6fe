// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WaveProgressIndicator отображает ход текущей волны и пройденные волны.
type WaveProgressIndicator struct {
	X, Y float32
}

const (
	progressBarWidth  = 118
	progressBarHeight = 12
	waveRectWidth     = 16
	waveRectHeight    = 12
	waveRectGap       = 9
	borderWidth       = 1
)

var (
	progressFillColor = color.RGBA{70, 100, 120, 220}
	borderColor       = color.RGBA{255, 255, 255, 255}
)

func NewWaveProgressIndicator(x, y float32) *WaveProgressIndicator {
	return &WaveProgressIndicator{X: x, Y: y}
}

// WaveProgress — доля врагов волны, которых уже нет на поле, в [0, 1].
func WaveProgress(total, remainingToSpawn, alive int) float64 {
	if total <= 0 {
		return 0
	}
	done := total - remainingToSpawn - alive
	if done < 0 {
		done = 0
	}
	r := float64(done) / float64(total)
	if r > 1 {
		r = 1
	}
	return r
}

// Draw отрисовывает индикатор.
func (i *WaveProgressIndicator) Draw(screen *ebiten.Image, completed, totalWaves int, progress float64) {
	// 1. Обводка полосы волны
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillWidth := float32(float64(progressBarWidth-borderWidth*2) * progress)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, progressBarHeight-borderWidth*2, progressFillColor, true)
	}

	// 3. Прямоугольники пройденных волн
	rectY := i.Y + progressBarHeight + 10 // 10 пикселей отступ вниз
	for j := 0; j < totalWaves; j++ {
		rectX := i.X + float32(j)*(waveRectWidth+waveRectGap)
		vector.StrokeRect(screen, rectX, rectY, waveRectWidth, waveRectHeight, borderWidth, borderColor, true)
		if j < completed {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, waveRectWidth-borderWidth*2, waveRectHeight-borderWidth*2, progressFillColor, true)
		}
	}
}
