// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 64
	panelMargin    = 8
	animationSpeed = 6.0
	lineHeight     = 20
	columnSpacing  = 180
)

var (
	panelColor       = color.RGBA{0, 0, 0, 160}
	selectedColor    = color.RGBA{255, 215, 0, 255}
	unaffordableText = color.RGBA{120, 120, 120, 255}
)

// InfoPanel — нижняя панель выбора башни. Выезжает в фазе строительства.
type InfoPanel struct {
	IsVisible bool
	fontFace  font.Face
	currentY  float64
	targetY   float64
	balance   int
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// SetBalance задаёт баланс, по которому башни помечаются доступными.
func (p *InfoPanel) SetBalance(balance int) {
	p.balance = balance
}

func (p *InfoPanel) Balance() int { return p.balance }

// OnEvent обновляет баланс по событию BalanceChanged.
func (p *InfoPanel) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.BalanceData); ok {
		p.balance = data.Balance
	}
}

// Update двигает панель к целевому положению.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}

	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

// Contains — точка попадает в видимую часть панели.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// TowerLabel — подпись башни в панели: клавиша, имя, цена.
func TowerLabel(index int, t defs.TowerType) string {
	return fmt.Sprintf("%d %s %dg", index+1, t.Name, t.Cost)
}

// Draw рисует список башен. Выбранная выделена, недоступные по цене — серые.
func (p *InfoPanel) Draw(screen *ebiten.Image, towers []defs.TowerType, selected int) {
	if !p.IsVisible || p.fontFace == nil {
		return
	}
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, panelHeight, panelColor, false)

	for i, t := range towers {
		c := config.TextLightColor
		if t.Cost > p.balance {
			c = unaffordableText
		}
		if i == selected {
			c = selectedColor
		}
		x := panelMargin + i*columnSpacing
		swatch := config.TowerColors[i%len(config.TowerColors)]
		vector.DrawFilledCircle(screen, float32(x+6), y+panelMargin+lineHeight/2, 6, swatch, true)
		text.Draw(screen, TowerLabel(i, t), p.fontFace, x+18, int(y)+panelMargin+lineHeight-4, c)
	}
	text.Draw(screen, "N/Space: next wave   WASD: move   P: pause", p.fontFace, panelMargin, int(y)+panelMargin+2*lineHeight+4, config.TextLightColor)
}
