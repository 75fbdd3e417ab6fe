// internal/system/visual_effect.go
package system

import (
	"fmt"
	"image/color"

	"go-wasnowl/internal/config"
	"go-wasnowl/internal/event"
	"go-wasnowl/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// FloatingText — всплывающая надпись над убитым врагом.
type FloatingText struct {
	Text   string
	Origin geom.Vec2
	Color  color.RGBA

	rise     *gween.Tween
	fade     *gween.Tween
	offset   float32
	alpha    float32
	finished bool
}

func newFloatingText(s string, origin geom.Vec2, c color.RGBA) *FloatingText {
	dur := float32(config.FloatingTextDuration)
	return &FloatingText{
		Text:   s,
		Origin: origin,
		Color:  c,
		rise:   gween.New(0, config.FloatingTextRise, dur, ease.OutQuad),
		fade:   gween.New(1, 0, dur, ease.InQuad),
		alpha:  1,
	}
}

func (f *FloatingText) update(deltaTime float64) {
	dt := float32(deltaTime)
	var riseDone, fadeDone bool
	f.offset, riseDone = f.rise.Update(dt)
	f.alpha, fadeDone = f.fade.Update(dt)
	f.finished = riseDone && fadeDone
}

// Position — текущая точка надписи (мир с осью Y вниз, текст поднимается).
func (f *FloatingText) Position() geom.Vec2 {
	return geom.V(f.Origin.X, f.Origin.Y-float64(f.offset))
}

func (f *FloatingText) Alpha() float32 { return f.alpha }

func (f *FloatingText) Finished() bool { return f.finished }

// VisualEffectSystem показывает награды за убитых врагов.
type VisualEffectSystem struct {
	texts []*FloatingText
}

func NewVisualEffectSystem(d *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{}
	if d != nil {
		d.Subscribe(event.EnemyKilled, s)
	}
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyData)
	if !ok || data.Reward <= 0 {
		return
	}
	s.texts = append(s.texts, newFloatingText(fmt.Sprintf("+%d", data.Reward), data.Position, config.RewardTextColor))
}

// Update двигает надписи и убирает завершённые.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	alive := s.texts[:0]
	for _, t := range s.texts {
		t.update(deltaTime)
		if !t.finished {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(s.texts); i++ {
		s.texts[i] = nil
	}
	s.texts = alive
}

func (s *VisualEffectSystem) Texts() []*FloatingText {
	return s.texts
}

func (s *VisualEffectSystem) Clear() {
	s.texts = nil
}

func (s *VisualEffectSystem) Draw(screen *ebiten.Image, face font.Face) {
	if face == nil {
		return
	}
	for _, t := range s.texts {
		c := t.Color
		c.A = uint8(float32(c.A) * t.alpha)
		pos := t.Position()
		w := text.BoundString(face, t.Text).Dx()
		text.Draw(screen, t.Text, face, int(pos.X)-w/2, int(pos.Y), c)
	}
}
