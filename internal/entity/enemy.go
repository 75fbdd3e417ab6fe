// internal/entity/enemy.go
package entity

import (
	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/types"
	"go-wasnowl/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
)

// FrameLoader загружает кадры анимации из листа спрайтов.
type FrameLoader interface {
	LoadAnimationFrames(entityID int, animation string, cols, rows int) ([]*ebiten.Image, error)
}

// EnemySpec — параметры создания врага.
type EnemySpec struct {
	TypeID    int
	Start     geom.Vec2
	Path      []geom.Vec2
	Speed     float64
	MaxHealth float64
	Walk      *component.Animation
	Death     *component.Animation
	Frames    FrameLoader // может быть nil: тогда второй этап ходьбы не загружается
}

// Enemy — враг, составленный из движения, здоровья и аниматора.
type Enemy struct {
	ID       types.EntityID
	Movement *component.Movement
	Health   *component.Health
	Animator *component.Animator

	frames     FrameLoader
	walk2Tried bool
	reachedEnd bool
	log        zerolog.Logger
}

func NewEnemy(id types.EntityID, spec EnemySpec, log zerolog.Logger) *Enemy {
	return &Enemy{
		ID:       id,
		Movement: component.NewMovement(spec.Start, spec.Path, spec.Speed),
		Health:   component.NewHealth(spec.MaxHealth, spec.TypeID),
		Animator: component.NewAnimator(spec.Walk, spec.Death),
		frames:   spec.Frames,
		log:      log,
	}
}

// Update двигает врага, продвигает анимацию и обрабатывает переходы состояний.
func (e *Enemy) Update(deltaTime float64) {
	if e.IsDead() {
		return
	}
	e.Movement.Update(deltaTime)
	e.Animator.Update(deltaTime)

	if e.IsAlive() && e.Movement.HasReachedEnd() {
		// Дошедший до конца пути враг умирает через обычную цепочку DEATH -> DEAD.
		e.reachedEnd = true
		e.TakeDamage(e.Health.Max)
	}

	if e.Animator.DeathFinished() {
		e.Animator.SetState(component.AnimDead)
	}
}

// TakeDamage наносит урон живому врагу. Урон по умирающему игнорируется.
func (e *Enemy) TakeDamage(amount float64) {
	if !e.IsAlive() {
		return
	}
	e.Health.TakeDamage(amount)

	if e.Health.IsDepleted() {
		e.Movement.Stop()
		e.Animator.SetState(component.AnimDeath)
		return
	}
	if e.Animator.State() == component.AnimWalk && e.Health.Ratio() < config.Walk2HealthRatio {
		if e.ensureWalk2() {
			e.Animator.SetState(component.AnimWalk2)
		}
	}
}

// ensureWalk2 лениво загружает вторую анимацию ходьбы. Попытка делается один раз.
func (e *Enemy) ensureWalk2() bool {
	if e.Animator.Walk2 != nil {
		return true
	}
	if e.walk2Tried || e.frames == nil {
		return false
	}
	e.walk2Tried = true

	frames, err := e.frames.LoadAnimationFrames(e.Health.EnemyTypeID, component.SheetWalk2, config.EnemyAnimationColumns, 1)
	if err != nil {
		e.log.Debug().Err(err).Int("enemy_type", e.Health.EnemyTypeID).Msg("walk2 animation unavailable")
		return false
	}
	e.Animator.Walk2 = component.NewAnimation(frames, config.AnimationFrameDuration, true)
	return e.Animator.Walk2 != nil
}

// IsAlive — враг ещё не начал умирать (здоровье больше нуля).
func (e *Enemy) IsAlive() bool {
	return e.Animator.State() < component.AnimDeath
}

// IsDead — анимация смерти закончена, врага можно убирать.
func (e *Enemy) IsDead() bool {
	return e.Animator.State() == component.AnimDead
}

// ReachedEnd — враг умер, дойдя до конца пути, а не от урона.
func (e *Enemy) ReachedEnd() bool {
	return e.reachedEnd
}

func (e *Enemy) Position() geom.Vec2 {
	return e.Movement.Position
}

func (e *Enemy) TypeID() int {
	return e.Health.EnemyTypeID
}

// Draw рисует текущий кадр; без спрайтов — круг.
func (e *Enemy) Draw(screen *ebiten.Image) {
	if e.IsDead() {
		return
	}
	pos := e.Position()
	anim := e.Animator.Current()
	if frame := anim.Frame(e.Animator.StateTime); frame != nil {
		drawCentered(screen, frame, pos, config.EnemySize)
		return
	}
	c := config.EnemyColor
	if !e.IsAlive() {
		c = config.DyingEnemyColor
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.EnemyRadius, c, true)
}

// drawCentered рисует изображение размером size x size с центром в pos.
func drawCentered(screen, img *ebiten.Image, pos geom.Vec2, size float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(pos.X-size/2, pos.Y-size/2)
	screen.DrawImage(img, op)
}
