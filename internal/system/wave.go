// internal/system/wave.go
package system

import (
	"errors"

	"go-wasnowl/internal/component"
	"go-wasnowl/internal/config"
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/economy"
	"go-wasnowl/internal/entity"
	"go-wasnowl/internal/event"
	"go-wasnowl/internal/utils"
	"go-wasnowl/pkg/geom"

	"github.com/rs/zerolog"
)

var ErrMissingDependency = errors.New("system: missing dependency")

// EnemySprites даёт врагам анимации. Может отсутствовать: тогда враги рисуются кругами.
type EnemySprites interface {
	entity.FrameLoader
	EnemyAnimation(entityID int, animation string, cols int, frameDuration float64, loop bool) *component.Animation
}

// WaveConfig — зависимости WaveSystem.
type WaveConfig struct {
	World      *entity.World
	Catalog    *defs.Catalog
	Currency   *economy.CurrencyManager
	Paths      PathSelector
	Sprites    EnemySprites      // необязательно
	RNG        *utils.PRNGService
	Dispatcher *event.Dispatcher // необязательно
	Log        zerolog.Logger
}

// WaveSystem создаёт волны врагов, обновляет их и раздаёт награды и потери жизней.
type WaveSystem struct {
	world      *entity.World
	catalog    *defs.Catalog
	currency   *economy.CurrencyManager
	paths      PathSelector
	sprites    EnemySprites
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	log        zerolog.Logger

	// OnMoneyChanged вызывается после начисления награды. Может быть nil.
	OnMoneyChanged func()
	// OnLifeLost получает урон базе от врага, дошедшего до конца. Может быть nil.
	OnLifeLost func(amount int)

	currentWave int
	queue       []int
	path        []geom.Vec2
	spawnTimer  float64
	spawned     int
	toSpawn     int
	cleared     bool
}

func NewWaveSystem(cfg WaveConfig) (*WaveSystem, error) {
	if cfg.World == nil || cfg.Catalog == nil || cfg.Currency == nil || cfg.Paths == nil || cfg.RNG == nil {
		return nil, ErrMissingDependency
	}
	return &WaveSystem{
		world:      cfg.World,
		catalog:    cfg.Catalog,
		currency:   cfg.Currency,
		paths:      cfg.Paths,
		sprites:    cfg.Sprites,
		rng:        cfg.RNG,
		dispatcher: cfg.Dispatcher,
		log:        cfg.Log,
		cleared:    true,
	}, nil
}

// StartNextWave запускает следующую волну. Когда волны закончились, ничего не делает и возвращает false.
func (s *WaveSystem) StartNextWave() bool {
	waves := s.catalog.Waves()
	if s.currentWave >= len(waves) {
		s.log.Info().Int("wave", s.currentWave).Msg("all waves completed")
		return false
	}

	def := waves[s.currentWave]
	s.world.Enemies.Clear()
	s.queue = s.buildQueue(def)
	s.spawned = 0
	s.toSpawn = len(s.queue)
	s.spawnTimer = 0
	s.cleared = false
	s.currentWave++

	strategy := s.paths.ForWave(s.currentWave)
	s.path = strategy.Path()

	s.log.Info().
		Int("wave", s.currentWave).
		Int("enemies", s.toSpawn).
		Str("path", strategy.Name()).
		Msg("wave started")
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: s.currentWave}})
	return true
}

// buildQueue строит очередь типов врагов: блоками по порядку или случайно по весам.
func (s *WaveSystem) buildQueue(def defs.WaveDefinition) []int {
	queue := make([]int, 0, def.Size())
	if len(def.Blocks) > 0 {
		for _, b := range def.Blocks {
			for i := 0; i < b.Count; i++ {
				queue = append(queue, b.EnemyID)
			}
		}
		return queue
	}
	for i := 0; i < def.Count; i++ {
		queue = append(queue, s.rng.ChooseWeighted(def.Enemies))
	}
	return queue
}

// Update создаёт врагов по таймеру, обновляет живых и убирает мёртвых.
func (s *WaveSystem) Update(deltaTime float64) {
	if s.spawned < s.toSpawn {
		s.spawnTimer += deltaTime
		if s.spawnTimer >= config.SpawnInterval {
			s.spawnTimer = 0
			s.spawnEnemy(s.queue[s.spawned])
			s.spawned++
		}
	}

	enemies := s.world.Enemies
	for i := enemies.Len() - 1; i >= 0; i-- {
		e := enemies.At(i)
		e.Update(deltaTime)
		if !e.IsDead() {
			continue
		}
		if e.ReachedEnd() {
			s.onReachedEnd(e)
		} else {
			s.onKilled(e)
		}
		enemies.RemoveAt(i)
	}

	if !s.cleared && s.IsWaveFinished() {
		s.cleared = true
		s.log.Info().Int("wave", s.currentWave).Msg("wave cleared")
		s.dispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: s.currentWave}})
	}
}

func (s *WaveSystem) onReachedEnd(e *entity.Enemy) {
	damage := s.catalog.LifeDamage(e.TypeID())
	if s.OnLifeLost != nil {
		s.OnLifeLost(damage)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyData{
		EnemyTypeID: e.TypeID(),
		Position:    e.Position(),
		LifeDamage:  damage,
	}})
}

func (s *WaveSystem) onKilled(e *entity.Enemy) {
	reward := s.catalog.Reward(e.TypeID())
	s.currency.Add(reward)
	if s.OnMoneyChanged != nil {
		s.OnMoneyChanged()
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
		EnemyTypeID: e.TypeID(),
		Position:    e.Position(),
		Reward:      reward,
	}})
}

func (s *WaveSystem) spawnEnemy(typeID int) {
	health, speed := float64(config.EnemyHealth), config.EnemySpeed
	if def, ok := s.catalog.Enemy(typeID); ok {
		health, speed = def.Health, def.Speed
	} else {
		s.log.Warn().Int("enemy_type", typeID).Msg("enemy definition not found, using defaults")
	}

	start := geom.Vec2{}
	if len(s.path) > 0 {
		start = s.path[0]
	}

	spec := entity.EnemySpec{
		TypeID:    typeID,
		Start:     start,
		Path:      s.path,
		Speed:     speed,
		MaxHealth: health,
	}
	if s.sprites != nil {
		spec.Walk = s.sprites.EnemyAnimation(typeID, component.SheetWalk, config.EnemyAnimationColumns, config.AnimationFrameDuration, true)
		spec.Death = s.sprites.EnemyAnimation(typeID, component.SheetDeath, config.EnemyAnimationColumns, config.AnimationFrameDuration, false)
		spec.Frames = s.sprites
	}

	e := entity.NewEnemy(s.world.NewEntity(), spec, s.log)
	s.world.Enemies.Add(e)
	s.log.Debug().Int("enemy_type", typeID).Int("spawned", s.spawned+1).Int("total", s.toSpawn).Msg("enemy spawned")
}

// IsWaveFinished — все враги волны появились и ни одного не осталось.
func (s *WaveSystem) IsWaveFinished() bool {
	return s.world.Enemies.Len() == 0 && s.spawned == s.toSpawn
}

// CurrentWave — номер текущей волны с единицы, 0 до первой.
func (s *WaveSystem) CurrentWave() int {
	return s.currentWave
}

func (s *WaveSystem) TotalWaves() int {
	return len(s.catalog.Waves())
}

func (s *WaveSystem) HasMoreWaves() bool {
	return s.currentWave < len(s.catalog.Waves())
}

// SpawnQueue возвращает копию очереди текущей волны.
func (s *WaveSystem) SpawnQueue() []int {
	return append([]int(nil), s.queue...)
}

// Remaining — сколько врагов ещё не появилось.
func (s *WaveSystem) Remaining() int {
	return s.toSpawn - s.spawned
}
