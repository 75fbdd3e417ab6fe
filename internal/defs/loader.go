// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/defs.yaml
var defaultDefs []byte

var (
	ErrUnknownProjectile = errors.New("unknown projectile kind")
	ErrUnknownTower      = errors.New("unknown tower type")
	ErrInvalidCatalog    = errors.New("invalid catalog")
)

type projectileDTO struct {
	Kind            ProjectileKind `yaml:"kind"`
	Damage          float64        `yaml:"damage"`
	Speed           float64        `yaml:"speed"`
	ExplosionRadius float64        `yaml:"explosionRadius"`
	AOE             bool           `yaml:"aoe"`
	Size            float64        `yaml:"size"`
}

type catalogFile struct {
	Projectiles []projectileDTO   `yaml:"projectiles"`
	Towers      []TowerType       `yaml:"towers"`
	Enemies     []EnemyDefinition `yaml:"enemies"`
	Waves       []WaveDefinition  `yaml:"waves"`
}

// Catalog — все статические определения игры. После загрузки не изменяется.
type Catalog struct {
	projectiles map[ProjectileKind]*ProjectileType
	towers      []TowerType
	enemies     map[int]EnemyDefinition
	waves       []WaveDefinition
}

// LoadCatalog читает каталог из YAML-файла. Пустой путь — встроенные определения.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultDefs)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog возвращает встроенный каталог.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultDefs)
}

// ParseCatalog разбирает и проверяет YAML-каталог.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	c := &Catalog{
		projectiles: make(map[ProjectileKind]*ProjectileType, len(file.Projectiles)),
		towers:      file.Towers,
		enemies:     make(map[int]EnemyDefinition, len(file.Enemies)),
		waves:       file.Waves,
	}
	for _, p := range file.Projectiles {
		if !p.Kind.Valid() {
			return nil, fmt.Errorf("%w: projectile %q", ErrUnknownProjectile, p.Kind)
		}
		c.projectiles[p.Kind] = NewProjectileType(p.Kind, p.Damage, p.Speed, p.ExplosionRadius, p.AOE, p.Size)
	}
	for _, e := range file.Enemies {
		c.enemies[e.ID] = e
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate проверяет целостность каталога.
func (c *Catalog) Validate() error {
	for _, kind := range ProjectileKinds {
		p, ok := c.projectiles[kind]
		if !ok {
			return fmt.Errorf("%w: projectile %s is not defined", ErrInvalidCatalog, kind)
		}
		if p.Speed() <= 0 {
			return fmt.Errorf("%w: projectile %s has non-positive speed", ErrInvalidCatalog, kind)
		}
	}
	for _, t := range c.towers {
		if _, ok := c.projectiles[t.Projectile]; !ok {
			return fmt.Errorf("%w: tower %s uses undefined projectile %q", ErrInvalidCatalog, t.ID, t.Projectile)
		}
		if t.FireRate <= 0 {
			return fmt.Errorf("%w: tower %s has non-positive fire rate", ErrInvalidCatalog, t.ID)
		}
		if t.Cost < 0 {
			return fmt.Errorf("%w: tower %s has negative cost", ErrInvalidCatalog, t.ID)
		}
	}
	if len(c.waves) == 0 {
		return fmt.Errorf("%w: no waves defined", ErrInvalidCatalog)
	}
	for i, w := range c.waves {
		if w.Size() <= 0 {
			return fmt.Errorf("%w: wave %d is empty", ErrInvalidCatalog, i+1)
		}
		if len(w.Blocks) == 0 {
			total := 0
			for _, e := range w.Enemies {
				total += e.Weight
			}
			if total <= 0 {
				return fmt.Errorf("%w: wave %d has no weighted enemies", ErrInvalidCatalog, i+1)
			}
		}
	}
	return nil
}

// Projectile возвращает разделяемый экземпляр вида снаряда.
func (c *Catalog) Projectile(kind ProjectileKind) (*ProjectileType, error) {
	p, ok := c.projectiles[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectile, kind)
	}
	return p, nil
}

// Towers возвращает типы башен в порядке объявления (порядок клавиш выбора).
func (c *Catalog) Towers() []TowerType {
	return c.towers
}

// Tower ищет тип башни по идентификатору.
func (c *Catalog) Tower(id TowerKind) (TowerType, error) {
	for _, t := range c.towers {
		if t.ID == id {
			return t, nil
		}
	}
	return TowerType{}, fmt.Errorf("%w: %q", ErrUnknownTower, id)
}

// Enemy ищет определение врага.
func (c *Catalog) Enemy(id int) (EnemyDefinition, bool) {
	e, ok := c.enemies[id]
	return e, ok
}

// Reward — награда за убийство врага данного типа.
func (c *Catalog) Reward(enemyID int) int {
	if e, ok := c.enemies[enemyID]; ok {
		return e.Reward
	}
	return DefaultReward
}

// LifeDamage — урон базе от врага данного типа, дошедшего до конца пути.
func (c *Catalog) LifeDamage(enemyID int) int {
	if e, ok := c.enemies[enemyID]; ok && e.LifeDamage > 0 {
		return e.LifeDamage
	}
	return DefaultLifeDamage
}

// Waves возвращает определения волн по порядку.
func (c *Catalog) Waves() []WaveDefinition {
	return c.waves
}
