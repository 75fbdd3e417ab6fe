// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         int     `yaml:"id"`
	Health     float64 `yaml:"health"`
	Speed      float64 `yaml:"speed"`
	Reward     int     `yaml:"reward"`     // золото за убийство
	LifeDamage int     `yaml:"lifeDamage"` // урон базе при прохождении пути
}

const (
	// DefaultLifeDamage — урон базе от врага неизвестного типа.
	DefaultLifeDamage = 1
	// DefaultReward — награда за врага неизвестного типа.
	DefaultReward = 0
)
