// internal/defs/waves.go
package defs

// SpawnBlock — подряд идущие враги одного типа.
type SpawnBlock struct {
	EnemyID int `yaml:"enemy"`
	Count   int `yaml:"count"`
}

// WeightedEnemy — запись таблицы случайного выбора врага.
type WeightedEnemy struct {
	EnemyID int `yaml:"enemy"`
	Weight  int `yaml:"weight"`
}

// WaveDefinition описывает состав одной волны.
// Если заданы Blocks, очередь строится из них по порядку;
// иначе Count врагов выбираются из Enemies по весам.
type WaveDefinition struct {
	Blocks  []SpawnBlock    `yaml:"blocks"`
	Count   int             `yaml:"count"`
	Enemies []WeightedEnemy `yaml:"enemies"`
}

// Size — число врагов в волне.
func (w WaveDefinition) Size() int {
	if len(w.Blocks) == 0 {
		return w.Count
	}
	total := 0
	for _, b := range w.Blocks {
		total += b.Count
	}
	return total
}
