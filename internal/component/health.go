// internal/component/health.go
package component

// Health — очки здоровья врага.
type Health struct {
	Current     float64
	Max         float64
	EnemyTypeID int // нужен для ленивой загрузки спрайтов
}

func NewHealth(max float64, enemyTypeID int) *Health {
	return &Health{Current: max, Max: max, EnemyTypeID: enemyTypeID}
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
// Неположительный урон игнорируется: здоровье никогда не растёт.
func (h *Health) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Ratio — доля оставшегося здоровья.
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func (h *Health) IsDepleted() bool {
	return h.Current <= 0
}
