// internal/economy/currency.go
package economy

// CurrencyManager хранит золото игрока. Баланс не уходит в минус.
type CurrencyManager struct {
	balance int
}

func NewCurrencyManager(starting int) *CurrencyManager {
	if starting < 0 {
		starting = 0
	}
	return &CurrencyManager{balance: starting}
}

func (c *CurrencyManager) Balance() int {
	return c.balance
}

func (c *CurrencyManager) CanAfford(amount int) bool {
	return c.balance >= amount
}

// Spend списывает amount, если хватает денег.
func (c *CurrencyManager) Spend(amount int) bool {
	if amount < 0 || !c.CanAfford(amount) {
		return false
	}
	c.balance -= amount
	return true
}

// Add начисляет amount. Неположительные суммы игнорируются.
func (c *CurrencyManager) Add(amount int) {
	if amount <= 0 {
		return
	}
	c.balance += amount
}
