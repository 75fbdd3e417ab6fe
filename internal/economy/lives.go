// internal/economy/lives.go
package economy

// Lives — здоровье базы игрока.
type Lives struct {
	current int
	max     int
}

func NewLives(max int) *Lives {
	return &Lives{current: max, max: max}
}

func (l *Lives) Current() int { return l.current }
func (l *Lives) Max() int     { return l.max }

// Lose отнимает amount и сообщает, закончились ли жизни.
func (l *Lives) Lose(amount int) bool {
	if amount > 0 {
		l.current -= amount
		if l.current < 0 {
			l.current = 0
		}
	}
	return l.IsDepleted()
}

func (l *Lives) IsDepleted() bool {
	return l.current <= 0
}
