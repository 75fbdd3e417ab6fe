// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам фаз нужно от игры.
type GameContext interface {
	// StartWave запускает следующую волну, false если волн больше нет.
	StartWave() bool
	ClearProjectiles()
}
