// internal/component/game_state.go
package component

// GamePhase — фаза партии
type GamePhase int

const (
	BuildPhase GamePhase = iota
	WavePhase
)

func (p GamePhase) String() string {
	if p == WavePhase {
		return "WAVE"
	}
	return "BUILD"
}
