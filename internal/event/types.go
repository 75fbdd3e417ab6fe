// internal/event/types.go
package event

import (
	"go-wasnowl/internal/defs"
	"go-wasnowl/internal/level"
	"go-wasnowl/pkg/geom"
)

const (
	WaveStarted     EventType = "WaveStarted"     // Волна началась, Data: WaveData
	WaveCleared     EventType = "WaveCleared"     // Все враги волны появились и исчезли, Data: WaveData
	EnemyKilled     EventType = "EnemyKilled"     // Враг убит башнями, Data: EnemyData
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до конца пути, Data: EnemyData
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена, Data: TowerData
	GameOver        EventType = "GameOver"        // База разрушена, Data: WaveData
	BalanceChanged  EventType = "BalanceChanged"  // Изменился баланс, Data: BalanceData
	PortalEntered   EventType = "PortalEntered"   // Игрок зашёл в портал, Data: PortalData
)

// WaveData — номер волны (с единицы).
type WaveData struct {
	Wave int
}

// EnemyData описывает исчезнувшего врага.
type EnemyData struct {
	EnemyTypeID int
	Position    geom.Vec2
	Reward      int // для EnemyKilled
	LifeDamage  int // для EnemyReachedEnd
}

// TowerData описывает построенную башню.
type TowerData struct {
	Kind     defs.TowerKind
	Position geom.Vec2
	Cost     int
}

type BalanceData struct {
	Balance int
}

type PortalData struct {
	Portal level.Portal
}
