// internal/event/types.go
package event

const (
	EnemyKilled     EventType = "EnemyKilled"     // Data: types.EntityID
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Data: types.EntityID
	WaveEnded       EventType = "WaveEnded"       // Data: wave number (int)
	TowerPlaced     EventType = "TowerPlaced"     // Data: gridmap.Point
	TowerRemoved    EventType = "TowerRemoved"    // Data: gridmap.Point
	GameOver        EventType = "GameOver"
)
