// internal/defs/types.go
package defs

// TowerType identifies a placeable tower kind.
type TowerType string

const (
	TowerWall   TowerType = "WALL"
	TowerBasic  TowerType = "BASIC"
	TowerSlow   TowerType = "SLOW"
	TowerSniper TowerType = "SNIPER"
)

// EnemyType identifies an enemy kind.
type EnemyType string

const (
	EnemyBasic EnemyType = "BASIC"
	EnemyFast  EnemyType = "FAST"
	EnemyTank  EnemyType = "TANK"
)
