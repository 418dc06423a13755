// internal/component/enemy.go
package component

import "go-grid-defense/internal/defs"

// Enemy marks an entity as an enemy and carries its per-instance state.
type Enemy struct {
	Type       defs.EnemyType
	Reward     int
	ReachedEnd bool
}
