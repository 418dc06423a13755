// internal/component/combat.go
package component

import "go-grid-defense/internal/types"

// Health — current and max hit points.
type Health struct {
	Value int
	Max   int
}

// Combat — attack state for a firing tower. TargetID is a non-owning
// handle into the enemy set, re-validated every tick; zero means none.
type Combat struct {
	Range        float64
	Damage       int
	FireRate     float64 // cooldown period in ticks
	FireCooldown float64 // ticks until the next shot
	TargetID     types.EntityID
}
