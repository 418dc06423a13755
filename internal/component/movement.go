// internal/component/movement.go
package component

import "go-grid-defense/pkg/gridmap"

// Position — world position in pixels.
type Position struct {
	X, Y float64
}

// Velocity — base movement speed in pixels per tick.
type Velocity struct {
	Speed float64
}

// Path — the route snapshot an enemy follows and its current waypoint.
// Points is the enemy's own copy, taken at spawn time.
type Path struct {
	Points       []gridmap.Point
	CurrentIndex int
}
