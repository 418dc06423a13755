// internal/component/tower.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

// Tower — a placed tower and the cell it occupies.
type Tower struct {
	Type defs.TowerType
	Cell gridmap.Point
}
