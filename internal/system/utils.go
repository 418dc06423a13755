// internal/system/utils.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/gridmap"
)

// CellCenter returns the world position of a cell's center in pixels.
func CellCenter(p gridmap.Point) (float64, float64) {
	return float64(p.X*config.TileSize) + config.TileSize/2,
		float64(p.Y*config.TileSize) + config.TileSize/2
}

// ApplyDamage subtracts damage from an entity's health, flooring at zero.
// A dead entity takes no further damage.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, damage int) {
	health, ok := ecs.Healths[id]
	if !ok || health.Value <= 0 {
		return
	}
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
}
