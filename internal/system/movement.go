// internal/system/movement.go
package system

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
)

// MovementSystem advances enemies along their route snapshots.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(dt float64) {
	for _, id := range s.ecs.SortedEnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if enemy.ReachedEnd {
			continue
		}
		if health, ok := s.ecs.Healths[id]; ok && health.Value <= 0 {
			continue
		}
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		path := s.ecs.Paths[id]
		if pos == nil || vel == nil || path == nil {
			continue
		}
		if path.CurrentIndex >= len(path.Points) {
			enemy.ReachedEnd = true
			continue
		}

		tx, ty := CellCenter(path.Points[path.CurrentIndex])
		dx := tx - pos.X
		dy := ty - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		if dist < config.WaypointEpsilon {
			path.CurrentIndex++
			if path.CurrentIndex >= len(path.Points) {
				enemy.ReachedEnd = true
			}
			continue
		}

		speed := vel.Speed
		if slow, ok := s.ecs.SlowEffects[id]; ok {
			speed *= slow.Multiplier
		}
		step := speed * dt
		pos.X += (dx / dist) * step
		pos.Y += (dy / dist) * step
	}
}
