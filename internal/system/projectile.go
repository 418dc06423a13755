// internal/system/projectile.go
package system

import (
	"image/color"
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
)

// ProjectileSystem advances in-flight shots and resolves their collisions.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Fire spawns a projectile from origin toward target. The velocity vector
// is computed once here and never re-aimed. A zero damage payload makes
// the projectile a pure visual.
func (s *ProjectileSystem) Fire(origin, target component.Position, speed float64, damage int, c color.RGBA) types.EntityID {
	dx := target.X - origin.X
	dy := target.Y - origin.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	proj := &component.Projectile{
		TargetX: target.X,
		TargetY: target.Y,
		Speed:   speed,
		Damage:  damage,
		Color:   c,
	}
	if dist > 0 {
		proj.VX = dx / dist * speed
		proj.VY = dy / dist * speed
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
	s.ecs.Projectiles[id] = proj
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  c,
		Radius: config.ProjectileRadius,
	}
	return id
}

func (s *ProjectileSystem) Update(dt float64) {
	for _, id := range s.ecs.SortedProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		pos.X += proj.VX * dt
		pos.Y += proj.VY * dt

		if s.collide(id, proj, pos) {
			continue
		}

		// Reached the captured target point: the projectile would
		// overshoot it on the next step.
		dx := proj.TargetX - pos.X
		dy := proj.TargetY - pos.Y
		if math.Sqrt(dx*dx+dy*dy) < proj.Speed {
			s.ecs.RemoveEntity(id)
		}
	}
}

// collide resolves at most one hit: the first live enemy (in ID order)
// whose circle overlaps the projectile's.
func (s *ProjectileSystem) collide(id types.EntityID, proj *component.Projectile, pos *component.Position) bool {
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		if health, ok := s.ecs.Healths[enemyID]; !ok || health.Value <= 0 {
			continue
		}
		enemyPos := s.ecs.Positions[enemyID]
		if enemyPos == nil {
			continue
		}
		dx := enemyPos.X - pos.X
		dy := enemyPos.Y - pos.Y
		if math.Sqrt(dx*dx+dy*dy) < config.ProjectileRadius+config.EnemyRadius {
			if proj.Damage > 0 {
				ApplyDamage(s.ecs, enemyID, proj.Damage)
			}
			s.ecs.RemoveEntity(id)
			return true
		}
	}
	return false
}
