// internal/app/snapshots.go
package app

import (
	"image/color"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/gridmap"
)

// Snapshots are plain-value views of the live sets, handed to the
// presentation layer each frame. They carry no references back into the
// simulation, so a renderer cannot bypass the tick driver.

type EnemySnapshot struct {
	ID             types.EntityID
	Type           defs.EnemyType
	X, Y           float64
	HealthFraction float64
	Slowed         bool
	Color          color.RGBA
	Radius         float32
}

type TowerSnapshot struct {
	Cell   gridmap.Point
	Type   defs.TowerType
	X, Y   float64
	Range  float64
	Color  color.RGBA
	Radius float32
}

type ProjectileSnapshot struct {
	X, Y   float64
	Color  color.RGBA
	Radius float32
}

// EnemySnapshots returns the live enemies in ascending ID order.
func (g *Game) EnemySnapshots() []EnemySnapshot {
	out := make([]EnemySnapshot, 0, len(g.ECS.Enemies))
	for _, id := range g.ECS.SortedEnemyIDs() {
		enemy := g.ECS.Enemies[id]
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		rend := g.ECS.Renderables[id]
		if pos == nil || health == nil || rend == nil {
			continue
		}
		frac := 0.0
		if health.Max > 0 {
			frac = float64(health.Value) / float64(health.Max)
		}
		_, slowed := g.ECS.SlowEffects[id]
		out = append(out, EnemySnapshot{
			ID:             id,
			Type:           enemy.Type,
			X:              pos.X,
			Y:              pos.Y,
			HealthFraction: frac,
			Slowed:         slowed,
			Color:          rend.Color,
			Radius:         rend.Radius,
		})
	}
	return out
}

// TowerSnapshots returns the placed towers in ascending ID order.
func (g *Game) TowerSnapshots() []TowerSnapshot {
	out := make([]TowerSnapshot, 0, len(g.ECS.Towers))
	for _, id := range g.ECS.SortedTowerIDs() {
		tower := g.ECS.Towers[id]
		pos := g.ECS.Positions[id]
		rend := g.ECS.Renderables[id]
		if pos == nil || rend == nil {
			continue
		}
		snap := TowerSnapshot{
			Cell:   tower.Cell,
			Type:   tower.Type,
			X:      pos.X,
			Y:      pos.Y,
			Color:  rend.Color,
			Radius: rend.Radius,
		}
		if combat, ok := g.ECS.Combats[id]; ok {
			snap.Range = combat.Range
		}
		out = append(out, snap)
	}
	return out
}

// ProjectileSnapshots returns the in-flight projectiles.
func (g *Game) ProjectileSnapshots() []ProjectileSnapshot {
	out := make([]ProjectileSnapshot, 0, len(g.ECS.Projectiles))
	for _, id := range g.ECS.SortedProjectileIDs() {
		pos := g.ECS.Positions[id]
		rend := g.ECS.Renderables[id]
		if pos == nil || rend == nil {
			continue
		}
		out = append(out, ProjectileSnapshot{X: pos.X, Y: pos.Y, Color: rend.Color, Radius: rend.Radius})
	}
	return out
}

// CellAt exposes grid cell state for the renderer.
func (g *Game) CellAt(p gridmap.Point) (gridmap.CellState, error) {
	return g.Grid.Cell(p)
}
