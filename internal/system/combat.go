// internal/system/combat.go
package system

import (
	"math"

	"github.com/charmbracelet/log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
)

// CombatSystem resolves tower targeting, cooldowns and firing. Damage and
// slow effects apply synchronously on fire; the projectile a shot emits is
// a visual, resolved separately by the ProjectileSystem.
type CombatSystem struct {
	ecs         *entity.ECS
	projectiles *ProjectileSystem
	logger      *log.Logger
}

func NewCombatSystem(ecs *entity.ECS, projectiles *ProjectileSystem, logger *log.Logger) *CombatSystem {
	return &CombatSystem{ecs: ecs, projectiles: projectiles, logger: logger}
}

func (s *CombatSystem) Update(dt float64) {
	for _, id := range s.ecs.SortedTowerIDs() {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue // walls carry no combat component
		}
		if combat.FireCooldown > 0 {
			combat.FireCooldown -= dt
		}

		pos := s.ecs.Positions[id]
		s.validateTarget(combat, pos)
		if combat.TargetID == 0 {
			combat.TargetID = s.findNearestEnemy(pos, combat.Range)
		}

		if combat.TargetID != 0 && combat.FireCooldown <= 0 {
			s.fire(id, combat)
		}
	}
}

// validateTarget drops a held target that died or left range.
func (s *CombatSystem) validateTarget(combat *component.Combat, towerPos *component.Position) {
	if combat.TargetID == 0 {
		return
	}
	health, alive := s.ecs.Healths[combat.TargetID]
	if !alive || health.Value <= 0 {
		combat.TargetID = 0
		return
	}
	if _, isEnemy := s.ecs.Enemies[combat.TargetID]; !isEnemy {
		combat.TargetID = 0
		return
	}
	enemyPos := s.ecs.Positions[combat.TargetID]
	if enemyPos == nil || euclidean(towerPos, enemyPos) > combat.Range {
		combat.TargetID = 0
	}
}

// findNearestEnemy scans live enemies in ascending ID order and picks the
// closest one within range. Equal distances keep the lower ID.
func (s *CombatSystem) findNearestEnemy(towerPos *component.Position, rangePx float64) types.EntityID {
	var nearest types.EntityID
	minDist := math.MaxFloat64
	for _, enemyID := range s.ecs.SortedEnemyIDs() {
		if health, ok := s.ecs.Healths[enemyID]; !ok || health.Value <= 0 {
			continue
		}
		enemyPos := s.ecs.Positions[enemyID]
		if enemyPos == nil {
			continue
		}
		dist := euclidean(towerPos, enemyPos)
		if dist <= rangePx && dist < minDist {
			minDist = dist
			nearest = enemyID
		}
	}
	return nearest
}

func (s *CombatSystem) fire(towerID types.EntityID, combat *component.Combat) {
	tower := s.ecs.Towers[towerID]
	def, ok := defs.TowerLibrary[tower.Type]
	if !ok {
		s.logger.Error("tower definition not found", "type", tower.Type)
		combat.TargetID = 0
		return
	}

	targetID := combat.TargetID
	combat.FireCooldown = combat.FireRate

	ApplyDamage(s.ecs, targetID, combat.Damage)
	if def.Slow != nil {
		// Overwrites any existing slow; effects do not stack.
		s.ecs.SlowEffects[targetID] = &component.SlowEffect{
			Timer:      def.Slow.Duration,
			Multiplier: def.Slow.Multiplier,
		}
	}

	towerPos := s.ecs.Positions[towerID]
	targetPos := s.ecs.Positions[targetID]
	if towerPos != nil && targetPos != nil {
		// Cosmetic tracer: the shot's damage was just applied directly.
		s.projectiles.Fire(*towerPos, *targetPos, def.ProjectileSpeed, 0, def.Color)
	}
}

func euclidean(a, b *component.Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
