package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/gridmap"
)

func newCombatRig() (*entity.ECS, *CombatSystem) {
	ecs := entity.NewECS()
	projectiles := NewProjectileSystem(ecs)
	combat := NewCombatSystem(ecs, projectiles, log.New(io.Discard))
	return ecs, combat
}

func placeTestTower(ecs *entity.ECS, t defs.TowerType, x, y float64) types.EntityID {
	def := defs.TowerLibrary[t]
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{Type: t, Cell: gridmap.Point{}}
	if def.Range > 0 {
		ecs.Combats[id] = &component.Combat{
			Range:    def.Range,
			Damage:   def.Damage,
			FireRate: def.FireRate,
		}
	}
	return id
}

func placeTestEnemy(ecs *entity.ECS, x, y float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{Type: defs.EnemyBasic, Reward: 25}
	return id
}

func TestTargetsNearestEnemy(t *testing.T) {
	ecs, combat := newCombatRig()
	towerID := placeTestTower(ecs, defs.TowerBasic, 0, 0)
	far := placeTestEnemy(ecs, 50, 0, 100)
	near := placeTestEnemy(ecs, 30, 0, 100)

	combat.Update(1)

	if got := ecs.Combats[towerID].TargetID; got != near {
		t.Fatalf("target = %d, want the nearer enemy %d", got, near)
	}
	if ecs.Healths[near].Value != 90 {
		t.Errorf("near enemy health = %d, want 90", ecs.Healths[near].Value)
	}
	if ecs.Healths[far].Value != 100 {
		t.Errorf("far enemy health = %d, want untouched 100", ecs.Healths[far].Value)
	}
}

func TestEqualDistanceKeepsLowerID(t *testing.T) {
	ecs, combat := newCombatRig()
	towerID := placeTestTower(ecs, defs.TowerBasic, 0, 0)
	first := placeTestEnemy(ecs, 40, 0, 100)
	placeTestEnemy(ecs, 0, 40, 100)

	combat.Update(1)

	if got := ecs.Combats[towerID].TargetID; got != first {
		t.Errorf("target = %d, want the lower ID %d", got, first)
	}
}

func TestCooldownGatesFiring(t *testing.T) {
	ecs, combat := newCombatRig()
	placeTestTower(ecs, defs.TowerBasic, 0, 0) // fire rate 60
	enemy := placeTestEnemy(ecs, 30, 0, 1000)

	// First update fires immediately, then the cooldown holds for a full
	// period of 60 ticks.
	for tick := 1; tick <= 60; tick++ {
		combat.Update(1)
	}
	if got := ecs.Healths[enemy].Value; got != 990 {
		t.Fatalf("health after 60 ticks = %d, want 990 (one shot)", got)
	}
	combat.Update(1)
	if got := ecs.Healths[enemy].Value; got != 980 {
		t.Errorf("health after 61 ticks = %d, want 980 (second shot)", got)
	}
}

func TestWallNeverFires(t *testing.T) {
	ecs, combat := newCombatRig()
	wallID := placeTestTower(ecs, defs.TowerWall, 0, 0)
	enemy := placeTestEnemy(ecs, 5, 0, 100)

	for tick := 0; tick < 120; tick++ {
		combat.Update(1)
	}
	if _, ok := ecs.Combats[wallID]; ok {
		t.Error("walls must not carry combat state")
	}
	if ecs.Healths[enemy].Value != 100 {
		t.Errorf("enemy next to a wall lost health: %d", ecs.Healths[enemy].Value)
	}
	if len(ecs.Projectiles) != 0 {
		t.Error("a wall emitted a projectile")
	}
}

func TestSlowShotOverwritesExistingSlow(t *testing.T) {
	ecs, combat := newCombatRig()
	placeTestTower(ecs, defs.TowerSlow, 0, 0)
	enemy := placeTestEnemy(ecs, 30, 0, 100)
	ecs.SlowEffects[enemy] = &component.SlowEffect{Timer: 5, Multiplier: 0.9}

	combat.Update(1)

	effect, ok := ecs.SlowEffects[enemy]
	if !ok {
		t.Fatal("slow shot should leave a slow effect")
	}
	if effect.Timer != 120 || effect.Multiplier != 0.5 {
		t.Errorf("effect = %+v, want the fresh 120-tick half-speed slow", effect)
	}
	if ecs.Healths[enemy].Value != 95 {
		t.Errorf("health = %d, want 95 (damage lands with the shot)", ecs.Healths[enemy].Value)
	}
}

func TestFiringEmitsCosmeticProjectile(t *testing.T) {
	ecs, combat := newCombatRig()
	placeTestTower(ecs, defs.TowerBasic, 0, 0)
	enemy := placeTestEnemy(ecs, 30, 0, 100)

	combat.Update(1)

	if ecs.Healths[enemy].Value != 90 {
		t.Fatalf("damage must land on fire, health = %d", ecs.Healths[enemy].Value)
	}
	ids := ecs.SortedProjectileIDs()
	if len(ids) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ids))
	}
	if ecs.Projectiles[ids[0]].Damage != 0 {
		t.Error("the tracer projectile must carry no damage payload")
	}
}

func TestDroppedTargetWhenDeadOrGone(t *testing.T) {
	ecs, combat := newCombatRig()
	towerID := placeTestTower(ecs, defs.TowerBasic, 0, 0)
	victim := placeTestEnemy(ecs, 30, 0, 100)
	backup := placeTestEnemy(ecs, 60, 0, 100)

	combat.Update(1)
	if ecs.Combats[towerID].TargetID != victim {
		t.Fatalf("expected initial target %d", victim)
	}

	ecs.Healths[victim].Value = 0
	combat.Update(1)
	if got := ecs.Combats[towerID].TargetID; got != backup {
		t.Errorf("target after victim's death = %d, want %d", got, backup)
	}
}

func TestTargetDroppedWhenOutOfRange(t *testing.T) {
	ecs, combat := newCombatRig()
	towerID := placeTestTower(ecs, defs.TowerBasic, 0, 0) // range 100
	enemy := placeTestEnemy(ecs, 90, 0, 1000)

	combat.Update(1)
	if ecs.Combats[towerID].TargetID != enemy {
		t.Fatal("enemy in range should be targeted")
	}

	ecs.Positions[enemy].X = 150
	combat.Update(1)
	if got := ecs.Combats[towerID].TargetID; got != 0 {
		t.Errorf("target = %d, want none after the enemy left range", got)
	}
}
