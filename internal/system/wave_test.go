package system

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/economy"
	"go-grid-defense/internal/entity"
	"go-grid-defense/pkg/gridmap"
)

// waveRig wires a spawner to a swappable route, the way the simulation
// authority hands the spawner its live route cache.
type waveRig struct {
	ecs   *entity.ECS
	econ  *economy.State
	sys   *WaveSystem
	route []gridmap.Point
}

func newWaveRig(route []gridmap.Point) *waveRig {
	r := &waveRig{
		ecs:   entity.NewECS(),
		econ:  economy.New(500, 20, 50),
		route: route,
	}
	r.sys = NewWaveSystem(r.ecs, r.econ, config.Default(), log.New(io.Discard),
		func() []gridmap.Point { return r.route })
	return r
}

func TestSpawnsOnFixedInterval(t *testing.T) {
	r := newWaveRig([]gridmap.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})
	queue := []defs.EnemyType{defs.EnemyBasic, defs.EnemyBasic}
	r.econ.StartWave(1, len(queue))
	r.sys.StartWave(1, queue)

	for tick := 1; tick <= 29; tick++ {
		r.sys.Update(1)
	}
	if n := len(r.ecs.Enemies); n != 0 {
		t.Fatalf("%d enemies before the interval elapsed, want 0", n)
	}

	r.sys.Update(1) // tick 30
	if n := len(r.ecs.Enemies); n != 1 {
		t.Fatalf("%d enemies at tick 30, want 1", n)
	}
	if r.sys.SpawnComplete() {
		t.Error("queue should still hold the second enemy")
	}

	for tick := 31; tick <= 60; tick++ {
		r.sys.Update(1)
	}
	if n := len(r.ecs.Enemies); n != 2 {
		t.Fatalf("%d enemies at tick 60, want 2", n)
	}
	if !r.sys.SpawnComplete() {
		t.Error("queue should be drained")
	}
	if r.econ.EnemiesSpawned() != 2 {
		t.Errorf("spawn counter = %d, want 2", r.econ.EnemiesSpawned())
	}
}

func TestSpawnedEnemyCarriesScaledStats(t *testing.T) {
	r := newWaveRig([]gridmap.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})
	queue := []defs.EnemyType{defs.EnemyBasic}
	r.econ.StartWave(3, len(queue))
	r.sys.StartWave(3, queue)

	for tick := 0; tick < 30; tick++ {
		r.sys.Update(1)
	}
	ids := r.ecs.SortedEnemyIDs()
	if len(ids) != 1 {
		t.Fatalf("enemies = %d, want 1", len(ids))
	}
	id := ids[0]

	// Wave 3: base 100 × 1.2² = 144, base 1.0 × 1.05².
	if got := r.ecs.Healths[id].Value; got != 144 {
		t.Errorf("health = %d, want 144", got)
	}
	if got := r.ecs.Velocities[id].Speed; math.Abs(got-1.1025) > 1e-9 {
		t.Errorf("speed = %v, want 1.1025", got)
	}

	x, y := CellCenter(r.route[0])
	pos := r.ecs.Positions[id]
	if pos.X != x || pos.Y != y {
		t.Errorf("spawn position = (%v, %v), want the start cell center (%v, %v)", pos.X, pos.Y, x, y)
	}
}

func TestSpawnReadsRouteAtSpawnTime(t *testing.T) {
	straight := []gridmap.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	detour := []gridmap.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}}
	r := newWaveRig(straight)
	queue := []defs.EnemyType{defs.EnemyBasic, defs.EnemyBasic}
	r.econ.StartWave(1, len(queue))
	r.sys.StartWave(1, queue)

	for tick := 0; tick < 30; tick++ {
		r.sys.Update(1)
	}
	// The route changes between the two spawns, e.g. after a tower
	// placement rerouted the corridor.
	r.route = detour
	for tick := 0; tick < 30; tick++ {
		r.sys.Update(1)
	}

	ids := r.ecs.SortedEnemyIDs()
	if len(ids) != 2 {
		t.Fatalf("enemies = %d, want 2", len(ids))
	}
	first := r.ecs.Paths[ids[0]].Points
	second := r.ecs.Paths[ids[1]].Points
	if len(first) != len(straight) {
		t.Errorf("first enemy's route length = %d, want the spawn-time %d", len(first), len(straight))
	}
	if len(second) != len(detour) {
		t.Fatalf("second enemy's route length = %d, want the rerouted %d", len(second), len(detour))
	}
	for i, p := range detour {
		if second[i] != p {
			t.Fatalf("second enemy's route diverges at step %d: %v, want %v", i, second[i], p)
		}
	}
}

func TestSpawnedRoutesAreIndependentCopies(t *testing.T) {
	r := newWaveRig([]gridmap.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})
	queue := []defs.EnemyType{defs.EnemyBasic}
	r.econ.StartWave(1, len(queue))
	r.sys.StartWave(1, queue)

	for tick := 0; tick < 30; tick++ {
		r.sys.Update(1)
	}
	// Mutating the shared route must not reach an already-spawned enemy.
	r.route[1] = gridmap.Point{X: 9, Y: 9}

	id := r.ecs.SortedEnemyIDs()[0]
	if got := r.ecs.Paths[id].Points[1]; got != (gridmap.Point{X: 5, Y: 0}) {
		t.Errorf("enemy route mutated through the shared slice: %v", got)
	}
}

func TestStartWaveSnapshotsQueue(t *testing.T) {
	r := newWaveRig([]gridmap.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})
	queue := []defs.EnemyType{defs.EnemyBasic, defs.EnemyFast}
	r.econ.StartWave(1, len(queue))
	r.sys.StartWave(1, queue)

	// Mutating the caller's slice must not affect the installed queue.
	queue[1] = defs.EnemyTank
	if r.sys.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", r.sys.Remaining())
	}
}

func TestSpawnSkippedWithoutRoute(t *testing.T) {
	r := newWaveRig(nil)
	queue := []defs.EnemyType{defs.EnemyBasic}
	r.econ.StartWave(1, len(queue))
	r.sys.StartWave(1, queue)

	for tick := 0; tick < 30; tick++ {
		r.sys.Update(1)
	}
	if n := len(r.ecs.Enemies); n != 0 {
		t.Errorf("spawned %d enemies with no route", n)
	}
	if !r.sys.SpawnComplete() {
		t.Error("the skipped entry should still be consumed")
	}
}

func TestUnknownEnemyTypeSkipped(t *testing.T) {
	r := newWaveRig([]gridmap.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})
	queue := []defs.EnemyType{"GHOST"}
	r.econ.StartWave(1, len(queue))
	r.sys.StartWave(1, queue)

	for tick := 0; tick < 30; tick++ {
		r.sys.Update(1)
	}
	if n := len(r.ecs.Enemies); n != 0 {
		t.Errorf("unknown type spawned %d enemies", n)
	}
	if !r.sys.SpawnComplete() {
		t.Error("the bad entry should still be consumed")
	}
}
