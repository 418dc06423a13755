// internal/system/wave.go
package system

import (
	"github.com/charmbracelet/log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/economy"
	"go-grid-defense/internal/entity"
	"go-grid-defense/pkg/gridmap"
)

// WaveSystem owns the spawn queue for the active wave and turns pending
// type tags into live enemies on a fixed tick interval.
type WaveSystem struct {
	ecs     *entity.ECS
	econ    *economy.State
	cfg     config.Config
	logger  *log.Logger
	routeFn func() []gridmap.Point
	queue   []defs.EnemyType
	timer   float64
	waveNum int
}

// NewWaveSystem builds a spawner. routeFn returns the currently cached
// route; it is consulted fresh on every spawn.
func NewWaveSystem(ecs *entity.ECS, econ *economy.State, cfg config.Config, logger *log.Logger, routeFn func() []gridmap.Point) *WaveSystem {
	return &WaveSystem{ecs: ecs, econ: econ, cfg: cfg, logger: logger, routeFn: routeFn}
}

// StartWave installs the spawn queue for wave n.
func (s *WaveSystem) StartWave(n int, queue []defs.EnemyType) {
	s.waveNum = n
	s.queue = append([]defs.EnemyType(nil), queue...)
	s.timer = 0
}

// Update advances the spawn timer and emits at most one enemy per expiry.
func (s *WaveSystem) Update(dt float64) {
	if len(s.queue) == 0 {
		return
	}
	s.timer += dt
	if s.timer < s.cfg.SpawnInterval {
		return
	}
	s.timer = 0

	tag := s.queue[0]
	s.queue = s.queue[1:]
	s.spawnEnemy(tag)
}

// SpawnComplete reports whether the active wave's queue has drained.
// Distinct from wave completion, which also requires no enemies alive.
func (s *WaveSystem) SpawnComplete() bool {
	return len(s.queue) == 0
}

// Remaining returns the number of enemies still queued.
func (s *WaveSystem) Remaining() int {
	return len(s.queue)
}

// spawnEnemy instantiates one enemy against the route cached right now.
// Enemies already walking keep their own snapshots; a grid edit between
// spawns only retargets the enemies that come after it.
func (s *WaveSystem) spawnEnemy(tag defs.EnemyType) {
	def, ok := defs.EnemyLibrary[tag]
	if !ok {
		s.logger.Error("enemy definition not found", "type", tag)
		return
	}
	route := s.routeFn()
	if len(route) == 0 {
		s.logger.Warn("spawn skipped, no route", "type", tag)
		return
	}
	points := append([]gridmap.Point(nil), route...)

	id := s.ecs.NewEntity()
	x, y := CellCenter(points[0])
	health := defs.ScaledHealth(def, s.waveNum, s.cfg.WaveHealthMultiplier)

	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{
		Speed: defs.ScaledSpeed(def, s.waveNum, s.cfg.WaveSpeedMultiplier),
	}
	s.ecs.Paths[id] = &component.Path{Points: points}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{Type: tag, Reward: def.Reward}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Color,
		Radius: config.EnemyRadius,
	}
	s.econ.EnemySpawned()
}
