// internal/app/game.go
package app

import (
	"github.com/charmbracelet/log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/economy"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/gridmap"
)

// Game is the single simulation authority. All entities advance inside
// Update in a fixed order; placement and removal calls are only legal
// between ticks. Nothing here runs concurrently.
type Game struct {
	Cfg             config.Config
	Grid            *gridmap.Grid
	Pathfinder      *gridmap.Pathfinder
	ECS             *entity.ECS
	Economy         *economy.State
	EventDispatcher *event.Dispatcher

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem

	towers            map[gridmap.Point]types.EntityID
	paused            bool
	gameOverAnnounced bool
	logger            *log.Logger
}

// NewGame builds a simulation instance from the given configuration.
func NewGame(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		Cfg:             cfg,
		Grid:            gridmap.NewGrid(cfg.GridWidth, cfg.GridHeight, gridmap.Point{X: cfg.StartX, Y: cfg.StartY}, gridmap.Point{X: cfg.EndX, Y: cfg.EndY}),
		Pathfinder:      gridmap.NewPathfinder(),
		EventDispatcher: event.NewDispatcher(),
		Economy:         economy.New(cfg.StartingMoney, cfg.StartingLives, cfg.WaveBonus),
		towers:          make(map[gridmap.Point]types.EntityID),
		logger:          logger,
	}
	g.buildEntities()
	g.updateRoute()
	return g
}

func (g *Game) buildEntities() {
	g.ECS = entity.NewECS()
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS)
	g.WaveSystem = system.NewWaveSystem(g.ECS, g.Economy, g.Cfg, g.logger, g.Pathfinder.Route)
	g.MovementSystem = system.NewMovementSystem(g.ECS)
	g.StatusEffectSystem = system.NewStatusEffectSystem(g.ECS)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.ProjectileSystem, g.logger)
}

// Update advances the simulation by dt ticks. Fixed order: spawner,
// status effects, enemy movement, reap, towers, projectiles, reap,
// wave-completion check. A paused or finished game is a no-op.
func (g *Game) Update(dt float64) {
	if g.paused || g.Economy.GameOver() {
		return
	}
	if dt > config.MaxDeltaTicks {
		// A stalled frame catches up gradually instead of teleporting
		// everything in one oversized step.
		dt = config.MaxDeltaTicks
	}

	g.WaveSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.reapEnemies()
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.reapEnemies()

	if g.Economy.WaveActive() && g.WaveSystem.SpawnComplete() && len(g.ECS.Enemies) == 0 {
		wave := g.Economy.Wave()
		g.Economy.WaveComplete()
		g.EventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave})
	}
}

// reapEnemies removes arrived and dead enemies in a single pass, applying
// the life penalty or kill reward in the same tick they occurred.
func (g *Game) reapEnemies() {
	for _, id := range g.ECS.SortedEnemyIDs() {
		enemy := g.ECS.Enemies[id]
		switch {
		case enemy.ReachedEnd:
			g.Economy.LoseLife()
			g.ECS.RemoveEntity(id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: id})
		case g.ECS.Healths[id].Value <= 0:
			g.Economy.RecordKill(enemy.Reward)
			g.ECS.RemoveEntity(id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
		}
	}
	if g.Economy.GameOver() && !g.gameOverAnnounced {
		g.gameOverAnnounced = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// StartWave begins the next wave. Rejected while a wave is active, after
// game over, and while start and end are disconnected.
func (g *Game) StartWave() error {
	if g.Economy.GameOver() {
		return ErrGameOver
	}
	if g.Economy.WaveActive() {
		return economy.ErrWaveActive
	}
	if !g.Pathfinder.HasRoute() {
		return ErrNoRoute
	}
	n := g.Economy.Wave() + 1
	queue := defs.ComposeWave(n)
	if err := g.Economy.StartWave(n, len(queue)); err != nil {
		return err
	}
	g.WaveSystem.StartWave(n, queue)
	return nil
}

// SetCell mutates a grid cell and synchronously recomputes the route, so
// the cache is never stale across a tick boundary.
func (g *Game) SetCell(p gridmap.Point, state gridmap.CellState) error {
	if err := g.Grid.SetCell(p, state); err != nil {
		return err
	}
	g.updateRoute()
	return nil
}

func (g *Game) updateRoute() {
	g.Pathfinder.UpdateRoute(g.Grid.Cells(), g.Grid.Start, g.Grid.End, g.Cfg.AllowDiagonal)
}

// SetPaused toggles the tick driver on or off.
func (g *Game) SetPaused(paused bool) { g.paused = paused }

// IsPaused reports whether the tick driver is suspended.
func (g *Game) IsPaused() bool { return g.paused }

// Reset recreates every component from initial state: entities, economy,
// obstacles, and the route.
func (g *Game) Reset() {
	g.buildEntities()
	g.Economy.Reset()
	g.Grid.ClearObstacles()
	g.towers = make(map[gridmap.Point]types.EntityID)
	g.gameOverAnnounced = false
	g.paused = false
	g.updateRoute()
}

// Route returns a copy of the cached route, start to end inclusive.
func (g *Game) Route() []gridmap.Point {
	return append([]gridmap.Point(nil), g.Pathfinder.Route()...)
}

// HasRoute reports whether start and end are currently connected.
func (g *Game) HasRoute() bool {
	return g.Pathfinder.HasRoute()
}
