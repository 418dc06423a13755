// internal/state/game_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/ui"
	"go-grid-defense/pkg/render"
)

// GameState drives the playable screen: input decoding on top, the
// simulation below, rendering from snapshots only.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.GridRenderer
	hud           *ui.HUD
	selected      defs.TowerType
	clickCooldown float64
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	renderer := render.NewGridRenderer(game.Grid, config.TileSize, render.MapColors{
		GridLine:   config.GridLineColor,
		Empty:      config.EmptyColor,
		Obstacle:   config.ObstacleColor,
		Start:      config.StartColor,
		End:        config.EndColor,
		Path:       config.PathColor,
		HoverValid: config.HoverValidColor,
		HoverBad:   config.HoverBadColor,
	})
	return &GameState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		hud:      ui.NewHUD(game),
		selected: defs.TowerBasic,
	}
}

func (g *GameState) Enter() {}
func (g *GameState) Exit()  {}

func (g *GameState) Update(dt float64) {
	if g.clickCooldown > 0 {
		g.clickCooldown -= dt
	}
	g.handleInput()
	g.game.Update(dt)
}

func (g *GameState) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.selected = defs.TowerWall
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.selected = defs.TowerBasic
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.selected = defs.TowerSlow
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		g.selected = defs.TowerSniper
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.game.StartWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.game.SetPaused(!g.game.IsPaused())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Reset()
	}

	if g.clickCooldown > 0 {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if y >= config.GridHeight*config.TileSize {
			g.selected, _ = g.hud.Click(x, y, g.selected)
			g.clickCooldown = config.ClickDebounceTicks
			return
		}
		g.game.PlaceTower(g.renderer.ScreenToGrid(x, y), g.selected)
		g.clickCooldown = config.ClickDebounceTicks
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if y < config.GridHeight*config.TileSize {
			g.game.RemoveTower(g.renderer.ScreenToGrid(x, y))
			g.clickCooldown = config.ClickDebounceTicks
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen)
	g.renderer.DrawRoute(screen, g.game.Route())
	g.drawHover(screen)
	g.drawEntities(screen)
	g.hud.Draw(screen, g.selected)
}

func (g *GameState) drawHover(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	if y >= config.GridHeight*config.TileSize {
		return
	}
	cell := g.renderer.ScreenToGrid(x, y)
	g.renderer.DrawHover(screen, cell, g.game.CanPlaceTower(cell, g.selected))
}

func (g *GameState) drawEntities(screen *ebiten.Image) {
	for _, t := range g.game.TowerSnapshots() {
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), t.Radius, t.Color, true)
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y), t.Radius, 1, color.RGBA{255, 255, 255, 255}, true)
	}
	for _, e := range g.game.EnemySnapshots() {
		if e.Slowed {
			vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), e.Radius*2, config.SlowTintColor, true)
		}
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), e.Radius, e.Color, true)
		g.drawHealthBar(screen, e)
	}
	for _, p := range g.game.ProjectileSnapshots() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), p.Radius, p.Color, true)
	}
}

func (g *GameState) drawHealthBar(screen *ebiten.Image, e app.EnemySnapshot) {
	const barWidth, barHeight = 20, 3
	x := float32(e.X) - barWidth/2
	y := float32(e.Y) - e.Radius - 8
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, config.HealthBackColor, false)
	fill := float32(e.HealthFraction) * barWidth
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, barHeight, config.HealthFillColor, false)
	}
}
