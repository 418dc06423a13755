// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
)

// HUD renders the economy readout and the tower/wave buttons in the strip
// below the grid.
type HUD struct {
	game    *app.Game
	face    font.Face
	towers  []*Button
	wave    *Button
	barTop  int
}

// Tower button order matches the 1..4 hotkeys.
var towerOrder = []defs.TowerType{defs.TowerWall, defs.TowerBasic, defs.TowerSlow, defs.TowerSniper}

func NewHUD(game *app.Game) *HUD {
	barTop := config.GridHeight * config.TileSize
	h := &HUD{
		game:   game,
		face:   basicfont.Face7x13,
		barTop: barTop,
	}

	x := 300
	for _, t := range towerOrder {
		def := defs.TowerLibrary[t]
		label := fmt.Sprintf("%s $%d", def.Name, def.Cost)
		w := 7*len(label) + 12
		h.towers = append(h.towers, NewButton(
			image.Rect(x, barTop+8, x+w, barTop+32), label, def.Color))
		x += w + 8
	}
	h.wave = NewButton(image.Rect(x, barTop+8, x+90, barTop+32), "Next Wave",
		config.WaveButtonColor)
	return h
}

// Click routes a press in the HUD strip; it returns the tower type that
// was selected, or fires the wave button.
func (h *HUD) Click(x, y int, selected defs.TowerType) (defs.TowerType, bool) {
	for i, b := range h.towers {
		if b.Contains(x, y) {
			return towerOrder[i], true
		}
	}
	if h.wave.Contains(x, y) {
		if err := h.game.StartWave(); err != nil {
			return selected, false
		}
		return selected, true
	}
	return selected, false
}

// Draw renders the HUD strip.
func (h *HUD) Draw(screen *ebiten.Image, selected defs.TowerType) {
	econ := h.game.Economy
	status := fmt.Sprintf("$%d  Lives: %d  Wave: %d  Score: %d  Kills: %d",
		econ.Money(), econ.Lives(), econ.Wave(), econ.Score(), econ.Kills())
	if !h.game.HasRoute() {
		status += "  [NO ROUTE]"
	}
	if econ.GameOver() {
		status += "  GAME OVER - press R"
	}
	text.Draw(screen, status, h.face, 8, h.barTop+24, config.TextColor)

	for i, b := range h.towers {
		b.Active = towerOrder[i] == selected
		b.Draw(screen, h.face)
	}
	h.wave.Active = econ.WaveActive()
	h.wave.Draw(screen, h.face)
}
