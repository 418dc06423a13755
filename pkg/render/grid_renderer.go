// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-grid-defense/pkg/gridmap"
)

// MapColors bundles the palette the renderer needs, so the package stays
// decoupled from the game's config.
type MapColors struct {
	GridLine   color.RGBA
	Empty      color.RGBA
	Obstacle   color.RGBA
	Start      color.RGBA
	End        color.RGBA
	Path       color.RGBA
	HoverValid color.RGBA
	HoverBad   color.RGBA
}

// GridRenderer draws the cell matrix, the cached route and the placement
// hover overlay. It reads the grid, never writes it.
type GridRenderer struct {
	grid     *gridmap.Grid
	tileSize float64
	colors   MapColors
}

func NewGridRenderer(grid *gridmap.Grid, tileSize float64, colors MapColors) *GridRenderer {
	return &GridRenderer{grid: grid, tileSize: tileSize, colors: colors}
}

// Draw renders every cell with a one-pixel grid line on top.
func (r *GridRenderer) Draw(screen *ebiten.Image) {
	ts := float32(r.tileSize)
	for x := 0; x < r.grid.Width; x++ {
		for y := 0; y < r.grid.Height; y++ {
			cell, err := r.grid.Cell(gridmap.Point{X: x, Y: y})
			if err != nil {
				continue
			}
			px := float32(x) * ts
			py := float32(y) * ts
			vector.DrawFilledRect(screen, px, py, ts, ts, r.cellColor(cell), false)
			vector.StrokeRect(screen, px, py, ts, ts, 1, r.colors.GridLine, false)
		}
	}
}

// DrawRoute overlays the route as a polyline through cell centers.
func (r *GridRenderer) DrawRoute(screen *ebiten.Image, route []gridmap.Point) {
	half := float32(r.tileSize / 2)
	ts := float32(r.tileSize)
	for i := 1; i < len(route); i++ {
		x0 := float32(route[i-1].X)*ts + half
		y0 := float32(route[i-1].Y)*ts + half
		x1 := float32(route[i].X)*ts + half
		y1 := float32(route[i].Y)*ts + half
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, r.colors.Path, true)
	}
}

// DrawHover tints the hovered cell by placement validity.
func (r *GridRenderer) DrawHover(screen *ebiten.Image, p gridmap.Point, valid bool) {
	if !r.grid.InBounds(p) {
		return
	}
	ts := float32(r.tileSize)
	c := r.colors.HoverValid
	if !valid {
		c = r.colors.HoverBad
	}
	vector.DrawFilledRect(screen, float32(p.X)*ts, float32(p.Y)*ts, ts, ts, c, false)
}

// ScreenToGrid converts pixel coordinates to a grid cell.
func (r *GridRenderer) ScreenToGrid(x, y int) gridmap.Point {
	return gridmap.Point{X: int(float64(x) / r.tileSize), Y: int(float64(y) / r.tileSize)}
}

func (r *GridRenderer) cellColor(cell gridmap.CellState) color.RGBA {
	switch cell {
	case gridmap.CellObstacle:
		return r.colors.Obstacle
	case gridmap.CellStart:
		return r.colors.Start
	case gridmap.CellEnd:
		return r.colors.End
	default:
		return r.colors.Empty
	}
}
