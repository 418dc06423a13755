// pkg/gridmap/grid.go
package gridmap

import "errors"

// CellState is the state of a single grid cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellObstacle
	CellStart
	CellEnd
)

var (
	ErrOutOfBounds = errors.New("gridmap: position out of bounds")
	ErrStartOrEnd  = errors.New("gridmap: start and end cells are immutable")
)

// Grid is the authoritative cell matrix. Exactly one cell holds CellStart
// and one holds CellEnd; both are fixed for the lifetime of the grid.
type Grid struct {
	Width  int
	Height int
	Start  Point
	End    Point
	cells  [][]CellState // indexed [x][y]
}

// NewGrid creates an empty grid with the given start and end cells.
func NewGrid(width, height int, start, end Point) *Grid {
	cells := make([][]CellState, width)
	for x := range cells {
		cells[x] = make([]CellState, height)
	}
	g := &Grid{Width: width, Height: height, Start: start, End: end, cells: cells}
	g.cells[start.X][start.Y] = CellStart
	g.cells[end.X][end.Y] = CellEnd
	return g
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cell returns the state at p.
func (g *Grid) Cell(p Point) (CellState, error) {
	if !g.InBounds(p) {
		return CellEmpty, ErrOutOfBounds
	}
	return g.cells[p.X][p.Y], nil
}

// SetCell mutates a single cell. The start and end cells are rejected,
// as is any out-of-bounds position; no partial mutation occurs.
func (g *Grid) SetCell(p Point, state CellState) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if p == g.Start || p == g.End {
		return ErrStartOrEnd
	}
	g.cells[p.X][p.Y] = state
	return nil
}

// Cells returns the live cell matrix. Callers other than the pathfinder
// must treat it as read-only.
func (g *Grid) Cells() [][]CellState {
	return g.cells
}

// CloneCells returns a deep copy of the cell matrix.
func (g *Grid) CloneCells() [][]CellState {
	out := make([][]CellState, g.Width)
	for x := range g.cells {
		col := make([]CellState, g.Height)
		copy(col, g.cells[x])
		out[x] = col
	}
	return out
}

// ClearObstacles resets every obstacle cell back to empty.
func (g *Grid) ClearObstacles() {
	for x := range g.cells {
		for y := range g.cells[x] {
			if g.cells[x][y] == CellObstacle {
				g.cells[x][y] = CellEmpty
			}
		}
	}
}
