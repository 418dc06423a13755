// pkg/gridmap/pathfinder.go
package gridmap

// Pathfinder caches the last computed route between two fixed endpoints.
// It never mutates the matrices handed to it.
type Pathfinder struct {
	route    []Point
	hasRoute bool
}

// NewPathfinder returns a pathfinder with an empty cache.
func NewPathfinder() *Pathfinder {
	return &Pathfinder{}
}

// UpdateRoute recomputes the cached route. On failure the cache is cleared,
// never left holding a route for a previous obstacle layout.
func (pf *Pathfinder) UpdateRoute(cells [][]CellState, start, goal Point, allowDiagonal bool) bool {
	path := AStar(cells, start, goal, allowDiagonal)
	if path == nil {
		pf.route = nil
		pf.hasRoute = false
		return false
	}
	pf.route = path
	pf.hasRoute = true
	return true
}

// Route returns the cached route, start to goal inclusive. Callers must not
// mutate it; anyone keeping it across grid mutations copies it first.
func (pf *Pathfinder) Route() []Point {
	return pf.route
}

// HasRoute reports whether the cached route exists.
func (pf *Pathfinder) HasRoute() bool {
	return pf.hasRoute
}

// WouldBlock reports whether marking candidate as an obstacle would sever
// the route from start to goal. Start and goal themselves always block.
// The search runs on a copy; the caller's matrix is untouched.
func (pf *Pathfinder) WouldBlock(cells [][]CellState, candidate, start, goal Point, allowDiagonal bool) bool {
	if candidate == start || candidate == goal {
		return true
	}
	width := len(cells)
	if width == 0 {
		return true
	}
	if candidate.X < 0 || candidate.X >= width || candidate.Y < 0 || candidate.Y >= len(cells[0]) {
		return true
	}

	snapshot := make([][]CellState, width)
	for x := range cells {
		col := make([]CellState, len(cells[x]))
		copy(col, cells[x])
		snapshot[x] = col
	}
	snapshot[candidate.X][candidate.Y] = CellObstacle

	return AStar(snapshot, start, goal, allowDiagonal) == nil
}
