// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"
	"math"
)

// AStar finds the shortest path from start to goal over the given cell
// matrix. Cardinal steps cost 1, diagonal steps cost sqrt(2); the heuristic
// is Manhattan distance. Returns nil when no path exists.
func AStar(cells [][]CellState, start, goal Point, allowDiagonal bool) []Point {
	width := len(cells)
	if width == 0 {
		return nil
	}
	height := len(cells[0])
	if !inBounds(start, width, height) || !inBounds(goal, width, height) {
		return nil
	}
	if start == goal {
		return []Point{start}
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	pq.push(&pathNode{Pos: start, G: 0, F: float64(start.Manhattan(goal))})

	closed := make(map[Point]bool)
	gScores := map[Point]float64{start: 0}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*pathNode)
		if current.Pos == goal {
			return reconstructPath(current)
		}
		// A cheaper route to an already-finalized cell cannot occur with
		// this cost model, but the check stays as a safety net.
		if closed[current.Pos] {
			continue
		}
		closed[current.Pos] = true

		for _, neighbor := range Neighbors(current.Pos, width, height, allowDiagonal) {
			if closed[neighbor] {
				continue
			}
			if !walkable(cells, neighbor) {
				continue
			}
			moveCost := 1.0
			if allowDiagonal && neighbor.X != current.Pos.X && neighbor.Y != current.Pos.Y {
				moveCost = math.Sqrt2
			}
			tentativeG := current.G + moveCost
			if best, seen := gScores[neighbor]; !seen || tentativeG < best {
				gScores[neighbor] = tentativeG
				pq.push(&pathNode{
					Pos:    neighbor,
					G:      tentativeG,
					F:      tentativeG + float64(neighbor.Manhattan(goal)),
					Parent: current,
				})
			}
		}
	}
	return nil
}

func walkable(cells [][]CellState, p Point) bool {
	switch cells[p.X][p.Y] {
	case CellEmpty, CellStart, CellEnd:
		return true
	}
	return false
}

func inBounds(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func reconstructPath(node *pathNode) []Point {
	var path []Point
	for node != nil {
		path = append(path, node.Pos)
		node = node.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pathNode struct {
	Pos    Point
	G      float64
	F      float64
	Parent *pathNode
	seq    int
}

// priorityQueue orders nodes by total estimated cost; equal costs resolve
// in insertion order so a search replays identically across runs.
type priorityQueue struct {
	nodes   []*pathNode
	nextSeq int
}

func (pq *priorityQueue) push(n *pathNode) {
	n.seq = pq.nextSeq
	pq.nextSeq++
	heap.Push(pq, n)
}

func (pq priorityQueue) Len() int { return len(pq.nodes) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq.nodes[i].F != pq.nodes[j].F {
		return pq.nodes[i].F < pq.nodes[j].F
	}
	return pq.nodes[i].seq < pq.nodes[j].seq
}

func (pq priorityQueue) Swap(i, j int) {
	pq.nodes[i], pq.nodes[j] = pq.nodes[j], pq.nodes[i]
}

func (pq *priorityQueue) Push(x interface{}) {
	pq.nodes = append(pq.nodes, x.(*pathNode))
}

func (pq *priorityQueue) Pop() interface{} {
	old := pq.nodes
	n := len(old)
	item := old[n-1]
	pq.nodes = old[:n-1]
	return item
}
