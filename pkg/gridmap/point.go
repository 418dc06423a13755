// pkg/gridmap/point.go
package gridmap

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Manhattan returns the Manhattan distance to another point.
func (p Point) Manhattan(other Point) int {
	return abs(other.X-p.X) + abs(other.Y-p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var cardinalDirs = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
var diagonalDirs = [4]Point{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// Neighbors returns the in-bounds neighbors of p, cardinal first.
// Diagonal neighbors are appended when allowDiagonal is set.
func Neighbors(p Point, width, height int, allowDiagonal bool) []Point {
	out := make([]Point, 0, 8)
	for _, d := range cardinalDirs {
		n := Point{p.X + d.X, p.Y + d.Y}
		if n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height {
			out = append(out, n)
		}
	}
	if allowDiagonal {
		for _, d := range diagonalDirs {
			n := Point{p.X + d.X, p.Y + d.Y}
			if n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height {
				out = append(out, n)
			}
		}
	}
	return out
}
