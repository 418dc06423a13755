package gridmap

import (
	"errors"
	"testing"
)

func TestSetCellRejectsEndpoints(t *testing.T) {
	g := NewGrid(10, 10, Point{1, 1}, Point{8, 8})

	if err := g.SetCell(g.Start, CellObstacle); !errors.Is(err, ErrStartOrEnd) {
		t.Errorf("SetCell(start) = %v, want ErrStartOrEnd", err)
	}
	if err := g.SetCell(g.End, CellObstacle); !errors.Is(err, ErrStartOrEnd) {
		t.Errorf("SetCell(end) = %v, want ErrStartOrEnd", err)
	}
	if got, _ := g.Cell(g.Start); got != CellStart {
		t.Error("rejected mutation must leave the start cell intact")
	}
}

func TestSetCellRejectsOutOfBounds(t *testing.T) {
	g := NewGrid(10, 10, Point{1, 1}, Point{8, 8})
	for _, p := range []Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if err := g.SetCell(p, CellObstacle); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetCell(%v) = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestClearObstacles(t *testing.T) {
	g := NewGrid(10, 10, Point{1, 1}, Point{8, 8})
	g.SetCell(Point{3, 3}, CellObstacle)
	g.SetCell(Point{4, 4}, CellObstacle)

	g.ClearObstacles()

	if got, _ := g.Cell(Point{3, 3}); got != CellEmpty {
		t.Error("obstacle should be cleared")
	}
	if got, _ := g.Cell(g.Start); got != CellStart {
		t.Error("start cell must survive ClearObstacles")
	}
	if got, _ := g.Cell(g.End); got != CellEnd {
		t.Error("end cell must survive ClearObstacles")
	}
}

func TestCloneCellsIsIndependent(t *testing.T) {
	g := NewGrid(5, 5, Point{0, 0}, Point{4, 4})
	clone := g.CloneCells()
	clone[2][2] = CellObstacle
	if got, _ := g.Cell(Point{2, 2}); got != CellEmpty {
		t.Error("mutating a clone must not touch the grid")
	}
}
