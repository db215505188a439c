package grid_test

import (
	"testing"

	"github.com/katalvlaran/wumpus/grid"
)

func labels2x2() [][]grid.Label {
	return [][]grid.Label{
		{grid.Empty, grid.Pit},
		{grid.Wumpus, grid.Gold},
	}
}

func TestNewGrid_EmptyGrid(t *testing.T) {
	_, err := grid.NewGrid(nil)
	if err != grid.ErrEmptyGrid {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestNewGrid_TooSmall(t *testing.T) {
	_, err := grid.NewGrid([][]grid.Label{{grid.Empty}})
	if err != grid.ErrTooSmall {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
}

func TestNewGrid_NonSquare(t *testing.T) {
	_, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty},
	})
	if err != grid.ErrNonSquare {
		t.Fatalf("expected ErrNonSquare, got %v", err)
	}
}

func TestNewGrid_DeepCopy(t *testing.T) {
	src := labels2x2()
	g, err := grid.NewGrid(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src[0][0] = grid.Wumpus
	if g.At(0, 0) != grid.Empty {
		t.Fatalf("NewGrid must deep-copy input; mutation leaked through")
	}
}

func TestNeighbors_OrderAndBounds(t *testing.T) {
	g, _ := grid.NewGrid(labels2x2())
	got := g.Neighbors(0, 0)
	want := []grid.Coord{{I: 1, J: 0}, {I: 0, J: 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %d (%v)", len(want), len(got), got)
	}
	for i, c := range want {
		if got[i] != c {
			t.Fatalf("neighbor order mismatch at %d: want %v got %v", i, c, got[i])
		}
	}
}

func TestDiagonalNeighbors(t *testing.T) {
	g, _ := grid.NewGrid(labels2x2())
	got := g.DiagonalNeighbors(0, 0)
	if len(got) != 1 || got[0] != (grid.Coord{I: 1, J: 1}) {
		t.Fatalf("expected single diagonal neighbor (1,1), got %v", got)
	}
}

func TestIsCorner(t *testing.T) {
	g, _ := grid.NewGrid(labels2x2())
	for _, c := range []grid.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if !g.IsCorner(c.I, c.J) {
			t.Fatalf("cell %v should be a corner in a 2x2 grid", c)
		}
	}
}

func TestPercepts_BreezeStenchGlitterArrow(t *testing.T) {
	g, _ := grid.NewGrid(labels2x2())
	p := g.Percepts(0, 0)
	if !p.Breeze {
		t.Fatalf("expected breeze at (0,0) adjacent to pit at (0,1)")
	}
	if !p.Stench {
		t.Fatalf("expected stench at (0,0) adjacent to wumpus at (1,0)")
	}
	if p.Glitter || p.HasArrow {
		t.Fatalf("(0,0) is empty; expected no glitter/arrow")
	}

	pGold := g.Percepts(1, 1)
	if !pGold.Glitter {
		t.Fatalf("expected glitter at the gold cell")
	}
}

func TestClearAndClone(t *testing.T) {
	g, _ := grid.NewGrid(labels2x2())
	clone := g.Clone()
	g.Clear(1, 1)
	if g.At(1, 1) != grid.Empty {
		t.Fatalf("Clear must set the cell to Empty")
	}
	if clone.At(1, 1) != grid.Gold {
		t.Fatalf("Clone must be independent of later mutation")
	}
}
