package agent_test

import (
	"testing"

	"github.com/katalvlaran/wumpus/agent"
	"github.com/katalvlaran/wumpus/grid"
)

func TestShoot_KillsFirstWumpusOnRay(t *testing.T) {
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Wumpus, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty, grid.Empty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	killed := agent.Shoot(g, grid.Coord{I: 0, J: 0}, grid.Coord{I: 0, J: 3})
	if len(killed) != 1 || killed[0] != (grid.Coord{I: 0, J: 1}) {
		t.Fatalf("expected to kill wumpus at (0,1), got %v", killed)
	}
	if g.At(0, 1) != grid.Empty {
		t.Fatalf("expected killed cell to become empty")
	}
}

func TestShoot_PassesOverPitHarmlessly(t *testing.T) {
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Pit, grid.Wumpus},
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	killed := agent.Shoot(g, grid.Coord{I: 0, J: 0}, grid.Coord{I: 0, J: 2})
	if len(killed) != 1 || killed[0] != (grid.Coord{I: 0, J: 2}) {
		t.Fatalf("expected to kill wumpus past the pit, got %v", killed)
	}
	if g.At(0, 1) != grid.Pit {
		t.Fatalf("pit must be unaffected by a passing arrow")
	}
}

func TestShoot_MissesWhenNoWumpusOnRay(t *testing.T) {
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	killed := agent.Shoot(g, grid.Coord{I: 0, J: 0}, grid.Coord{I: 0, J: 2})
	if killed != nil {
		t.Fatalf("expected no kill, got %v", killed)
	}
}

func TestShoot_DiagonalRay(t *testing.T) {
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Wumpus},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	killed := agent.Shoot(g, grid.Coord{I: 0, J: 0}, grid.Coord{I: 2, J: 2})
	if len(killed) != 1 || killed[0] != (grid.Coord{I: 2, J: 2}) {
		t.Fatalf("expected diagonal ray to reach (2,2), got %v", killed)
	}
}
