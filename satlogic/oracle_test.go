package satlogic_test

import (
	"testing"

	"github.com/katalvlaran/wumpus/grid"
	"github.com/katalvlaran/wumpus/satlogic"
)

// buildFacts allocates an N×N facts grid, all unvisited by default.
func buildFacts(n int) [][]satlogic.CellFacts {
	facts := make([][]satlogic.CellFacts, n)
	for i := range facts {
		facts[i] = make([]satlogic.CellFacts, n)
	}

	return facts
}

func TestEntails_BreezeWithTwoCandidatesForcesNeither(t *testing.T) {
	// 3x3 grid. Visit (1,1) with breeze=true, no stench. Its neighbors are
	// (0,1),(2,1),(1,0),(1,2). Also visit (0,1) and (1,0) with no breeze,
	// ruling them out as pits. That leaves (2,1) or (1,2) as the sole
	// remaining breeze explanation... but since the disjunction covers all
	// four and two are ruled out, neither remaining one is individually
	// forced (the pit could be either). So entailment should NOT hold for
	// either alone.
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := satlogic.NewRegistry()
	facts := buildFacts(3)
	facts[1][1] = satlogic.CellFacts{Visited: true, Breeze: true}
	facts[0][1] = satlogic.CellFacts{Visited: true}
	facts[1][0] = satlogic.CellFacts{Visited: true}

	if satlogic.Entails(reg, g, facts, satlogic.Pit(2, 1)) {
		t.Fatalf("pit at (2,1) should not be individually entailed with two candidates remaining")
	}
	if satlogic.Entails(reg, g, facts, satlogic.Pit(1, 2)) {
		t.Fatalf("pit at (1,2) should not be individually entailed with two candidates remaining")
	}
}

func TestEntails_BreezeForcesSinglePit(t *testing.T) {
	// Same grid, but now also rule out (1,2), leaving (2,1) as the only
	// possible breeze explanation — the CNF forces P(2,1).
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty, grid.Empty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := satlogic.NewRegistry()
	facts := buildFacts(3)
	facts[1][1] = satlogic.CellFacts{Visited: true, Breeze: true}
	facts[0][1] = satlogic.CellFacts{Visited: true}
	facts[1][0] = satlogic.CellFacts{Visited: true}
	facts[1][2] = satlogic.CellFacts{Visited: true} // visited ⇒ ¬P(1,2), eliminating the last other candidate

	if !satlogic.Entails(reg, g, facts, satlogic.Pit(2, 1)) {
		t.Fatalf("expected pit at (2,1) to be entailed once all other breeze candidates are visited-and-safe")
	}
}

func TestEntails_NoBreezeClearsNeighbors(t *testing.T) {
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := satlogic.NewRegistry()
	facts := buildFacts(2)
	facts[0][0] = satlogic.CellFacts{Visited: true} // no breeze, no stench

	if !satlogic.Entails(reg, g, facts, satlogic.Pit(0, 1).Not()) {
		t.Fatalf("expected ¬pit(0,1) to be entailed: (0,0) reports no breeze")
	}
	if !satlogic.Entails(reg, g, facts, satlogic.Wumpus(1, 0).Not()) {
		t.Fatalf("expected ¬wumpus(1,0) to be entailed: (0,0) reports no stench")
	}
}

func TestEntails_UnconstrainedCellIsNotEntailedPit(t *testing.T) {
	g, err := grid.NewGrid([][]grid.Label{
		{grid.Empty, grid.Empty},
		{grid.Empty, grid.Empty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := satlogic.NewRegistry()
	facts := buildFacts(2)

	if satlogic.Entails(reg, g, facts, satlogic.Pit(0, 1)) {
		t.Fatalf("an unconstrained cell must not be entailed as a pit")
	}
}
