package knowledge

import (
	"github.com/katalvlaran/wumpus/grid"
	"github.com/katalvlaran/wumpus/satlogic"
)

// Cell is the per-cell belief state (§3).
type Cell struct {
	Visited         bool
	Safe            bool
	ConfirmedPit    bool
	ConfirmedWumpus bool
	Percepts        grid.Percepts // meaningful only when Visited
	PPit            float64       // in [0,1]
	PWumpus         float64       // in [0,1]
}

// Base is the N×N knowledge arena plus the long-lived SAT variable
// registry. topo is used only for its topology methods (Neighbors,
// DiagonalNeighbors, IsCorner, InBounds) — Base never reads topo's cell
// labels, since the whole point of the knowledge base is to reason about
// hazards without peeking at ground truth.
type Base struct {
	N        int
	Cells    [][]Cell
	Reg      *satlogic.Registry
	topo     *grid.Grid
	SATCalls int // entailment-oracle invocations since the last ResetSATCalls
}

// NewBase constructs a Base over an N×N grid whose only use is the shared
// topology (neighbor iteration, corner predicate). The origin (0,0) starts
// safe before any percept is observed (§3 invariant 4).
func NewBase(topo *grid.Grid) *Base {
	n := topo.N
	cells := make([][]Cell, n)
	for i := range cells {
		cells[i] = make([]Cell, n)
	}
	cells[0][0].Safe = true

	return &Base{
		N:     n,
		Cells: cells,
		Reg:   satlogic.NewRegistry(),
		topo:  topo,
	}
}

// Neighbors exposes the shared topology's orthogonal-neighbor iteration so
// planners (astar, agent) can walk the grid without holding their own
// *grid.Grid reference.
func (b *Base) Neighbors(i, j int) []grid.Coord {
	return b.topo.Neighbors(i, j)
}

// ResetSATCalls zeros the solver-call counter and returns its prior value,
// for metrics collection between ticks.
func (b *Base) ResetSATCalls() int {
	n := b.SATCalls
	b.SATCalls = 0

	return n
}

// Clone returns a deep copy of b, including a deep copy of the variable
// registry, for the engine's snapshot/restore mechanism (§6, §9).
func (b *Base) Clone() *Base {
	cells := make([][]Cell, b.N)
	for i := range cells {
		cells[i] = make([]Cell, b.N)
		copy(cells[i], b.Cells[i])
	}

	return &Base{
		N:        b.N,
		Cells:    cells,
		Reg:      b.Reg.Clone(),
		topo:     b.topo,
		SATCalls: b.SATCalls,
	}
}
