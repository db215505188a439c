// Package grid defines the world model, percept bundle, and neighbor
// iteration for the wumpus belief-and-decision engine (C1).
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input labels have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: world must have at least one row and one column")
	// ErrNonSquare indicates the world is not N×N.
	ErrNonSquare = errors.New("grid: world must be square (rows == cols for every row)")
	// ErrTooSmall indicates N < 2, violating the data model's minimum side.
	ErrTooSmall = errors.New("grid: world side N must be ≥ 2")
	// ErrOutOfBounds indicates a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Label is the tagged variant for a single cell's content.
type Label int

const (
	// Empty is a hazard-free, featureless cell.
	Empty Label = iota
	// Pit kills the agent on entry.
	Pit
	// Wumpus kills the agent on entry (unless already slain).
	Wumpus
	// Gold is the agent's goal; picking it clears the cell to Empty.
	Gold
	// Arrow is a pickup; picking it clears the cell to Empty and grants one shot.
	Arrow
)

// String renders a Label the way the world-file loader and logger expect it.
func (l Label) String() string {
	switch l {
	case Empty:
		return "empty"
	case Pit:
		return "pit"
	case Wumpus:
		return "wumpus"
	case Gold:
		return "gold"
	case Arrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Percepts is the fixed four-field record observed at a cell (§3).
type Percepts struct {
	Breeze   bool // some orthogonal neighbor is a Pit
	Stench   bool // some orthogonal neighbor is a Wumpus
	Glitter  bool // this cell is Gold
	HasArrow bool // this cell is Arrow
}

// Coord is a row-major (row, col) grid coordinate; (0,0) is the start.
type Coord struct {
	I, J int
}

// neighborOffsets4 is the orthogonal (Manhattan distance 1) neighborhood,
// fixed in N, S, W, E order for deterministic tie-breaking (§4.8, §9).
var neighborOffsets4 = [4]Coord{
	{I: -1, J: 0}, // N
	{I: 1, J: 0},  // S
	{I: 0, J: -1}, // W
	{I: 0, J: 1},  // E
}

// neighborOffsetsDiag is the diagonal (Chebyshev distance 1, Manhattan
// distance 2) neighborhood.
var neighborOffsetsDiag = [4]Coord{
	{I: -1, J: -1},
	{I: -1, J: 1},
	{I: 1, J: -1},
	{I: 1, J: 1},
}

// Grid is the mutable N×N world of cell labels (§3). It is mutated only
// by the agent: picking gold or an arrow, or killing a wumpus, sets a
// cell to Empty.
type Grid struct {
	N      int
	Labels [][]Label
}
