package grid

// NewGrid constructs a Grid from a non-empty, square 2D label slice. It
// deep-copies the input so later mutation of the caller's slice cannot
// reach through to the engine.
//
// Returns ErrEmptyGrid if labels has no rows or no columns, ErrNonSquare if
// any row length differs from len(labels), and ErrTooSmall if N < 2 (§3:
// "N≥2").
//
// Complexity: O(N²) time and memory.
func NewGrid(labels [][]Label) (*Grid, error) {
	if len(labels) == 0 || len(labels[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(labels)
	if n < 2 {
		return nil, ErrTooSmall
	}
	for _, row := range labels {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}

	cells := make([][]Label, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]Label, n)
		copy(cells[i], labels[i])
	}

	return &Grid{N: n, Labels: cells}, nil
}

// InBounds reports whether (i,j) lies within the grid. Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.N && j >= 0 && j < g.N
}

// At returns the label at (i,j). Panics if out of bounds — callers are
// expected to have validated coordinates via InBounds or a prior neighbor
// iteration, which never yields an out-of-bounds cell.
func (g *Grid) At(i, j int) Label {
	return g.Labels[i][j]
}

// Clear sets (i,j) to Empty. Used when the agent picks up gold or an
// arrow, or kills a wumpus (§3: "world is mutable only by the agent").
func (g *Grid) Clear(i, j int) {
	g.Labels[i][j] = Empty
}

// Neighbors returns the in-bounds orthogonal (Manhattan distance 1)
// neighbors of (i,j), in the fixed N, S, W, E order (§4.8, §9 — pinned
// for deterministic tie-breaking). Complexity: O(1), at most 4 results.
func (g *Grid) Neighbors(i, j int) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets4 {
		ni, nj := i+d.I, j+d.J
		if g.InBounds(ni, nj) {
			out = append(out, Coord{I: ni, J: nj})
		}
	}

	return out
}

// DiagonalNeighbors returns the in-bounds diagonal (Chebyshev distance 1,
// Manhattan distance 2) neighbors of (i,j). Complexity: O(1), at most 4
// results.
func (g *Grid) DiagonalNeighbors(i, j int) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsetsDiag {
		ni, nj := i+d.I, j+d.J
		if g.InBounds(ni, nj) {
			out = append(out, Coord{I: ni, J: nj})
		}
	}

	return out
}

// IsCorner reports whether (i,j) has both coordinates at an edge of the
// grid (§4.1).
func (g *Grid) IsCorner(i, j int) bool {
	edgeI := i == 0 || i == g.N-1
	edgeJ := j == 0 || j == g.N-1

	return edgeI && edgeJ
}

// Percepts computes the percept bundle for (i,j): glitter/arrow read the
// cell's own label, breeze/stench scan orthogonal neighbors for pits and
// wumpuses. Pure; does not mutate g (§4.1).
//
// Complexity: O(1) (at most 4 neighbors scanned).
func (g *Grid) Percepts(i, j int) Percepts {
	var p Percepts

	switch g.At(i, j) {
	case Gold:
		p.Glitter = true
	case Arrow:
		p.HasArrow = true
	}

	for _, n := range g.Neighbors(i, j) {
		switch g.At(n.I, n.J) {
		case Pit:
			p.Breeze = true
		case Wumpus:
			p.Stench = true
		}
	}

	return p
}

// Clone returns a deep copy of g, used by the engine's snapshot/restore
// mechanism (§6).
func (g *Grid) Clone() *Grid {
	cells := make([][]Label, g.N)
	for i := range cells {
		cells[i] = make([]Label, g.N)
		copy(cells[i], g.Labels[i])
	}

	return &Grid{N: g.N, Labels: cells}
}
