// Package grid is the world model for the wumpus belief-and-decision
// engine: a square grid of cell labels, percept computation, and
// neighbor iteration.
//
// What:
//
//   - Grid wraps a square [][]Label world, deep-copied on construction.
//   - Neighbors enumerates the orthogonal neighborhood in a fixed N, S, W, E
//     order; DiagonalNeighbors enumerates the diagonal neighborhood in a
//     fixed NW, NE, SW, SE order.
//   - Percepts computes the four-field percept bundle for a cell from its
//     own label and its orthogonal neighbors' labels.
//
// Errors:
//
//   - ErrEmptyGrid: world has no rows or no columns.
//   - ErrNonSquare: rows have differing lengths, or rows != cols.
//   - ErrTooSmall: N < 2.
//   - ErrOutOfBounds: a coordinate lies outside the grid (diagnostic use).
package grid
