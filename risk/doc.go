// Package risk scores a cell's danger for planning (C6): a single pure
// function turning belief probabilities into the cost A* minimizes.
package risk
