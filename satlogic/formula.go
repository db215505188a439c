package satlogic

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/katalvlaran/wumpus/grid"
)

// CellFacts is the subset of a knowledge cell's state the CNF builder
// needs: whether the cell has been visited, and its percepts if so (§4.3).
type CellFacts struct {
	Visited bool
	Breeze  bool
	Stench  bool
}

// posLit returns the positive literal for SAT variable id.
func posLit(id int) z.Lit {
	return z.Var(id).Pos()
}

// negLit returns the negative literal for SAT variable id.
func negLit(id int) z.Lit {
	return z.Var(id).Neg()
}

// addClause asserts a single disjunctive clause against s, terminating it
// with the gini clause sentinel.
func addClause(s *gini.Gini, lits ...z.Lit) {
	for _, m := range lits {
		s.Add(m)
	}
	s.Add(z.LitNull)
}

// buildCNF translates facts into a fresh CNF formula asserted against a new
// solver instance (C3). For every cell (i,j):
//
//  1. the mutual-exclusion clause ¬P(i,j) ∨ ¬W(i,j);
//  2. if visited, the unit clauses ¬P(i,j) and ¬W(i,j);
//  3. if visited with breeze=true, the disjunction of P(n) over orthogonal
//     neighbors n; if breeze=false, the unit clause ¬P(n) for each n.
//     Symmetric rules for stench/W.
//
// Unvisited cells contribute only the mutex clause. The formula grows
// O(N²) in the side length of g. Rebuilt from scratch on every call — there
// is no incremental clause retraction (§4.3).
func buildCNF(reg *Registry, g *grid.Grid, facts [][]CellFacts) *gini.Gini {
	s := gini.New()

	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			pVar := reg.Var(KindPit, i, j)
			wVar := reg.Var(KindWumpus, i, j)

			addClause(s, negLit(pVar), negLit(wVar))

			c := facts[i][j]
			if !c.Visited {
				continue
			}

			addClause(s, negLit(pVar))
			addClause(s, negLit(wVar))

			neighbors := g.Neighbors(i, j)

			if c.Breeze {
				lits := make([]z.Lit, 0, len(neighbors))
				for _, n := range neighbors {
					lits = append(lits, posLit(reg.Var(KindPit, n.I, n.J)))
				}
				addClause(s, lits...)
			} else {
				for _, n := range neighbors {
					addClause(s, negLit(reg.Var(KindPit, n.I, n.J)))
				}
			}

			if c.Stench {
				lits := make([]z.Lit, 0, len(neighbors))
				for _, n := range neighbors {
					lits = append(lits, posLit(reg.Var(KindWumpus, n.I, n.J)))
				}
				addClause(s, lits...)
			} else {
				for _, n := range neighbors {
					addClause(s, negLit(reg.Var(KindWumpus, n.I, n.J)))
				}
			}
		}
	}

	return s
}
