package satlogic

import (
	"github.com/irifrance/gini/z"

	"github.com/katalvlaran/wumpus/grid"
)

// gini's Solve() result codes: 1 means satisfiable, -1 means unsatisfiable.
// There is no solver deadline configured here (§5: "no timeout on an
// individual solver call"), so Solve never returns the third, "unknown"
// code in this engine.
const (
	satResult   = 1
	unsatResult = -1
)

// Literal is a query atom for the entailment oracle: the fact (Kind,I,J),
// optionally negated.
type Literal struct {
	Kind    Kind
	I, J    int
	Negated bool
}

// Pit builds the literal "(i,j) is a pit".
func Pit(i, j int) Literal {
	return Literal{Kind: KindPit, I: i, J: j}
}

// Wumpus builds the literal "(i,j) is a wumpus".
func Wumpus(i, j int) Literal {
	return Literal{Kind: KindWumpus, I: i, J: j}
}

// Not returns the negation of lit.
func (lit Literal) Not() Literal {
	lit.Negated = !lit.Negated

	return lit
}

// lit returns the gini z.Lit corresponding to this query literal, allocating
// its variable in reg if needed.
func (lit Literal) lit(reg *Registry) z.Lit {
	id := reg.Var(lit.Kind, lit.I, lit.J)
	if lit.Negated {
		return negLit(id)
	}

	return posLit(id)
}

// Entails answers whether the knowledge captured in facts entails lit (C4).
//
// Procedure: build the CNF, assert satisfiability (a contradictory KB is
// treated as "entails nothing" and returns false, §4.4/§7), then add the
// negation of lit as a unit clause and re-solve; entailment holds iff the
// augmented formula is unsatisfiable. Each call is independent — the solver
// is not reused across queries (§4.4).
func Entails(reg *Registry, g *grid.Grid, facts [][]CellFacts, lit Literal) bool {
	s := buildCNF(reg, g, facts)

	if s.Solve() != satResult {
		return false
	}

	negated := lit.Not().lit(reg)
	s.Add(negated)
	s.Add(z.LitNull)

	return s.Solve() == unsatResult
}
