package knowledge

import (
	"math"

	"github.com/katalvlaran/wumpus/grid"
	"github.com/katalvlaran/wumpus/satlogic"
)

// Support-to-probability tuning constants (§4.5 step 4, §9 "Open question
// — corner multiplier semantics"). Preserved verbatim from the source
// heuristic; flagged there, not here, as potentially tunable.
const (
	maxSupport      = 4
	probBase        = 0.32
	probExponent    = 1.1
	cornerBoost     = 1.6
	probCap         = 0.82
	wumpusThreshold = 0.65 // unused here; lives in agent's probabilistic-shot rule
)

// Update records that the agent now stands on pos with the given percepts,
// then rebuilds the full knowledge base (§4.5).
func (b *Base) Update(pos grid.Coord, p grid.Percepts) {
	c := &b.Cells[pos.I][pos.J]
	c.Visited = true
	c.Safe = true
	c.Percepts = p
	c.PPit = 0
	c.PWumpus = 0

	b.Rebuild()
}

// Rebuild runs the five-stage belief pipeline: reset, logical pass, support
// counting, support→probability, dominance. Order matters — logical
// results override probabilities, and confirmed-cell clearing runs after
// support assignment so heuristic mass adjacent to a confirmed hazard is
// suppressed (§4.5).
func (b *Base) Rebuild() {
	b.resetUnvisited()
	b.logicalPass()

	pitSupport, wumpusSupport := b.countSupport()
	b.assignProbabilities(pitSupport, wumpusSupport)
	b.enforceDominance()
}

// resetUnvisited clears safe/confirmed/probability fields on every
// unvisited cell, leaving visited cells untouched (§4.5 step 1).
func (b *Base) resetUnvisited() {
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			c := &b.Cells[i][j]
			if c.Visited {
				continue
			}
			c.Safe = false
			c.ConfirmedPit = false
			c.ConfirmedWumpus = false
			c.PPit = 0
			c.PWumpus = 0
		}
	}
}

// logicalPass asks the entailment oracle about every unvisited cell and
// records confirmed hazards or safety (§4.5 step 2).
func (b *Base) logicalPass() {
	facts := b.snapshotFacts()

	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			c := &b.Cells[i][j]
			if c.Visited {
				continue
			}

			switch {
			case b.entails(facts, satlogic.Pit(i, j)):
				c.ConfirmedPit = true
				c.Safe = false
			case b.entails(facts, satlogic.Wumpus(i, j)):
				c.ConfirmedWumpus = true
				c.Safe = false
			case b.entails(facts, satlogic.Pit(i, j).Not()) && b.entails(facts, satlogic.Wumpus(i, j).Not()):
				c.Safe = true
			}
		}
	}
}

// snapshotFacts converts the current cells into the fact view satlogic
// needs to build a CNF (visited + percepts only).
func (b *Base) snapshotFacts() [][]satlogic.CellFacts {
	facts := make([][]satlogic.CellFacts, b.N)
	for i := range facts {
		facts[i] = make([]satlogic.CellFacts, b.N)
		for j := range facts[i] {
			c := b.Cells[i][j]
			facts[i][j] = satlogic.CellFacts{
				Visited: c.Visited,
				Breeze:  c.Percepts.Breeze,
				Stench:  c.Percepts.Stench,
			}
		}
	}

	return facts
}

// entails wraps satlogic.Entails, counting the call for metrics purposes.
func (b *Base) entails(facts [][]satlogic.CellFacts, lit satlogic.Literal) bool {
	b.SATCalls++

	return satlogic.Entails(b.Reg, b.topo, facts, lit)
}

// countSupport tallies, for each unvisited/unsafe/unconfirmed cell, how
// many visited neighbors' percepts name it as a hazard candidate (§4.5
// step 3, Glossary "Support").
func (b *Base) countSupport() (pit, wumpus map[grid.Coord]int) {
	pit = make(map[grid.Coord]int)
	wumpus = make(map[grid.Coord]int)

	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			c := b.Cells[i][j]
			if !c.Visited {
				continue
			}

			var candidates []grid.Coord
			for _, n := range b.topo.Neighbors(i, j) {
				nc := b.Cells[n.I][n.J]
				if nc.Visited || nc.Safe || nc.ConfirmedPit || nc.ConfirmedWumpus {
					continue
				}
				candidates = append(candidates, n)
			}

			if c.Percepts.Breeze {
				for _, n := range candidates {
					pit[n]++
				}
			}
			if c.Percepts.Stench {
				for _, n := range candidates {
					wumpus[n]++
				}
			}
		}
	}

	return pit, wumpus
}

// supportToProb converts a support count into a heuristic probability
// (§4.5 step 4).
func supportToProb(support int, corner bool) float64 {
	if support > maxSupport {
		support = maxSupport
	}
	if support <= 0 {
		return 0
	}

	p := probBase * math.Pow(math.Log2(float64(support)+1), probExponent)
	if corner {
		p *= cornerBoost
	}
	if p > probCap {
		p = probCap
	}

	return p
}

// assignProbabilities writes p_pit/p_wumpus from support counts, but only
// for cells that are not safe and not confirmed (confirmed cells are pinned
// by enforceDominance) (§4.5 step 4).
func (b *Base) assignProbabilities(pitSupport, wumpusSupport map[grid.Coord]int) {
	for coord, s := range pitSupport {
		c := &b.Cells[coord.I][coord.J]
		if !c.Safe && !c.ConfirmedPit {
			c.PPit = supportToProb(s, b.topo.IsCorner(coord.I, coord.J))
		}
	}
	for coord, s := range wumpusSupport {
		c := &b.Cells[coord.I][coord.J]
		if !c.Safe && !c.ConfirmedWumpus {
			c.PWumpus = supportToProb(s, b.topo.IsCorner(coord.I, coord.J))
		}
	}
}

// enforceDominance pins confirmed-hazard and safe cells' probabilities and
// suppresses heuristic mass in a confirmed hazard's 8-neighborhood (§4.5
// step 5).
func (b *Base) enforceDominance() {
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			c := &b.Cells[i][j]

			switch {
			case c.ConfirmedPit:
				c.PPit = 1
				c.PWumpus = 0
				for _, n := range b.topo.Neighbors(i, j) {
					b.Cells[n.I][n.J].PPit = 0
				}
				for _, n := range b.topo.DiagonalNeighbors(i, j) {
					b.Cells[n.I][n.J].PPit = 0
				}
			case c.ConfirmedWumpus:
				c.PWumpus = 1
				c.PPit = 0
				for _, n := range b.topo.Neighbors(i, j) {
					b.Cells[n.I][n.J].PWumpus = 0
				}
				for _, n := range b.topo.DiagonalNeighbors(i, j) {
					b.Cells[n.I][n.J].PWumpus = 0
				}
			case c.Safe:
				c.PPit = 0
				c.PWumpus = 0
			}
		}
	}
}
