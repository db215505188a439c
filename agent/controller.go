package agent

import (
	"math"

	"github.com/katalvlaran/wumpus/astar"
	"github.com/katalvlaran/wumpus/grid"
	"github.com/katalvlaran/wumpus/knowledge"
	"github.com/katalvlaran/wumpus/risk"
)

// probShootThreshold is the p_wumpus cutoff for rule 6 (§4.8).
const probShootThreshold = 0.65

// frontierHazardWeight scales heuristic hazard mass against A* cost when
// ranking frontier candidates (§4.8 rule 11).
const frontierHazardWeight = 40.0

// Controller runs the priority-ladder decision procedure over a world and
// its knowledge base (C8/C9).
type Controller struct {
	World *grid.Grid
	KB    *knowledge.Base
	State RunState
}

// Construct installs a new world and initial arrow count, starting the
// agent at (0,0) with an empty knowledge base (§6).
func Construct(world *grid.Grid, arrows int) *Controller {
	kb := knowledge.NewBase(world)

	return &Controller{
		World: world,
		KB:    kb,
		State: RunState{
			Pos:      grid.Coord{I: 0, J: 0},
			Path:     []grid.Coord{{I: 0, J: 0}},
			Arrows:   arrows,
			Alive:    true,
			MaxSteps: 6 * world.N * world.N,
		},
	}
}

// Clone deep-copies the controller for the engine's snapshot mechanism.
func (c *Controller) Clone() *Controller {
	return &Controller{
		World: c.World.Clone(),
		KB:    c.KB.Clone(),
		State: c.State.clone(),
	}
}

// Step advances one tick, running the ladder to its first firing rule. A
// dead agent makes Step a no-op (§7).
func (c *Controller) Step() {
	if !c.State.Alive {
		return
	}

	c.State.Action = ActionNone

	// Rule 1: death check against the ground-truth label of the cell the
	// agent currently occupies.
	switch c.World.At(c.State.Pos.I, c.State.Pos.J) {
	case grid.Pit:
		c.die(CausePit)
		return
	case grid.Wumpus:
		c.die(CauseWumpus)
		return
	}

	// Rule 2: step cap.
	c.State.Steps++
	if c.State.Steps > c.State.MaxSteps {
		c.die(CauseTimeout)
		return
	}

	percepts := c.World.Percepts(c.State.Pos.I, c.State.Pos.J)
	c.KB.Update(c.State.Pos, percepts)

	if c.tryPickGold(percepts) {
		return
	}
	if c.tryPickArrow(percepts) {
		return
	}
	if c.tryImmediateShot() {
		return
	}
	if c.tryProbabilisticShot(percepts) {
		return
	}
	if c.tryReturnHome() {
		return
	}
	if c.trySafeMove() {
		return
	}
	if c.tryHunt() {
		return
	}
	if c.tryBacktrack() {
		return
	}
	if c.tryFrontier() {
		return
	}
	c.gamble()
}

func (c *Controller) die(cause DeathCause) {
	c.State.Alive = false
	c.State.DeathCause = cause
}

// tryPickGold is rule 3.
func (c *Controller) tryPickGold(p grid.Percepts) bool {
	if !p.Glitter || c.State.GoldFound {
		return false
	}

	c.State.GoldFound = true
	c.State.Returning = true
	c.World.Clear(c.State.Pos.I, c.State.Pos.J)
	c.State.Action = ActionPickGold

	return true
}

// tryPickArrow is rule 4.
func (c *Controller) tryPickArrow(p grid.Percepts) bool {
	if !p.HasArrow {
		return false
	}

	c.State.Arrows++
	c.State.TotalArrowsCollected++
	c.World.Clear(c.State.Pos.I, c.State.Pos.J)
	c.State.Action = ActionPickArrow
	c.State.ArrowPositions = append(c.State.ArrowPositions, c.State.Pos)

	return true
}

// tryImmediateShot is rule 5.
func (c *Controller) tryImmediateShot() bool {
	if c.State.Arrows <= 0 {
		return false
	}

	for _, n := range c.KB.Neighbors(c.State.Pos.I, c.State.Pos.J) {
		if c.KB.Cells[n.I][n.J].ConfirmedWumpus {
			c.shootAt(n)

			return true
		}
	}

	return false
}

// tryProbabilisticShot is rule 6.
func (c *Controller) tryProbabilisticShot(p grid.Percepts) bool {
	if c.State.Arrows <= 0 || !p.Stench {
		return false
	}

	best, bestP, found := c.bestUnvisitedWumpusCandidate()
	if !found || bestP <= probShootThreshold {
		return false
	}

	c.shootAt(best)

	return true
}

// bestUnvisitedWumpusCandidate scans orthogonal neighbors in the pinned
// N,S,W,E order and returns the one with the highest p_wumpus (§9).
func (c *Controller) bestUnvisitedWumpusCandidate() (grid.Coord, float64, bool) {
	var best grid.Coord
	bestP := -1.0
	found := false

	for _, n := range c.KB.Neighbors(c.State.Pos.I, c.State.Pos.J) {
		cell := c.KB.Cells[n.I][n.J]
		if cell.Visited {
			continue
		}
		if cell.PWumpus > bestP {
			bestP = cell.PWumpus
			best = n
			found = true
		}
	}

	return best, bestP, found
}

// shootAt fires at target, records the action, and runs the post-shot
// recompute (C9).
func (c *Controller) shootAt(target grid.Coord) {
	c.State.Arrows--
	c.State.Action = ActionShoot
	c.State.Mode = ModeShoot

	killed := Shoot(c.World, c.State.Pos, target)
	if len(killed) > 0 {
		c.State.KilledWumpusPositions = append(c.State.KilledWumpusPositions, killed...)
		c.State.WumpusKillCount += len(killed)
		c.recomputeAfterKill(killed)
	}
}

// recomputeAfterKill applies §4.9's after-kill knowledge update: mark each
// killed cell visited/safe/cleared, refresh percepts on every visited
// cell, then rebuild.
func (c *Controller) recomputeAfterKill(killed []grid.Coord) {
	for _, k := range killed {
		cell := &c.KB.Cells[k.I][k.J]
		cell.Visited = true
		cell.Safe = true
		cell.ConfirmedPit = false
		cell.ConfirmedWumpus = false
		cell.PPit = 0
		cell.PWumpus = 0
	}

	for i := 0; i < c.KB.N; i++ {
		for j := 0; j < c.KB.N; j++ {
			if c.KB.Cells[i][j].Visited {
				c.KB.Cells[i][j].Percepts = c.World.Percepts(i, j)
			}
		}
	}

	c.KB.Rebuild()
}

// tryReturnHome is rule 7. Once returning, this rule always fires: an
// empty path with no error means the agent is already home and stays put;
// only ErrNoPath falls through to the next rule.
func (c *Controller) tryReturnHome() bool {
	if !c.State.Returning {
		return false
	}

	path, _, err := astar.FindPath(c.KB, c.State.Pos, grid.Coord{I: 0, J: 0}, astar.WithArrowsRemaining(c.State.Arrows))
	if err != nil {
		return false
	}
	if len(path) == 0 {
		c.State.Mode = ModeReturning

		return true
	}

	c.moveTo(path[0], ModeReturning)

	return true
}

// trySafeMove is rule 8.
func (c *Controller) trySafeMove() bool {
	best, found := c.bestNeighborBy(func(n grid.Coord) bool {
		cell := c.KB.Cells[n.I][n.J]

		return cell.Safe && !cell.Visited
	})
	if !found {
		return false
	}

	c.moveTo(best, ModeSafeMove)

	return true
}

// tryHunt is rule 9.
func (c *Controller) tryHunt() bool {
	if c.State.Arrows <= 0 || c.safeFrontierExists() {
		return false
	}

	target, found := c.nearestConfirmedWumpus()
	if !found {
		return false
	}

	path, _, err := astar.FindPath(c.KB, c.State.Pos, target, astar.WithAllowTargetWumpus(), astar.WithArrowsRemaining(c.State.Arrows))
	if err != nil || len(path) == 0 {
		return false
	}

	c.moveTo(path[0], ModeHunt)

	return true
}

// tryBacktrack is rule 10.
func (c *Controller) tryBacktrack() bool {
	target, found := c.nearestVisitedWithSafeFrontier()
	if !found {
		return false
	}

	path, _, err := astar.FindPath(c.KB, c.State.Pos, target, astar.WithArrowsRemaining(c.State.Arrows))
	if err != nil || len(path) == 0 {
		return false
	}

	c.moveTo(path[0], ModeBacktrack)

	return true
}

// tryFrontier is rule 11.
func (c *Controller) tryFrontier() bool {
	type candidate struct {
		coord grid.Coord
		step  grid.Coord
		score float64
	}

	var best *candidate
	for _, f := range c.frontierCells() {
		path, cost, err := astar.FindPath(c.KB, c.State.Pos, f, astar.WithArrowsRemaining(c.State.Arrows))
		if err != nil || len(path) == 0 {
			continue
		}

		cell := c.KB.Cells[f.I][f.J]
		score := cost + frontierHazardWeight*(cell.PPit+cell.PWumpus)
		if best == nil || score < best.score {
			best = &candidate{coord: f, step: path[0], score: score}
		}
	}

	if best == nil {
		return false
	}

	c.moveTo(best.step, ModeFrontier)

	return true
}

// gamble is rule 12, the unconditional fallback.
func (c *Controller) gamble() {
	best, found := c.bestNeighborBy(func(n grid.Coord) bool {
		return !c.KB.Cells[n.I][n.J].ConfirmedPit && !c.KB.Cells[n.I][n.J].ConfirmedWumpus
	})
	if !found {
		// All neighbors confirmed hazardous: widen to every neighbor (§7).
		best, found = c.bestNeighborBy(func(grid.Coord) bool { return true })
		if !found {
			return
		}
	}

	c.moveTo(best, ModeGamble)
}

// bestNeighborBy returns the orthogonal neighbor minimizing risk.Score
// among those satisfying predicate, scanned in N,S,W,E order.
func (c *Controller) bestNeighborBy(predicate func(grid.Coord) bool) (grid.Coord, bool) {
	var best grid.Coord
	bestScore := math.Inf(1)
	found := false

	for _, n := range c.KB.Neighbors(c.State.Pos.I, c.State.Pos.J) {
		if !predicate(n) {
			continue
		}

		score := c.riskAt(n)
		if !found || score < bestScore {
			bestScore = score
			best = n
			found = true
		}
	}

	return best, found
}

func (c *Controller) riskAt(n grid.Coord) float64 {
	cell := c.KB.Cells[n.I][n.J]

	return risk.Score(risk.Input{
		PPit:            cell.PPit,
		PWumpus:         cell.PWumpus,
		ConfirmedPit:    cell.ConfirmedPit,
		ConfirmedWumpus: cell.ConfirmedWumpus,
		Visited:         cell.Visited,
		ArrowsRemaining: c.State.Arrows,
	})
}

// safeFrontierExists reports whether any visited cell has an unvisited
// orthogonal neighbor with zero heuristic hazard anywhere on the grid
// (§4.8 rule 9). Tests p_pit==0 && p_wumpus==0 rather than the logical
// Safe flag, since dominance (§4.5 step 5) can zero a frontier cell's
// probabilities without it being entailed Safe.
func (c *Controller) safeFrontierExists() bool {
	for i := 0; i < c.KB.N; i++ {
		for j := 0; j < c.KB.N; j++ {
			if !c.KB.Cells[i][j].Visited {
				continue
			}
			for _, n := range c.KB.Neighbors(i, j) {
				cell := c.KB.Cells[n.I][n.J]
				if !cell.Visited && cell.PPit == 0 && cell.PWumpus == 0 {
					return true
				}
			}
		}
	}

	return false
}

// nearestConfirmedWumpus returns the closest confirmed-wumpus cell by
// Manhattan distance, scanning in row-major order for determinism: among
// equally distant cells the first one scanned wins.
func (c *Controller) nearestConfirmedWumpus() (grid.Coord, bool) {
	var best grid.Coord
	bestDist := math.MaxInt64
	found := false

	for i := 0; i < c.KB.N; i++ {
		for j := 0; j < c.KB.N; j++ {
			if !c.KB.Cells[i][j].ConfirmedWumpus {
				continue
			}
			d := abs(i-c.State.Pos.I) + abs(j-c.State.Pos.J)
			if d < bestDist {
				bestDist = d
				best = grid.Coord{I: i, J: j}
				found = true
			}
		}
	}

	return best, found
}

// nearestVisitedWithSafeFrontier returns the closest visited cell that has
// at least one safe, unvisited orthogonal neighbor (§4.8 rule 10).
func (c *Controller) nearestVisitedWithSafeFrontier() (grid.Coord, bool) {
	var best grid.Coord
	bestDist := math.MaxInt64
	found := false

	for i := 0; i < c.KB.N; i++ {
		for j := 0; j < c.KB.N; j++ {
			if !c.KB.Cells[i][j].Visited {
				continue
			}
			hasSafeFrontier := false
			for _, n := range c.KB.Neighbors(i, j) {
				cell := c.KB.Cells[n.I][n.J]
				if cell.Safe && !cell.Visited {
					hasSafeFrontier = true

					break
				}
			}
			if !hasSafeFrontier {
				continue
			}

			d := abs(i-c.State.Pos.I) + abs(j-c.State.Pos.J)
			if d < bestDist {
				bestDist = d
				best = grid.Coord{I: i, J: j}
				found = true
			}
		}
	}

	return best, found
}

// frontierCells lists unvisited cells orthogonally adjacent to any visited
// cell (Glossary "Frontier"), in order of first discovery: visited cells
// are scanned row-major and each one's neighbors in N,S,W,E order.
func (c *Controller) frontierCells() []grid.Coord {
	seen := make(map[grid.Coord]bool)
	var out []grid.Coord

	for i := 0; i < c.KB.N; i++ {
		for j := 0; j < c.KB.N; j++ {
			if !c.KB.Cells[i][j].Visited {
				continue
			}
			for _, n := range c.KB.Neighbors(i, j) {
				if c.KB.Cells[n.I][n.J].Visited || seen[n] {
					continue
				}
				seen[n] = true
				out = append(out, n)
			}
		}
	}

	return out
}

// moveTo steps the agent onto next, recording mode and path.
func (c *Controller) moveTo(next grid.Coord, mode Mode) {
	c.State.Pos = next
	c.State.Path = append(c.State.Path, next)
	c.State.Mode = mode
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
