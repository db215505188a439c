package astar

import (
	"container/heap"

	"github.com/katalvlaran/wumpus/grid"
	"github.com/katalvlaran/wumpus/knowledge"
	"github.com/katalvlaran/wumpus/risk"
)

// FindPath computes the minimum-risk path from start to target over kb's
// topology (§4.7). The returned path is the sequence of cells from the
// first step up to and including target; start itself is never included.
// If start == target, FindPath returns an empty path with cost 0.
//
// Confirmed-pit nodes are never expanded; confirmed-wumpus nodes are never
// expanded except target when AllowTargetWumpus is set. Edge cost onto
// target under that exemption is always 1 (step_risk = 0); every other
// edge costs 1 + risk.Score of the neighbor being entered.
func FindPath(kb *knowledge.Base, start, target grid.Coord, opts ...Option) ([]grid.Coord, float64, error) {
	if kb == nil {
		return nil, 0, ErrNilBase
	}
	if !inBounds(kb.N, start) || !inBounds(kb.N, target) {
		return nil, 0, ErrOutOfBounds
	}

	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	if start == target {
		return nil, 0, nil
	}

	r := &runner{kb: kb, target: target, cfg: cfg}

	return r.run(start)
}

func inBounds(n int, c grid.Coord) bool {
	return c.I >= 0 && c.I < n && c.J >= 0 && c.J < n
}

// runner holds the mutable state of a single FindPath search.
type runner struct {
	kb     *knowledge.Base
	target grid.Coord
	cfg    Options
}

// run executes the A* search from start, returning the reconstructed path
// and its total cost.
func (r *runner) run(start grid.Coord) ([]grid.Coord, float64, error) {
	gScore := map[grid.Coord]float64{start: 0}
	cameFrom := map[grid.Coord]grid.Coord{}
	closed := map[grid.Coord]bool{}

	pq := make(nodePQ, 0, r.kb.N*r.kb.N)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{coord: start, f: manhattan(start, r.target)})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*nodeItem)
		if closed[cur.coord] {
			continue
		}
		if cur.coord == r.target {
			return r.reconstruct(cameFrom, start), gScore[r.target], nil
		}
		closed[cur.coord] = true

		for _, n := range r.kb.Neighbors(cur.coord.I, cur.coord.J) {
			if !r.expandable(n) {
				continue
			}

			stepRisk := r.stepRisk(n)
			candidate := gScore[cur.coord] + 1 + stepRisk
			if existing, ok := gScore[n]; ok && candidate >= existing {
				continue
			}

			gScore[n] = candidate
			cameFrom[n] = cur.coord
			heap.Push(&pq, &nodeItem{coord: n, f: candidate + manhattan(n, r.target)})
		}
	}

	return nil, 0, ErrNoPath
}

// expandable reports whether n may be entered: a confirmed pit always
// blocks expansion; a confirmed wumpus blocks it unless n is the exempted
// target.
func (r *runner) expandable(n grid.Coord) bool {
	c := r.kb.Cells[n.I][n.J]
	if n == r.target && r.cfg.AllowTargetWumpus {
		return !c.ConfirmedPit
	}

	return !c.ConfirmedPit && !c.ConfirmedWumpus
}

// stepRisk is 0 onto the exempted target, else risk.Score(n) (§4.7).
func (r *runner) stepRisk(n grid.Coord) float64 {
	if n == r.target && r.cfg.AllowTargetWumpus {
		return 0
	}
	c := r.kb.Cells[n.I][n.J]

	return risk.Score(risk.Input{
		PPit:            c.PPit,
		PWumpus:         c.PWumpus,
		ConfirmedPit:    c.ConfirmedPit,
		ConfirmedWumpus: c.ConfirmedWumpus,
		Visited:         c.Visited,
		ArrowsRemaining: r.cfg.ArrowsRemaining,
	})
}

// reconstruct walks cameFrom backward from target to start, then reverses
// it so the path runs forward, excluding start (§4.7).
func (r *runner) reconstruct(cameFrom map[grid.Coord]grid.Coord, start grid.Coord) []grid.Coord {
	path := []grid.Coord{r.target}
	cur := r.target
	for cur != start {
		cur = cameFrom[cur]
		if cur == start {
			break
		}
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// manhattan is the admissible heuristic: distance to target, valid because
// every edge costs ≥1 (§4.7).
func manhattan(a, b grid.Coord) float64 {
	di := a.I - b.I
	if di < 0 {
		di = -di
	}
	dj := a.J - b.J
	if dj < 0 {
		dj = -dj
	}

	return float64(di + dj)
}

// nodeItem is a (coord, f-score) pair ordered by f ascending.
type nodeItem struct {
	coord grid.Coord
	f     float64
}

// nodePQ is a min-heap of *nodeItem, using the lazy-decrease-key pattern:
// stale entries are skipped via the closed set rather than removed.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
