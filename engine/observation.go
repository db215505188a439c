package engine

import (
	"github.com/katalvlaran/wumpus/agent"
	"github.com/katalvlaran/wumpus/grid"
)

// CellView is one knowledge cell flattened for external observation (§6:
// "the knowledge grid flattened as a list-of-rows of cell dictionaries").
type CellView struct {
	Visited         bool
	Safe            bool
	ConfirmedPit    bool
	ConfirmedWumpus bool
	Percepts        grid.Percepts
	PPit            float64
	PWumpus         float64
}

// Observation is the engine's read-only external view (§6).
type Observation struct {
	Pos        grid.Coord
	Path       []grid.Coord
	Alive      bool
	Mode       string
	Action     string
	Arrows     int
	GoldFound  bool
	Returning  bool
	Steps      int
	MaxSteps   int
	DeathCause string

	ArrowPositions        []grid.Coord
	KilledWumpusPositions []grid.Coord
	WumpusKillCount       int
	TotalArrowsCollected  int

	Knowledge [][]CellView
}

// observe builds an Observation from a controller's current state. Every
// slice is copied so callers cannot mutate engine-owned memory.
func observe(c *agent.Controller) Observation {
	knowledge := make([][]CellView, c.KB.N)
	for i := range knowledge {
		knowledge[i] = make([]CellView, c.KB.N)
		for j := range knowledge[i] {
			cell := c.KB.Cells[i][j]
			knowledge[i][j] = CellView{
				Visited:         cell.Visited,
				Safe:            cell.Safe,
				ConfirmedPit:    cell.ConfirmedPit,
				ConfirmedWumpus: cell.ConfirmedWumpus,
				Percepts:        cell.Percepts,
				PPit:            cell.PPit,
				PWumpus:         cell.PWumpus,
			}
		}
	}

	return Observation{
		Pos:                   c.State.Pos,
		Path:                  append([]grid.Coord(nil), c.State.Path...),
		Alive:                 c.State.Alive,
		Mode:                  c.State.Mode.String(),
		Action:                c.State.Action.String(),
		Arrows:                c.State.Arrows,
		GoldFound:             c.State.GoldFound,
		Returning:             c.State.Returning,
		Steps:                 c.State.Steps,
		MaxSteps:              c.State.MaxSteps,
		DeathCause:            c.State.DeathCause.String(),
		ArrowPositions:        append([]grid.Coord(nil), c.State.ArrowPositions...),
		KilledWumpusPositions: append([]grid.Coord(nil), c.State.KilledWumpusPositions...),
		WumpusKillCount:       c.State.WumpusKillCount,
		TotalArrowsCollected:  c.State.TotalArrowsCollected,
		Knowledge:             knowledge,
	}
}
