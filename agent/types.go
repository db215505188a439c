package agent

import "github.com/katalvlaran/wumpus/grid"

// DeathCause records why a run ended, or None while the agent is alive.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CausePit
	CauseWumpus
	CauseTimeout
)

// String renders the death cause the way observers expect it serialized.
func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CausePit:
		return "pit"
	case CauseWumpus:
		return "wumpus"
	case CauseTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Mode is the last policy tag the ladder selected (§3, §4.8).
type Mode int

const (
	ModeNone Mode = iota
	ModeReturning
	ModeSafeMove
	ModeHunt
	ModeBacktrack
	ModeFrontier
	ModeGamble
	ModeShoot
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeReturning:
		return "returning"
	case ModeSafeMove:
		return "safe_move"
	case ModeHunt:
		return "hunt"
	case ModeBacktrack:
		return "backtrack"
	case ModeFrontier:
		return "frontier"
	case ModeGamble:
		return "gamble"
	case ModeShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Action is the last side-effecting (non-movement) action the ladder
// recorded (§3, §4.8).
type Action int

const (
	ActionNone Action = iota
	ActionPickGold
	ActionPickArrow
	ActionShoot
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPickGold:
		return "pick_gold"
	case ActionPickArrow:
		return "pick_arrow"
	case ActionShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// RunState is the agent's external run-state record (§3).
type RunState struct {
	Pos        grid.Coord
	Path       []grid.Coord
	Arrows     int
	Alive      bool
	DeathCause DeathCause
	GoldFound  bool
	Returning  bool
	Steps      int
	MaxSteps   int
	Mode       Mode
	Action     Action

	ArrowPositions         []grid.Coord
	KilledWumpusPositions  []grid.Coord
	WumpusKillCount        int
	TotalArrowsCollected   int
}

// clone deep-copies s, including every slice, for snapshot/restore.
func (s RunState) clone() RunState {
	out := s
	out.Path = append([]grid.Coord(nil), s.Path...)
	out.ArrowPositions = append([]grid.Coord(nil), s.ArrowPositions...)
	out.KilledWumpusPositions = append([]grid.Coord(nil), s.KilledWumpusPositions...)

	return out
}
