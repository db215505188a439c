package astar

import "errors"

// Sentinel errors returned by FindPath.
var (
	// ErrNilBase indicates a nil knowledge base was passed to FindPath.
	ErrNilBase = errors.New("astar: knowledge base is nil")

	// ErrOutOfBounds indicates start or target lies outside the grid.
	ErrOutOfBounds = errors.New("astar: coordinate out of bounds")

	// ErrNoPath indicates the target is unreachable without crossing a
	// confirmed hazard.
	ErrNoPath = errors.New("astar: no path to target")
)

// Options configures a FindPath call.
//
// AllowTargetWumpus – if true, the target cell is exempted from both the
// confirmed-wumpus expansion block and its risk cost (step_risk = 0 onto
// it). Used only when hunting a known wumpus (§4.7, §4.8 rule 9).
type Options struct {
	AllowTargetWumpus bool
	ArrowsRemaining   int
}

// Option is a functional option for FindPath.
type Option func(*Options)

// WithAllowTargetWumpus exempts the target cell from the confirmed-wumpus
// block, letting the planner route onto it.
func WithAllowTargetWumpus() Option {
	return func(o *Options) {
		o.AllowTargetWumpus = true
	}
}

// WithArrowsRemaining informs the risk function of the agent's current
// arrow count, which relaxes the cost of likely-wumpus cells when arrows
// are available to hunt with (risk.Score's bonus term).
func WithArrowsRemaining(n int) Option {
	return func(o *Options) {
		o.ArrowsRemaining = n
	}
}

func defaultOptions() Options {
	return Options{AllowTargetWumpus: false, ArrowsRemaining: 0}
}
