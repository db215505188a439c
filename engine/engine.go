package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wumpus/agent"
	"github.com/katalvlaran/wumpus/grid"
)

// ErrNotConstructed is returned by Step and Observe when called before
// Construct.
var ErrNotConstructed = errors.New("engine: no world constructed")

// Engine wires the decision controller to the external interface (§6),
// with structured logging and metrics collection bolted on per tick.
type Engine struct {
	ctrl    *agent.Controller
	log     zerolog.Logger
	metrics *Metrics
}

// New builds an Engine. log and metrics may be zero values (a discard
// logger, a Metrics built against a throwaway registry) for callers that
// don't care about observability.
func New(log zerolog.Logger, metrics *Metrics) *Engine {
	return &Engine{log: log, metrics: metrics}
}

// Construct installs a new N×N world with the given initial arrow count
// (§6), replacing any previous run.
func (e *Engine) Construct(world *grid.Grid, arrows int) {
	e.ctrl = agent.Construct(world, arrows)
	e.log.Info().
		Int("n", world.N).
		Int("arrows", arrows).
		Msg("world constructed")
}

// Step advances one tick and returns the resulting observation (§6). A
// terminated (dead) agent makes Step a no-op that still returns the
// current observation.
func (e *Engine) Step() (Observation, error) {
	if e.ctrl == nil {
		return Observation{}, ErrNotConstructed
	}

	killsBefore := e.ctrl.State.WumpusKillCount

	start := time.Now()
	e.ctrl.Step()
	elapsed := time.Since(start)

	calls := e.ctrl.KB.ResetSATCalls()
	if e.metrics != nil {
		e.metrics.TicksTotal.Inc()
		e.metrics.SATCallsTotal.Add(float64(calls))
		e.metrics.RebuildSeconds.Observe(elapsed.Seconds())
		if killedThisTick := e.ctrl.State.WumpusKillCount - killsBefore; killedThisTick > 0 {
			e.metrics.WumpusKills.Add(float64(killedThisTick))
		}
	}

	e.log.Debug().
		Int("steps", e.ctrl.State.Steps).
		Str("mode", e.ctrl.State.Mode.String()).
		Str("action", e.ctrl.State.Action.String()).
		Bool("alive", e.ctrl.State.Alive).
		Int("sat_calls", calls).
		Dur("elapsed", elapsed).
		Msg("tick")

	if !e.ctrl.State.Alive {
		e.log.Info().Str("death_cause", e.ctrl.State.DeathCause.String()).Msg("agent terminated")
	}

	return observe(e.ctrl), nil
}

// Observe returns the current read-only view without advancing a tick
// (§6).
func (e *Engine) Observe() (Observation, error) {
	if e.ctrl == nil {
		return Observation{}, ErrNotConstructed
	}

	return observe(e.ctrl), nil
}

// Snapshot is an opaque deep copy of engine state for undo (§6, §9).
type Snapshot struct {
	ctrl *agent.Controller
}

// Snapshot captures the entire post-tick state atomically (§5).
func (e *Engine) Snapshot() (*Snapshot, error) {
	if e.ctrl == nil {
		return nil, ErrNotConstructed
	}

	return &Snapshot{ctrl: e.ctrl.Clone()}, nil
}

// Restore replaces the engine's state with a deep copy of snap, preserving
// every field in §3 including the variable registry.
func (e *Engine) Restore(snap *Snapshot) error {
	if snap == nil || snap.ctrl == nil {
		return ErrNotConstructed
	}

	e.ctrl = snap.ctrl.Clone()

	return nil
}
