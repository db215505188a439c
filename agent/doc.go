// Package agent implements the decision controller (C8) and the shooting
// simulation (C9): the priority ladder that turns updated knowledge into
// the next move or action, and the ray-cast arrow mechanic that can kill
// a wumpus.
//
// Controller owns the three pieces of state a tick touches: the ground-
// truth world (mutated only by picking up items or killing a wumpus), the
// knowledge base (C5), and the run-state record the external interface
// observes. Step evaluates the twelve-rule ladder in §4.8 order and stops
// at the first rule that fires.
package agent
