// Package engine exposes the minimal, transport-agnostic surface the core
// offers external collaborators (§6): Construct installs a world,
// Step advances one tick, Snapshot/Restore give an opaque deep copy for
// undo, and Observe returns a read-only view of the run.
//
// Ambient concerns live here rather than in agent: structured logging per
// tick (github.com/rs/zerolog) and Prometheus counters/histograms for the
// SAT solver call volume and rebuild latency the knowledge base reports
// (github.com/prometheus/client_golang).
package engine
