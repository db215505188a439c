// Package satlogic is the symbolic half of the belief-and-decision engine:
// the variable registry (C2), the CNF builder (C3), and the entailment
// oracle (C4).
//
// What:
//
//   - Registry is the lazily-growing bijection between (Kind, i, j) facts
//     and positive integer SAT variables (never removed, never renumbered).
//   - buildCNF translates a snapshot of per-cell facts into a fresh CNF
//     formula, asserted directly against a *gini.Gini solver instance
//     (github.com/irifrance/gini) — there is no intermediate formula object
//     to hand between the builder and the oracle, because gini's own API is
//     incremental clause assembly.
//   - Entails answers "does the knowledge captured in facts entail lit?" by
//     building the CNF, checking satisfiability, then asserting the negated
//     literal and re-solving (§4.4): entailment holds iff that second solve
//     is unsatisfiable. A contradictory base KB is treated as entailing
//     nothing (§4.4, §7) rather than propagating an error.
//
// Each call to Entails is independent and rebuilds the formula from
// scratch — there is no incremental retraction of clauses, matching the
// source algorithm's own non-incremental CNF construction.
package satlogic
