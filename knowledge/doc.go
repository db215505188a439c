// Package knowledge is the per-cell belief store (C5): it fuses the SAT
// entailment oracle (github.com/katalvlaran/wumpus/satlogic) with a
// heuristic support-count probability estimate, and keeps both consistent
// with the invariants in spec §3.
//
// What:
//
//   - Cell holds one grid cell's belief state: visited/safe/confirmed
//     flags, last observed percepts, and p_pit/p_wumpus in [0,1].
//   - Base owns the N×N cell arena plus the long-lived variable registry
//     shared across every SAT query.
//   - Update records a newly-visited cell's percepts and triggers Rebuild.
//   - Rebuild runs the five-stage pipeline in order: reset, logical pass,
//     support counting, support→probability, dominance. The order is load
//     bearing — logical results must override probabilities, and
//     confirmed-cell clearing must run after support assignment (§4.5).
//
// Complexity: Rebuild performs up to 4 entailment queries per unvisited
// cell, each rebuilding an O(N²) CNF from scratch — O(N²) solves per
// rebuild (§5).
package knowledge
