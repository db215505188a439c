// Package astar implements a risk-weighted A* planner over the grid (C7).
//
// FindPath computes the minimum-risk path from a start cell to a target
// cell, where the cost of stepping onto a neighbor is 1 plus that
// neighbor's risk score (risk.Score), except the target itself may be
// exempted when AllowTargetWumpus is set (used for hunting a confirmed
// wumpus, which is otherwise never expanded). The heuristic is Manhattan
// distance, admissible because every edge costs at least 1.
//
// Complexity: O((N² ) log(N²)) in the worst case, matching a standard
// binary-heap A*/Dijkstra over an N×N grid (§5).
package astar
