// Package bfs provides breadth-first search over a city network.
//
// What
//
//   - Explore cities in non-decreasing hop count from a start city.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from city → hops from start
//   - Parent: map from city → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a city is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error, or stop with ErrStop)
//   - Allows filtering of individual routes via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Fewest-hops paths in O(V + E) time, as a structural probe next to the
//     distance-optimal algorithms.
//   - Reachability from a city, level layering.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs sorted ascending and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
package bfs
