// Package dijkstra computes minimum-distance paths between cities.
//
// Overview:
//
//   - ShortestPath answers a single source → destination query and returns a
//     paths.Result; it never returns an error. Unknown cities and unreachable
//     destinations produce an empty Result.
//   - Distances returns the whole single-source tree (distance and predecessor
//     maps); the analyzer uses it for all-pairs statistics.
//
// Determinism:
//
//   - The unsettled city with the smallest tentative distance is selected by a
//     scan in ascending ID order with a strict "<" comparison, and routes are
//     relaxed in ascending neighbor order. Two runs on the same graph always
//     produce identical Results.
//
// Options:
//
//   - WithMaxDistance(d): cities farther than d are never settled.
//   - WithAlgorithmName(s): label written into Result.Algorithm.
//
// Route weights are non-negative by construction (core rejects negative
// distances), which is what label-setting requires.
package dijkstra
