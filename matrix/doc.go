// SPDX-License-Identifier: MIT

// Package matrix provides the dense matrix forms used by the all-pairs
// algorithms: a row-major float64 Dense matrix, an int next-hop matrix and
// an Adjacency adapter from *core.Graph.
//
// Numeric policy: +Inf denotes "no path"; the diagonal of a distance matrix
// is 0. Loops run in fixed index order, so results never depend on map
// iteration.
//
// Typical use:
//
//	adj, err := matrix.NewAdjacency(g)
//	if err != nil { ... }
//	if err = adj.Close(); err != nil { ... }
//	path, _ := adj.Path("Delhi", "Chennai")
package matrix
