// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with next-hop tracking and a deterministic loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.
//   - next[i][j] must hold j for every finite off-diagonal d[i][j], NoHop otherwise.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in place on d, keeping
// next consistent: whenever d[i][j] strictly improves through k,
// next[i][j] = next[i][k].
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements are
//     applied, so among equal-cost paths the earliest-found one is kept.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense, next *Next) error {
	if d == nil || next == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	if d.r != d.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, d.r, d.c, ErrNonSquare)
	}
	if next.n != d.r {
		return fmt.Errorf("%s: dist %d, next %d: %w", opFloydWarshall, d.r, next.n, ErrDimensionMismatch)
	}

	n := d.r
	data, hops := d.data, next.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					hops[baseI+j] = hops[baseI+k]
				}
			}
		}
	}

	return nil
}
