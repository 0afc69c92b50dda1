// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NoHop marks a (i, j) pair without a known next hop.
const NoHop = -1

// Next is the square next-hop matrix paired with a distance matrix:
// At(i, j) is the index of the first city after i on the best known path
// from i to j, or NoHop.
type Next struct {
	n    int
	data []int
}

// NewNext creates an n×n next-hop matrix filled with NoHop.
func NewNext(n int) (*Next, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewNext(%d): %w", n, ErrBadShape)
	}
	data := make([]int, n*n)
	for i := range data {
		data[i] = NoHop
	}

	return &Next{n: n, data: data}, nil
}

// Order returns n.
func (x *Next) Order() int { return x.n }

// At returns the next hop for (i, j); out-of-range pairs yield NoHop.
func (x *Next) At(i, j int) int {
	if i < 0 || i >= x.n || j < 0 || j >= x.n {
		return NoHop
	}

	return x.data[i*x.n+j]
}

// Set writes the next hop for (i, j), or returns ErrOutOfRange.
func (x *Next) Set(i, j, hop int) error {
	if i < 0 || i >= x.n || j < 0 || j >= x.n {
		return fmt.Errorf("Next.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	x.data[i*x.n+j] = hop

	return nil
}

// Trace follows next hops from i to j and returns the index sequence
// i … j inclusive. It returns nil when no hop is recorded or when the chain
// does not reach j within n steps.
//
// Complexity: O(n).
func (x *Next) Trace(i, j int) []int {
	if i == j {
		return []int{i}
	}
	if x.At(i, j) == NoHop {
		return nil
	}

	seq := []int{i}
	for cur, steps := i, 0; cur != j; steps++ {
		if steps >= x.n {
			return nil
		}
		cur = x.At(cur, j)
		if cur == NoHop {
			return nil
		}
		seq = append(seq, cur)
	}

	return seq
}
