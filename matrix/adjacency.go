// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citypath/core"
)

// Adjacency is the matrix form of a city network: a stable index of city
// IDs (ascending) plus the route-distance matrix and its next-hop matrix.
//
// Before FloydWarshall runs, Dist holds 0 on the diagonal, the route
// distance for adjacent pairs and +Inf elsewhere; Next holds j for adjacent
// (i, j) and NoHop elsewhere.
type Adjacency struct {
	IDs   []string
	Index map[string]int
	Dist  *Dense
	Next  *Next
}

// NewAdjacency builds the matrix form of g.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph.
//
// Complexity: O(V² + E log E).
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Cities()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	dist, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	next, err := NewNext(n)
	if err != nil {
		return nil, err
	}
	dist.Fill(math.Inf(1))

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
		dist.data[i*n+i] = 0
		next.data[i*n+i] = i
	}
	for _, r := range g.Arcs() {
		i, j := index[r.From], index[r.To]
		dist.data[i*n+j] = r.Distance
		next.data[i*n+j] = j
	}

	return &Adjacency{IDs: ids, Index: index, Dist: dist, Next: next}, nil
}

// Close runs FloydWarshall over the adjacency matrices in place.
func (a *Adjacency) Close() error {
	return FloydWarshall(a.Dist, a.Next)
}

// Distance returns the current matrix distance from one city to another.
func (a *Adjacency) Distance(from, to string) (float64, error) {
	i, ok := a.Index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, from)
	}
	j, ok := a.Index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, to)
	}

	return a.Dist.At(i, j)
}

// Path traces the next-hop matrix from one city to another and returns the
// city IDs in order, or nil when there is no path.
func (a *Adjacency) Path(from, to string) ([]string, error) {
	i, ok := a.Index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, from)
	}
	j, ok := a.Index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, to)
	}

	seq := a.Next.Trace(i, j)
	if seq == nil {
		return nil, nil
	}
	out := make([]string, len(seq))
	for k, idx := range seq {
		out[k] = a.IDs[idx]
	}

	return out, nil
}
