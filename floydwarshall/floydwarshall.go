// Package floydwarshall answers shortest-path queries with the all-pairs
// Floyd-Warshall algorithm.
//
// Every call rebuilds the distance and next-hop matrices from the current
// graph; nothing is cached between calls. A single query therefore costs
// the full O(V³) closure, which is acceptable for the small networks this
// package targets.
package floydwarshall

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/matrix"
	"github.com/katalvlaran/citypath/paths"
)

// Name is the algorithm label carried by every Result this package returns.
const Name = "Floyd-Warshall"

// ShortestPath returns the minimum-distance path from source to dest by
// tracing next hops after a full all-pairs closure. Unknown endpoints and
// unreachable destinations yield an empty Result.
func ShortestPath(g *core.Graph, source, dest string) paths.Result {
	if g == nil || !g.HasCity(source) || !g.HasCity(dest) {
		return paths.Empty(Name)
	}
	if source == dest {
		return paths.Single(Name, source)
	}

	t, err := AllPairs(g)
	if err != nil {
		return paths.Empty(Name)
	}
	nodes, err := t.adj.Path(source, dest)
	if err != nil || nodes == nil {
		return paths.Empty(Name)
	}

	return paths.FromNodes(g, Name, nodes)
}

// Table holds the closed all-pairs matrices of one graph snapshot.
type Table struct {
	adj *matrix.Adjacency
}

// AllPairs builds and closes the matrices for g.
//
// Errors: matrix.ErrGraphNil, matrix.ErrEmptyGraph.
//
// Complexity: Time O(V³), Space O(V²).
func AllPairs(g *core.Graph) (*Table, error) {
	adj, err := matrix.NewAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}
	if err = adj.Close(); err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}

	return &Table{adj: adj}, nil
}

// Cities returns the city IDs indexed by the table, ascending.
func (t *Table) Cities() []string {
	out := make([]string, len(t.adj.IDs))
	copy(out, t.adj.IDs)

	return out
}

// Distance returns the shortest distance between two cities and whether
// the destination is reachable. Unknown cities are unreachable.
func (t *Table) Distance(from, to string) (float64, bool) {
	d, err := t.adj.Distance(from, to)
	if err != nil || math.IsInf(d, 1) {
		return 0, false
	}

	return d, true
}

// Path returns the city sequence of a shortest path, or nil.
func (t *Table) Path(from, to string) []string {
	p, err := t.adj.Path(from, to)
	if err != nil {
		return nil
	}

	return p
}
