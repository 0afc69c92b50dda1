// Package paths defines the Path Result shared by every algorithm and the
// path reconstructor that turns a predecessor map into an ordered route.
package paths

import (
	"github.com/katalvlaran/citypath/core"
)

// Result is the outcome of a single shortest-path query.
//
// Nodes runs from source to destination inclusive and is empty when the
// destination is unreachable or either endpoint is unknown. Distance and
// Time are the sums over Routes, in path order.
type Result struct {
	Algorithm string
	Nodes     []string
	Distance  float64
	Time      float64
	Routes    []core.Route
}

// Found reports whether the query produced a path.
func (r Result) Found() bool { return len(r.Nodes) > 0 }

// Hops returns the number of routes on the path.
func (r Result) Hops() int { return len(r.Routes) }

// Empty returns the "no path" result for algorithm.
func Empty(algorithm string) Result {
	return Result{Algorithm: algorithm}
}

// Single returns the result of a self-query: one node, zero distance.
func Single(algorithm, id string) Result {
	return Result{Algorithm: algorithm, Nodes: []string{id}}
}

// FromNodes builds a Result for the node sequence nodes by looking up the
// route between each consecutive pair in g and summing distance and time in
// path order. A sequence containing a pair without a route yields Empty.
//
// Complexity: O(len(nodes)).
func FromNodes(g *core.Graph, algorithm string, nodes []string) Result {
	switch len(nodes) {
	case 0:
		return Empty(algorithm)
	case 1:
		return Single(algorithm, nodes[0])
	}

	res := Result{
		Algorithm: algorithm,
		Nodes:     make([]string, len(nodes)),
		Routes:    make([]core.Route, 0, len(nodes)-1),
	}
	copy(res.Nodes, nodes)
	for i := 0; i+1 < len(nodes); i++ {
		r, ok := g.Route(nodes[i], nodes[i+1])
		if !ok {
			return Empty(algorithm)
		}
		res.Routes = append(res.Routes, r)
		res.Distance += r.Distance
		res.Time += r.Time
	}

	return res
}
