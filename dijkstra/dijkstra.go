package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
)

// ShortestPath returns the minimum-distance path from source to dest.
//
// Behavior highlights:
//   - Unknown source or dest, or a nil graph: empty Result.
//   - source == dest: single-node Result with zero distance.
//   - dest unreachable (or beyond MaxDistance): empty Result.
//   - Search stops as soon as dest is settled.
//
// Distance and Time of the Result are summed over the returned routes.
func ShortestPath(g *core.Graph, source, dest string, opts ...Option) paths.Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil || !g.HasCity(source) || !g.HasCity(dest) {
		return paths.Empty(cfg.AlgorithmName)
	}
	if source == dest {
		return paths.Single(cfg.AlgorithmName, source)
	}

	r := newRunner(g, source, cfg)
	r.process(dest)
	if !r.settled[dest] {
		return paths.Empty(cfg.AlgorithmName)
	}

	res, err := paths.Build(g, cfg.AlgorithmName, r.prev, source, dest)
	if err != nil {
		return paths.Empty(cfg.AlgorithmName)
	}

	return res
}

// Distances computes the full single-source shortest-path tree.
//
// Returns:
//   - dist: city ID → distance from source (+Inf if unreachable).
//   - prev: city ID → predecessor on a shortest path ("" for the source and
//     for unreachable cities).
//
// Errors: ErrNilGraph, ErrCityNotFound.
func Distances(g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasCity(source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrCityNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := newRunner(g, source, cfg)
	r.process("")

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	order   []string           // city IDs ascending; the scan order
	dist    map[string]float64 // city ID → best-known distance from source
	prev    map[string]string  // city ID → predecessor on the best path
	settled map[string]bool    // city ID → distance is final
}

// newRunner initializes dist[v] = +Inf, prev[v] = "" for every city and
// dist[source] = 0.
func newRunner(g *core.Graph, source string, cfg Options) *runner {
	order := g.Cities()
	r := &runner{
		g:       g,
		options: cfg,
		order:   order,
		dist:    make(map[string]float64, len(order)),
		prev:    make(map[string]string, len(order)),
		settled: make(map[string]bool, len(order)),
	}
	for _, id := range order {
		r.dist[id] = math.Inf(1)
		r.prev[id] = ""
	}
	r.dist[source] = 0

	return r
}

// process settles cities one at a time until stop is settled (when stop is
// non-empty), nothing reachable is left, or the next distance exceeds
// MaxDistance.
func (r *runner) process(stop string) {
	for {
		u, ok := r.next()
		if !ok {
			return
		}
		r.settled[u] = true
		if u == stop {
			return
		}
		r.relax(u)
	}
}

// next picks the unsettled city with the smallest finite distance within
// MaxDistance. Ties go to the first city in ID order.
func (r *runner) next() (string, bool) {
	best, bestDist := "", math.Inf(1)
	for _, id := range r.order {
		if r.settled[id] {
			continue
		}
		if d := r.dist[id]; d < bestDist {
			best, bestDist = id, d
		}
	}
	if best == "" || bestDist > r.options.MaxDistance {
		return "", false
	}

	return best, true
}

// relax improves tentative distances of u's unsettled neighbors.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, rt := range r.g.OutRoutes(u) {
		if r.settled[rt.To] {
			continue
		}
		if nd := du + rt.Distance; nd < r.dist[rt.To] {
			r.dist[rt.To] = nd
			r.prev[rt.To] = u
		}
	}
}
