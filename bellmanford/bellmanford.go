// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm.
//
// Unlike Dijkstra, the relaxation core (Relax) accepts negative arc weights
// and detects negative cycles reachable from the source. City networks never
// carry negative distances, so ShortestPath only ever sees non-negative arcs;
// Relax is exported for callers that build their own arc lists.
//
// Complexity:
//
//   - Time:  O(V·E); every pass relaxes every arc, with no early exit.
//   - Space: O(V).
package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
)

// Name is the algorithm label carried by every Result this package returns.
const Name = "Bellman-Ford"

var (
	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrSourceNotFound indicates that the source is not among the given cities.
	ErrSourceNotFound = errors.New("bellmanford: source not found")
)

// Arc is one directed, weighted connection used by Relax.
type Arc struct {
	From   string
	To     string
	Weight float64
}

// ShortestPath returns the minimum-distance path from source to dest.
// Unknown endpoints, unreachable destinations and negative cycles all yield
// an empty Result; source == dest yields a single-node Result.
func ShortestPath(g *core.Graph, source, dest string) paths.Result {
	if g == nil || !g.HasCity(source) || !g.HasCity(dest) {
		return paths.Empty(Name)
	}
	if source == dest {
		return paths.Single(Name, source)
	}

	routes := g.Arcs()
	arcs := make([]Arc, len(routes))
	for i, r := range routes {
		arcs[i] = Arc{From: r.From, To: r.To, Weight: r.Distance}
	}

	dist, prev, err := Relax(g.Cities(), arcs, source)
	if err != nil || math.IsInf(dist[dest], 1) {
		return paths.Empty(Name)
	}

	res, err := paths.Build(g, Name, prev, source, dest)
	if err != nil {
		return paths.Empty(Name)
	}

	return res
}

// Relax runs Bellman-Ford over cities and arcs from source.
//
// Implementation:
//   - Stage 1: dist[v] = +Inf, prev[v] = "" for every city; dist[source] = 0.
//   - Stage 2: V−1 passes, each relaxing every arc in the given order with a
//     strict "<" comparison. Arcs out of unreached cities are skipped.
//   - Stage 3: one more pass; any further improvement means a negative cycle.
//
// Errors: ErrSourceNotFound, ErrNegativeCycle (dist and prev are still
// returned for inspection).
func Relax(cities []string, arcs []Arc, source string) (map[string]float64, map[string]string, error) {
	dist := make(map[string]float64, len(cities))
	prev := make(map[string]string, len(cities))
	for _, id := range cities {
		dist[id] = math.Inf(1)
		prev[id] = ""
	}
	if _, ok := dist[source]; !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	dist[source] = 0

	for pass := 1; pass < len(cities); pass++ {
		for _, a := range arcs {
			du, ok := dist[a.From]
			if !ok || math.IsInf(du, 1) {
				continue
			}
			if dv, ok := dist[a.To]; ok && du+a.Weight < dv {
				dist[a.To] = du + a.Weight
				prev[a.To] = a.From
			}
		}
	}

	for _, a := range arcs {
		du, ok := dist[a.From]
		if !ok || math.IsInf(du, 1) {
			continue
		}
		if dv, ok := dist[a.To]; ok && du+a.Weight < dv {
			return dist, prev, fmt.Errorf("%w: arc %s→%s", ErrNegativeCycle, a.From, a.To)
		}
	}

	return dist, prev, nil
}
