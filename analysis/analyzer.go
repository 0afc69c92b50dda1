// Package analysis runs the algorithms side by side and computes
// network-wide statistics: degree summary, connected components, the
// average shortest-path length and the minimum backbone.
//
// The Analyzer only reads the graph; it may be shared by goroutines as long
// as nobody mutates the graph meanwhile.
package analysis

import (
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dfs"
	"github.com/katalvlaran/citypath/dijkstra"
	"github.com/katalvlaran/citypath/pathfinder"
)

// Analyzer compares algorithms and analyzes one city network.
type Analyzer struct {
	g      *core.Graph
	finder pathfinder.Finder
	opts   Options
}

// NewAnalyzer returns an Analyzer over g.
func NewAnalyzer(g *core.Graph, opts ...Option) *Analyzer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Analyzer{g: g, finder: pathfinder.NewEngine(g), opts: o}
}

// Compare runs every configured algorithm on source → dest, in order, and
// times each run. Found entries with the shortest distance or the shortest
// time are flagged. Unknown cities simply produce empty Results.
func (a *Analyzer) Compare(source, dest string) Comparison {
	cmp := Comparison{
		ID:          uuid.New(),
		Source:      source,
		Destination: dest,
		Entries:     make([]Entry, 0, len(a.opts.Kinds)),
	}
	for _, k := range a.opts.Kinds {
		cmp.Entries = append(cmp.Entries, a.run(k, source, dest))
	}
	markBest(cmp.Entries)

	return cmp
}

// bestTolerance absorbs summation-order differences between algorithms
// that return the same total along different paths.
const bestTolerance = 1e-9

// markBest flags the found entries with the minimal distance and the
// minimal time.
func markBest(entries []Entry) {
	minDist, minTime := math.Inf(1), math.Inf(1)
	for _, e := range entries {
		if e.Result.Found() {
			minDist = math.Min(minDist, e.Result.Distance)
			minTime = math.Min(minTime, e.Result.Time)
		}
	}
	for i := range entries {
		if !entries[i].Result.Found() {
			continue
		}
		entries[i].BestDistance = entries[i].Result.Distance <= minDist+bestTolerance
		entries[i].BestTime = entries[i].Result.Time <= minTime+bestTolerance
	}
}

// Query runs one algorithm, timing it and notifying the observer.
func (a *Analyzer) Query(k pathfinder.Kind, source, dest string) Entry {
	return a.run(k, source, dest)
}

func (a *Analyzer) run(k pathfinder.Kind, source, dest string) Entry {
	start := a.opts.Clock()
	res := pathfinder.Find(a.finder, k, source, dest)
	elapsed := a.opts.Clock().Sub(start)
	if a.opts.Observer != nil {
		a.opts.Observer.ObserveQuery(k.Slug(), res.Found(), res.Hops(), elapsed)
	}

	return Entry{Kind: k, Result: res, Elapsed: elapsed}
}

// AnalyzeNetwork reports city and route counts and the most connected
// city. Ties on degree go to the city inserted first.
//
// Complexity: O(V).
func (a *Analyzer) AnalyzeNetwork() NetworkStats {
	st := a.g.Stats()
	out := NetworkStats{
		Cities:      st.CityCount,
		Routes:      st.RouteCount,
		Connections: st.ArcCount,
		Isolated:    st.Isolated,
	}
	if out.Cities > 0 {
		out.AvgConnections = float64(out.Connections) / float64(out.Cities)
	}

	best := -1
	for _, id := range a.g.CitiesInOrder() {
		if d := a.g.Degree(id); d > best {
			best = d
			out.MostConnected = id
			out.MaxDegree = d
		}
	}

	return out
}

// ConnectedComponents partitions the cities into connected components,
// ordered by the insertion position of their first city, members sorted.
func (a *Analyzer) ConnectedComponents() [][]string {
	return dfs.Components(a.g)
}

// AveragePathLength averages the shortest distance over every unordered
// pair of distinct cities that are connected. It returns the average and
// the number of pairs that contributed; with no connected pair both are 0.
//
// Implementation:
//   - One Dijkstra tree per city (ascending ID); each pair (u, v) with
//     u < v is counted once.
//
// Complexity: O(V · (V² + E)).
func (a *Analyzer) AveragePathLength() (float64, int) {
	ids := a.g.Cities()
	var (
		total float64
		pairs int
	)
	for i, u := range ids {
		dist, _, err := dijkstra.Distances(a.g, u)
		if err != nil {
			continue
		}
		for _, v := range ids[i+1:] {
			if d := dist[v]; !math.IsInf(d, 1) {
				total += d
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 0, 0
	}

	return total / float64(pairs), pairs
}
