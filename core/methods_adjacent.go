// File: methods_adjacent.go
// Role: Adjacency queries used by every search algorithm.
//
// Determinism:
//   - Neighbors() returns IDs sorted ascending; algorithms rely on this for
//     reproducible tie-breaking.
package core

import "sort"

// Neighbors returns the IDs of cities directly reachable from id, sorted
// ascending. An unknown id yields an empty (non-nil) slice.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) []string {
	g.muRoute.RLock()
	nbrs := g.adjacency[id]
	out := make([]string, 0, len(nbrs))
	for to := range nbrs {
		out = append(out, to)
	}
	g.muRoute.RUnlock()
	sort.Strings(out)

	return out
}

// OutRoutes returns copies of the routes leaving id, sorted by To.
func (g *Graph) OutRoutes(id string) []Route {
	g.muRoute.RLock()
	nbrs := g.adjacency[id]
	out := make([]Route, 0, len(nbrs))
	for _, r := range nbrs {
		out = append(out, *r)
	}
	g.muRoute.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Degree returns the out-degree of id (equal to its in-degree, since every
// route is mirrored). Unknown ids have degree 0.
func (g *Graph) Degree(id string) int {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()

	return len(g.adjacency[id])
}

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Under muCity, copy the insertion order.
//   - Stage 2: Under muRoute, count routes and isolated cities.
//
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	ids := g.CitiesInOrder()

	g.muRoute.RLock()
	stats := GraphStats{
		CityCount:  len(ids),
		RouteCount: g.routeCount,
		ArcCount:   2 * g.routeCount,
	}
	for _, id := range ids {
		if len(g.adjacency[id]) == 0 {
			stats.Isolated++
		}
	}
	g.muRoute.RUnlock()

	return &stats
}

// Clone returns a deep copy of the Graph: cities, insertion order and routes.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muCity.RLock()
	defer g.muCity.RUnlock()
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()

	clone := NewGraph(WithCapacity(len(g.order)))
	clone.order = append(clone.order, g.order...)
	for id, c := range g.cities {
		cc := *c
		clone.cities[id] = &cc
	}
	for from, nbrs := range g.adjacency {
		bucket := make(map[string]*Route, len(nbrs))
		for to, r := range nbrs {
			rr := *r
			bucket[to] = &rr
		}
		clone.adjacency[from] = bucket
	}
	clone.routeCount = g.routeCount

	return clone
}
