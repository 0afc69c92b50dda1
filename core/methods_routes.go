// File: methods_routes.go
// Role: Route lifecycle & queries.
//
// Determinism:
//   - Routes() and Arcs() return slices sorted by (From, To).
//
// Concurrency:
//   - Endpoint checks run under muCity read lock, held while muRoute is
//     write-locked, so a route and its mirror appear together or not at all.
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddRoute registers r and its mirror.
//
// Implementation:
//   - Stage 1: Validate weights (finite, non-negative) and reject self-routes.
//   - Stage 2: Under muCity read lock, check both endpoints exist (ErrUnknownCity).
//   - Stage 3: Under muRoute write lock, store r at adjacency[From][To] and
//     r.Reverse() at adjacency[To][From].
//
// Behavior highlights:
//   - Adding a route between an already connected pair replaces both directions.
//   - Nothing is written when any check fails.
//
// Errors:
//   - ErrNonFiniteWeight, ErrNegativeWeight, ErrLoopNotAllowed, ErrUnknownCity.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddRoute(r Route) error {
	if !finite(r.Distance) || !finite(r.Time) {
		return fmt.Errorf("%w: %s→%s distance=%g time=%g", ErrNonFiniteWeight, r.From, r.To, r.Distance, r.Time)
	}
	if r.Distance < 0 || r.Time < 0 {
		return fmt.Errorf("%w: %s→%s distance=%g time=%g", ErrNegativeWeight, r.From, r.To, r.Distance, r.Time)
	}
	if r.From == r.To {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, r.From)
	}

	g.muCity.RLock()
	defer g.muCity.RUnlock()
	if _, ok := g.cities[r.From]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCity, r.From)
	}
	if _, ok := g.cities[r.To]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCity, r.To)
	}

	g.muRoute.Lock()
	defer g.muRoute.Unlock()

	if _, exists := g.adjacency[r.From][r.To]; !exists {
		g.routeCount++
	}
	fwd, back := r, r.Reverse()
	g.adjacency[r.From][r.To] = &fwd
	g.adjacency[r.To][r.From] = &back

	return nil
}

// HasRoute reports whether a route from→to exists. Pure existence check.
// Complexity: O(1).
func (g *Graph) HasRoute(from, to string) bool {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Route returns a copy of the route from→to.
func (g *Graph) Route(from, to string) (Route, bool) {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	r, ok := g.adjacency[from][to]
	if !ok {
		return Route{}, false
	}

	return *r, true
}

// Routes returns every undirected route once, oriented so that From < To,
// sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Routes() []Route {
	g.muRoute.RLock()
	out := make([]Route, 0, g.routeCount)
	for from, nbrs := range g.adjacency {
		for to, r := range nbrs {
			if from < to {
				out = append(out, *r)
			}
		}
	}
	g.muRoute.RUnlock()
	sortRoutes(out)

	return out
}

// Arcs returns every directed arc (both directions of each route),
// sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Arcs() []Route {
	g.muRoute.RLock()
	out := make([]Route, 0, 2*g.routeCount)
	for _, nbrs := range g.adjacency {
		for _, r := range nbrs {
			out = append(out, *r)
		}
	}
	g.muRoute.RUnlock()
	sortRoutes(out)

	return out
}

// RouteCount returns the number of undirected routes.
func (g *Graph) RouteCount() int {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()

	return g.routeCount
}

// ArcCount returns the number of directed arcs, i.e. the total number of
// adjacency entries ("connections").
func (g *Graph) ArcCount() int {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()

	return 2 * g.routeCount
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sortRoutes(rs []Route) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].From != rs[j].From {
			return rs[i].From < rs[j].From
		}
		return rs[i].To < rs[j].To
	})
}
