// Package astar implements A* search guided by the great-circle distance
// to the destination.
//
// With the default heuristic the search is optimal as long as every route
// is at least as long as the great-circle distance between its endpoints,
// which holds for real road, rail and air distances.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a consistent heuristic.
//   - Space: O(V + E) for the lazy open set.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
)

// ShortestPath returns the minimum-distance path from source to dest.
//
// Implementation:
//   - Stage 1: gScore[source] = 0; push source with f = h(source).
//   - Stage 2: pop the minimum-f entry; skip it when closed or stale; stop
//     when it is dest.
//   - Stage 3: close it and relax every route to an open neighbor, pushing
//     a new entry on strict improvement.
//
// Unknown endpoints and unreachable destinations yield an empty Result.
func ShortestPath(g *core.Graph, source, dest string, opts ...Option) paths.Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil || !g.HasCity(source) || !g.HasCity(dest) {
		return paths.Empty(Name)
	}
	if source == dest {
		return paths.Single(Name, source)
	}

	gScore := map[string]float64{source: 0}
	prev := make(map[string]string)
	closed := make(map[string]bool)

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{id: source, g: 0, f: cfg.Heuristic(g, source, dest)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem)
		if closed[cur.id] || cur.g > gScore[cur.id] {
			continue
		}
		if cur.id == dest {
			res, err := paths.Build(g, Name, prev, source, dest)
			if err != nil {
				return paths.Empty(Name)
			}
			return res
		}
		closed[cur.id] = true

		for _, r := range g.OutRoutes(cur.id) {
			if closed[r.To] {
				continue
			}
			tentative := cur.g + r.Distance
			best, seen := gScore[r.To]
			if !seen {
				best = math.Inf(1)
			}
			if tentative < best {
				gScore[r.To] = tentative
				prev[r.To] = cur.id
				heap.Push(open, &openItem{id: r.To, g: tentative, f: tentative + cfg.Heuristic(g, r.To, dest)})
			}
		}
	}

	return paths.Empty(Name)
}
