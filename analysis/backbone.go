package analysis

import (
	"sort"

	"github.com/katalvlaran/citypath/core"
)

// Backbone is a minimum spanning forest of the network by route distance:
// the shortest set of routes that keeps every connected component connected.
type Backbone struct {
	Routes   []core.Route // From < To, in the order they were selected
	Distance float64      // sum of Routes' distances
}

// Backbone computes the network's minimum spanning forest with Kruskal's
// algorithm.
//
// Steps:
//  1. Collect every route once (From < To, sorted by (From, To)).
//  2. Stable-sort by Distance, so equal distances keep the (From, To) order.
//  3. Union-find with path compression and union by rank: accept a route
//     when its endpoints are in different sets.
//  4. Stop early after V-1 routes.
//
// A network with several components yields one tree per component;
// isolated cities contribute nothing.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func (a *Analyzer) Backbone() Backbone {
	ids := a.g.Cities()
	routes := a.g.Routes()
	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Distance < routes[j].Distance
	})

	parent := make(map[string]string, len(ids))
	rank := make(map[string]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	var out Backbone
	for _, r := range routes {
		if len(ids) > 0 && len(out.Routes) == len(ids)-1 {
			break
		}
		ru, rv := find(r.From), find(r.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		out.Routes = append(out.Routes, r)
		out.Distance += r.Distance
	}

	return out
}
