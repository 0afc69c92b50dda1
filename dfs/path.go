package dfs

import (
	"sort"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
)

// ShortestPath returns the first path from source to dest that a
// depth-first search discovers. It is "some path", not a shortest one:
// neighbors are explored in ascending ID order and the search stops the
// moment dest is discovered. The Result is named ShortestPath only so that
// every algorithm package exposes the same entry point.
func ShortestPath(g *core.Graph, source, dest string) paths.Result {
	if g == nil || !g.HasCity(source) || !g.HasCity(dest) {
		return paths.Empty(Name)
	}
	if source == dest {
		return paths.Single(Name, source)
	}

	res, err := DFS(g, source, WithOnVisit(func(id string) error {
		if id == dest {
			return ErrStop
		}
		return nil
	}))
	if err != nil || !res.Visited[dest] {
		return paths.Empty(Name)
	}

	result, err := paths.Build(g, Name, res.Parent, source, dest)
	if err != nil {
		return paths.Empty(Name)
	}

	return result
}

// Components partitions every city of g into connected components with a
// stack-based flood fill. Components are ordered by the insertion position
// of their first city; members within a component are sorted ascending.
// A nil graph has no components.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	w := newWalker(g, DefaultOptions())
	var out [][]string
	for _, root := range g.CitiesInOrder() {
		if w.res.Visited[root] {
			continue
		}
		start := len(w.res.Discovered)
		_ = w.traverse(root) // no hooks, background context: cannot fail

		comp := make([]string, len(w.res.Discovered)-start)
		copy(comp, w.res.Discovered[start:])
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}
