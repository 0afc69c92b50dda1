package pathfinder

import (
	"github.com/katalvlaran/citypath/astar"
	"github.com/katalvlaran/citypath/bellmanford"
	"github.com/katalvlaran/citypath/bfs"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dfs"
	"github.com/katalvlaran/citypath/dijkstra"
	"github.com/katalvlaran/citypath/floydwarshall"
	"github.com/katalvlaran/citypath/paths"
)

// Finder answers a source → destination query with each algorithm.
type Finder interface {
	Dijkstra(source, dest string) paths.Result
	BellmanFord(source, dest string) paths.Result
	FloydWarshall(source, dest string) paths.Result
	AStar(source, dest string) paths.Result
	BFS(source, dest string) paths.Result
	DFS(source, dest string) paths.Result
}

// Engine is the Finder over a single city network.
type Engine struct {
	g *core.Graph
}

var _ Finder = (*Engine)(nil)

// NewEngine returns an Engine reading g. The graph must not be mutated while
// a query runs.
func NewEngine(g *core.Graph) *Engine {
	return &Engine{g: g}
}

// Graph returns the network the engine reads.
func (e *Engine) Graph() *core.Graph { return e.g }

// Dijkstra returns the minimum-distance path found by Dijkstra's algorithm.
func (e *Engine) Dijkstra(source, dest string) paths.Result {
	return dijkstra.ShortestPath(e.g, source, dest)
}

// BellmanFord returns the minimum-distance path found by edge relaxation.
func (e *Engine) BellmanFord(source, dest string) paths.Result {
	return bellmanford.ShortestPath(e.g, source, dest)
}

// FloydWarshall returns the minimum-distance path from the all-pairs matrix.
func (e *Engine) FloydWarshall(source, dest string) paths.Result {
	return floydwarshall.ShortestPath(e.g, source, dest)
}

// AStar returns the minimum-distance path found by great-circle guided search.
func (e *Engine) AStar(source, dest string) paths.Result {
	return astar.ShortestPath(e.g, source, dest)
}

// BFS returns the fewest-hop path.
func (e *Engine) BFS(source, dest string) paths.Result {
	return bfs.ShortestPath(e.g, source, dest)
}

// DFS returns the first path found by depth-first search, which need not be shortest.
func (e *Engine) DFS(source, dest string) paths.Result {
	return dfs.ShortestPath(e.g, source, dest)
}

// Find dispatches k to the matching method of f. An out-of-range Kind
// yields an empty Result labelled with k.String().
func Find(f Finder, k Kind, source, dest string) paths.Result {
	switch k {
	case Dijkstra:
		return f.Dijkstra(source, dest)
	case BellmanFord:
		return f.BellmanFord(source, dest)
	case FloydWarshall:
		return f.FloydWarshall(source, dest)
	case AStar:
		return f.AStar(source, dest)
	case BFS:
		return f.BFS(source, dest)
	case DFS:
		return f.DFS(source, dest)
	default:
		return paths.Empty(k.String())
	}
}
