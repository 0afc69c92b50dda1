// Package pathfinder selects one of the shortest-path algorithms by kind.
//
// The set of algorithms is closed: Kind enumerates it, Finder has one method
// per kind, and Find dispatches a Kind to the matching method. Names are
// parsed only at the edges (CLI flags, HTTP query strings) with ParseKind.
package pathfinder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm indicates a name ParseKind does not recognize.
var ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")

// Kind identifies one shortest-path algorithm.
type Kind int

const (
	Dijkstra Kind = iota
	BellmanFord
	FloydWarshall
	AStar
	BFS
	DFS
)

// Kinds returns every Kind in comparison order.
func Kinds() []Kind {
	return []Kind{Dijkstra, BellmanFord, FloydWarshall, AStar, BFS, DFS}
}

// String returns the display name, which is also the Result.Algorithm label.
func (k Kind) String() string {
	switch k {
	case Dijkstra:
		return "Dijkstra"
	case BellmanFord:
		return "Bellman-Ford"
	case FloydWarshall:
		return "Floyd-Warshall"
	case AStar:
		return "A*"
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Slug returns the lower-case name accepted by ParseKind and used in URLs
// and metric labels.
func (k Kind) Slug() string {
	switch k {
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	case FloydWarshall:
		return "floyd-warshall"
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return k.String()
	}
}

// ParseKind converts an algorithm name into a Kind. Matching ignores case,
// surrounding space, and the separators "-", "_" and " ", so "Bellman-Ford",
// "bellman_ford" and "bellmanford" are all accepted; "a*" names A*.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "dijkstra":
		return Dijkstra, nil
	case "bellmanford":
		return BellmanFord, nil
	case "floydwarshall":
		return FloydWarshall, nil
	case "astar", "a*":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
