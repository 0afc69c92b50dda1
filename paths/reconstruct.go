package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// ErrBrokenChain indicates a predecessor chain that cycles or dead-ends
// before it reaches the source.
var ErrBrokenChain = errors.New("paths: predecessor chain does not reach source")

// Reconstruct walks prev backwards from dest to source and returns the
// source→dest sequence.
//
//   - source == dest: returns [source].
//   - dest has no predecessor: returns nil (unreachable), no error.
//   - the walk needs more than len(prev)+1 steps, or meets a node without a
//     predecessor before source: returns ErrBrokenChain.
//
// prev[v] == "" is treated as "no predecessor".
//
// Complexity: O(len(path)).
func Reconstruct(prev map[string]string, source, dest string) ([]string, error) {
	if source == dest {
		return []string{source}, nil
	}
	if p, ok := prev[dest]; !ok || p == "" {
		return nil, nil
	}

	limit := len(prev) + 1
	path := make([]string, 0, 8)
	cur := dest
	for steps := 0; cur != source; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w: cycle after %d steps from %q", ErrBrokenChain, steps, dest)
		}
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrBrokenChain, cur)
		}
		cur = p
	}
	path = append(path, source)

	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Build reconstructs the path from prev and converts it into a Result.
// A broken chain is reported as an empty Result together with the error,
// so callers that only test Found() still see "no path".
func Build(g *core.Graph, algorithm string, prev map[string]string, source, dest string) (Result, error) {
	nodes, err := Reconstruct(prev, source, dest)
	if err != nil {
		return Empty(algorithm), err
	}

	return FromNodes(g, algorithm, nodes), nil
}
