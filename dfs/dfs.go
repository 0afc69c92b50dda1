package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components (roots in insertion order); otherwise,
// it starts only from startID.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasCity(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartCityNotFound, startID)
	}

	walker := newWalker(g, dopts)
	res := walker.res

	if dopts.FullTraversal {
		for _, v := range g.CitiesInOrder() {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v); err != nil {
				if errors.Is(err, ErrStop) {
					break
				}
				return res, err
			}
		}
	} else if err := walker.traverse(startID); err != nil && !errors.Is(err, ErrStop) {
		return res, err
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

func newWalker(g *core.Graph, opts DFSOptions) *dfsWalker {
	n := g.CityCount()

	return &dfsWalker{
		graph: g,
		opts:  opts,
		res: &DFSResult{
			Discovered: make([]string, 0, n),
			Order:      make([]string, 0, n),
			Depth:      make(map[string]int, n),
			Parent:     make(map[string]string, n),
			Visited:    make(map[string]bool, n),
		},
		stack: make([]frame, 0, n),
	}
}

// traverse explores the tree rooted at root with an explicit stack.
//
// Implementation:
//   - Stage 1: discover root (mark, record, OnVisit) and push its frame.
//   - Stage 2: for the top frame, advance to the next neighbor; an unvisited,
//     unfiltered neighbor within MaxDepth is discovered and pushed.
//   - Stage 3: a frame without neighbors left is popped: OnExit, then Order.
//
// Neighbors come from core.Graph.Neighbors (ascending), so the discovery and
// finish orders are exactly those of a recursive DFS.
func (w *dfsWalker) traverse(root string) error {
	if err := w.discover(root, "", 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			w.stack = w.stack[:0]
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) {
			nid := top.nbrs[top.next]
			top.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			// discover may grow the stack, so top must not be used after it.
			if err := w.discover(nid, top.id, top.depth+1); err != nil {
				return err
			}
			continue
		}

		id := top.id
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				w.res.Order = nil
				w.stack = w.stack[:0]

				return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// discover marks id visited, runs OnVisit and pushes its frame.
func (w *dfsWalker) discover(id, parent string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Discovered = append(w.res.Discovered, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.stack = w.stack[:0]
			if errors.Is(err, ErrStop) {
				return err
			}
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	w.stack = append(w.stack, frame{id: id, nbrs: w.graph.Neighbors(id), depth: depth})

	return nil
}
