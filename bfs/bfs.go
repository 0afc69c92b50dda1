// Package bfs provides breadth-first search over a city network,
// returning hop distances, parent links and visit order.
//
// BFS explores cities in increasing hop count from a start city, with
// optional hooks, depth limiting and neighbor filtering. ShortestPath wraps
// it into the fewest-hops query used by the comparator.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
)

// Name is the algorithm label carried by every Result this package returns.
const Name = "BFS"

// queueItem pairs a city ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartCityNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error other than ErrStop.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasCity(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartCityNotFound, startID)
	}

	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start city (no parent)
	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil && !errors.Is(err, ErrStop) {
		return w.res, err
	}

	return w.res, nil
}

// ShortestPath returns a fewest-hops path from source to dest, ignoring
// route distance. Neighbors are enqueued in ascending ID order and the
// search stops when dest is dequeued. Distance and Time of the Result are
// those of the returned routes, not a minimum.
func ShortestPath(g *core.Graph, source, dest string) paths.Result {
	if g == nil || !g.HasCity(source) || !g.HasCity(dest) {
		return paths.Empty(Name)
	}
	if source == dest {
		return paths.Single(Name, source)
	}

	res, err := BFS(g, source, WithOnVisit(func(id string, _ int) error {
		if id == dest {
			return ErrStop
		}
		return nil
	}))
	if err != nil {
		return paths.Empty(Name)
	}
	nodes, err := res.PathTo(dest)
	if err != nil {
		return paths.Empty(Name)
	}

	return paths.FromNodes(g, Name, nodes)
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the city in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		if errors.Is(err, ErrStop) {
			return err
		}
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
