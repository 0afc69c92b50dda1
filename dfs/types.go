// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-network (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// Name is the algorithm label carried by every Result this package returns.
const Name = "DFS"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartCityNotFound indicates that the specified start city ID
	// does not exist in the graph.
	ErrStartCityNotFound = errors.New("dfs: start city not found")

	// ErrStop may be returned by OnVisit to end the traversal early.
	// DFS reports it as success with the partial result.
	ErrStop = errors.New("dfs: traversal stopped")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-network mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a city (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a city
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits the search to the given depth.
	// A depth of 0 visits only the start city. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, runs DFS from every unvisited city in insertion
	// order, covering disconnected components (forest traversal). Default is false.
	FullTraversal bool

	// SkippedNeighbors tracks how many neighbors were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a city is first discovered.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a city's descendants have been fully explored.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start city is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-network traversal.
// When set, DFS restarts from each unvisited city, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports discovery and post-order, depths, parent links and visited flags,
// as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Discovered records cities in the sequence they were first reached (pre-order).
	Discovered []string

	// Order records cities in the sequence they finished (post-order).
	Order []string

	// Depth maps each city ID to its distance (#routes) from the root of its tree.
	Depth map[string]int

	// Parent maps each city ID to the ID of the city from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[string]string

	// Visited flags which cities were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}

// frame is one level of the explicit DFS stack: a city and the index of
// the next neighbor to examine.
type frame struct {
	id    string
	nbrs  []string
	next  int
	depth int
}
