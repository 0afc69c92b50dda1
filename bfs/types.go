package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/paths"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartCityNotFound is returned when the start ID is absent.
	ErrStartCityNotFound = errors.New("bfs: start city not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStop may be returned by OnVisit to end the traversal early.
	// BFS reports it as success with the partial result.
	ErrStop = errors.New("bfs: traversal stopped")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a city is enqueued, before visiting.
	// Receives the city ID and its depth (hops) from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a city.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a city. If it returns an error,
	// BFS aborts and propagates that error (ErrStop aborts without one).
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip routes by returning false.
	// Called for each route curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - no recorded option error.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Start: the city the traversal began at.
//   - Order: cities visited, in visit sequence.
//   - Depth: map from city ID to its distance (in hops) from the start.
//   - Parent: map from city ID to its predecessor in the BFS tree.
type BFSResult struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start city to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}

	return paths.Reconstruct(r.Parent, r.Start, dest)
}
