// Package dfs implements depth-first search (single-source and forest) on a
// city network, the "some path" query and connected components.
//
// The traversal keeps an explicit stack of frames (city, index of the next
// neighbor to try) instead of recursing, so deep networks cannot exhaust the
// goroutine stack and early exit needs no shared flag: a hook returns ErrStop
// and the walker unwinds.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - ShortestPath(g, src, dst): first path discovered, stops on discovery
//   - Components(g): stack-based flood fill
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartCityNotFound      if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit (except ErrStop).
package dfs
