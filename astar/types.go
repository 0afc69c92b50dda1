package astar

import (
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/geo"
)

// Name is the algorithm label carried by every Result this package returns.
const Name = "A*"

// Heuristic estimates the remaining distance from city a to city b.
// It must never overestimate the true route distance for ShortestPath to
// stay optimal.
type Heuristic func(g *core.Graph, a, b string) float64

// Options configures an A* run.
type Options struct {
	Heuristic Heuristic
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// WithHeuristic replaces the default great-circle heuristic. A nil h is
// ignored. Passing a function that always returns 0 turns A* into
// Dijkstra with a heap.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns Options using geo.HeuristicDistance.
func DefaultOptions() Options {
	return Options{Heuristic: geo.HeuristicDistance}
}

// openItem is one entry of the open set.
type openItem struct {
	id string
	g  float64 // cost from source
	f  float64 // g + heuristic
}

// openSet is a min-heap ordered by f, then by city ID, so equal-f entries
// pop in ID order. Stale entries are skipped on pop ("lazy decrease-key").
type openSet []*openItem

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].id < s[j].id
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x interface{}) { *s = append(*s, x.(*openItem)) }

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]

	return item
}
