package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/citypath/pathfinder"
	"github.com/katalvlaran/citypath/paths"
)

// Observer receives one notification per query the analyzer runs.
// metrics.Recorder implements it.
type Observer interface {
	ObserveQuery(algorithm string, found bool, hops int, elapsed time.Duration)
}

// Options configures an Analyzer.
type Options struct {
	// Observer, if non-nil, is notified after every Compare entry.
	Observer Observer

	// Kinds lists the algorithms Compare runs, in order.
	Kinds []pathfinder.Kind

	// Clock supplies timestamps for Elapsed; defaults to time.Now.
	Clock func() time.Time
}

// Option represents a functional option for configuring an Analyzer.
type Option func(*Options)

// WithObserver installs o. A nil o is ignored.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// WithKinds restricts Compare to the given algorithms, in the given order.
// An empty list keeps the default.
func WithKinds(kinds ...pathfinder.Kind) Option {
	return func(opts *Options) {
		if len(kinds) > 0 {
			opts.Kinds = append([]pathfinder.Kind(nil), kinds...)
		}
	}
}

// WithClock replaces time.Now, which makes Elapsed deterministic in tests.
func WithClock(clock func() time.Time) Option {
	return func(opts *Options) {
		if clock != nil {
			opts.Clock = clock
		}
	}
}

// DefaultOptions returns Options running every kind with the wall clock.
func DefaultOptions() Options {
	return Options{
		Kinds: pathfinder.Kinds(),
		Clock: time.Now,
	}
}

// Entry is one algorithm's answer inside a Comparison.
// Elapsed is kept outside Result so Results stay comparable across runs.
type Entry struct {
	Kind    pathfinder.Kind
	Result  paths.Result
	Elapsed time.Duration

	// BestDistance and BestTime mark found paths whose distance (time) is
	// the smallest among the comparison's found paths. Several entries may
	// share a mark; Query never sets them.
	BestDistance bool
	BestTime     bool
}

// Comparison is the outcome of running several algorithms on one query.
type Comparison struct {
	ID          uuid.UUID
	Source      string
	Destination string
	Entries     []Entry
}

// Total returns the sum of every entry's Elapsed.
func (c Comparison) Total() time.Duration {
	var d time.Duration
	for _, e := range c.Entries {
		d += e.Elapsed
	}

	return d
}

// Results returns the entries' Results in order.
func (c Comparison) Results() []paths.Result {
	out := make([]paths.Result, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Result
	}

	return out
}

// NetworkStats summarizes the size and degree distribution of a network.
type NetworkStats struct {
	Cities         int     `json:"cities"`         // number of cities
	Routes         int     `json:"routes"`         // undirected routes
	Connections    int     `json:"connections"`    // directed arcs, 2 × Routes
	AvgConnections float64 `json:"avgConnections"` // Connections / Cities, 0 for an empty network
	MostConnected  string  `json:"mostConnected"`  // city with the highest degree, "" for an empty network
	MaxDegree      int     `json:"maxDegree"`      // degree of MostConnected
	Isolated       int     `json:"isolated"`       // cities without routes
}
