package dijkstra

import (
	"errors"
	"math"
)

// Name is the algorithm label carried by every Result this package returns.
const Name = "Dijkstra"

// Sentinel errors returned by Distances.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrCityNotFound indicates that the source city does not exist in the graph.
	ErrCityNotFound = errors.New("dijkstra: source city not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
//
// MaxDistance – cities whose tentative distance exceeds this cap are never
//
//	settled. Must be ≥ 0. Default is +Inf (no cap).
//
// AlgorithmName – label written into Result.Algorithm. Default "Dijkstra".
type Options struct {
	MaxDistance   float64
	AlgorithmName string
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Cities whose shortest distance would exceed max are treated as unreachable.
// Negative values panic with ErrBadMaxDistance, as an invalid configuration.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithAlgorithmName overrides the label written into the Result.
// The analyzer uses it to tag Dijkstra runs made on behalf of other reports.
func WithAlgorithmName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.AlgorithmName = name
		}
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - MaxDistance:   +Inf (explore everything reachable).
//   - AlgorithmName: "Dijkstra".
func DefaultOptions() Options {
	return Options{
		MaxDistance:   math.Inf(1),
		AlgorithmName: Name,
	}
}
