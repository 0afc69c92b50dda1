// SPDX-License-Identifier: MIT
// Package: citypath/builder
//
// options.go: functional options for Synthetic.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Synthetic itself never panics.
//   • Determinism is explicit: the same options always produce the same network.

package builder

import "fmt"

// Defaults for Synthetic.
const (
	DefaultRows      = 6
	DefaultCols      = 6
	DefaultSpacing   = 0.5 // degrees between neighboring cities
	DefaultOriginLat = 20.0
	DefaultOriginLon = 76.0
	DefaultSeed      = 1
	MinDetour        = 1.05 // route distance / great-circle distance, lower bound
	MaxDetour        = 1.45 // upper bound
	noiseScale       = 0.35 // grid step → noise input
)

// SyntheticOption customizes Synthetic by mutating a syntheticConfig.
type SyntheticOption func(*syntheticConfig)

type syntheticConfig struct {
	rows, cols int
	spacing    float64
	originLat  float64
	originLon  float64
	seed       int64
	dropRatio  float64
	diagonals  bool
}

func defaultSyntheticConfig() syntheticConfig {
	return syntheticConfig{
		rows:      DefaultRows,
		cols:      DefaultCols,
		spacing:   DefaultSpacing,
		originLat: DefaultOriginLat,
		originLon: DefaultOriginLon,
		seed:      DefaultSeed,
	}
}

// WithGrid sets the grid shape. Panics when rows or cols < 1.
func WithGrid(rows, cols int) SyntheticOption {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("builder: WithGrid(%d, %d)", rows, cols))
	}
	return func(c *syntheticConfig) {
		c.rows, c.cols = rows, cols
	}
}

// WithSpacing sets the distance between neighboring cities in degrees.
// Panics when deg <= 0.
func WithSpacing(deg float64) SyntheticOption {
	if deg <= 0 {
		panic(fmt.Sprintf("builder: WithSpacing(%g)", deg))
	}
	return func(c *syntheticConfig) {
		c.spacing = deg
	}
}

// WithOrigin places the south-west corner of the grid.
func WithOrigin(lat, lon float64) SyntheticOption {
	return func(c *syntheticConfig) {
		c.originLat, c.originLon = lat, lon
	}
}

// WithSeed seeds both the detour noise and the route dropping.
func WithSeed(seed int64) SyntheticOption {
	return func(c *syntheticConfig) {
		c.seed = seed
	}
}

// WithDropRatio removes each candidate route with probability p, except the
// routes of one spanning tree, so the network stays connected.
// Panics when p is outside [0, 1].
func WithDropRatio(p float64) SyntheticOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithDropRatio(%g)", p))
	}
	return func(c *syntheticConfig) {
		c.dropRatio = p
	}
}

// WithDiagonals adds the south-east diagonal of every grid cell.
func WithDiagonals() SyntheticOption {
	return func(c *syntheticConfig) {
		c.diagonals = true
	}
}
