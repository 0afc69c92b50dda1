// SPDX-License-Identifier: MIT
// Package: citypath/builder
//
// config.go: the seed network as an immutable configuration value.
//
// Contract:
//   • Config is a plain value; DefaultConfig returns fresh slices on every
//     call, so callers may modify their copy without affecting others.
//   • Build inserts cities in Config order, then routes in Config order.
//   • Every seed route is at least as long as the great-circle distance
//     between its endpoints, which keeps A*'s heuristic admissible.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// Config describes a network to build.
type Config struct {
	Cities []core.City
	Routes []core.Route
}

// DefaultConfig returns the seed network: twenty Indian cities and the
// road, rail and air routes between them.
func DefaultConfig() Config {
	cfg := Config{
		Cities: make([]core.City, len(seedCities)),
		Routes: make([]core.Route, len(seedRoutes)),
	}
	copy(cfg.Cities, seedCities)
	copy(cfg.Routes, seedRoutes)

	return cfg
}

// Build creates a graph from cfg.
//
// Errors:
//   • any core.AddCity validation error, wrapped with the city index.
//   • ErrUnknownEndpoint together with core.ErrUnknownCity for a route that
//     references a city missing from cfg.
//   • any other core.AddRoute error (negative weight, self-route).
//
// Complexity: O(V + E).
func Build(cfg Config) (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(cfg.Cities)))
	for i, c := range cfg.Cities {
		if err := g.AddCity(c); err != nil {
			return nil, fmt.Errorf("builder: city #%d: %w", i, err)
		}
	}
	for i, r := range cfg.Routes {
		if err := g.AddRoute(r); err != nil {
			if !g.HasCity(r.From) || !g.HasCity(r.To) {
				return nil, fmt.Errorf("%w: route #%d %s→%s: %w", ErrUnknownEndpoint, i, r.From, r.To, err)
			}
			return nil, fmt.Errorf("builder: route #%d %s→%s: %w", i, r.From, r.To, err)
		}
	}

	return g, nil
}

// Default builds DefaultConfig. The seed data is valid, so the error is
// only non-nil if the seed tables are edited incorrectly.
func Default() (*core.Graph, error) {
	return Build(DefaultConfig())
}
