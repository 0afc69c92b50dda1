// SPDX-License-Identifier: MIT
// Package: citypath/builder
//
// synthetic.go: reproducible grid networks with noisy detours.
//
// Canonical model:
//   • rows×cols cities on a lat/lon grid, IDs "G<r>-<c>" in row-major order.
//   • Routes to the east and north neighbors (plus diagonals if requested).
//   • Route distance = great-circle distance × detour, where
//     detour = MinDetour + (MaxDetour-MinDetour)·(noise+1)/2 and noise is
//     OpenSimplex noise sampled at the route midpoint. Detour ≥ 1 keeps the
//     haversine heuristic admissible.
//   • Route time = distance / mode nominal speed (road).
//   • WithDropRatio thins the grid but never drops the spanning "comb"
//     (every east route of row 0 and every north route), so the network
//     stays connected.
//
// Determinism:
//   • Same options ⇒ same cities, routes and weights.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/geo"
)

const methodSynthetic = "Synthetic"

// SyntheticID returns the city ID at grid position (r, c).
func SyntheticID(r, c int) string {
	return fmt.Sprintf("G%d-%d", r, c)
}

// Synthetic builds a grid network.
//
// Errors:
//   • ErrTooFewCities when the grid has fewer than two cities.
//   • ErrOutOfBounds when the grid leaves [-90,90]×[-180,180].
//
// Complexity: O(rows·cols).
func Synthetic(opts ...SyntheticOption) (*core.Graph, error) {
	cfg := defaultSyntheticConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rows*cfg.cols < 2 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodSynthetic, cfg.rows, cfg.cols, ErrTooFewCities)
	}
	maxLat := cfg.originLat + float64(cfg.rows-1)*cfg.spacing
	maxLon := cfg.originLon + float64(cfg.cols-1)*cfg.spacing
	if cfg.originLat < -90 || maxLat > 90 || cfg.originLon < -180 || maxLon > 180 {
		return nil, fmt.Errorf("%s: lat [%g,%g] lon [%g,%g]: %w",
			methodSynthetic, cfg.originLat, maxLat, cfg.originLon, maxLon, ErrOutOfBounds)
	}

	g := core.NewGraph(core.WithCapacity(cfg.rows * cfg.cols))
	for r := 0; r < cfg.rows; r++ {
		for c := 0; c < cfg.cols; c++ {
			city := core.City{
				ID:  SyntheticID(r, c),
				Lat: cfg.originLat + float64(r)*cfg.spacing,
				Lon: cfg.originLon + float64(c)*cfg.spacing,
			}
			if err := g.AddCity(city); err != nil {
				return nil, fmt.Errorf("%s: %w", methodSynthetic, err)
			}
		}
	}

	s := &synth{
		g:     g,
		noise: opensimplex.New(cfg.seed),
		rng:   rand.New(rand.NewSource(cfg.seed)),
		drop:  cfg.dropRatio,
	}
	for r := 0; r < cfg.rows; r++ {
		for c := 0; c < cfg.cols; c++ {
			// east: kept unconditionally on row 0
			if c+1 < cfg.cols {
				if err := s.link(r, c, r, c+1, r == 0); err != nil {
					return nil, err
				}
			}
			// north: always kept
			if r+1 < cfg.rows {
				if err := s.link(r, c, r+1, c, true); err != nil {
					return nil, err
				}
			}
			if cfg.diagonals && r+1 < cfg.rows && c+1 < cfg.cols {
				if err := s.link(r, c, r+1, c+1, false); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// synth carries the generators of one Synthetic call.
type synth struct {
	g     *core.Graph
	noise opensimplex.Noise
	rng   *rand.Rand
	drop  float64
}

// link adds the route between two grid cells unless it is dropped.
func (s *synth) link(r1, c1, r2, c2 int, keep bool) error {
	// Draw even for kept routes so the RNG stream does not depend on keep.
	dropped := s.rng.Float64() < s.drop
	if dropped && !keep {
		return nil
	}

	a, _ := s.g.City(SyntheticID(r1, c1))
	b, _ := s.g.City(SyntheticID(r2, c2))
	n := s.noise.Eval2(float64(r1+r2)*noiseScale, float64(c1+c2)*noiseScale)
	detour := MinDetour + (MaxDetour-MinDetour)*(n+1)/2
	detour = math.Max(MinDetour, math.Min(MaxDetour, detour))

	dist := geo.Between(a, b) * detour
	route := core.Route{
		From:     a.ID,
		To:       b.ID,
		Distance: dist,
		Time:     dist / core.ModeRoad.NominalSpeed(),
		Mode:     core.ModeRoad,
	}
	if err := s.g.AddRoute(route); err != nil {
		return fmt.Errorf("%s: %w", methodSynthetic, err)
	}

	return nil
}
