package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
)

// Common city IDs used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"
)

// mustCity adds a city at (lat, lon) or fails the test.
func mustCity(t *testing.T, g *core.Graph, id string, lat, lon float64) {
	t.Helper()
	require.NoError(t, g.AddCity(core.City{ID: id, Lat: lat, Lon: lon}))
}

// triangle builds A-B-C-A with distances 1, 1, 5 and an isolated D.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustCity(t, g, CityA, 0, 0)
	mustCity(t, g, CityB, 0, 1)
	mustCity(t, g, CityC, 1, 1)
	mustCity(t, g, CityD, 5, 5)
	require.NoError(t, g.AddRoute(core.Route{From: CityA, To: CityB, Distance: 1, Time: 0.5}))
	require.NoError(t, g.AddRoute(core.Route{From: CityB, To: CityC, Distance: 1, Time: 0.5}))
	require.NoError(t, g.AddRoute(core.Route{From: CityA, To: CityC, Distance: 5, Time: 1, Mode: core.ModeRail}))

	return g
}
