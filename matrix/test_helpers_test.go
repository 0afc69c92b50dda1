package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
)

// triangle builds A-B(1), B-C(1), A-C(5) and an isolated D.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddCity(core.City{ID: id}))
	}
	require.NoError(t, g.AddRoute(core.Route{From: "A", To: "B", Distance: 1}))
	require.NoError(t, g.AddRoute(core.Route{From: "B", To: "C", Distance: 1}))
	require.NoError(t, g.AddRoute(core.Route{From: "A", To: "C", Distance: 5}))

	return g
}
