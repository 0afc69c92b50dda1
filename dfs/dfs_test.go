package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dfs"
)

// buildNetwork adds the given cities and unit routes.
func buildNetwork(t *testing.T, cities []string, routes [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range cities {
		require.NoError(t, g.AddCity(core.City{ID: id}))
	}
	for _, r := range routes {
		require.NoError(t, g.AddRoute(core.Route{From: r[0], To: r[1], Distance: 1, Time: 1}))
	}

	return g
}

// diamond: A-B, A-C, B-D, C-D, D-E, D-F and isolated Z.
func diamond(t *testing.T) *core.Graph {
	return buildNetwork(t,
		[]string{"A", "B", "C", "D", "E", "F", "Z"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}})
}

func TestDFS_Errors(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(diamond(t), "missing")
	assert.ErrorIs(t, err, dfs.ErrStartCityNotFound)
}

func TestDFS_RecursiveOrder(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E", "F"}, res.Discovered)
	assert.Equal(t, []string{"C", "E", "F", "D", "B", "A"}, res.Order)
	assert.Equal(t, 3, res.Depth["C"])
	assert.Equal(t, "D", res.Parent["C"])
	assert.False(t, res.Visited["Z"])
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := diamond(t)
	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Discovered)

	res, err = dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "D" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Discovered)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(diamond(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Visited, 7)
	assert.Equal(t, "Z", res.Discovered[6])
	assert.Zero(t, res.Depth["Z"])
}

func TestDFS_Hooks(t *testing.T) {
	g := diamond(t)
	boom := errors.New("boom")

	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(id string) error {
		if id == "D" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	var seen []string
	_, err = dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		seen = append(seen, id)
		if id == "D" {
			return dfs.ErrStop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, seen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_DeepChainNoRecursion(t *testing.T) {
	const n = 20000
	g := core.NewGraph(core.WithCapacity(n))
	prev := ""
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("c%05d", i)
		require.NoError(t, g.AddCity(core.City{ID: id}))
		if prev != "" {
			require.NoError(t, g.AddRoute(core.Route{From: prev, To: id, Distance: 1}))
		}
		prev = id
	}
	r := dfs.ShortestPath(g, "c00000", prev)
	require.True(t, r.Found())
	assert.Equal(t, n-1, r.Hops())
}

func TestShortestPath(t *testing.T) {
	g := diamond(t)

	r := dfs.ShortestPath(g, "A", "C")
	assert.Equal(t, dfs.Name, r.Algorithm)
	assert.Equal(t, []string{"A", "B", "D", "C"}, r.Nodes, "first discovered, not shortest")
	assert.Equal(t, 3.0, r.Distance)

	assert.False(t, dfs.ShortestPath(g, "A", "Z").Found())
	assert.Equal(t, []string{"E"}, dfs.ShortestPath(g, "E", "E").Nodes)
	assert.False(t, dfs.ShortestPath(g, "A", "nowhere").Found())
}

func TestComponents(t *testing.T) {
	g := buildNetwork(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D"}}, dfs.Components(g))

	g = buildNetwork(t, []string{"Y", "X", "W"}, [][2]string{{"W", "Y"}})
	assert.Equal(t, [][]string{{"W", "Y"}, {"X"}}, dfs.Components(g))

	assert.Nil(t, dfs.Components(nil))
	assert.Empty(t, dfs.Components(core.NewGraph()))
}
