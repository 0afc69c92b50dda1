package analysis_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/analysis"
	"github.com/katalvlaran/citypath/builder"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/pathfinder"
)

// stepClock advances one millisecond per call.
func stepClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

type observed struct {
	algorithm string
	found     bool
	hops      int
	elapsed   time.Duration
}

type stubObserver struct{ calls []observed }

func (s *stubObserver) ObserveQuery(algorithm string, found bool, hops int, elapsed time.Duration) {
	s.calls = append(s.calls, observed{algorithm, found, hops, elapsed})
}

func seed(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.Default()
	require.NoError(t, err)

	return g
}

func TestCompare_SeedNetwork(t *testing.T) {
	obs := &stubObserver{}
	a := analysis.NewAnalyzer(seed(t), analysis.WithObserver(obs), analysis.WithClock(stepClock()))

	cmp := a.Compare("Thane", "Chennai")
	require.NotEqual(t, uuid.Nil, cmp.ID)
	require.Len(t, cmp.Entries, len(pathfinder.Kinds()))
	assert.Equal(t, "Thane", cmp.Source)
	assert.Equal(t, "Chennai", cmp.Destination)

	for i, e := range cmp.Entries {
		assert.Equal(t, pathfinder.Kinds()[i], e.Kind)
		assert.Equal(t, e.Kind.String(), e.Result.Algorithm)
		assert.True(t, e.Result.Found(), e.Kind.String())
		assert.Equal(t, time.Millisecond, e.Elapsed)
	}
	assert.Equal(t, 6*time.Millisecond, cmp.Total())

	// Distance-optimal algorithms agree on the answer.
	for _, k := range []pathfinder.Kind{pathfinder.Dijkstra, pathfinder.BellmanFord, pathfinder.FloydWarshall, pathfinder.AStar} {
		r := cmp.Entries[k].Result
		assert.Equal(t, []string{"Thane", "Mumbai", "Chennai"}, r.Nodes, k.String())
		assert.InDelta(t, 1063.0, r.Distance, 1e-9, k.String())
		assert.InDelta(t, 2.3, r.Time, 1e-9, k.String())
	}

	// Thane→Chennai: the four distance-optimal kinds tie on distance and time.
	for _, e := range cmp.Entries[:4] {
		assert.True(t, e.BestDistance, e.Kind.String())
		assert.True(t, e.BestTime, e.Kind.String())
	}

	require.Len(t, obs.calls, len(pathfinder.Kinds()))
	assert.Equal(t, observed{"dijkstra", true, 2, time.Millisecond}, obs.calls[0])
	assert.Equal(t, "dfs", obs.calls[5].algorithm)
	assert.Len(t, cmp.Results(), len(cmp.Entries))
}

func TestCompare_UnknownCity(t *testing.T) {
	a := analysis.NewAnalyzer(seed(t), analysis.WithKinds(pathfinder.Dijkstra, pathfinder.BFS))

	cmp := a.Compare("Mumbai", "Atlantis")
	require.Len(t, cmp.Entries, 2)
	for _, e := range cmp.Entries {
		assert.False(t, e.BestDistance)
		assert.False(t, e.BestTime)
	}
	for _, r := range cmp.Results() {
		assert.False(t, r.Found())
		assert.Empty(t, r.Nodes)
		assert.Zero(t, r.Distance)
	}
}

func TestQuery(t *testing.T) {
	obs := &stubObserver{}
	a := analysis.NewAnalyzer(seed(t), analysis.WithObserver(obs), analysis.WithClock(stepClock()))

	e := a.Query(pathfinder.BFS, "Mumbai", "Kolkata")
	assert.Equal(t, []string{"Mumbai", "Kolkata"}, e.Result.Nodes)
	assert.Equal(t, []observed{{"bfs", true, 1, time.Millisecond}}, obs.calls)
}

func TestAnalyzeNetwork(t *testing.T) {
	st := analysis.NewAnalyzer(seed(t)).AnalyzeNetwork()
	assert.Equal(t, 20, st.Cities)
	assert.Equal(t, 42, st.Routes)
	assert.Equal(t, 84, st.Connections)
	assert.InDelta(t, 4.2, st.AvgConnections, 1e-9)
	// Mumbai and Delhi both have ten routes; Mumbai was inserted first.
	assert.Equal(t, "Mumbai", st.MostConnected)
	assert.Equal(t, 10, st.MaxDegree)
	assert.Zero(t, st.Isolated)
}

func TestAnalyzeNetwork_Empty(t *testing.T) {
	st := analysis.NewAnalyzer(core.NewGraph()).AnalyzeNetwork()
	assert.Equal(t, analysis.NetworkStats{}, st)
}

func TestConnectedComponents(t *testing.T) {
	g := seed(t)
	require.NoError(t, g.AddCity(core.City{ID: "Port-Blair", Lat: 11.6234, Lon: 92.7265}))

	comps := analysis.NewAnalyzer(g).ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 20)
	assert.Equal(t, []string{"Port-Blair"}, comps[1])
}

func TestAveragePathLength(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddCity(core.City{ID: id}))
	}
	require.NoError(t, g.AddRoute(core.Route{From: "A", To: "B", Distance: 1}))
	require.NoError(t, g.AddRoute(core.Route{From: "B", To: "C", Distance: 1}))
	require.NoError(t, g.AddRoute(core.Route{From: "A", To: "C", Distance: 5}))

	avg, pairs := analysis.NewAnalyzer(g).AveragePathLength()
	assert.Equal(t, 3, pairs, "D is isolated")
	assert.InDelta(t, 4.0/3.0, avg, 1e-12)

	avg, pairs = analysis.NewAnalyzer(core.NewGraph()).AveragePathLength()
	assert.Zero(t, avg)
	assert.Zero(t, pairs)
}

func TestAveragePathLength_Seed(t *testing.T) {
	avg, pairs := analysis.NewAnalyzer(seed(t)).AveragePathLength()
	assert.Equal(t, 190, pairs)
	assert.InDelta(t, 1120.842105263158, avg, 1e-6)
}

func TestBackbone(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		require.NoError(t, g.AddCity(core.City{ID: id}))
	}
	for _, r := range []core.Route{
		{From: "A", To: "B", Distance: 1},
		{From: "B", To: "C", Distance: 1},
		{From: "A", To: "C", Distance: 5},
		{From: "C", To: "D", Distance: 2},
		{From: "B", To: "D", Distance: 2},
		{From: "E", To: "F", Distance: 3},
	} {
		require.NoError(t, g.AddRoute(r))
	}

	bb := analysis.NewAnalyzer(g).Backbone()
	require.Len(t, bb.Routes, 4, "two trees: 3 routes for A-D, 1 for E-F")
	assert.Equal(t, 7.0, bb.Distance)
	// Equal distances resolve by (From, To): B-D is taken before C-D.
	assert.Equal(t, "B", bb.Routes[2].From)
	assert.Equal(t, "D", bb.Routes[2].To)
}

func TestBackbone_SeedSpansNetwork(t *testing.T) {
	g := seed(t)
	bb := analysis.NewAnalyzer(g).Backbone()
	assert.Len(t, bb.Routes, g.CityCount()-1)
	assert.Empty(t, analysis.NewAnalyzer(core.NewGraph()).Backbone().Routes)
}

func TestCompare_BestDistanceAndTimeDiffer(t *testing.T) {
	// A-B-C is short but slow; A-C is long but fast.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddCity(core.City{ID: id}))
	}
	require.NoError(t, g.AddRoute(core.Route{From: "A", To: "B", Distance: 1, Time: 5}))
	require.NoError(t, g.AddRoute(core.Route{From: "B", To: "C", Distance: 1, Time: 5}))
	require.NoError(t, g.AddRoute(core.Route{From: "A", To: "C", Distance: 5, Time: 1}))

	cmp := analysis.NewAnalyzer(g, analysis.WithKinds(pathfinder.Dijkstra, pathfinder.BFS)).Compare("A", "C")
	require.Len(t, cmp.Entries, 2)

	dij, bfs := cmp.Entries[0], cmp.Entries[1]
	assert.Equal(t, []string{"A", "B", "C"}, dij.Result.Nodes)
	assert.True(t, dij.BestDistance)
	assert.False(t, dij.BestTime)
	assert.Equal(t, []string{"A", "C"}, bfs.Result.Nodes)
	assert.False(t, bfs.BestDistance)
	assert.True(t, bfs.BestTime)
}
