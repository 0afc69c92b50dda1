package textio_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/analysis"
	"github.com/katalvlaran/citypath/builder"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
	"github.com/katalvlaran/citypath/pathfinder"
	"github.com/katalvlaran/citypath/textio"
)

const citiesFile = `
# name lat lon population
Pune 18.5204 73.8567 3124458
Mumbai 19.0760 72.8777
Nashik 19.9975 73.7898
Broken abc 73.0
Short 12.0
Nowhere 95 10
`

const routesFile = `Pune Mumbai 148 2.5 road
Mumbai Nashik 167 4
Pune Nashik 210 five
Pune Atlantis 10 1
Mumbai Nashik 167 4 boat
`

func TestParseRows(t *testing.T) {
	c, err := textio.ParseCityRow("Pune 18.5 73.8 42")
	require.NoError(t, err)
	assert.Equal(t, core.City{ID: "Pune", Lat: 18.5, Lon: 73.8, Population: 42}, c)

	r, err := textio.ParseRouteRow("Pune Mumbai 148 2.5 rail")
	require.NoError(t, err)
	assert.Equal(t, core.Route{From: "Pune", To: "Mumbai", Distance: 148, Time: 2.5, Mode: core.ModeRail}, r)

	for _, bad := range []string{"Pune 18.5", "Pune x 73", "Pune 18.5 73.8 many"} {
		_, err = textio.ParseCityRow(bad)
		assert.ErrorIs(t, err, textio.ErrMalformedRow, bad)
	}
	for _, bad := range []string{"A B 1", "A B x 1", "A B 1 y", "A B 1 1 boat"} {
		_, err = textio.ParseRouteRow(bad)
		assert.ErrorIs(t, err, textio.ErrMalformedRow, bad)
	}
}

func TestLoadCitiesAndRoutes(t *testing.T) {
	g := core.NewGraph()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	st, err := textio.LoadCities(strings.NewReader(citiesFile), g, textio.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, textio.LoadStats{Added: 3, Malformed: 2, Rejected: 1}, st)
	assert.Equal(t, []string{"Pune", "Mumbai", "Nashik"}, g.CitiesInOrder())
	assert.Equal(t, 3, strings.Count(logs.String(), "row skipped"))

	st, err = textio.LoadRoutes(strings.NewReader(routesFile), g)
	require.NoError(t, err)
	assert.Equal(t, textio.LoadStats{Added: 2, Malformed: 2, Rejected: 1}, st)
	assert.Equal(t, 3, st.Skipped())
	assert.Equal(t, 2, g.RouteCount())
	assert.False(t, g.HasCity("Atlantis"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoadReaderError(t *testing.T) {
	_, err := textio.LoadCities(failingReader{}, core.NewGraph())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestNetworkRoundTrip(t *testing.T) {
	src, err := builder.Synthetic(builder.WithGrid(4, 4), builder.WithSeed(3), builder.WithDropRatio(0.3))
	require.NoError(t, err)
	require.NoError(t, src.AddCity(core.City{ID: "Lonely", Lat: -33.5, Lon: 151.25, Population: 7}))

	var buf bytes.Buffer
	require.NoError(t, textio.WriteNetwork(&buf, src))

	dst := core.NewGraph()
	st, err := textio.ReadNetwork(&buf, dst)
	require.NoError(t, err)
	assert.Zero(t, st.Skipped())
	assert.Equal(t, src.CityList(), dst.CityList())
	assert.Equal(t, src.Routes(), dst.Routes())
}

func TestWriteNetworkFormat(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity(core.City{ID: "Pune", Lat: 18.5204, Lon: 73.8567}))
	require.NoError(t, g.AddCity(core.City{ID: "Mumbai", Lat: 19.076, Lon: 72.8777}))
	require.NoError(t, g.AddRoute(core.Route{From: "Pune", To: "Mumbai", Distance: 148, Time: 2.5}))

	var buf bytes.Buffer
	require.NoError(t, textio.WriteNetwork(&buf, g))
	assert.Equal(t, "# cities\nPune 18.5204 73.8567 0\nMumbai 19.076 72.8777 0\n# routes\nMumbai Pune 148 2.5 road\n", buf.String())
}

func TestWriteReport(t *testing.T) {
	found := paths.Result{Algorithm: "Dijkstra", Nodes: []string{"Pune", "Mumbai", "Nashik"}, Distance: 315, Time: 6.5}
	var buf bytes.Buffer
	require.NoError(t, textio.WriteReport(&buf, found, paths.Empty("BFS")))

	want := "Pathfinding Algorithm Comparison Results\n" +
		"========================================\n\n" +
		"Algorithm: Dijkstra\nPath: Pune -> Mumbai -> Nashik\nTotal Distance: 315.00 km\nTotal Time: 6.50 hours\n\n" +
		"Algorithm: BFS\nPath: No path found\nTotal Distance: 0.00 km\nTotal Time: 0.00 hours\n\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteComparison(t *testing.T) {
	cmp := analysis.Comparison{
		ID:          uuid.MustParse("6f1c2f5e-9f3a-4c55-8c1e-2b4a8f0d7e11"),
		Source:      "Pune",
		Destination: "Nashik",
		Entries: []analysis.Entry{
			{Kind: pathfinder.Dijkstra, Result: paths.Result{Algorithm: "Dijkstra", Nodes: []string{"Pune", "Mumbai", "Nashik"}, Distance: 315, Time: 6.5}, Elapsed: 3 * time.Millisecond, BestDistance: true},
			{Kind: pathfinder.BFS, Result: paths.Result{Algorithm: "BFS", Nodes: []string{"Pune", "Nashik"}, Distance: 350, Time: 5}, Elapsed: time.Millisecond, BestTime: true},
			{Kind: pathfinder.DFS, Result: paths.Result{Algorithm: "DFS"}, Elapsed: 0},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, textio.WriteComparison(&buf, cmp))

	out := buf.String()
	assert.Contains(t, out, "Run: 6f1c2f5e-9f3a-4c55-8c1e-2b4a8f0d7e11\n")
	assert.Contains(t, out, "Query: Pune -> Nashik\n")
	assert.Contains(t, out, "Total Time: 6.50 hours\nBest: distance\nElapsed: 3ms\n")
	assert.Contains(t, out, "Total Time: 5.00 hours\nBest: time\nElapsed: 1ms\n")
	assert.Contains(t, out, "Total Time: 0.00 hours\nElapsed: 0s\n")
	assert.Equal(t, 2, strings.Count(out, "Best: "))
	assert.True(t, strings.HasSuffix(out, "Total comparison time: 4ms\n"))
}

func TestLoadRejectsNonFiniteValues(t *testing.T) {
	g := core.NewGraph()
	st, err := textio.LoadCities(strings.NewReader("A 0 0\nB 0 1\nC NaN 1\nD 0 +Inf\n"), g)
	require.NoError(t, err)
	assert.Equal(t, textio.LoadStats{Added: 2, Rejected: 2}, st)
	assert.False(t, g.HasCity("C"))

	st, err = textio.LoadRoutes(strings.NewReader("A B inf 1\nA B 1 NaN\nA B -Inf 1\n"), g)
	require.NoError(t, err)
	assert.Equal(t, textio.LoadStats{Rejected: 3}, st)
	assert.Zero(t, g.RouteCount())

	// With no route between them, every algorithm reports A→B unreachable.
	for _, k := range pathfinder.Kinds() {
		res := pathfinder.Find(pathfinder.NewEngine(g), k, "A", "B")
		assert.False(t, res.Found(), k.String())
		assert.Zero(t, res.Distance, k.String())
	}
}
