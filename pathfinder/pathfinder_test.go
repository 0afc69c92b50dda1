package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/pathfinder"
	"github.com/katalvlaran/citypath/paths"
)

func TestParseKind(t *testing.T) {
	for name, want := range map[string]pathfinder.Kind{
		"dijkstra":       pathfinder.Dijkstra,
		"Bellman-Ford":   pathfinder.BellmanFord,
		"bellman_ford":   pathfinder.BellmanFord,
		"floyd-warshall": pathfinder.FloydWarshall,
		"A*":             pathfinder.AStar,
		" astar ":        pathfinder.AStar,
		"BFS":            pathfinder.BFS,
		"dfs":            pathfinder.DFS,
	} {
		got, err := pathfinder.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := pathfinder.ParseKind("simulated-annealing")
	require.ErrorIs(t, err, pathfinder.ErrUnknownAlgorithm)
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range pathfinder.Kinds() {
		got, err := pathfinder.ParseKind(k.Slug())
		require.NoError(t, err)
		assert.Equal(t, k, got)

		got, err = pathfinder.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "kind(42)", pathfinder.Kind(42).String())
}

// recorder is a Finder that remembers which method ran.
type recorder struct{ called string }

func (r *recorder) hit(name string) paths.Result { r.called = name; return paths.Empty(name) }

func (r *recorder) Dijkstra(string, string) paths.Result      { return r.hit("Dijkstra") }
func (r *recorder) BellmanFord(string, string) paths.Result   { return r.hit("Bellman-Ford") }
func (r *recorder) FloydWarshall(string, string) paths.Result { return r.hit("Floyd-Warshall") }
func (r *recorder) AStar(string, string) paths.Result         { return r.hit("A*") }
func (r *recorder) BFS(string, string) paths.Result           { return r.hit("BFS") }
func (r *recorder) DFS(string, string) paths.Result           { return r.hit("DFS") }

func TestFindDispatch(t *testing.T) {
	rec := &recorder{}
	for _, k := range pathfinder.Kinds() {
		pathfinder.Find(rec, k, "a", "b")
		assert.Equal(t, k.String(), rec.called)
	}
	assert.Equal(t, "kind(9)", pathfinder.Find(rec, pathfinder.Kind(9), "a", "b").Algorithm)
}

type EngineSuite struct {
	suite.Suite
	engine *pathfinder.Engine
}

// SetupTest builds the triangle A-B(1) B-C(1) A-C(5) plus isolated D.
func (s *EngineSuite) SetupTest() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		s.Require().NoError(g.AddCity(core.City{ID: id}))
	}
	s.Require().NoError(g.AddRoute(core.Route{From: "A", To: "B", Distance: 1, Time: 1}))
	s.Require().NoError(g.AddRoute(core.Route{From: "B", To: "C", Distance: 1, Time: 1}))
	s.Require().NoError(g.AddRoute(core.Route{From: "A", To: "C", Distance: 5, Time: 1}))
	s.engine = pathfinder.NewEngine(g)
}

func (s *EngineSuite) TestTriangle() {
	for _, k := range []pathfinder.Kind{pathfinder.Dijkstra, pathfinder.BellmanFord, pathfinder.FloydWarshall, pathfinder.AStar} {
		r := pathfinder.Find(s.engine, k, "A", "C")
		s.Equal([]string{"A", "B", "C"}, r.Nodes, k.String())
		s.Equal(2.0, r.Distance, k.String())
		s.Equal(k.String(), r.Algorithm)
	}
	s.Equal([]string{"A", "C"}, s.engine.BFS("A", "C").Nodes)
}

func (s *EngineSuite) TestIsolatedAndSelf() {
	for _, k := range pathfinder.Kinds() {
		r := pathfinder.Find(s.engine, k, "A", "D")
		s.False(r.Found(), k.String())
		s.Zero(r.Distance)
		s.Zero(r.Time)

		r = pathfinder.Find(s.engine, k, "A", "A")
		s.Equal([]string{"A"}, r.Nodes, k.String())
		s.Zero(r.Distance)

		s.False(pathfinder.Find(s.engine, k, "A", "Nowhere").Found())
	}
}

func (s *EngineSuite) TestIdempotent() {
	for _, k := range pathfinder.Kinds() {
		s.Equal(pathfinder.Find(s.engine, k, "C", "A"), pathfinder.Find(s.engine, k, "C", "A"), k.String())
	}
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
