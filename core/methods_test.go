package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citypath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = triangle(s.T())
}

func (s *GraphSuite) TestAddCityAndHasCity() {
	require := require.New(s.T())
	require.True(s.g.HasCity(CityA))
	require.False(s.g.HasCity("Z"))
	require.False(s.g.HasCity(""), "empty ID is never present")

	c, ok := s.g.City(CityB)
	require.True(ok)
	require.Equal(1.0, c.Lon)
}

func (s *GraphSuite) TestAddCityValidation() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddCity(core.City{}), core.ErrEmptyCityID)
	require.ErrorIs(s.g.AddCity(core.City{ID: "New Delhi"}), core.ErrInvalidCityID)
	require.ErrorIs(s.g.AddCity(core.City{ID: "X", Lat: 91}), core.ErrBadCoordinate)
	require.ErrorIs(s.g.AddCity(core.City{ID: "X", Lon: -181}), core.ErrBadCoordinate)
	require.False(s.g.HasCity("X"))
}

func (s *GraphSuite) TestReAddKeepsRoutesAndOrder() {
	require := require.New(s.T())
	require.NoError(s.g.AddCity(core.City{ID: CityA, Lat: 2, Lon: 3, Population: 10}))

	c, _ := s.g.City(CityA)
	require.Equal(core.City{ID: CityA, Lat: 2, Lon: 3, Population: 10}, c)
	require.Equal([]string{CityA, CityB, CityC, CityD}, s.g.CitiesInOrder())
	require.True(s.g.HasRoute(CityA, CityB), "re-add must not drop routes")
	require.Equal(4, s.g.CityCount())
}

func (s *GraphSuite) TestAddRouteMirrors() {
	require := require.New(s.T())
	r, ok := s.g.Route(CityC, CityA)
	require.True(ok, "mirror C→A expected")
	require.Equal(core.Route{From: CityC, To: CityA, Distance: 5, Time: 1, Mode: core.ModeRail}, r)
	require.Equal(3, s.g.RouteCount())
	require.Equal(6, s.g.ArcCount())
}

func (s *GraphSuite) TestAddRouteRejectsUnknownCity() {
	require := require.New(s.T())
	err := s.g.AddRoute(core.Route{From: CityA, To: "Z", Distance: 1})
	require.ErrorIs(err, core.ErrUnknownCity)
	require.False(s.g.HasRoute(CityA, "Z"))
	require.False(s.g.HasRoute("Z", CityA), "no half-inserted mirror")
	require.Equal(3, s.g.RouteCount())
}

func (s *GraphSuite) TestAddRouteRejectsBadWeightsAndLoops() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddRoute(core.Route{From: CityA, To: CityD, Distance: -1}), core.ErrNegativeWeight)
	require.ErrorIs(s.g.AddRoute(core.Route{From: CityA, To: CityD, Time: -1}), core.ErrNegativeWeight)
	require.ErrorIs(s.g.AddRoute(core.Route{From: CityA, To: CityA}), core.ErrLoopNotAllowed)
	require.Equal(0, s.g.Degree(CityD))
}

func (s *GraphSuite) TestAddRouteRejectsNonFiniteWeights() {
	require := require.New(s.T())
	for _, r := range []core.Route{
		{From: CityA, To: CityD, Distance: math.NaN()},
		{From: CityA, To: CityD, Distance: math.Inf(1)},
		{From: CityA, To: CityD, Distance: 1, Time: math.NaN()},
		{From: CityA, To: CityD, Distance: 1, Time: math.Inf(1)},
		{From: CityA, To: CityD, Distance: math.Inf(-1)},
	} {
		require.ErrorIs(s.g.AddRoute(r), core.ErrNonFiniteWeight, "%+v", r)
	}
	require.False(s.g.HasRoute(CityA, CityD))
	require.Equal(3, s.g.RouteCount())
}

func (s *GraphSuite) TestAddCityRejectsNaNCoordinates() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddCity(core.City{ID: "X", Lat: math.NaN()}), core.ErrBadCoordinate)
	require.ErrorIs(s.g.AddCity(core.City{ID: "X", Lon: math.NaN()}), core.ErrBadCoordinate)
	require.ErrorIs(s.g.AddCity(core.City{ID: "X", Lon: math.Inf(1)}), core.ErrBadCoordinate)
	require.False(s.g.HasCity("X"))
}

func (s *GraphSuite) TestReplaceRouteDoesNotDoubleCount() {
	require := require.New(s.T())
	require.NoError(s.g.AddRoute(core.Route{From: CityB, To: CityA, Distance: 7, Time: 2}))
	require.Equal(3, s.g.RouteCount())
	r, _ := s.g.Route(CityA, CityB)
	require.Equal(7.0, r.Distance)
}

func (s *GraphSuite) TestNeighborsSorted() {
	require := require.New(s.T())
	require.Equal([]string{CityB, CityC}, s.g.Neighbors(CityA))
	require.Empty(s.g.Neighbors(CityD))
	require.NotNil(s.g.Neighbors("missing"))
	require.Empty(s.g.Neighbors("missing"))
}

func (s *GraphSuite) TestRoutesAndArcs() {
	require := require.New(s.T())
	routes := s.g.Routes()
	require.Len(routes, 3)
	for _, r := range routes {
		require.Less(r.From, r.To)
	}
	arcs := s.g.Arcs()
	require.Len(arcs, 6)
	require.Equal(CityA, arcs[0].From)
	require.Equal(CityB, arcs[0].To)
}

func (s *GraphSuite) TestStats() {
	st := s.g.Stats()
	s.Equal(&core.GraphStats{CityCount: 4, RouteCount: 3, ArcCount: 6, Isolated: 1}, st)
}

func (s *GraphSuite) TestCloneIsDeep() {
	require := require.New(s.T())
	clone := s.g.Clone()
	require.NoError(clone.AddRoute(core.Route{From: CityC, To: CityD, Distance: 2}))
	require.True(clone.HasRoute(CityD, CityC))
	require.False(s.g.HasRoute(CityD, CityC), "original must be untouched")
	require.Equal(s.g.CitiesInOrder(), clone.CitiesInOrder())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestModes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want core.Mode
	}{
		{"", core.ModeRoad},
		{"road", core.ModeRoad},
		{"RAIL", core.ModeRail},
		{"air", core.ModeAir},
	} {
		m, err := core.ParseMode(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, m)
		if tc.in != "" && tc.in != "RAIL" {
			require.Equal(t, tc.in, m.String())
		}
	}
	_, err := core.ParseMode("boat")
	require.ErrorIs(t, err, core.ErrUnknownMode)
}

func TestRouteSpeed(t *testing.T) {
	r := core.Route{Distance: 120, Time: 2, Mode: core.ModeAir}
	require.Equal(t, 60.0, r.Speed(), "measured speed wins over nominal")
	r.Time = 0
	require.Equal(t, 700.0, r.Speed())
	require.Equal(t, core.Route{From: "B", To: "A", Distance: 120, Mode: core.ModeAir}, core.Route{From: "A", To: "B", Distance: 120, Mode: core.ModeAir}.Reverse())
}
