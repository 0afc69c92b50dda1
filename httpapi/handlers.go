package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/citypath/analysis"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/pathfinder"
)

// CityJSON is one city as served by /api/cities and /api/nearest.
type CityJSON struct {
	ID         string  `json:"id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Population int     `json:"population,omitempty"`
	Degree     int     `json:"degree"`
}

// RouteJSON is one leg of a path.
type RouteJSON struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
	Mode     string  `json:"mode"`
}

// ResultJSON is the answer of one algorithm.
type ResultJSON struct {
	Algorithm string      `json:"algorithm"`
	Found     bool        `json:"found"`
	Path      []string    `json:"path"`
	Distance  float64     `json:"distance"`
	Time      float64     `json:"time"`
	Routes    []RouteJSON `json:"routes"`
	ElapsedUS int64       `json:"elapsedMicros"`

	// Set only in /api/compare bodies.
	BestDistance bool `json:"bestDistance,omitempty"`
	BestTime     bool `json:"bestTime,omitempty"`
}

// CompareJSON is the body of /api/compare.
type CompareJSON struct {
	ID          string       `json:"id"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Results     []ResultJSON `json:"results"`
	TotalMicros int64        `json:"totalMicros"`
}

// AnalysisJSON is the body of /api/analysis.
type AnalysisJSON struct {
	analysis.NetworkStats
	Components        [][]string  `json:"components"`
	AveragePathLength float64     `json:"averagePathLength"`
	ConnectedPairs    int         `json:"connectedPairs"`
	Backbone          []RouteJSON `json:"backbone"`
	BackboneDistance  float64     `json:"backboneDistance"`
}

// NearestJSON is the body of /api/nearest.
type NearestJSON struct {
	City       CityJSON `json:"city"`
	DistanceKm float64  `json:"distanceKm"`
}

func (s *Server) handleCities(c *gin.Context) {
	cities := s.g.CityList()
	out := make([]CityJSON, len(cities))
	for i, city := range cities {
		out[i] = s.cityJSON(city)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleRoute(c *gin.Context) {
	from, to, ok := endpoints(c)
	if !ok {
		return
	}
	kind := pathfinder.Dijkstra
	if name := c.Query("algorithm"); name != "" {
		var err error
		if kind, err = pathfinder.ParseKind(name); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, resultJSON(s.analyzer.Query(kind, from, to)))
}

func (s *Server) handleCompare(c *gin.Context) {
	from, to, ok := endpoints(c)
	if !ok {
		return
	}

	cmp := s.analyzer.Compare(from, to)
	out := CompareJSON{
		ID:          cmp.ID.String(),
		From:        cmp.Source,
		To:          cmp.Destination,
		Results:     make([]ResultJSON, len(cmp.Entries)),
		TotalMicros: cmp.Total().Microseconds(),
	}
	for i, e := range cmp.Entries {
		out.Results[i] = resultJSON(e)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAnalysis(c *gin.Context) {
	avg, pairs := s.analyzer.AveragePathLength()
	bb := s.analyzer.Backbone()
	c.JSON(http.StatusOK, AnalysisJSON{
		NetworkStats:      s.analyzer.AnalyzeNetwork(),
		Components:        s.analyzer.ConnectedComponents(),
		AveragePathLength: avg,
		ConnectedPairs:    pairs,
		Backbone:          routesJSON(bb.Routes),
		BackboneDistance:  bb.Distance,
	})
}

func (s *Server) handleNearest(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	// Negated ranges so NaN is rejected as well.
	if errLat != nil || errLon != nil || !(lat >= -90 && lat <= 90) || !(lon >= -180 && lon <= 180) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("bad coordinates lat=%q lon=%q", c.Query("lat"), c.Query("lon"))})
		return
	}

	city, km, ok := s.index.Nearest(lat, lon)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "network has no cities"})
		return
	}
	c.JSON(http.StatusOK, NearestJSON{City: s.cityJSON(city), DistanceKm: km})
}

// endpoints reads the from/to query parameters, answering 400 when either
// is missing.
func endpoints(c *gin.Context) (from, to string, ok bool) {
	from, to = c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return "", "", false
	}

	return from, to, true
}

func (s *Server) cityJSON(c core.City) CityJSON {
	return CityJSON{ID: c.ID, Lat: c.Lat, Lon: c.Lon, Population: c.Population, Degree: s.g.Degree(c.ID)}
}

func resultJSON(e analysis.Entry) ResultJSON {
	return ResultJSON{
		Algorithm: e.Result.Algorithm,
		Found:     e.Result.Found(),
		Path:      nonNil(e.Result.Nodes),
		Distance:  e.Result.Distance,
		Time:      e.Result.Time,
		Routes:    routesJSON(e.Result.Routes),
		ElapsedUS: e.Elapsed.Microseconds(),

		BestDistance: e.BestDistance,
		BestTime:     e.BestTime,
	}
}

func routesJSON(routes []core.Route) []RouteJSON {
	out := make([]RouteJSON, len(routes))
	for i, rt := range routes {
		out[i] = RouteJSON{From: rt.From, To: rt.To, Distance: rt.Distance, Time: rt.Time, Mode: rt.Mode.String()}
	}

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
