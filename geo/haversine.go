// Package geo provides the great-circle distance oracle used as the A*
// heuristic and as an "as the crow flies" metric across citypath.
package geo

import (
	"math"

	"github.com/katalvlaran/citypath/core"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Between returns the haversine distance between two cities.
func Between(a, b core.City) float64 {
	if a.ID == b.ID {
		return 0
	}

	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// HeuristicDistance returns the great-circle distance between cities a and b
// of g. It is 0 when a == b and when either city is unknown, which keeps the
// estimate admissible.
func HeuristicDistance(g *core.Graph, a, b string) float64 {
	if a == b {
		return 0
	}
	ca, ok := g.City(a)
	if !ok {
		return 0
	}
	cb, ok := g.City(b)
	if !ok {
		return 0
	}

	return Haversine(ca.Lat, ca.Lon, cb.Lat, cb.Lon)
}
