// Package core defines the City, Route and Graph types of the city network,
// and provides thread-safe primitives for building and querying it.
//
// All core APIs use separate sync.RWMutex locks internally (muCity for the
// city catalog, muRoute for routes and adjacency), so a graph built at
// startup can be read from many goroutines at once.
//
// Errors:
//
//	ErrEmptyCityID     - city ID is the empty string.
//	ErrInvalidCityID   - city ID contains whitespace.
//	ErrBadCoordinate   - latitude or longitude out of range.
//	ErrUnknownCity     - route endpoint does not exist.
//	ErrNegativeWeight  - negative route distance or time.
//	ErrNonFiniteWeight - NaN or infinite route distance or time.
//	ErrLoopNotAllowed  - route from a city to itself.
//	ErrUnknownMode     - transport mode name not recognized.
package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCityID indicates that the provided City has an empty ID.
	ErrEmptyCityID = errors.New("core: city ID is empty")

	// ErrInvalidCityID indicates that the City ID contains whitespace,
	// which would break the token-based text formats.
	ErrInvalidCityID = errors.New("core: city ID contains whitespace")

	// ErrBadCoordinate indicates a latitude outside [-90,90], a longitude
	// outside [-180,180], or a NaN coordinate.
	ErrBadCoordinate = errors.New("core: coordinate out of range")

	// ErrUnknownCity indicates a route referenced a city that was never added.
	ErrUnknownCity = errors.New("core: unknown city")

	// ErrNegativeWeight indicates a negative distance or travel time on a route.
	ErrNegativeWeight = errors.New("core: negative route weight")

	// ErrNonFiniteWeight indicates a NaN or infinite distance or travel time on a route.
	ErrNonFiniteWeight = errors.New("core: non-finite route weight")

	// ErrLoopNotAllowed indicates a route whose endpoints are the same city.
	ErrLoopNotAllowed = errors.New("core: self-route not allowed")

	// ErrUnknownMode indicates a transport mode name that ParseMode does not know.
	ErrUnknownMode = errors.New("core: unknown transport mode")
)

// City represents a node in the network.
//
// ID uniquely identifies the City within its Graph. Coordinates are in
// decimal degrees; Population is optional (zero when unknown).
type City struct {
	// ID is the unique name of this City.
	ID string

	// Lat is the latitude in decimal degrees.
	Lat float64

	// Lon is the longitude in decimal degrees.
	Lon float64

	// Population is informational only.
	Population int
}

// Mode is the transport mode of a Route.
type Mode int

const (
	// ModeRoad is the default mode.
	ModeRoad Mode = iota
	// ModeRail is a train connection.
	ModeRail
	// ModeAir is a flight.
	ModeAir
)

// String returns the lower-case mode name used by the text formats.
func (m Mode) String() string {
	switch m {
	case ModeRoad:
		return "road"
	case ModeRail:
		return "rail"
	case ModeAir:
		return "air"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// NominalSpeed returns the planning speed of the mode in km/h.
// It is used by Route.Speed when a route carries no travel time.
func (m Mode) NominalSpeed() float64 {
	switch m {
	case ModeRail:
		return 90
	case ModeAir:
		return 700
	default:
		return 60
	}
}

// ParseMode converts "road", "rail" or "air" (any case) into a Mode.
// The empty string maps to ModeRoad.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "road":
		return ModeRoad, nil
	case "rail", "train":
		return ModeRail, nil
	case "air", "flight":
		return ModeAir, nil
	default:
		return ModeRoad, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Route represents one direction of a connection between two cities.
//
// AddRoute stores a Route and its mirror (From and To swapped); both
// directions share Distance, Time and Mode.
type Route struct {
	// From is the origin city ID.
	From string

	// To is the destination city ID.
	To string

	// Distance is the length in kilometres (>= 0).
	Distance float64

	// Time is the travel time in hours (>= 0).
	Time float64

	// Mode is the transport mode. It affects Speed only, never Distance.
	Mode Mode
}

// Reverse returns the mirror of r.
func (r Route) Reverse() Route {
	return Route{From: r.To, To: r.From, Distance: r.Distance, Time: r.Time, Mode: r.Mode}
}

// Speed returns the average speed in km/h derived from Distance and Time.
// Routes without a travel time fall back to the mode's nominal speed.
func (r Route) Speed() float64 {
	if r.Time > 0 {
		return r.Distance / r.Time
	}

	return r.Mode.NominalSpeed()
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the city catalog and adjacency for n cities.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory city network: a catalog of cities plus an
// adjacency map from->to->*Route holding both directions of every route.
//
// Invariant: every key of adjacency (outer and inner) is a catalogued city.
type Graph struct {
	muCity  sync.RWMutex // guards cities and order
	muRoute sync.RWMutex // guards adjacency and routeCount

	capacity int

	cities map[string]*City // city ID → City
	order  []string         // city IDs in first-insertion order

	// adjacency[from][to] = route from→to; the mirror lives at adjacency[to][from].
	adjacency  map[string]map[string]*Route
	routeCount int // undirected routes
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.cities = make(map[string]*City, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.adjacency = make(map[string]map[string]*Route, g.capacity)

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	CityCount  int // number of cities
	RouteCount int // undirected routes
	ArcCount   int // directed arcs (2 × RouteCount)
	Isolated   int // cities without any route
}
