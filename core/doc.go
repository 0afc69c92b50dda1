// Package core provides the thread-safe in-memory city network used by every
// pathfinding algorithm in citypath.
//
// The Graph G = (V,E) stores:
//
//   - Cities (V): named points with latitude, longitude and optional population.
//   - Routes (E): weighted connections with a distance (km), a travel time (h)
//     and a transport mode. Every route is stored twice, once per direction,
//     so the network is undirected while lookups stay directional:
//     adjacency[from][to] = *Route
//
// Why use core.Graph?
//
//   - Deterministic iteration: Cities(), Neighbors(), Routes() and Arcs() all
//     return sorted results, so algorithms break ties the same way every run.
//   - Insertion order is kept as well (CitiesInOrder) for reports and analytics.
//   - Strict endpoints: AddRoute rejects unknown cities with ErrUnknownCity and
//     writes both directions under one lock.
//   - Separate sync.RWMutex for cities (muCity) and routes (muRoute).
//
// Core Methods:
//
//	// City lifecycle
//	AddCity(c City) error             // O(1), re-add replaces attributes
//	HasCity(id string) bool           // O(1)
//	City(id string) (City, bool)      // O(1)
//
//	// Route lifecycle
//	AddRoute(r Route) error           // O(1), stores r and r.Reverse()
//	HasRoute(from, to string) bool    // O(1)
//	Route(from, to string) (Route, bool)
//
//	// Query
//	Neighbors(id string) []string     // O(d·log d), sorted
//	OutRoutes(id string) []Route      // O(d·log d), sorted by To
//	Cities() []string                 // O(V·log V), sorted
//	CitiesInOrder() []string          // O(V), insertion order
//	Routes() []Route                  // undirected, From < To
//	Arcs() []Route                    // both directions
//
//	// Counts
//	CityCount(), RouteCount(), ArcCount(), Degree(id), Stats()
//
//	// Cloning
//	Clone() *Graph                    // O(V+E) deep copy
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddCity(core.City{ID: "Mumbai", Lat: 19.0760, Lon: 72.8777})
//	_ = g.AddCity(core.City{ID: "Pune", Lat: 18.5204, Lon: 73.8567})
//	_ = g.AddRoute(core.Route{From: "Mumbai", To: "Pune", Distance: 148, Time: 3})
//	fmt.Println(g.HasRoute("Pune", "Mumbai")) // true
package core
