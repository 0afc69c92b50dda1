// File: methods_cities.go
// Role: City lifecycle & queries.
//
// Determinism:
//   - Cities() returns IDs sorted lexicographically ascending.
//   - CitiesInOrder() returns IDs in first-insertion order.
//
// Concurrency:
//   - City catalog protected by muCity.
//   - Adjacency bootstrap under muRoute (lock order muCity -> muRoute).
package core

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// AddCity inserts a city, or replaces the attributes of an existing one
// (explicit re-add).
//
// Implementation:
//   - Stage 1: Validate the ID and coordinates.
//   - Stage 2: Under muCity write lock, store the City; a new ID is appended
//     to the insertion order, a re-added ID keeps its original position.
//   - Stage 3: Under muRoute write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Re-adding keeps every route attached to the city.
//
// Errors:
//   - ErrEmptyCityID, ErrInvalidCityID, ErrBadCoordinate.
//
// Complexity:
//   - Time O(len(ID)) for validation, O(1) amortized for insertion.
func (g *Graph) AddCity(c City) error {
	if err := validateCity(c); err != nil {
		return err
	}

	g.muCity.Lock()
	defer g.muCity.Unlock()

	stored := c // copy; callers keep ownership of their value
	if _, exists := g.cities[c.ID]; !exists {
		g.order = append(g.order, c.ID)
	}
	g.cities[c.ID] = &stored

	g.muRoute.Lock()
	if _, ok := g.adjacency[c.ID]; !ok {
		g.adjacency[c.ID] = make(map[string]*Route)
	}
	g.muRoute.Unlock()

	return nil
}

// validateCity checks the ID token and coordinate ranges.
func validateCity(c City) error {
	if c.ID == "" {
		return ErrEmptyCityID
	}
	if strings.IndexFunc(c.ID, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidCityID, c.ID)
	}
	// Written as negated ranges so NaN fails too.
	if !(c.Lat >= -90 && c.Lat <= 90) || !(c.Lon >= -180 && c.Lon <= 180) {
		return fmt.Errorf("%w: %s (%g, %g)", ErrBadCoordinate, c.ID, c.Lat, c.Lon)
	}

	return nil
}

// HasCity reports whether the city ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasCity(id string) bool {
	if id == "" {
		return false
	}
	g.muCity.RLock()
	defer g.muCity.RUnlock()
	_, ok := g.cities[id]

	return ok
}

// City returns a copy of the stored city.
func (g *Graph) City(id string) (City, bool) {
	g.muCity.RLock()
	defer g.muCity.RUnlock()
	c, ok := g.cities[id]
	if !ok {
		return City{}, false
	}

	return *c, true
}

// Cities returns all city IDs sorted ascending.
// Every algorithm iterates this slice, which makes tie-breaking
// independent of map iteration order.
//
// Complexity: O(V log V).
func (g *Graph) Cities() []string {
	g.muCity.RLock()
	defer g.muCity.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)
	sort.Strings(ids)

	return ids
}

// CitiesInOrder returns all city IDs in first-insertion order.
// Complexity: O(V).
func (g *Graph) CitiesInOrder() []string {
	g.muCity.RLock()
	defer g.muCity.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// CityList returns copies of all cities in first-insertion order.
func (g *Graph) CityList() []City {
	g.muCity.RLock()
	defer g.muCity.RUnlock()

	out := make([]City, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.cities[id])
	}

	return out
}

// CityCount returns the number of cities.
// Complexity: O(1).
func (g *Graph) CityCount() int {
	g.muCity.RLock()
	defer g.muCity.RUnlock()

	return len(g.cities)
}
