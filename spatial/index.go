// Package spatial answers "which city is closest to this point" over a
// city network, using an R-tree of city coordinates.
package spatial

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/geo"
)

// candidates is the number of planar nearest neighbors re-ranked by
// great-circle distance. Degrees of longitude shrink towards the poles,
// so the planar order is only approximately right.
const candidates = 8

// Index is an immutable snapshot of city positions.
type Index struct {
	tree rtree.RTreeG[core.City]
	n    int
}

// NewIndex indexes every city of g as a point (lon, lat).
// Cities added to g afterwards are not seen.
//
// Complexity: O(V log V).
func NewIndex(g *core.Graph) *Index {
	idx := &Index{}
	for _, c := range g.CityList() {
		pt := [2]float64{c.Lon, c.Lat}
		idx.tree.Insert(pt, pt, c)
		idx.n++
	}

	return idx
}

// Len returns the number of indexed cities.
func (idx *Index) Len() int { return idx.n }

// Nearest returns the city closest to (lat, lon) and its great-circle
// distance in km. ok is false when the index is empty.
// Ties on distance go to the smaller ID.
func (idx *Index) Nearest(lat, lon float64) (city core.City, km float64, ok bool) {
	if idx.n == 0 {
		return core.City{}, 0, false
	}

	type hit struct {
		city core.City
		km   float64
	}
	hits := make([]hit, 0, candidates)
	pt := [2]float64{lon, lat}
	idx.tree.Nearby(
		rtree.BoxDist[float64, core.City](pt, pt, nil),
		func(_, _ [2]float64, c core.City, _ float64) bool {
			hits = append(hits, hit{city: c, km: geo.Haversine(lat, lon, c.Lat, c.Lon)})
			return len(hits) < candidates
		},
	)

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].km != hits[j].km {
			return hits[i].km < hits[j].km
		}
		return hits[i].city.ID < hits[j].city.ID
	})

	return hits[0].city, hits[0].km, true
}
