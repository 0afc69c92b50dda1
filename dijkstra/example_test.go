package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dijkstra"
)

// ExampleShortestPath shows the cheaper two-hop path winning over a direct
// but longer route.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, id := range []string{"Pune", "Mumbai", "Nashik"} {
		_ = g.AddCity(core.City{ID: id})
	}
	_ = g.AddRoute(core.Route{From: "Pune", To: "Mumbai", Distance: 150, Time: 3})
	_ = g.AddRoute(core.Route{From: "Mumbai", To: "Nashik", Distance: 165, Time: 3.5})
	_ = g.AddRoute(core.Route{From: "Pune", To: "Nashik", Distance: 400, Time: 5})

	r := dijkstra.ShortestPath(g, "Pune", "Nashik")
	fmt.Println(r.Nodes, r.Distance, r.Time)
	// Output: [Pune Mumbai Nashik] 315 6.5
}
