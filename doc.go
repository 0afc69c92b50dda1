// Package citypath finds and compares routes between cities.
//
// A city network (package core) holds cities with coordinates and
// undirected routes carrying a distance in km, a travel time in hours and
// a transport mode. Six algorithms answer source → destination queries and
// all of them return the same paths.Result shape:
//
//	dijkstra/        distance-optimal, deterministic linear-scan Dijkstra
//	bellmanford/     distance-optimal, with negative-cycle detection
//	floydwarshall/   distance-optimal, all-pairs table (matrix/)
//	astar/           distance-optimal with the great-circle heuristic (geo/)
//	bfs/             fewest routes
//	dfs/             some path, first found in ascending-ID order
//
// Around them:
//
//	pathfinder/  Kind enum and dispatch by algorithm name
//	analysis/    side-by-side comparison, network statistics, backbone
//	builder/     the seed network and synthetic grid networks
//	textio/      flat-file import/export and reports
//	osmimport/   cities from OpenStreetMap place nodes
//	spatial/     nearest city by coordinates
//	metrics/     Prometheus query metrics
//	httpapi/     JSON API over gin
//	config/      .env and environment settings
//	cmd/citypath the command-line tool
//
// Quick start:
//
//	g, _ := builder.Default()
//	res := dijkstra.ShortestPath(g, "Mumbai", "Patna")
//	fmt.Println(res.Nodes, res.Distance, res.Time)
package citypath
