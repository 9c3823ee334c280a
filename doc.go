// Package routegraph is an in-memory, concurrent city route graph: add
// bidirectional connections between named endpoints, ask whether two
// endpoints are connected, and get the first fewest-hop route between them.
//
// What is inside?
//
//	A small, thread-safe library plus a command-line front end:
//		• Core store: endpoints and connections, safe for concurrent readers and writers
//		• Search: breadth-first route search and traversal, depth-first components
//		• Ingestion: edges from in-memory record lists or line-oriented files
//		• Facade: never-failing Connected / Route queries with logging and metrics
//		• Fixtures: synthetic networks (paths, grids, random sparse) for tests and benchmarks
//
// Names are matched ignoring surrounding whitespace and letter case; routes
// are reported with the spelling first used for each endpoint.
//
// Packages:
//
//	core/            Graph, Vertex, name normalization, lock-free concurrent storage
//	bfs/             BFS traversal and ShortestPath with hooks and options
//	dfs/             DFS traversal and connected components
//	loader/          Edge, Iterator, record parsing, List and File sources
//	route/           Manager facade, Prometheus metrics
//	builder/         deterministic synthetic route networks
//	config/          YAML and environment configuration for the CLI
//	cmd/routefinder  command-line entry point
//
// Quick start:
//
//	m, err := route.NewFromList([]string{"Atlanta,Charlotte", "Charlotte,Richmond"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(m.Route("atlanta", "richmond")) // [Atlanta Charlotte Richmond]
package routegraph
