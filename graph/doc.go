/*
Package graph provides a directed weighted multigraph and a shortest-path
router over it.

Vertices are dense integer ids in [0, VertexCount). Edges are appended with
AddEdge and addressed by the EdgeID it returns; ids are assigned in insertion
order and never change, so callers can keep per-edge metadata in a parallel
slice indexed by EdgeID.

# Routing

Router answers single-source single-target queries with Dijkstra's algorithm
on a binary heap. Weights must be non-negative. Parallel edges between the
same pair of vertices are all kept; the cheapest one takes part in the
optimum.

	g := graph.NewDirectedWeightedGraph(3)
	g.AddEdge(graph.Edge{From: 0, To: 1, Weight: 2})
	g.AddEdge(graph.Edge{From: 1, To: 2, Weight: 3})

	r := graph.NewRouter(g)
	if route, ok := r.BuildRoute(0, 2); ok {
	    fmt.Println(route.Weight, route.Edges) // 5 [0 1]
	}

The router computes a full shortest-path tree per source vertex and keeps the
most recently used trees in an LRU cache (see WithCacheSize). The graph must
not be modified once a Router has been created for it.

# Thread safety

A Router and its graph are safe for concurrent queries.
*/
package graph
