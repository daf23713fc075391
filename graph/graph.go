package graph

import "fmt"

type VertexID int

type EdgeID int

// Edge is a directed weighted connection between two vertices.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// DirectedWeightedGraph stores edges in an arena with an incidence list per
// source vertex.
type DirectedWeightedGraph struct {
	edges     []Edge
	incidence [][]EdgeID // vertex -> outgoing edge ids
}

// NewDirectedWeightedGraph creates a graph with vertexCount vertices and no edges.
func NewDirectedWeightedGraph(vertexCount int) *DirectedWeightedGraph {
	return &DirectedWeightedGraph{incidence: make([][]EdgeID, vertexCount)}
}

// AddEdge appends an edge and returns its id. It panics when an endpoint is
// out of range.
func (g *DirectedWeightedGraph) AddEdge(e Edge) EdgeID {
	g.checkVertex(e.From)
	g.checkVertex(e.To)
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id
}

func (g *DirectedWeightedGraph) VertexCount() int { return len(g.incidence) }

func (g *DirectedWeightedGraph) EdgeCount() int { return len(g.edges) }

func (g *DirectedWeightedGraph) Edge(id EdgeID) Edge { return g.edges[id] }

// IncidentEdges returns the ids of edges leaving v in insertion order.
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID {
	g.checkVertex(v)
	return g.incidence[v]
}

func (g *DirectedWeightedGraph) checkVertex(v VertexID) {
	if v < 0 || int(v) >= len(g.incidence) {
		panic(fmt.Sprintf("graph: vertex %d out of range [0, %d)", v, len(g.incidence)))
	}
}
