package router

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
)

const verticesPerStop = 2

func waitVertex(stopIndex int) graph.VertexID { return graph.VertexID(stopIndex * verticesPerStop) }

func boardVertex(stopIndex int) graph.VertexID {
	return graph.VertexID(stopIndex*verticesPerStop + 1)
}

// Option configures a TransportRouter.
type Option func(*options)

type options struct {
	graphOpts []graph.Option
}

// WithCacheSize bounds the number of cached shortest-path trees.
func WithCacheSize(n int) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, graph.WithCacheSize(n)) }
}

// TransportRouter answers journey queries over a fixed catalogue snapshot.
type TransportRouter struct {
	settings  Settings
	stops     []*catalogue.Stop // stop index -> stop
	stopIndex map[string]int    // stop name -> stop index
	graph     *graph.DirectedWeightedGraph
	router    *graph.Router
	edges     []edgeInfo // graph.EdgeID -> metadata
}

// New validates settings and builds the routing graph for cat.
func New(cat *catalogue.Catalogue, settings Settings, opts ...Option) (*TransportRouter, error) {
	if err := validator.New().Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid routing settings: %w", err)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	stops := cat.StopsUsedInRoutes()
	tr := &TransportRouter{
		settings:  settings,
		stops:     stops,
		stopIndex: make(map[string]int, len(stops)),
		graph:     graph.NewDirectedWeightedGraph(len(stops) * verticesPerStop),
	}
	for i, s := range stops {
		tr.stopIndex[s.Name] = i
	}
	tr.buildGraph(cat)
	tr.router = graph.NewRouter(tr.graph, o.graphOpts...)
	return tr, nil
}

// TravelTime converts a road distance into minutes at the configured velocity.
func (tr *TransportRouter) TravelTime(meters int) float64 {
	return float64(meters) / (tr.settings.BusVelocity * 1000 / 60)
}

func (tr *TransportRouter) Settings() Settings { return tr.settings }

func (tr *TransportRouter) VertexCount() int { return tr.graph.VertexCount() }

func (tr *TransportRouter) EdgeCount() int { return tr.graph.EdgeCount() }

func (tr *TransportRouter) addEdge(from, to graph.VertexID, weight float64, info edgeInfo) {
	tr.graph.AddEdge(graph.Edge{From: from, To: to, Weight: weight})
	tr.edges = append(tr.edges, info)
}

func (tr *TransportRouter) buildGraph(cat *catalogue.Catalogue) {
	wait := float64(tr.settings.BusWaitTime)
	for i, s := range tr.stops {
		tr.addEdge(waitVertex(i), boardVertex(i), wait, waitEdge{stop: s.Name})
	}

	for _, bus := range cat.AllBuses() {
		stops := bus.Stops
		for i := range stops {
			fromIdx, ok := tr.stopIndex[stops[i].Name]
			if !ok {
				continue
			}
			forward, backward := 0, 0
			for j := i + 1; j < len(stops); j++ {
				forward += cat.Distance(stops[j-1], stops[j])
				backward += cat.Distance(stops[j], stops[j-1])

				toIdx, ok := tr.stopIndex[stops[j].Name]
				if !ok {
					continue
				}
				tr.addEdge(boardVertex(fromIdx), waitVertex(toIdx), tr.TravelTime(forward), rideEdge{
					bus: bus.Name, span: j - i, from: stops[i].Name, to: stops[j].Name,
				})
				if !bus.IsRoundtrip {
					tr.addEdge(boardVertex(toIdx), waitVertex(fromIdx), tr.TravelTime(backward), rideEdge{
						bus: bus.Name, span: j - i, from: stops[j].Name, to: stops[i].Name,
					})
				}
			}
		}
	}
}

// BuildRoute plans the fastest journey between two stops. Identical names
// yield an empty journey even for unknown stops. ErrStopNotFound is returned
// when an endpoint is not served by any bus and ErrUnreachable when no
// journey exists.
func (tr *TransportRouter) BuildRoute(from, to string) (*RouteInfo, error) {
	if from == to {
		return &RouteInfo{Segments: []Segment{}}, nil
	}
	fromIdx, ok := tr.stopIndex[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStopNotFound, from)
	}
	toIdx, ok := tr.stopIndex[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStopNotFound, to)
	}

	route, ok := tr.router.BuildRoute(waitVertex(fromIdx), waitVertex(toIdx))
	if !ok {
		return nil, fmt.Errorf("%w: %q -> %q", ErrUnreachable, from, to)
	}

	segments := make([]Segment, 0, len(route.Edges))
	for _, id := range route.Edges {
		segments = append(segments, tr.edges[id].segment(tr.graph.Edge(id).Weight))
	}
	return &RouteInfo{TotalTime: route.Weight, Segments: segments}, nil
}
