package catalogue

import "github.com/theoremus-urban-solutions/transport-catalogue/geo"

// Stop is a named point of the network.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named route through an ordered sequence of stops.
//
// A roundtrip bus is travelled once in list order; the list closes the loop
// only when the caller repeats the first stop at the end. A linear bus is
// travelled forward and then back.
type Bus struct {
	Name        string
	Stops       []*Stop
	IsRoundtrip bool
}

// BusInfo aggregates route statistics for a bus.
type BusInfo struct {
	TotalStops  int     // stop visits along the full traversal
	UniqueStops int     // distinct stops referenced
	RouteLength int     // road meters along the full traversal
	Curvature   float64 // RouteLength / geodesic length
}

type stopPair struct {
	from, to *Stop
}
