package gtfs

import (
	"errors"
	"sort"
)

var ErrNoStops = errors.New("gtfs feed has no stops")

// StopRecord is one row of stops.txt
type StopRecord struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// RouteRecord is one row of routes.txt
type RouteRecord struct {
	ID        string
	ShortName string
	LongName  string
}

// StopTime is one row of stop_times.txt. Dist is NaN when
// shape_dist_traveled is empty.
type StopTime struct {
	StopID   string
	Sequence int
	Dist     float64
}

// Index holds the parsed feed tables. Fields are exported for gob.
type Index struct {
	Stops       map[string]StopRecord // stop_id -> stop
	StopOrder   []string              // stop_ids in file order
	Routes      []RouteRecord         // file order
	RouteTrips  map[string][]string   // route_id -> trip_ids
	TripStopSeq map[string][]StopTime // trip_id -> stop times ordered by sequence
}

func NewIndex() *Index {
	return &Index{
		Stops:       map[string]StopRecord{},
		RouteTrips:  map[string][]string{},
		TripStopSeq: map[string][]StopTime{},
	}
}

// BusName names the bus built from a route
func (r RouteRecord) BusName() string {
	switch {
	case r.ShortName != "":
		return r.ShortName
	case r.LongName != "":
		return r.LongName
	default:
		return r.ID
	}
}

// LongestTrip returns the route's trip with the most stop times. Ties go to
// the smallest trip_id.
func (g *Index) LongestTrip(routeID string) (string, bool) {
	trips := append([]string(nil), g.RouteTrips[routeID]...)
	sort.Strings(trips)
	best, bestLen := "", 0
	for _, trip := range trips {
		if n := len(g.TripStopSeq[trip]); n > bestLen {
			best, bestLen = trip, n
		}
	}
	return best, bestLen > 0
}

// GetStopName returns the stop_name for a stop_id
func (g *Index) GetStopName(stopID string) (string, bool) {
	s, ok := g.Stops[stopID]
	if !ok || s.Name == "" {
		return "", false
	}
	return s.Name, true
}
