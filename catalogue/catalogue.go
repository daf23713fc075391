package catalogue

import (
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// Catalogue stores stops, buses and road distances in memory
type Catalogue struct {
	stops     []*Stop                       // registration order
	stopIndex map[string]*Stop              // name -> stop
	buses     []*Bus                        // registration order
	busIndex  map[string]*Bus               // name -> bus
	stopBuses map[*Stop]map[string]struct{} // stop -> names of buses serving it
	distances map[stopPair]int              // (from, to) -> road meters
}

// New creates an empty catalogue
func New() *Catalogue {
	return &Catalogue{
		stopIndex: map[string]*Stop{},
		busIndex:  map[string]*Bus{},
		stopBuses: map[*Stop]map[string]struct{}{},
		distances: map[stopPair]int{},
	}
}

// AddStop registers a stop. A name that is already registered is ignored.
func (c *Catalogue) AddStop(name string, lat, lng float64) {
	if _, ok := c.stopIndex[name]; ok {
		return
	}
	stop := &Stop{Name: name, Coordinates: geo.Coordinates{Lat: lat, Lng: lng}}
	c.stops = append(c.stops, stop)
	c.stopIndex[name] = stop
}

// AddBus registers a bus over the named stops. Stop names that are not
// registered are skipped. A bus name that is already registered is ignored.
func (c *Catalogue) AddBus(name string, stopNames []string, isRoundtrip bool) {
	if _, ok := c.busIndex[name]; ok {
		return
	}
	bus := &Bus{Name: name, IsRoundtrip: isRoundtrip, Stops: make([]*Stop, 0, len(stopNames))}
	for _, stopName := range stopNames {
		stop, ok := c.stopIndex[stopName]
		if !ok {
			continue
		}
		bus.Stops = append(bus.Stops, stop)
		set, ok := c.stopBuses[stop]
		if !ok {
			set = map[string]struct{}{}
			c.stopBuses[stop] = set
		}
		set[bus.Name] = struct{}{}
	}
	c.buses = append(c.buses, bus)
	c.busIndex[name] = bus
}

// FindStop returns the stop registered under name.
func (c *Catalogue) FindStop(name string) (*Stop, bool) {
	s, ok := c.stopIndex[name]
	return s, ok
}

// FindBus returns the bus registered under name.
func (c *Catalogue) FindBus(name string) (*Bus, bool) {
	b, ok := c.busIndex[name]
	return b, ok
}

// SetDistance records the road distance from one stop to another, replacing
// any previous value for the same ordered pair. Both stops must already be
// registered; an unknown name panics.
func (c *Catalogue) SetDistance(fromName, toName string, meters int) {
	from, ok := c.stopIndex[fromName]
	if !ok {
		panic(fmt.Sprintf("catalogue: SetDistance from unknown stop %q", fromName))
	}
	to, ok := c.stopIndex[toName]
	if !ok {
		panic(fmt.Sprintf("catalogue: SetDistance to unknown stop %q", toName))
	}
	c.distances[stopPair{from, to}] = meters
}

// Distance returns the road distance in meters from one stop to another.
func (c *Catalogue) Distance(from, to *Stop) int {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d
	}
	return int(math.Round(geo.Distance(from.Coordinates, to.Coordinates)))
}

// BusInfo computes route statistics. It reports false for an unknown bus and
// for a bus without resolvable stops.
func (c *Catalogue) BusInfo(name string) (BusInfo, bool) {
	bus, ok := c.busIndex[name]
	if !ok || len(bus.Stops) == 0 {
		return BusInfo{}, false
	}
	stops := bus.Stops

	unique := make(map[*Stop]struct{}, len(stops))
	for _, s := range stops {
		unique[s] = struct{}{}
	}

	roadLength := 0
	geoLength := 0.0
	for i := 1; i < len(stops); i++ {
		roadLength += c.Distance(stops[i-1], stops[i])
		geoLength += geo.Distance(stops[i-1].Coordinates, stops[i].Coordinates)
	}

	info := BusInfo{UniqueStops: len(unique)}
	if bus.IsRoundtrip {
		info.TotalStops = len(stops)
	} else {
		info.TotalStops = 2*len(stops) - 1
		for i := len(stops) - 1; i > 0; i-- {
			roadLength += c.Distance(stops[i], stops[i-1])
			geoLength += geo.Distance(stops[i].Coordinates, stops[i-1].Coordinates)
		}
	}

	info.RouteLength = roadLength
	if geoLength == 0 {
		info.Curvature = 1
	} else {
		info.Curvature = float64(roadLength) / geoLength
	}
	return info, true
}

// BusesForStop returns the names of buses serving a stop. The set is empty
// for a stop no bus serves and false for an unknown stop. The returned map is
// a copy.
func (c *Catalogue) BusesForStop(name string) (map[string]struct{}, bool) {
	stop, ok := c.stopIndex[name]
	if !ok {
		return nil, false
	}
	out := make(map[string]struct{}, len(c.stopBuses[stop]))
	for bus := range c.stopBuses[stop] {
		out[bus] = struct{}{}
	}
	return out, true
}

// StopsUsedInRoutes returns the stops referenced by at least one bus, in
// registration order.
func (c *Catalogue) StopsUsedInRoutes() []*Stop {
	out := make([]*Stop, 0, len(c.stopBuses))
	for _, s := range c.stops {
		if len(c.stopBuses[s]) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func (c *Catalogue) AllStops() []*Stop {
	out := make([]*Stop, len(c.stops))
	copy(out, c.stops)
	return out
}

func (c *Catalogue) AllBuses() []*Bus {
	out := make([]*Bus, len(c.buses))
	copy(out, c.buses)
	return out
}

func (c *Catalogue) StopCount() int { return len(c.stops) }

func (c *Catalogue) BusCount() int { return len(c.buses) }
