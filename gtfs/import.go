package gtfs

import (
	"fmt"
	"io"
	"log/slog"
)

// Network receives the imported stops, distances and buses
type Network interface {
	AddStop(name string, lat, lng float64)
	SetDistance(from, to string, meters int)
	AddBus(name string, stopNames []string, isRoundtrip bool)
}

// Options tunes an import
type Options struct {
	// DistanceUnit converts shape_dist_traveled to meters. Zero means 1.
	DistanceUnit float64
	Logger       *slog.Logger
}

// ImportStats counts what an import added
type ImportStats struct {
	Stops     int `json:"stops"`
	Buses     int `json:"buses"`
	Distances int `json:"distances"`
}

// ImportFile imports the GTFS zip at filename into n
func ImportFile(filename string, n Network, opts Options) (ImportStats, error) {
	index, err := LoadIndexFromZip(filename)
	if err != nil {
		return ImportStats{}, err
	}
	return ImportIndex(index, n, opts), nil
}

// Import imports a GTFS zip archive of the given size into n
func Import(r io.ReaderAt, size int64, n Network, opts Options) (ImportStats, error) {
	index, err := LoadIndex(r, size)
	if err != nil {
		return ImportStats{}, err
	}
	return ImportIndex(index, n, opts), nil
}

// ImportIndex adds the stops, road distances and buses of a parsed feed to n.
func ImportIndex(index *Index, n Network, opts Options) ImportStats {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	unit := opts.DistanceUnit
	if unit <= 0 {
		unit = 1
	}

	var stats ImportStats
	stopNames := map[string]struct{}{}
	for _, id := range index.StopOrder {
		s := index.Stops[id]
		if s.Name == "" {
			continue
		}
		if _, seen := stopNames[s.Name]; seen {
			continue
		}
		stopNames[s.Name] = struct{}{}
		n.AddStop(s.Name, s.Lat, s.Lon)
		stats.Stops++
	}

	type pair struct{ from, to string }
	distances := map[pair]struct{}{}
	busNames := map[string]struct{}{}
	for _, route := range index.Routes {
		trip, ok := index.LongestTrip(route.ID)
		if !ok {
			logger.Debug("route has no stop times", "route_id", route.ID)
			continue
		}
		seq := index.TripStopSeq[trip]

		stops := make([]string, 0, len(seq))
		for _, st := range seq {
			name, ok := index.GetStopName(st.StopID)
			if !ok {
				logger.Warn("unknown stop in stop_times", "trip_id", trip, "stop_id", st.StopID)
				continue
			}
			stops = append(stops, name)
		}
		if len(stops) == 0 {
			continue
		}

		for _, d := range tripDistances(seq, unit) {
			from, okFrom := index.GetStopName(d.from)
			to, okTo := index.GetStopName(d.to)
			if !okFrom || !okTo {
				continue
			}
			p := pair{from, to}
			if _, done := distances[p]; done {
				continue
			}
			distances[p] = struct{}{}
			n.SetDistance(from, to, d.meters)
			stats.Distances++
		}

		name := route.BusName()
		if _, dup := busNames[name]; dup {
			logger.Warn("duplicate bus name, keeping first route", "bus", name, "route_id", route.ID)
			continue
		}
		busNames[name] = struct{}{}
		roundtrip := len(stops) > 1 && stops[0] == stops[len(stops)-1]
		n.AddBus(name, stops, roundtrip)
		stats.Buses++
	}

	logger.Info("gtfs feed imported",
		"stops", stats.Stops,
		"buses", stats.Buses,
		"distances", stats.Distances,
	)
	return stats
}

func (s ImportStats) String() string {
	return fmt.Sprintf("%d stops, %d buses, %d distances", s.Stops, s.Buses, s.Distances)
}
