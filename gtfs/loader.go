package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"
)

var feedFiles = map[string]bool{
	"stops.txt":      true,
	"routes.txt":     true,
	"trips.txt":      true,
	"stop_times.txt": true,
}

// LoadIndexFromZip parses a GTFS zip file from disk
func LoadIndexFromZip(filename string) (*Index, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	defer zr.Close()
	return loadFromZip(&zr.Reader)
}

// LoadIndex parses a GTFS zip archive of the given size
func LoadIndex(r io.ReaderAt, size int64) (*Index, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	return loadFromZip(zr)
}

func loadFromZip(zr *zip.Reader) (*Index, error) {
	g := NewIndex()
	for _, f := range zr.File {
		// some feeds nest the tables in a folder
		name := strings.ToLower(path.Base(f.Name))
		if !feedFiles[name] {
			continue
		}
		if err := g.consumeCSV(f, name); err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}
	if len(g.Stops) == 0 {
		return nil, ErrNoStops
	}
	return g, nil
}

func (g *Index) consumeCSV(f *zip.File, name string) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	switch name {
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		if sID < 0 || sN < 0 || sLat < 0 || sLon < 0 {
			return fmt.Errorf("missing required column")
		}
		for line, row := range rec[1:] {
			id := field(row, sID)
			if id == "" {
				continue
			}
			lat, err := strconv.ParseFloat(field(row, sLat), 64)
			if err != nil {
				return fmt.Errorf("line %d: stop_lat: %w", line+2, err)
			}
			lon, err := strconv.ParseFloat(field(row, sLon), 64)
			if err != nil {
				return fmt.Errorf("line %d: stop_lon: %w", line+2, err)
			}
			if _, dup := g.Stops[id]; !dup {
				g.StopOrder = append(g.StopOrder, id)
			}
			g.Stops[id] = StopRecord{ID: id, Name: field(row, sN), Lat: lat, Lon: lon}
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		rLN := idx("route_long_name")
		if rID < 0 {
			return fmt.Errorf("missing required column route_id")
		}
		for _, row := range rec[1:] {
			if id := field(row, rID); id != "" {
				g.Routes = append(g.Routes, RouteRecord{ID: id, ShortName: field(row, rSN), LongName: field(row, rLN)})
			}
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		if rID < 0 || tID < 0 {
			return fmt.Errorf("missing required column")
		}
		for _, row := range rec[1:] {
			route, trip := field(row, rID), field(row, tID)
			if route != "" && trip != "" {
				g.RouteTrips[route] = append(g.RouteTrips[route], trip)
			}
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		dist := idx("shape_dist_traveled")
		if tID < 0 || sID < 0 || sq < 0 {
			return fmt.Errorf("missing required column")
		}
		for line, row := range rec[1:] {
			trip := field(row, tID)
			if trip == "" {
				continue
			}
			seq, err := strconv.Atoi(field(row, sq))
			if err != nil {
				return fmt.Errorf("line %d: stop_sequence: %w", line+2, err)
			}
			d := math.NaN()
			if v := field(row, dist); v != "" {
				if d, err = strconv.ParseFloat(v, 64); err != nil {
					return fmt.Errorf("line %d: shape_dist_traveled: %w", line+2, err)
				}
			}
			g.TripStopSeq[trip] = append(g.TripStopSeq[trip], StopTime{StopID: field(row, sID), Sequence: seq, Dist: d})
		}
		for _, arr := range g.TripStopSeq {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].Sequence < arr[j].Sequence })
		}
	}
	return nil
}
