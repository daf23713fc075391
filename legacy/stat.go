package legacy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// StatSource answers stat requests
type StatSource interface {
	BusStat(name string) (catalogue.BusInfo, bool)
	BusesByStop(name string) ([]string, bool)
}

// Catalogue is what Process needs: a network to fill and a stat source
type Catalogue interface {
	Network
	StatSource
}

// PrintStat answers a single "Bus NAME" or "Stop NAME" request. Other lines
// produce no output.
func PrintStat(src StatSource, request string, w io.Writer) error {
	var err error
	switch {
	case strings.HasPrefix(request, KindBus+" ") && len(request) > len(KindBus)+1:
		name := request[len(KindBus)+1:]
		info, ok := src.BusStat(name)
		if !ok {
			_, err = fmt.Fprintf(w, "Bus %s: not found\n", name)
			break
		}
		_, err = fmt.Fprintf(w, "Bus %s: %d stops on route, %d unique stops, %d route length, %.6f curvature\n",
			name, info.TotalStops, info.UniqueStops, info.RouteLength, info.Curvature)
	case strings.HasPrefix(request, KindStop+" ") && len(request) > len(KindStop)+1:
		name := request[len(KindStop)+1:]
		buses, ok := src.BusesByStop(name)
		switch {
		case !ok:
			_, err = fmt.Fprintf(w, "Stop %s: not found\n", name)
		case len(buses) == 0:
			_, err = fmt.Fprintf(w, "Stop %s: no buses\n", name)
		default:
			_, err = fmt.Fprintf(w, "Stop %s: buses %s\n", name, strings.Join(buses, " "))
		}
	}
	return err
}

// StatRequest reads a count line and that many stat requests from sc and
// writes one answer per request to w.
func StatRequest(sc *bufio.Scanner, w io.Writer, src StatSource) error {
	n, err := readCount(sc)
	if err != nil {
		return fmt.Errorf("read stat request count: %w", err)
	}
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stat request %d: %w", i+1, err)
			}
			return fmt.Errorf("read stat request %d: unexpected end of input", i+1)
		}
		if err := PrintStat(src, sc.Text(), w); err != nil {
			return fmt.Errorf("write stat %d: %w", i+1, err)
		}
	}
	return nil
}

// Process reads base requests then stat requests from r.
func Process(r io.Reader, w io.Writer, c Catalogue) error {
	sc := bufio.NewScanner(r)
	reader, err := ReadBase(sc)
	if err != nil {
		return err
	}
	if err := reader.ApplyCommands(c); err != nil {
		return err
	}
	return StatRequest(sc, w, c)
}
