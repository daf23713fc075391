package legacy

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command kinds
const (
	KindStop = "Stop"
	KindBus  = "Bus"
)

var ErrMalformed = errors.New("malformed command")

// Network receives parsed stops, distances and buses
type Network interface {
	AddStop(name string, lat, lng float64)
	SetDistance(from, to string, meters int)
	AddBus(name string, stopNames []string, isRoundtrip bool)
}

// Command is one parsed base line: "<Kind> <ID>: <Description>"
type Command struct {
	Kind        string
	ID          string
	Description string
}

type roadDistance struct {
	to     string
	meters int
}

// ParseCommand splits a base line into its parts. It reports false for lines
// without a colon, a kind or an id.
func ParseCommand(line string) (Command, bool) {
	head, desc, found := strings.Cut(line, ":")
	if !found {
		return Command{}, false
	}
	kind, id, found := strings.Cut(strings.TrimLeft(head, " "), " ")
	if !found || kind == "" {
		return Command{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Command{}, false
	}
	return Command{Kind: kind, ID: id, Description: desc}, true
}

// Reader accumulates base commands and applies them in dependency order
type Reader struct {
	commands []Command
}

// ParseLine records the command on line; malformed lines are ignored.
func (r *Reader) ParseLine(line string) {
	if cmd, ok := ParseCommand(line); ok {
		r.commands = append(r.commands, cmd)
	}
}

func (r *Reader) Commands() []Command {
	return r.commands
}

// ReadBase reads a count line and that many base commands from sc.
func ReadBase(sc *bufio.Scanner) (*Reader, error) {
	n, err := readCount(sc)
	if err != nil {
		return nil, fmt.Errorf("read base request count: %w", err)
	}
	r := &Reader{}
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read base request %d: %w", i+1, err)
			}
			return nil, fmt.Errorf("read base request %d: unexpected end of input", i+1)
		}
		r.ParseLine(sc.Text())
	}
	return r, nil
}

// ApplyCommands adds all stops, then all road distances, then all buses to n.
// Distances to stops that are never declared are skipped.
func (r *Reader) ApplyCommands(n Network) error {
	known := map[string]struct{}{}
	distances := map[string][]roadDistance{}
	for _, cmd := range r.commands {
		if cmd.Kind != KindStop {
			continue
		}
		lat, lng, dists, err := parseStop(cmd.Description)
		if err != nil {
			return fmt.Errorf("stop %q: %w", cmd.ID, err)
		}
		n.AddStop(cmd.ID, lat, lng)
		known[cmd.ID] = struct{}{}
		distances[cmd.ID] = append(distances[cmd.ID], dists...)
	}

	for _, cmd := range r.commands {
		if cmd.Kind != KindStop {
			continue
		}
		for _, d := range distances[cmd.ID] {
			if _, ok := known[d.to]; !ok {
				continue
			}
			n.SetDistance(cmd.ID, d.to, d.meters)
		}
		// repeated stop lines share one distance list
		delete(distances, cmd.ID)
	}

	for _, cmd := range r.commands {
		if cmd.Kind != KindBus {
			continue
		}
		stops, roundtrip := parseRoute(cmd.Description)
		n.AddBus(cmd.ID, stops, roundtrip)
	}
	return nil
}

func parseStop(desc string) (float64, float64, []roadDistance, error) {
	parts := strings.Split(desc, ",")
	if len(parts) < 2 {
		return 0, 0, nil, fmt.Errorf("%w: coordinates %q", ErrMalformed, strings.TrimSpace(desc))
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: latitude: %w", ErrMalformed, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: longitude: %w", ErrMalformed, err)
	}

	var dists []roadDistance
	for _, p := range parts[2:] {
		d, err := parseDistance(p)
		if err != nil {
			return 0, 0, nil, err
		}
		dists = append(dists, d)
	}
	return lat, lng, dists, nil
}

// parseDistance parses "3900m to Marushkino"
func parseDistance(s string) (roadDistance, error) {
	s = strings.TrimSpace(s)
	value, name, found := strings.Cut(s, "m to ")
	if !found {
		return roadDistance{}, fmt.Errorf("%w: distance %q", ErrMalformed, s)
	}
	meters, err := strconv.Atoi(value)
	if err != nil || meters < 0 {
		return roadDistance{}, fmt.Errorf("%w: distance %q", ErrMalformed, s)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return roadDistance{}, fmt.Errorf("%w: distance %q", ErrMalformed, s)
	}
	return roadDistance{to: name, meters: meters}, nil
}

func parseRoute(desc string) ([]string, bool) {
	roundtrip := strings.Contains(desc, ">")
	sep := "-"
	if roundtrip {
		sep = ">"
	}
	var stops []string
	for _, p := range strings.Split(desc, sep) {
		if name := strings.TrimSpace(p); name != "" {
			stops = append(stops, name)
		}
	}
	return stops, roundtrip
}

func readCount(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("%w: count %q", ErrMalformed, line)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: negative count %d", ErrMalformed, n)
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("%w: missing count", ErrMalformed)
}
