package gtfs

import (
	"math"
)

// segmentDistance is the road distance between two consecutive stops of a trip
type segmentDistance struct {
	from, to string // stop_ids
	meters   int
}

// tripDistances derives road distances from shape_dist_traveled deltas.
// Segments with a missing value or a negative delta are skipped.
func tripDistances(seq []StopTime, unit float64) []segmentDistance {
	var out []segmentDistance
	for i := 0; i+1 < len(seq); i++ {
		a, b := seq[i], seq[i+1]
		if math.IsNaN(a.Dist) || math.IsNaN(b.Dist) {
			continue
		}
		delta := b.Dist - a.Dist
		if delta < 0 {
			continue
		}
		out = append(out, segmentDistance{from: a.StopID, to: b.StopID, meters: int(math.Round(delta * unit))})
	}
	return out
}
