/*
Package gtfs imports a static GTFS feed into a transit network.

Only the files needed to build a network are read: stops.txt, routes.txt,
trips.txt and stop_times.txt. Everything else in the archive is ignored.

# Basic Usage

	cat := catalogue.New()
	stats, err := gtfs.ImportFile("feed.zip", cat, gtfs.Options{DistanceUnit: 1})
	if err != nil {
	    log.Fatal(err)
	}

# Mapping

  - Stops are keyed by stop_name. Several stop_ids sharing a name collapse
    into one stop placed at the first one's coordinates.
  - Every route becomes one bus named by route_short_name, falling back to
    route_long_name and then route_id.
  - The bus follows the route's longest trip (most stop_times, ties broken by
    the smallest trip_id). A trip that ends where it starts is a roundtrip.
  - Road distances come from shape_dist_traveled deltas between consecutive
    stops, multiplied by DistanceUnit. Pairs without values use the
    great-circle fallback of the catalogue.

# Caching

Parsing a large feed takes a while. An Index can be written to disk with
SaveIndexFile and read back with LoadIndexFile.
*/
package gtfs
