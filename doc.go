/*
Package transportcatalogue is the entry point to the transit network model
and journey planner.

RequestHandler wraps a catalogue.Catalogue and a router.TransportRouter
behind the operations a request codec needs:

	h := transportcatalogue.NewRequestHandler(slog.Default())
	h.AddStop("A", 55.611087, 37.20829)
	h.AddStop("B", 55.595884, 37.209755)
	h.SetDistance("A", "B", 3900)
	h.AddBus("750", []string{"A", "B"}, false)

	stats, ok := h.BusStat("750")

	if err := h.BuildRouter(router.Settings{BusWaitTime: 6, BusVelocity: 40}); err != nil {
	    return err
	}
	route, err := h.PlanRoute("A", "B")

The handler has two phases. Stops, buses and distances are registered
first; BuildRouter then freezes the network and builds the routing graph
once. Registering data after BuildRouter, or planning before it, panics.

Once frozen, a RequestHandler is safe for concurrent queries.

Subpackages:

  - geo: coordinates and great-circle distance
  - catalogue: stops, buses, road distances and route statistics
  - graph: directed weighted graph and Dijkstra router
  - router: journey planning over a catalogue
  - input, formatter: JSON request/response codec
  - legacy: line-oriented text protocol
  - renderer: SVG map of the network
  - gtfs: GTFS static feed import
  - config: YAML configuration
*/
package transportcatalogue
