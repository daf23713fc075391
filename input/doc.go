/*
Package input decodes JSON request documents and runs them against a
transportcatalogue.RequestHandler.

A document carries base requests that describe the network, optional routing
settings, and stat requests to answer:

	{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.61, "longitude": 37.20,
	     "road_distances": {"B": 3900}},
	    {"type": "Stop", "name": "B", "latitude": 55.59, "longitude": 37.20},
	    {"type": "Bus", "name": "750", "stops": ["A", "B"], "is_roundtrip": false}
	  ],
	  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
	  "stat_requests": [
	    {"id": 1, "type": "Bus", "name": "750"},
	    {"id": 2, "type": "Stop", "name": "A"},
	    {"id": 3, "type": "Route", "from": "A", "to": "B"}
	  ]
	}

Base requests are applied in three passes (stops, road distances, buses) so
their order inside the document does not matter. render_settings feeds
the SVG map answered to "Map" stat requests.
*/
package input
