/*
Package router plans minimum-time journeys over a catalogue.

TransportRouter turns the catalogue into a graph.DirectedWeightedGraph with
two vertices per served stop:

  - wait vertex (2i): the passenger has arrived at stop i
  - board vertex (2i+1): the passenger is on a bus at stop i

Every stop has one wait edge (wait -> board) weighted with the configured
bus wait time. Every bus contributes one ride edge (board -> wait) for each
ordered pair of positions along its stop list, weighted with the travel time
over the accumulated road distance. Linear buses also get the reverse ride
edges, accumulated over reverse road distances.

A query runs from the wait vertex of the origin to the wait vertex of the
destination, so the answer always starts with a wait and ends after a ride.
Stops that no bus serves are not part of the graph.

The graph is built once from a snapshot of the catalogue. Changing the
catalogue afterwards is not reflected; build a new TransportRouter instead.
*/
package router
