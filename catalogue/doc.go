/*
Package catalogue holds the transit network model: stops, buses and the
road distance table between stops.

The catalogue is append-only. Stops and buses are registered once and never
removed or renamed; a repeated registration under an existing name is a
no-op and the first registration wins.

# Distances

Road distances are stored per ordered stop pair and may be asymmetric.
Distance resolves a pair in this order:

  - the explicit (from, to) entry
  - the explicit (to, from) entry
  - the great-circle distance between the stops, rounded to whole meters

# Thread safety

A Catalogue is not synchronized. Populate it from one goroutine, then share
it read-only.
*/
package catalogue
