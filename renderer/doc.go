/*
Package renderer draws the bus network as an SVG map.

The map has four layers, drawn in this order:

  - one polyline per bus, coloured from the palette in bus-name order
  - bus name labels at the terminal stops
  - a white circle per stop served by a bus
  - stop name labels

Stops are projected onto the canvas with SphereProjector, which fits the
bounding box of the served stops inside the padded canvas. Stops without
buses are neither drawn nor used for the bounding box.

svg.go holds the minimal SVG document model the renderer writes.
*/
package renderer
