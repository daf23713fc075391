package input

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Request types
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// Document is a complete request document
type Document struct {
	BaseRequests    []BaseRequest            `json:"base_requests" validate:"dive"`
	RoutingSettings *router.Settings         `json:"routing_settings"`
	RenderSettings  *renderer.RenderSettings `json:"render_settings"`
	StatRequests    []StatRequest            `json:"stat_requests"`
}

// BaseRequest describes a stop or a bus
type BaseRequest struct {
	Type          string         `json:"type" validate:"required,oneof=Stop Bus"`
	Name          string         `json:"name" validate:"required"`
	Latitude      float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64        `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances" validate:"dive,gte=0"`
	Stops         []string       `json:"stops"`
	IsRoundtrip   bool           `json:"is_roundtrip"`
}

// StatRequest asks for bus stats, stop buses or a journey
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}
