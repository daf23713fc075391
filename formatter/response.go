package formatter

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Error messages used by the request codecs
const (
	MsgNotFound           = "not found"
	MsgUnknownRequestType = "unknown request type"
	MsgNoRenderSettings   = "render settings not provided"
)

// Response is one answer in a response array
type Response interface {
	ID() int
}

// BusResponse answers a Bus stat request
type BusResponse struct {
	Curvature       float64 `json:"curvature"`
	RequestID       int     `json:"request_id"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

func (r BusResponse) ID() int { return r.RequestID }

// StopResponse answers a Stop stat request
type StopResponse struct {
	Buses     []string `json:"buses"`
	RequestID int      `json:"request_id"`
}

func (r StopResponse) ID() int { return r.RequestID }

// RouteItem is one journey segment
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// RouteResponse answers a Route request
type RouteResponse struct {
	Items     []RouteItem `json:"items"`
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
}

func (r RouteResponse) ID() int { return r.RequestID }

// MapResponse carries a rendered SVG map
type MapResponse struct {
	Map       string `json:"map"`
	RequestID int    `json:"request_id"`
}

func (r MapResponse) ID() int { return r.RequestID }

// ErrorResponse reports a failed request
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
	RequestID    int    `json:"request_id"`
}

func (r ErrorResponse) ID() int { return r.RequestID }

func NewBusResponse(id int, info catalogue.BusInfo) BusResponse {
	return BusResponse{
		Curvature:       info.Curvature,
		RequestID:       id,
		RouteLength:     info.RouteLength,
		StopCount:       info.TotalStops,
		UniqueStopCount: info.UniqueStops,
	}
}

func NewStopResponse(id int, buses []string) StopResponse {
	if buses == nil {
		buses = []string{}
	}
	return StopResponse{Buses: buses, RequestID: id}
}

// NewRouteResponse converts a planned journey into route items
func NewRouteResponse(id int, route *router.RouteInfo) RouteResponse {
	items := make([]RouteItem, 0, len(route.Segments))
	for _, seg := range route.Segments {
		switch s := seg.(type) {
		case router.WaitSegment:
			items = append(items, RouteItem{Type: s.Type().String(), StopName: s.StopName, Time: s.Time})
		case router.BusSegment:
			items = append(items, RouteItem{Type: s.Type().String(), Bus: s.BusName, SpanCount: s.SpanCount, Time: s.Time})
		}
	}
	return RouteResponse{Items: items, RequestID: id, TotalTime: route.TotalTime}
}

func NewMapResponse(id int, svg string) MapResponse {
	return MapResponse{Map: svg, RequestID: id}
}

func NewErrorResponse(id int, msg string) ErrorResponse {
	return ErrorResponse{ErrorMessage: msg, RequestID: id}
}
