package router

import "errors"

var (
	// ErrStopNotFound is returned when an endpoint is not served by any bus.
	ErrStopNotFound = errors.New("stop not found")
	// ErrUnreachable is returned when no journey connects the endpoints.
	ErrUnreachable = errors.New("destination unreachable")
)

// Settings configures journey timing.
type Settings struct {
	BusWaitTime int     `yaml:"bus_wait_time" json:"bus_wait_time" validate:"gte=1,lte=1000"` // minutes
	BusVelocity float64 `yaml:"bus_velocity" json:"bus_velocity" validate:"gt=0,lte=1000"`    // km/h
}

// SegmentType distinguishes the kinds of journey segments
type SegmentType int

const (
	SegmentWait SegmentType = iota
	SegmentBus
)

func (t SegmentType) String() string {
	switch t {
	case SegmentWait:
		return "Wait"
	case SegmentBus:
		return "Bus"
	default:
		return "unknown"
	}
}

// Segment is one step of a journey.
type Segment interface {
	Type() SegmentType
	Duration() float64 // minutes
}

// WaitSegment is time spent at a stop waiting for a bus.
type WaitSegment struct {
	StopName string
	Time     float64
}

func (WaitSegment) Type() SegmentType   { return SegmentWait }
func (s WaitSegment) Duration() float64 { return s.Time }

// BusSegment is a ride spanning SpanCount consecutive stops of one bus.
type BusSegment struct {
	BusName   string
	SpanCount int
	From      string
	To        string
	Time      float64
}

func (BusSegment) Type() SegmentType   { return SegmentBus }
func (s BusSegment) Duration() float64 { return s.Time }

// RouteInfo is a planned journey.
type RouteInfo struct {
	TotalTime float64
	Segments  []Segment
}

// edgeInfo is the metadata kept per graph edge, indexed by graph.EdgeID.
type edgeInfo interface {
	segment(weight float64) Segment
}

type waitEdge struct {
	stop string
}

func (e waitEdge) segment(weight float64) Segment {
	return WaitSegment{StopName: e.stop, Time: weight}
}

type rideEdge struct {
	bus      string
	span     int
	from, to string
}

func (e rideEdge) segment(weight float64) Segment {
	return BusSegment{BusName: e.bus, SpanCount: e.span, From: e.from, To: e.to, Time: weight}
}
