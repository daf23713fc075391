package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

func mustRouter(t *testing.T, cat *catalogue.Catalogue, settings Settings) *TransportRouter {
	t.Helper()
	tr, err := New(cat, settings)
	require.NoError(t, err)
	return tr
}

func TestBuildRoute_SingleRide(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("S1", 0, 0)
	cat.AddStop("S2", 0, 1)
	cat.SetDistance("S1", "S2", 1000)
	cat.SetDistance("S2", "S1", 1000)
	cat.AddBus("R1", []string{"S1", "S2"}, true)

	tr := mustRouter(t, cat, Settings{BusWaitTime: 5, BusVelocity: 30})
	assert.Equal(t, 4, tr.VertexCount())
	assert.Equal(t, 3, tr.EdgeCount())

	route, err := tr.BuildRoute("S1", "S2")
	require.NoError(t, err)
	assert.InDelta(t, 7.0, route.TotalTime, 1e-9)
	assert.Equal(t, []Segment{
		WaitSegment{StopName: "S1", Time: 5},
		BusSegment{BusName: "R1", SpanCount: 1, From: "S1", To: "S2", Time: 2},
	}, route.Segments)
}

func TestBuildRoute_SameStop(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("A", 0, 0)
	tr := mustRouter(t, cat, Settings{BusWaitTime: 5, BusVelocity: 30})

	for _, name := range []string{"A", "nowhere"} {
		route, err := tr.BuildRoute(name, name)
		require.NoError(t, err)
		assert.Equal(t, 0.0, route.TotalTime)
		assert.Empty(t, route.Segments)
	}
}

func TestBuildRoute_Misses(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("A", 0, 0)
	cat.AddStop("B", 0, 0.01)
	cat.AddStop("C", 1, 1)
	cat.AddStop("D", 1, 1.01)
	cat.AddStop("Unserved", 2, 2)
	cat.AddBus("ab", []string{"A", "B"}, false)
	cat.AddBus("cd", []string{"C", "D", "C"}, true)
	tr := mustRouter(t, cat, Settings{BusWaitTime: 2, BusVelocity: 40})

	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{name: "unknown origin", from: "Nowhere", to: "A", want: ErrStopNotFound},
		{name: "unknown destination", from: "A", to: "Nowhere", want: ErrStopNotFound},
		{name: "stop without buses", from: "A", to: "Unserved", want: ErrStopNotFound},
		{name: "disconnected components", from: "A", to: "C", want: ErrUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, err := tr.BuildRoute(tt.from, tt.to)
			assert.Nil(t, route)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestBuildRoute_RoundtripHasNoReverseRides(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("A", 0, 0)
	cat.AddStop("B", 0, 0.01)
	cat.AddBus("loop", []string{"A", "B"}, true)
	tr := mustRouter(t, cat, Settings{BusWaitTime: 1, BusVelocity: 20})

	_, err := tr.BuildRoute("A", "B")
	require.NoError(t, err)

	_, err = tr.BuildRoute("B", "A")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestBuildRoute_LinearReverseUsesReverseDistances(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("A", 0, 0)
	cat.AddStop("B", 0, 0.01)
	cat.AddStop("C", 0, 0.02)
	cat.SetDistance("A", "B", 1000)
	cat.SetDistance("B", "A", 2000)
	cat.SetDistance("B", "C", 1000)
	cat.SetDistance("C", "B", 3000)
	cat.AddBus("line", []string{"A", "B", "C"}, false)
	tr := mustRouter(t, cat, Settings{BusWaitTime: 2, BusVelocity: 60})

	forward, err := tr.BuildRoute("A", "C")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, forward.TotalTime, 1e-9)

	backward, err := tr.BuildRoute("C", "A")
	require.NoError(t, err)
	assert.InDelta(t, 7.0, backward.TotalTime, 1e-9)
	assert.Equal(t, []Segment{
		WaitSegment{StopName: "C", Time: 2},
		BusSegment{BusName: "line", SpanCount: 2, From: "C", To: "A", Time: 5},
	}, backward.Segments)
}

func TestBuildRoute_PrefersSingleLongRide(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("A", 0, 0)
	cat.AddStop("B", 0, 0.01)
	cat.AddStop("C", 0, 0.02)
	cat.SetDistance("A", "B", 600)
	cat.SetDistance("B", "C", 600)
	cat.SetDistance("A", "C", 1500)
	cat.AddBus("1", []string{"A", "B", "C"}, false)
	cat.AddBus("2", []string{"A", "C"}, false)
	tr := mustRouter(t, cat, Settings{BusWaitTime: 3, BusVelocity: 36})

	route, err := tr.BuildRoute("A", "C")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, route.TotalTime, 1e-9)
	require.Len(t, route.Segments, 2)
	ride, ok := route.Segments[1].(BusSegment)
	require.True(t, ok)
	assert.Equal(t, "1", ride.BusName)
	assert.Equal(t, 2, ride.SpanCount)
}

func TestBuildRoute_Transfer(t *testing.T) {
	cat := catalogue.New()
	cat.AddStop("A", 0, 0)
	cat.AddStop("B", 0, 0.01)
	cat.AddStop("C", 0, 0.02)
	cat.SetDistance("A", "B", 1200)
	cat.SetDistance("B", "C", 600)
	cat.SetDistance("C", "B", 600)
	cat.AddBus("1", []string{"A", "B"}, false)
	cat.AddBus("2", []string{"B", "C", "B"}, true)
	tr := mustRouter(t, cat, Settings{BusWaitTime: 4, BusVelocity: 36})

	route, err := tr.BuildRoute("A", "C")
	require.NoError(t, err)
	assert.InDelta(t, 11.0, route.TotalTime, 1e-9)
	assert.Equal(t, []Segment{
		WaitSegment{StopName: "A", Time: 4},
		BusSegment{BusName: "1", SpanCount: 1, From: "A", To: "B", Time: 2},
		WaitSegment{StopName: "B", Time: 4},
		BusSegment{BusName: "2", SpanCount: 1, From: "B", To: "C", Time: 1},
	}, route.Segments)

	back, err := tr.BuildRoute("C", "A")
	require.NoError(t, err)
	assert.InDelta(t, 11.0, back.TotalTime, 1e-9)

	total := 0.0
	for _, s := range back.Segments {
		total += s.Duration()
	}
	assert.InDelta(t, back.TotalTime, total, 1e-9)
	assert.Equal(t, SegmentWait, back.Segments[0].Type())
	assert.Equal(t, SegmentBus, back.Segments[len(back.Segments)-1].Type())
}

func TestBuildRoute_DeterministicAcrossBuilds(t *testing.T) {
	build := func() *catalogue.Catalogue {
		cat := catalogue.New()
		cat.AddStop("A", 55.611087, 37.20829)
		cat.AddStop("B", 55.595884, 37.209755)
		cat.AddStop("C", 55.632761, 37.333324)
		cat.AddStop("D", 55.574371, 37.6517)
		cat.SetDistance("A", "B", 3900)
		cat.SetDistance("B", "C", 9900)
		cat.SetDistance("C", "D", 12000)
		cat.AddBus("1", []string{"A", "B", "C"}, false)
		cat.AddBus("2", []string{"C", "D", "A", "C"}, true)
		cat.AddBus("3", []string{"B", "D"}, false)
		return cat
	}
	settings := Settings{BusWaitTime: 6, BusVelocity: 40}
	first := mustRouter(t, build(), settings)
	second := mustRouter(t, build(), settings)

	names := []string{"A", "B", "C", "D"}
	for _, from := range names {
		for _, to := range names {
			r1, err1 := first.BuildRoute(from, to)
			r2, err2 := second.BuildRoute(from, to)
			require.NoError(t, err1)
			require.NoError(t, err2)
			assert.Equal(t, r1.TotalTime, r2.TotalTime, "%s -> %s", from, to)
		}
	}
}

func TestNew_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{name: "zero wait", settings: Settings{BusWaitTime: 0, BusVelocity: 40}},
		{name: "zero velocity", settings: Settings{BusWaitTime: 6, BusVelocity: 0}},
		{name: "negative velocity", settings: Settings{BusWaitTime: 6, BusVelocity: -1}},
		{name: "wait too long", settings: Settings{BusWaitTime: 1001, BusVelocity: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(catalogue.New(), tt.settings)
			assert.Error(t, err)
		})
	}
}

func TestTravelTime(t *testing.T) {
	tr := mustRouter(t, catalogue.New(), Settings{BusWaitTime: 1, BusVelocity: 30})
	assert.InDelta(t, 2.0, tr.TravelTime(1000), 1e-12)
	assert.Equal(t, 0.0, tr.TravelTime(0))
	assert.Equal(t, Settings{BusWaitTime: 1, BusVelocity: 30}, tr.Settings())
}

func TestSegmentType_String(t *testing.T) {
	assert.Equal(t, "Wait", SegmentWait.String())
	assert.Equal(t, "Bus", SegmentBus.String())
	assert.Equal(t, "unknown", SegmentType(7).String())
}
