package legacy

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transportcatalogue "github.com/theoremus-urban-solutions/transport-catalogue"
)

const courseInput = `13
Stop Tolstopaltsevo: 55.611087, 37.20829, 3900m to Marushkino
Stop Marushkino: 55.595884, 37.209755, 9900m to Rasskazovka, 100m to Marushkino
Bus 256: Biryulyovo Zapadnoye > Biryusinka > Universam > Biryulyovo Tovarnaya > Biryulyovo Passazhirskaya > Biryulyovo Zapadnoye
Bus 750: Tolstopaltsevo - Marushkino - Marushkino - Rasskazovka
Stop Rasskazovka: 55.632761, 37.333324, 9500m to Marushkino
Stop Biryulyovo Zapadnoye: 55.574371, 37.6517, 7500m to Rossoshanskaya ulitsa, 1800m to Biryusinka, 2400m to Universam
Stop Biryusinka: 55.581065, 37.64839, 750m to Universam
Stop Universam: 55.587655, 37.645687, 5600m to Rossoshanskaya ulitsa, 900m to Biryulyovo Tovarnaya
Stop Biryulyovo Tovarnaya: 55.592028, 37.653656, 1300m to Biryulyovo Passazhirskaya
Stop Biryulyovo Passazhirskaya: 55.580999, 37.659164, 1200m to Biryulyovo Zapadnoye
Bus 828: Biryulyovo Zapadnoye > Universam > Rossoshanskaya ulitsa > Biryulyovo Zapadnoye
Stop Rossoshanskaya ulitsa: 55.595579, 37.605757
Stop Prazhskaya: 55.611678, 37.603831
7
Bus 256
Bus 750
Bus 751
Stop Samara
Stop Prazhskaya
Stop Biryulyovo Zapadnoye
Bus 828
`

const courseOutput = `Bus 256: 6 stops on route, 5 unique stops, 5950 route length, 1.361239 curvature
Bus 750: 7 stops on route, 3 unique stops, 27400 route length, 1.308533 curvature
Bus 751: not found
Stop Samara: not found
Stop Prazhskaya: no buses
Stop Biryulyovo Zapadnoye: buses 256 828
Bus 828: 4 stops on route, 3 unique stops, 15500 route length, 1.959079 curvature
`

func TestProcess(t *testing.T) {
	h := transportcatalogue.NewRequestHandler(nil)

	var out bytes.Buffer
	require.NoError(t, Process(strings.NewReader(courseInput), &out, h))
	assert.Equal(t, courseOutput, out.String())
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
		ok   bool
	}{
		{
			name: "stop",
			line: "Stop A: 1, 2",
			want: Command{Kind: "Stop", ID: "A", Description: " 1, 2"},
			ok:   true,
		},
		{
			name: "name with spaces",
			line: "Bus Express 1 : A - B",
			want: Command{Kind: "Bus", ID: "Express 1", Description: " A - B"},
			ok:   true,
		},
		{name: "no colon", line: "Stop A 1, 2"},
		{name: "no id", line: "Stop: 1, 2"},
		{name: "blank id", line: "Stop   : 1, 2"},
		{name: "empty", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCommand(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyCommands_RouteShapes(t *testing.T) {
	var r Reader
	r.ParseLine("Bus ring: A > B > A")
	r.ParseLine("Bus line: A - B - C")
	r.ParseLine("Stop A: 0, 0, 500m to B, 10m to Nowhere")
	r.ParseLine("Stop B: 0, 0.01")
	r.ParseLine("Stop C: 0, 0.02")
	r.ParseLine("garbage")
	require.Len(t, r.Commands(), 5)

	h := transportcatalogue.NewRequestHandler(nil)
	require.NoError(t, r.ApplyCommands(h))

	ring, ok := h.Catalogue().FindBus("ring")
	require.True(t, ok)
	assert.True(t, ring.IsRoundtrip)
	assert.Len(t, ring.Stops, 3)

	line, ok := h.Catalogue().FindBus("line")
	require.True(t, ok)
	assert.False(t, line.IsRoundtrip)
	assert.Len(t, line.Stops, 3)

	a, _ := h.Catalogue().FindStop("A")
	b, _ := h.Catalogue().FindStop("B")
	assert.Equal(t, 500, h.Catalogue().Distance(b, a))
}

func TestApplyCommands_MalformedStop(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "single coordinate", line: "Stop A: 55.6"},
		{name: "bad latitude", line: "Stop A: north, 37.2"},
		{name: "bad longitude", line: "Stop A: 55.6, east"},
		{name: "bad distance", line: "Stop A: 55.6, 37.2, far to B"},
		{name: "negative distance", line: "Stop A: 55.6, 37.2, -5m to B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Reader
			r.ParseLine(tt.line)
			err := r.ApplyCommands(transportcatalogue.NewRequestHandler(nil))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
		})
	}
}

func TestReadBase_Truncated(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("3\nStop A: 0, 0\n"))
	_, err := ReadBase(sc)
	assert.Error(t, err)
}

func TestReadBase_BadCount(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("many\n"))
	_, err := ReadBase(sc)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestPrintStat_IgnoresUnknownRequests(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintStat(transportcatalogue.NewRequestHandler(nil), "Route A B", &out))
	require.NoError(t, PrintStat(transportcatalogue.NewRequestHandler(nil), "Bus ", &out))
	assert.Empty(t, out.String())
}
