package renderer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

const testSettingsJSON = `{
  "width": 200,
  "height": 200,
  "padding": 50,
  "line_width": 14,
  "stop_radius": 5,
  "bus_label_font_size": 20,
  "bus_label_offset": [7, 15],
  "stop_label_font_size": 18,
  "stop_label_offset": [7, -3],
  "underlayer_color": [255, 255, 255, 0.85],
  "underlayer_width": 3,
  "color_palette": ["green", [255, 160, 0], [10, 20, 30, 0.5]]
}`

func testSettings(t *testing.T) RenderSettings {
	t.Helper()
	var s RenderSettings
	require.NoError(t, json.Unmarshal([]byte(testSettingsJSON), &s))
	return s
}

func twoBusCatalogue() *catalogue.Catalogue {
	c := catalogue.New()
	c.AddStop("A", 0, 0)
	c.AddStop("B", 0, 1)
	c.AddStop("C", 1, 1)
	c.AddStop("Far", 10, 10) // served by no bus
	c.AddBus("2", []string{"B", "C"}, false)
	c.AddBus("14", []string{"A", "B", "C", "A"}, true)
	c.AddBus("empty", []string{"ghost"}, false)
	return c
}

func TestRender_TwoBuses(t *testing.T) {
	doc := New(testSettings(t), twoBusCatalogue()).Render()

	const under = `fill="rgba(255,255,255,0.85)" stroke="rgba(255,255,255,0.85)" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"`
	expected := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8" ?>`,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`,
		`  <polyline points="50,150 150,150 150,50 50,150" fill="none" stroke="green" stroke-width="14" stroke-linecap="round" stroke-linejoin="round"/>`,
		`  <polyline points="150,150 150,50 150,150" fill="none" stroke="rgb(255,160,0)" stroke-width="14" stroke-linecap="round" stroke-linejoin="round"/>`,
		`  <text ` + under + ` x="50" y="150" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">14</text>`,
		`  <text fill="green" x="50" y="150" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">14</text>`,
		`  <text ` + under + ` x="150" y="150" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">2</text>`,
		`  <text fill="rgb(255,160,0)" x="150" y="150" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">2</text>`,
		`  <text ` + under + ` x="150" y="50" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">2</text>`,
		`  <text fill="rgb(255,160,0)" x="150" y="50" dx="7" dy="15" font-size="20" font-family="Verdana" font-weight="bold">2</text>`,
		`  <circle cx="50" cy="150" r="5" fill="white"/>`,
		`  <circle cx="150" cy="150" r="5" fill="white"/>`,
		`  <circle cx="150" cy="50" r="5" fill="white"/>`,
		`  <text ` + under + ` x="50" y="150" dx="7" dy="-3" font-size="18" font-family="Verdana">A</text>`,
		`  <text fill="black" x="50" y="150" dx="7" dy="-3" font-size="18" font-family="Verdana">A</text>`,
		`  <text ` + under + ` x="150" y="150" dx="7" dy="-3" font-size="18" font-family="Verdana">B</text>`,
		`  <text fill="black" x="150" y="150" dx="7" dy="-3" font-size="18" font-family="Verdana">B</text>`,
		`  <text ` + under + ` x="150" y="50" dx="7" dy="-3" font-size="18" font-family="Verdana">C</text>`,
		`  <text fill="black" x="150" y="50" dx="7" dy="-3" font-size="18" font-family="Verdana">C</text>`,
		`</svg>`,
		``,
	}, "\n")
	assert.Equal(t, expected, doc.String())
}

func TestRender_EmptyCatalogue(t *testing.T) {
	doc := New(testSettings(t), catalogue.New()).Render()

	assert.Equal(t, 0, doc.Len())
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n</svg>\n", doc.String())
}

func TestRender_LinearBusWithSameTerminals(t *testing.T) {
	c := catalogue.New()
	c.AddStop("A", 0, 0)
	c.AddStop("B", 0, 1)
	c.AddBus("7", []string{"A", "B", "A"}, false)

	doc := New(testSettings(t), c).Render()
	assert.Equal(t, 2, strings.Count(doc.String(), ">7</text>"), "one label pair when both terminals are the same stop")
}

func TestSphereProjector(t *testing.T) {
	tests := []struct {
		name   string
		points []geo.Coordinates
		in     geo.Coordinates
		want   Point
	}{
		{
			name:   "no points",
			points: nil,
			in:     geo.Coordinates{Lat: 5, Lng: 5},
			want:   Point{X: 10, Y: 10},
		},
		{
			name:   "single point maps to padding",
			points: []geo.Coordinates{{Lat: 55, Lng: 37}},
			in:     geo.Coordinates{Lat: 55, Lng: 37},
			want:   Point{X: 10, Y: 10},
		},
		{
			name:   "width limited",
			points: []geo.Coordinates{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 4}},
			in:     geo.Coordinates{Lat: 0, Lng: 4},
			want:   Point{X: 90, Y: 30},
		},
		{
			name:   "only latitude spread",
			points: []geo.Coordinates{{Lat: 0, Lng: 3}, {Lat: 2, Lng: 3}},
			in:     geo.Coordinates{Lat: 0, Lng: 3},
			want:   Point{X: 10, Y: 90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSphereProjector(tt.points, 100, 100, 10)
			got := p.Project(tt.in)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestColor_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: `"red"`, want: "red"},
		{in: `[1, 2, 3]`, want: "rgb(1,2,3)"},
		{in: `[1, 2, 3, 0.25]`, want: "rgba(1,2,3,0.25)"},
		{in: `[256, 0, 0]`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
		{in: `[1, 2, 3, 1.5]`, wantErr: true},
		{in: `{"r": 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Color
			err := json.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}

	assert.Equal(t, "none", NoneColor.String())
}

func TestText_EscapesData(t *testing.T) {
	doc := &Document{}
	doc.Add(Text{Data: `Fish & "Chips" <st>`})
	assert.Contains(t, doc.String(), `>Fish &amp; &quot;Chips&quot; &lt;st&gt;</text>`)
}
