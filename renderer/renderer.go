package renderer

import (
	"cmp"
	"slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

const fontFamily = "Verdana"

// MapRenderer draws a catalogue with fixed settings
type MapRenderer struct {
	settings RenderSettings
	db       *catalogue.Catalogue
}

func New(settings RenderSettings, db *catalogue.Catalogue) *MapRenderer {
	return &MapRenderer{settings: settings, db: db}
}

// Render builds the map document. Buses without stops are skipped and do not
// consume a palette colour.
func (r *MapRenderer) Render() *Document {
	buses := r.sortedBuses()
	stops := r.db.StopsUsedInRoutes()

	coords := make([]geo.Coordinates, len(stops))
	for i, s := range stops {
		coords[i] = s.Coordinates
	}
	proj := NewSphereProjector(coords, r.settings.Width, r.settings.Height, r.settings.Padding)

	slices.SortFunc(stops, func(a, b *catalogue.Stop) int { return cmp.Compare(a.Name, b.Name) })

	doc := &Document{}
	r.renderBusLines(doc, proj, buses)
	r.renderBusLabels(doc, proj, buses)
	r.renderStopPoints(doc, proj, stops)
	r.renderStopLabels(doc, proj, stops)
	return doc
}

func (r *MapRenderer) sortedBuses() []*catalogue.Bus {
	var out []*catalogue.Bus
	for _, b := range r.db.AllBuses() {
		if len(b.Stops) > 0 {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b *catalogue.Bus) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

func (r *MapRenderer) paletteColor(i int) *Color {
	if len(r.settings.ColorPalette) == 0 {
		none := NoneColor
		return &none
	}
	c := r.settings.ColorPalette[i%len(r.settings.ColorPalette)]
	return &c
}

func (r *MapRenderer) renderBusLines(doc *Document, proj SphereProjector, buses []*catalogue.Bus) {
	fill := NoneColor
	for i, bus := range buses {
		line := Polyline{PathProps: PathProps{
			Fill:        &fill,
			Stroke:      r.paletteColor(i),
			StrokeWidth: r.settings.LineWidth,
			LineCap:     LineCapRound,
			LineJoin:    LineJoinRound,
		}}
		for _, s := range bus.Stops {
			line.Points = append(line.Points, proj.Project(s.Coordinates))
		}
		if !bus.IsRoundtrip {
			for j := len(bus.Stops) - 2; j >= 0; j-- {
				line.Points = append(line.Points, proj.Project(bus.Stops[j].Coordinates))
			}
		}
		doc.Add(line)
	}
}

func (r *MapRenderer) renderBusLabels(doc *Document, proj SphereProjector, buses []*catalogue.Bus) {
	for i, bus := range buses {
		first, last := bus.Stops[0], bus.Stops[len(bus.Stops)-1]
		r.addLabel(doc, proj.Project(first.Coordinates), bus.Name, r.paletteColor(i), true)
		if !bus.IsRoundtrip && first != last {
			r.addLabel(doc, proj.Project(last.Coordinates), bus.Name, r.paletteColor(i), true)
		}
	}
}

func (r *MapRenderer) renderStopPoints(doc *Document, proj SphereProjector, stops []*catalogue.Stop) {
	white := NamedColor("white")
	for _, s := range stops {
		doc.Add(Circle{
			PathProps: PathProps{Fill: &white},
			Center:    proj.Project(s.Coordinates),
			Radius:    r.settings.StopRadius,
		})
	}
}

func (r *MapRenderer) renderStopLabels(doc *Document, proj SphereProjector, stops []*catalogue.Stop) {
	black := NamedColor("black")
	for _, s := range stops {
		r.addLabel(doc, proj.Project(s.Coordinates), s.Name, &black, false)
	}
}

// addLabel writes the underlayer text and then the label itself
func (r *MapRenderer) addLabel(doc *Document, pos Point, data string, fill *Color, bus bool) {
	base := Text{Position: pos, FontFamily: fontFamily, Data: data}
	if bus {
		base.Offset = r.settings.BusLabelOffset
		base.FontSize = r.settings.BusLabelFontSize
		base.FontWeight = "bold"
	} else {
		base.Offset = r.settings.StopLabelOffset
		base.FontSize = r.settings.StopLabelFontSize
	}

	under := r.settings.UnderlayerColor
	underlayer := base
	underlayer.PathProps = PathProps{
		Fill:        &under,
		Stroke:      &under,
		StrokeWidth: r.settings.UnderlayerWidth,
		LineCap:     LineCapRound,
		LineJoin:    LineJoinRound,
	}
	label := base
	label.PathProps = PathProps{Fill: fill}

	doc.Add(underlayer)
	doc.Add(label)
}
