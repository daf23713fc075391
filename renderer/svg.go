package renderer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point is a canvas position or offset. JSON form: [x, y].
type Point struct {
	X, Y float64
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("point: want 2 numbers, got %d", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Color is an SVG paint value. The zero Color renders as "none".
//
// JSON form: a colour name ("red"), [r, g, b] or [r, g, b, opacity].
type Color struct {
	value string
}

var NoneColor = Color{}

func NamedColor(name string) Color { return Color{value: name} }

func RGB(r, g, b uint8) Color {
	return Color{value: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)}
}

func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{value: fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(opacity))}
}

func (c Color) String() string {
	if c.value == "" {
		return "none"
	}
	return c.value
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = NamedColor(name)
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color: want a name or an array, got %s", data)
	}
	channel := func(v float64) (uint8, error) {
		if v < 0 || v > 255 || v != float64(int(v)) {
			return 0, fmt.Errorf("color: channel %v out of range", v)
		}
		return uint8(v), nil
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color: want 3 or 4 components, got %d", len(parts))
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := channel(parts[i])
		if err != nil {
			return err
		}
		rgb[i] = v
	}
	if len(parts) == 3 {
		*c = RGB(rgb[0], rgb[1], rgb[2])
		return nil
	}
	if parts[3] < 0 || parts[3] > 1 {
		return fmt.Errorf("color: opacity %v out of range", parts[3])
	}
	*c = RGBA(rgb[0], rgb[1], rgb[2], parts[3])
	return nil
}

type StrokeLineCap string

const (
	LineCapButt   StrokeLineCap = "butt"
	LineCapRound  StrokeLineCap = "round"
	LineCapSquare StrokeLineCap = "square"
)

type StrokeLineJoin string

const (
	LineJoinArcs      StrokeLineJoin = "arcs"
	LineJoinBevel     StrokeLineJoin = "bevel"
	LineJoinMiter     StrokeLineJoin = "miter"
	LineJoinMiterClip StrokeLineJoin = "miter-clip"
	LineJoinRound     StrokeLineJoin = "round"
)

// PathProps are the presentation attributes shared by all shapes. Unset
// fields are omitted from the output.
type PathProps struct {
	Fill        *Color
	Stroke      *Color
	StrokeWidth float64
	LineCap     StrokeLineCap
	LineJoin    StrokeLineJoin
}

func (p PathProps) writeAttrs(b *strings.Builder) {
	if p.Fill != nil {
		writeAttr(b, "fill", p.Fill.String())
	}
	if p.Stroke != nil {
		writeAttr(b, "stroke", p.Stroke.String())
	}
	if p.StrokeWidth != 0 {
		writeAttr(b, "stroke-width", formatNumber(p.StrokeWidth))
	}
	if p.LineCap != "" {
		writeAttr(b, "stroke-linecap", string(p.LineCap))
	}
	if p.LineJoin != "" {
		writeAttr(b, "stroke-linejoin", string(p.LineJoin))
	}
}

// Object is one element of a Document
type Object interface {
	writeSVG(b *strings.Builder)
}

type Circle struct {
	PathProps
	Center Point
	Radius float64
}

func (c Circle) writeSVG(b *strings.Builder) {
	b.WriteString("<circle")
	writeAttr(b, "cx", formatNumber(c.Center.X))
	writeAttr(b, "cy", formatNumber(c.Center.Y))
	writeAttr(b, "r", formatNumber(c.Radius))
	c.writeAttrs(b)
	b.WriteString("/>")
}

type Polyline struct {
	PathProps
	Points []Point
}

func (p Polyline) writeSVG(b *strings.Builder) {
	pts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = formatNumber(pt.X) + "," + formatNumber(pt.Y)
	}
	b.WriteString("<polyline")
	writeAttr(b, "points", strings.Join(pts, " "))
	p.writeAttrs(b)
	b.WriteString("/>")
}

type Text struct {
	PathProps
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
}

func (t Text) writeSVG(b *strings.Builder) {
	b.WriteString("<text")
	t.writeAttrs(b)
	writeAttr(b, "x", formatNumber(t.Position.X))
	writeAttr(b, "y", formatNumber(t.Position.Y))
	writeAttr(b, "dx", formatNumber(t.Offset.X))
	writeAttr(b, "dy", formatNumber(t.Offset.Y))
	writeAttr(b, "font-size", strconv.FormatUint(uint64(t.FontSize), 10))
	if t.FontFamily != "" {
		writeAttr(b, "font-family", t.FontFamily)
	}
	if t.FontWeight != "" {
		writeAttr(b, "font-weight", t.FontWeight)
	}
	b.WriteString(">")
	b.WriteString(xmlEscape(t.Data))
	b.WriteString("</text>")
}

// Document is an ordered list of SVG objects
type Document struct {
	objects []Object
}

func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

func (d *Document) Len() int { return len(d.objects) }

// String renders the document with one object per line
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeSVG(&b)
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(xmlEscape(value))
	b.WriteString("\"")
}

// formatNumber prints up to six significant digits.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
