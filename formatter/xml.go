package formatter

import (
	"strconv"
	"strings"
)

// BuildXML serializes responses to XML
func (rb *responseBuilder) BuildXML(responses []Response) []byte {
	var b strings.Builder
	b.WriteString("<Responses>")
	for _, r := range responses {
		b.WriteString("<Response request_id=\"")
		b.WriteString(strconv.Itoa(r.ID()))
		b.WriteString("\">")
		switch v := r.(type) {
		case BusResponse:
			writeBusXML(&b, v)
		case StopResponse:
			writeStopXML(&b, v)
		case RouteResponse:
			writeRouteXML(&b, v)
		case MapResponse:
			writeElement(&b, "Map", v.Map)
		case ErrorResponse:
			writeElement(&b, "ErrorMessage", v.ErrorMessage)
		}
		b.WriteString("</Response>")
	}
	b.WriteString("</Responses>")
	return []byte(b.String())
}

func writeBusXML(b *strings.Builder, v BusResponse) {
	writeElement(b, "Curvature", formatFloat(v.Curvature))
	writeElement(b, "RouteLength", strconv.Itoa(v.RouteLength))
	writeElement(b, "StopCount", strconv.Itoa(v.StopCount))
	writeElement(b, "UniqueStopCount", strconv.Itoa(v.UniqueStopCount))
}

func writeStopXML(b *strings.Builder, v StopResponse) {
	b.WriteString("<Buses>")
	for _, bus := range v.Buses {
		writeElement(b, "Bus", bus)
	}
	b.WriteString("</Buses>")
}

func writeRouteXML(b *strings.Builder, v RouteResponse) {
	writeElement(b, "TotalTime", formatFloat(v.TotalTime))
	b.WriteString("<Items>")
	for _, item := range v.Items {
		b.WriteString("<Item type=\"")
		b.WriteString(xmlEscape(item.Type))
		b.WriteString("\">")
		if item.StopName != "" {
			writeElement(b, "StopName", item.StopName)
		}
		if item.Bus != "" {
			writeElement(b, "Bus", item.Bus)
			writeElement(b, "SpanCount", strconv.Itoa(item.SpanCount))
		}
		writeElement(b, "Time", formatFloat(item.Time))
		b.WriteString("</Item>")
	}
	b.WriteString("</Items>")
}

func writeElement(b *strings.Builder, name, value string) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
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
