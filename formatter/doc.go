// Package formatter provides response types and serialization for stat and
// journey requests.
//
// This package is organized into:
// - response.go: response types and constructors from catalogue/router results
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// XML is written by hand for precise control over element order.
package formatter
