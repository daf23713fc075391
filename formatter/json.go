package formatter

import (
	"encoding/json"
	"fmt"
)

type responseBuilder struct {
	indent string
}

func newResponseBuilder() *responseBuilder { return &responseBuilder{indent: "    "} }

// NewResponseBuilder creates a new response builder for formatting responses
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes responses to an indented JSON array
func (rb *responseBuilder) BuildJSON(responses []Response) ([]byte, error) {
	if responses == nil {
		responses = []Response{}
	}
	b, err := json.MarshalIndent(responses, "", rb.indent)
	if err != nil {
		return nil, fmt.Errorf("marshal responses: %w", err)
	}
	return b, nil
}

// Build serializes responses in the given format (json or xml)
func (rb *responseBuilder) Build(responses []Response, format string) ([]byte, error) {
	switch format {
	case "", "json":
		return rb.BuildJSON(responses)
	case "xml":
		return rb.BuildXML(responses), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
