package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	transportcatalogue "github.com/theoremus-urban-solutions/transport-catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Network receives the stops, distances and buses of base requests
type Network interface {
	AddStop(name string, lat, lng float64)
	SetDistance(from, to string, meters int)
	AddBus(name string, stopNames []string, isRoundtrip bool)
}

// Decode reads and validates a request document
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode request document: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("validate request document: %w", err)
	}
	return &doc, nil
}

// ApplyBaseRequests registers stops, then road distances, then buses.
// Distances to stops missing from the document are skipped.
func ApplyBaseRequests(n Network, reqs []BaseRequest) {
	known := map[string]struct{}{}
	for _, r := range reqs {
		if r.Type == TypeStop {
			n.AddStop(r.Name, r.Latitude, r.Longitude)
			known[r.Name] = struct{}{}
		}
	}
	for _, r := range reqs {
		if r.Type != TypeStop {
			continue
		}
		for to, meters := range r.RoadDistances {
			if _, ok := known[to]; !ok {
				continue
			}
			n.SetDistance(r.Name, to, meters)
		}
	}
	for _, r := range reqs {
		if r.Type == TypeBus {
			n.AddBus(r.Name, r.Stops, r.IsRoundtrip)
		}
	}
}

// HandleStatRequests answers stat requests in order. Route requests need a
// built router. Map requests without render settings report an error.
func HandleStatRequests(h *transportcatalogue.RequestHandler, reqs []StatRequest, render *renderer.RenderSettings) []formatter.Response {
	out := make([]formatter.Response, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, handleStatRequest(h, r, render))
	}
	return out
}

func handleStatRequest(h *transportcatalogue.RequestHandler, r StatRequest, render *renderer.RenderSettings) formatter.Response {
	switch r.Type {
	case TypeBus:
		if info, ok := h.BusStat(r.Name); ok {
			return formatter.NewBusResponse(r.ID, info)
		}
	case TypeStop:
		if buses, ok := h.BusesByStop(r.Name); ok {
			return formatter.NewStopResponse(r.ID, buses)
		}
	case TypeRoute:
		route, err := h.PlanRoute(r.From, r.To)
		if err == nil {
			return formatter.NewRouteResponse(r.ID, route)
		}
		if !errors.Is(err, router.ErrStopNotFound) && !errors.Is(err, router.ErrUnreachable) {
			return formatter.NewErrorResponse(r.ID, err.Error())
		}
	case TypeMap:
		if render == nil {
			return formatter.NewErrorResponse(r.ID, formatter.MsgNoRenderSettings)
		}
		return formatter.NewMapResponse(r.ID, h.RenderMap(*render))
	default:
		return formatter.NewErrorResponse(r.ID, formatter.MsgUnknownRequestType)
	}
	return formatter.NewErrorResponse(r.ID, formatter.MsgNotFound)
}

// Options configures ProcessRequests
type Options struct {
	Defaults  router.Settings // used when the document has no routing_settings
	CacheSize int
	Format    string // json (default) or xml
	Logger    *slog.Logger
}

// ProcessRequests decodes a document from r, builds the network and router,
// and writes the stat responses to w.
func ProcessRequests(r io.Reader, w io.Writer, opts Options) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}
	h := transportcatalogue.NewRequestHandler(opts.Logger)
	ApplyBaseRequests(h, doc.BaseRequests)

	settings := opts.Defaults
	if doc.RoutingSettings != nil {
		settings = *doc.RoutingSettings
	}
	if err := h.BuildRouter(settings, router.WithCacheSize(opts.CacheSize)); err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	return WriteResponses(w, HandleStatRequests(h, doc.StatRequests, doc.RenderSettings), opts.Format)
}

// WriteResponses serializes responses to w followed by a newline
func WriteResponses(w io.Writer, responses []formatter.Response, format string) error {
	out, err := formatter.NewResponseBuilder().Build(responses, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("write responses: %w", err)
	}
	return nil
}
