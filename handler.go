package transportcatalogue

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// ErrRouterBuilt is returned by a second BuildRouter call.
var ErrRouterBuilt = errors.New("router already built")

// RequestHandler serves stat and journey queries over one network.
type RequestHandler struct {
	db     *catalogue.Catalogue
	router *router.TransportRouter
	logger *slog.Logger
}

func NewRequestHandler(logger *slog.Logger) *RequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequestHandler{db: catalogue.New(), logger: logger}
}

// Catalogue exposes the underlying network for read access.
func (h *RequestHandler) Catalogue() *catalogue.Catalogue { return h.db }

func (h *RequestHandler) mustBeMutable(op string) {
	if h.router != nil {
		panic("transportcatalogue: " + op + " after BuildRouter")
	}
}

func (h *RequestHandler) AddStop(name string, lat, lng float64) {
	h.mustBeMutable("AddStop")
	h.db.AddStop(name, lat, lng)
}

func (h *RequestHandler) AddBus(name string, stopNames []string, isRoundtrip bool) {
	h.mustBeMutable("AddBus")
	h.db.AddBus(name, stopNames, isRoundtrip)
}

// SetDistance records a directed road distance. Both stops must be registered.
func (h *RequestHandler) SetDistance(from, to string, meters int) {
	h.mustBeMutable("SetDistance")
	h.db.SetDistance(from, to, meters)
}

// BusStat returns route statistics for a bus.
func (h *RequestHandler) BusStat(name string) (catalogue.BusInfo, bool) {
	info, ok := h.db.BusInfo(name)
	if !ok {
		h.logger.Debug("bus not found", "bus", name)
	}
	return info, ok
}

// BusesByStop returns the sorted names of buses serving a stop.
func (h *RequestHandler) BusesByStop(name string) ([]string, bool) {
	set, ok := h.db.BusesForStop(name)
	if !ok {
		h.logger.Debug("stop not found", "stop", name)
		return nil, false
	}
	names := make([]string, 0, len(set))
	for bus := range set {
		names = append(names, bus)
	}
	slices.Sort(names)
	return names, true
}

// RenderMap draws the current network as an SVG document.
func (h *RequestHandler) RenderMap(settings renderer.RenderSettings) string {
	doc := renderer.New(settings, h.db).Render()
	h.logger.Debug("map rendered", "objects", doc.Len())
	return doc.String()
}

// BuildRouter freezes the network and builds the routing graph.
func (h *RequestHandler) BuildRouter(settings router.Settings, opts ...router.Option) error {
	if h.router != nil {
		return ErrRouterBuilt
	}
	tr, err := router.New(h.db, settings, opts...)
	if err != nil {
		return err
	}
	h.router = tr
	h.logger.Info("routing graph built",
		"stops", h.db.StopCount(),
		"buses", h.db.BusCount(),
		"vertices", tr.VertexCount(),
		"edges", tr.EdgeCount(),
	)
	return nil
}

func (h *RequestHandler) RouterBuilt() bool { return h.router != nil }

// PlanRoute returns the fastest journey between two stops. Errors wrap
// router.ErrStopNotFound or router.ErrUnreachable. It panics when
// BuildRouter has not been called.
func (h *RequestHandler) PlanRoute(from, to string) (*router.RouteInfo, error) {
	if h.router == nil {
		panic("transportcatalogue: PlanRoute before BuildRouter")
	}
	route, err := h.router.BuildRoute(from, to)
	if err != nil {
		h.logger.Debug("no route", "from", from, "to", to, "error", err)
		return nil, err
	}
	return route, nil
}
