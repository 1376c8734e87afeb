// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/managementsnbllc-hub/eventmap-toronto/internal/app"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Query filters and sorts the current collection.
	Query(ctx context.Context, f model.FilterState, ref geo.Point) service.QueryResult

	// Event returns a single stored event.
	Event(ctx context.Context, id string) (model.Event, error)

	// Ingest upserts an event, assigning an id when absent.
	Ingest(ctx context.Context, e model.Event) (model.Event, error)

	// Save and Share record engagement counters.
	Save(ctx context.Context, id string) (model.Event, error)
	Share(ctx context.Context, id string) (model.Event, error)

	// Reference is the default coordinate distance is measured from.
	Reference() geo.Point
}

// QueryResult mirrors the read shape returned by discovery queries.
type QueryResult = service.QueryResult

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	discoverHandler *DiscoverHandler
	eventsHandler   *EventsHandler
	filtersHandler  *FiltersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		discoverHandler: NewDiscoverHandler(deps),
		eventsHandler:   NewEventsHandler(deps),
		filtersHandler:  NewFiltersHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/filters", MetricsMiddleware(s.filtersHandler.HandleGetFilters, "filters"))
	mux.HandleFunc("/events", MetricsMiddleware(s.discoverHandler.HandleEvents, "events"))
	mux.HandleFunc("/events/", MetricsMiddleware(s.eventsHandler.HandleEventSubtree, "event"))
}

// eventView is an event plus the per-request derived fields the map and
// list render next to it.
type eventView struct {
	model.Event
	DistanceKm *float64 `json:"distance_km,omitempty"`
	SmartScore float64  `json:"smart_score"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
