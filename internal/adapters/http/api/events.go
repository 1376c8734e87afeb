package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	repository "github.com/managementsnbllc-hub/eventmap-toronto/internal/adapters/repository"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/ranking"
)

// EventsHandler handles single-event reads and engagement writes under
// /events/{id}.
type EventsHandler struct {
	deps Dependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps Dependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleEventSubtree routes GET /events/{id}, POST /events/{id}/save, and
// POST /events/{id}/share.
func (h *EventsHandler) HandleEventSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/events/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case action == "save" && r.Method == http.MethodPost:
		h.handleEngagement(w, r, id, h.deps.Save)
	case action == "share" && r.Method == http.MethodPost:
		h.handleEngagement(w, r, id, h.deps.Share)
	default:
		http.NotFound(w, r)
	}
}

func (h *EventsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_event"
	e, err := h.deps.Event(r.Context(), id)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	ref := h.deps.Reference()
	writeJSON(w, http.StatusOK, eventView{
		Event:      e,
		DistanceKm: geo.EventDistance(e, ref),
		SmartScore: ranking.SmartScore(e, time.Now(), ref),
	})
}

func (h *EventsHandler) handleEngagement(w http.ResponseWriter, r *http.Request, id string, record func(ctx context.Context, id string) (model.Event, error)) {
	const op = "api.engagement"
	e, err := record(r.Context(), id)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// writeStoreError translates store errors to HTTP statuses.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal", fmt.Errorf("%s: %w", op, err))
}

// eventRequest mirrors the ingest payload for POST /events.
type eventRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Mode        string   `json:"event_mode"`
	StartsAt    string   `json:"starts_at"`
	EndsAt      string   `json:"ends_at"`
	VenueName   string   `json:"venue_name"`
	AddressText string   `json:"address_text"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	PriceText   string   `json:"price_text"`
}

func (e eventRequest) validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return errors.New("missing title")
	case strings.TrimSpace(e.StartsAt) == "":
		return errors.New("missing starts_at")
	case strings.TrimSpace(e.EndsAt) == "":
		return errors.New("missing ends_at")
	case (e.Latitude == nil) != (e.Longitude == nil):
		return errors.New("latitude and longitude must be supplied together")
	}
	starts, err := time.Parse(time.RFC3339, e.StartsAt)
	if err != nil {
		return errors.New("invalid starts_at; must be RFC3339")
	}
	ends, err := time.Parse(time.RFC3339, e.EndsAt)
	if err != nil {
		return errors.New("invalid ends_at; must be RFC3339")
	}
	if !ends.After(starts) {
		return errors.New("ends_at must be after starts_at")
	}
	return nil
}

// toModel converts a validated request into a domain event. Unknown
// categories collapse to "other"; a missing mode defaults to in-person.
func (e eventRequest) toModel() model.Event {
	starts, _ := time.Parse(time.RFC3339, e.StartsAt)
	ends, _ := time.Parse(time.RFC3339, e.EndsAt)

	category := model.Category(e.Category)
	known := false
	for _, c := range model.Categories() {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		category = model.CategoryOther
	}

	mode := model.Mode(e.Mode)
	switch mode {
	case model.ModeInPerson, model.ModeOnline, model.ModeHybrid:
	default:
		mode = model.ModeInPerson
	}

	return model.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    category,
		Mode:        mode,
		StartsAt:    starts,
		EndsAt:      ends,
		VenueName:   e.VenueName,
		AddressText: e.AddressText,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		PriceText:   e.PriceText,
	}
}

// handleIngest handles POST /events.
func handleIngest(w http.ResponseWriter, r *http.Request, deps Dependencies) {
	const op = "api.post_event"
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	e, err := deps.Ingest(r.Context(), req.toModel())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", WrapKind(op, ErrIngest, err))
		return
	}
	writeJSON(w, http.StatusCreated, e)
}
