package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/ranking"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/timewindow"
)

// DiscoverHandler serves the filtered, ranked event view.
type DiscoverHandler struct {
	deps Dependencies
}

// NewDiscoverHandler creates a new discovery handler.
func NewDiscoverHandler(deps Dependencies) *DiscoverHandler {
	return &DiscoverHandler{deps: deps}
}

type discoverResponse struct {
	Events        []eventView       `json:"events"`
	Total         int               `json:"total"`
	Window        timewindow.Window `json:"window"`
	ActiveFilters int               `json:"active_filters"`
	Summary       string            `json:"summary,omitempty"`
}

// HandleEvents handles GET /events (discovery) and POST /events (ingest).
func (h *DiscoverHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		handleIngest(w, r, h.deps)
	default:
		http.NotFound(w, r)
	}
}

func (h *DiscoverHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.discover"
	f, ref, err := parseQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	res := h.deps.Query(r.Context(), f, ref)

	if ref.IsZero() {
		ref = h.deps.Reference()
	}
	now := time.Now()
	views := make([]eventView, 0, len(res.Events))
	for _, e := range res.Events {
		views = append(views, eventView{
			Event:      e,
			DistanceKm: geo.EventDistance(e, ref),
			SmartScore: ranking.SmartScore(e, now, ref),
		})
	}

	writeJSON(w, http.StatusOK, discoverResponse{
		Events:        views,
		Total:         res.Total,
		Window:        res.Window,
		ActiveFilters: res.ActiveFilters,
		Summary:       res.Summary,
	})
}

// parseQuery maps request parameters onto a filter state. Unknown
// time-range or sort keys pass through untouched; the engine treats them
// as its defaults. Only malformed numbers and dates are rejected.
func parseQuery(q url.Values) (model.FilterState, geo.Point, error) {
	f := model.DefaultFilters()

	if v := q.Get("time_range"); v != "" {
		f.TimeRange = model.TimeRange(v)
	}
	if v := q.Get("from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, geo.Point{}, fmt.Errorf("invalid from: %w", err)
		}
		f.CustomDateStart = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return f, geo.Point{}, fmt.Errorf("invalid to: %w", err)
		}
		f.CustomDateEnd = &t
	}
	if v := q.Get("categories"); v != "" {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				f.Categories = append(f.Categories, model.Category(c))
			}
		}
	}
	if v := q.Get("mode"); v != "" {
		f.EventMode = model.Mode(v)
	}
	if v := q.Get("price"); v != "" {
		f.PriceType = model.PriceType(v)
	}
	if v := q.Get("max_km"); v != "" {
		km, err := strconv.ParseFloat(v, 64)
		if err != nil || km < 0 {
			return f, geo.Point{}, fmt.Errorf("invalid max_km: %q", v)
		}
		f.MaxDistance = &km
	}
	if v := q.Get("sort"); v != "" {
		f.SortBy = model.SortOrder(v)
	}
	f.SearchQuery = q.Get("q")

	var ref geo.Point
	latStr, lonStr := q.Get("lat"), q.Get("lon")
	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return f, geo.Point{}, fmt.Errorf("invalid lat/lon: %q, %q", latStr, lonStr)
		}
		ref = geo.Point{Latitude: lat, Longitude: lon}
	}
	return f, ref, nil
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("want RFC3339 or YYYY-MM-DD: %w", err)
	}
	return t, nil
}
