package api

import (
	"net/http"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// FiltersHandler serves the static filter vocabulary the client builds
// its filter sheet from: categories, sort strategies, distance presets,
// and the default state.
type FiltersHandler struct{}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler() *FiltersHandler {
	return &FiltersHandler{}
}

type filtersResponse struct {
	Categories      []model.Category       `json:"categories"`
	SortOptions     []model.SortOption     `json:"sort_options"`
	DistanceOptions []model.DistanceOption `json:"distance_options"`
	Defaults        model.FilterState      `json:"defaults"`
}

// HandleGetFilters handles GET /filters requests.
func (h *FiltersHandler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, filtersResponse{
		Categories:      model.Categories(),
		SortOptions:     model.SortOptions(),
		DistanceOptions: model.DistanceOptions(),
		Defaults:        model.DefaultFilters(),
	})
}
