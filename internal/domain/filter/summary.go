package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// ActiveCount returns how many filter dimensions deviate from their
// defaults: a non-empty category set, a mode restriction, a price
// restriction, a distance limit, and a non-smart sort. Time range and
// search query are deliberately excluded; both have their own UI
// affordances in the consuming client.
func ActiveCount(f model.FilterState) int {
	count := 0
	if len(f.Categories) > 0 {
		count++
	}
	if f.EventMode != model.ModeAll && f.EventMode != "" {
		count++
	}
	if f.PriceType != model.PriceAll && f.PriceType != "" {
		count++
	}
	if f.MaxDistance != nil {
		count++
	}
	if f.SortBy != model.SortSmart && f.SortBy != "" {
		count++
	}
	return count
}

// Summary renders the active dimensions as a " · "-joined human-readable
// string, e.g. "2 categories · Free · Within 5 km". The sort choice is
// not rendered even though ActiveCount counts it. ok is false when no
// dimension is active.
func Summary(f model.FilterState) (summary string, ok bool) {
	var parts []string
	if n := len(f.Categories); n > 0 {
		noun := "categories"
		if n == 1 {
			noun = "category"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, noun))
	}
	switch f.EventMode {
	case model.ModeInPerson:
		parts = append(parts, "In-person")
	case model.ModeOnline:
		parts = append(parts, "Online")
	}
	switch f.PriceType {
	case model.PriceFree:
		parts = append(parts, "Free")
	case model.PricePaid:
		parts = append(parts, "Paid")
	}
	if f.MaxDistance != nil {
		parts = append(parts, "Within "+strconv.FormatFloat(*f.MaxDistance, 'f', -1, 64)+" km")
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " · "), true
}
