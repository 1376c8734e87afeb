// Package filter applies the six conjunctive view predicates to an event
// collection. Every function is a pure computation: the input slice is
// never mutated and the result is freshly allocated.
package filter

import (
	"strings"
	"time"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/timewindow"
)

// Apply returns the events that survive every predicate: time window,
// category, mode, price, distance, and search. Predicates combine with
// AND semantics; an empty category set and an empty search query restrict
// nothing.
func Apply(events []model.Event, f model.FilterState, opts ...Option) []model.Event {
	env := newEnv(opts...)

	window := resolveWindow(f, env.now)

	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if !window.Contains(e.StartsAt) {
			continue
		}
		if !f.HasCategory(e.Category) {
			continue
		}
		if !modeAllowed(e.Mode, f.EventMode) {
			continue
		}
		if !priceAllowed(e, f.PriceType) {
			continue
		}
		if !withinDistance(e, f.MaxDistance, env.ref) {
			continue
		}
		if !matchesSearch(e, f.SearchQuery) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func resolveWindow(f model.FilterState, now time.Time) timewindow.Window {
	opts := []timewindow.Option{timewindow.WithNow(now)}
	if f.CustomDateStart != nil {
		opts = append(opts, timewindow.WithCustomStart(*f.CustomDateStart))
	}
	if f.CustomDateEnd != nil {
		opts = append(opts, timewindow.WithCustomEnd(*f.CustomDateEnd))
	}
	return timewindow.Resolve(f.TimeRange, opts...)
}

// modeAllowed excludes only the exact opposite mode. Hybrid events pass
// under every setting; this asymmetry is deliberate policy, not a bug.
func modeAllowed(mode, want model.Mode) bool {
	switch want {
	case model.ModeInPerson:
		return mode != model.ModeOnline
	case model.ModeOnline:
		return mode != model.ModeInPerson
	default:
		return true
	}
}

func priceAllowed(e model.Event, want model.PriceType) bool {
	switch want {
	case model.PriceFree:
		return e.IsFree()
	case model.PricePaid:
		return !e.IsFree()
	default:
		return true
	}
}

// withinDistance applies only when a limit is set and the event has
// coordinates. Events without coordinates always pass regardless of the
// limit.
func withinDistance(e model.Event, maxKm *float64, ref geo.Point) bool {
	if maxKm == nil || !e.HasCoordinates() {
		return true
	}
	d := geo.EventDistance(e, ref)
	return d != nil && *d <= *maxKm
}

// matchesSearch requires every whitespace-separated query token to be a
// substring of the event's searchable corpus. Token order is irrelevant;
// this is containment, not a phrase match.
func matchesSearch(e model.Event, query string) bool {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return true
	}
	corpus := searchCorpus(e)
	for _, token := range strings.Fields(q) {
		if !strings.Contains(corpus, token) {
			return false
		}
	}
	return true
}

// searchCorpus joins the lowercased searchable fields with spaces,
// omitting the ones that are absent.
func searchCorpus(e model.Event) string {
	fields := []string{
		e.Title,
		e.VenueName,
		e.Description,
		e.AddressText,
		string(e.Category),
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
