// Package ranking orders a filtered event collection by one of five
// strategies, including the composite smart score. Sorting is stable:
// exact ties keep their input order, so repeated calls on the same input
// return the same sequence.
package ranking

import (
	"sort"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// Sort returns a new slice ordered by the chosen strategy. The input is
// never reordered in place. Unknown strategies sort by smart score, the
// default.
func Sort(events []model.Event, by model.SortOrder, opts ...Option) []model.Event {
	env := newEnv(opts...)
	sorted := make([]model.Event, len(events))
	copy(sorted, events)

	switch by {
	case model.SortDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StartsAt.Before(sorted[j].StartsAt)
		})
	case model.SortDistance:
		sortByDistance(sorted, env.ref)
	case model.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			ri, rj := sorted[i].Rating(), sorted[j].Rating()
			if ri != rj {
				return ri > rj
			}
			return sorted[i].RatingCount > sorted[j].RatingCount
		})
	case model.SortPopularity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Popularity() > sorted[j].Popularity()
		})
	default:
		sortBySmartScore(sorted, env)
	}
	return sorted
}

// sortByDistance orders ascending by distance from the reference point.
// Events without coordinates sort after every event with a real distance;
// their relative order is the input order.
func sortByDistance(events []model.Event, ref geo.Point) {
	dist := make([]*float64, len(events))
	for i, e := range events {
		dist[i] = geo.EventDistance(e, ref)
	}
	idx := make([]int, len(events))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		da, db := dist[idx[a]], dist[idx[b]]
		switch {
		case da == nil:
			return false
		case db == nil:
			return true
		default:
			return *da < *db
		}
	})
	reorder(events, idx)
}

func sortBySmartScore(events []model.Event, env *env) {
	// Score once per event; the haversine per comparison would dominate
	// the sort otherwise.
	scores := make([]float64, len(events))
	for i, e := range events {
		scores[i] = SmartScore(e, env.now, env.ref)
	}
	idx := make([]int, len(events))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	reorder(events, idx)
}

func reorder(events []model.Event, idx []int) {
	tmp := make([]model.Event, len(events))
	for i, j := range idx {
		tmp[i] = events[j]
	}
	copy(events, tmp)
}
