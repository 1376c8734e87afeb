package ranking

import (
	"math"
	"time"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// Smart-score weights. Each component is clamped to its ceiling, so the
// theoretical maximum total is 100.
const (
	maxSoonnessScore   = 30.0
	soonnessDecayPerHr = 0.2

	maxProximityScore   = 25.0
	proximityDecayPerKm = 3.0
	noLocationProximity = 10.0

	ratingMultiplier = 4.0 // 5-star average contributes 20

	maxPopularityScore  = 25.0
	popularityPerEngage = 0.1
)

// SmartScore is the composite ranking score: soonness + proximity +
// rating + popularity.
func SmartScore(e model.Event, now time.Time, ref geo.Point) float64 {
	return SoonnessScore(e, now) + ProximityScore(e, ref) + RatingScore(e) + PopularityScore(e)
}

// SoonnessScore rewards events starting soon. Events starting now or in
// the past score the full 30; the score decays 0.2 per hour of lead time
// and never goes negative.
func SoonnessScore(e model.Event, now time.Time) float64 {
	hoursUntil := e.StartsAt.Sub(now).Hours()
	return math.Min(maxSoonnessScore, math.Max(0, maxSoonnessScore-hoursUntil*soonnessDecayPerHr))
}

// ProximityScore rewards nearby events: 25 at the reference point,
// decaying 3 per kilometer to a floor of 0. Events without coordinates
// get a flat 10 so online events stay competitive without dominating.
func ProximityScore(e model.Event, ref geo.Point) float64 {
	d := geo.EventDistance(e, ref)
	if d == nil {
		return noLocationProximity
	}
	return math.Max(0, maxProximityScore-*d*proximityDecayPerKm)
}

// RatingScore scales the average rating into [0, 20]. Unrated events
// contribute nothing.
func RatingScore(e model.Event) float64 {
	return e.Rating() * ratingMultiplier
}

// PopularityScore scales total engagement into [0, 25], saturating at 250
// combined saves and shares.
func PopularityScore(e model.Event) float64 {
	return math.Min(maxPopularityScore, float64(e.Popularity())*popularityPerEngage)
}
