// Package geo computes great-circle distances between coordinates.
package geo

import (
	"math"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Point is a latitude/longitude pair. The zero value means "no reference
// supplied"; distance helpers substitute DefaultReference for it.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether the point carries no coordinates.
func (p Point) IsZero() bool {
	return p.Latitude == 0 && p.Longitude == 0
}

// DefaultReference is the fixed fallback reference point (Toronto city
// center) used when the caller supplies no location.
var DefaultReference = Point{Latitude: 43.6532, Longitude: -79.3832}

// DistanceKm returns the haversine great-circle distance in kilometers.
// Symmetric up to floating-point tolerance.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EventDistance returns the distance from ref to the event's venue, or nil
// when the event has no coordinates (pure-online events). A zero ref falls
// back to DefaultReference.
func EventDistance(e model.Event, ref Point) *float64 {
	if !e.HasCoordinates() {
		return nil
	}
	if ref.IsZero() {
		ref = DefaultReference
	}
	d := DistanceKm(ref.Latitude, ref.Longitude, *e.Latitude, *e.Longitude)
	return &d
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
