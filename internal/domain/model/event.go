// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// Category classifies an event. The set is closed; anything the writer
// cannot map falls back to CategoryOther.
type Category string

// Known event categories.
const (
	CategoryMusic     Category = "music"
	CategoryFood      Category = "food"
	CategorySports    Category = "sports"
	CategoryArt       Category = "art"
	CategoryCommunity Category = "community"
	CategoryNightlife Category = "nightlife"
	CategoryTech      Category = "tech"
	CategoryWellness  Category = "wellness"
	CategoryOther     Category = "other"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryMusic, CategoryFood, CategorySports, CategoryArt,
		CategoryCommunity, CategoryNightlife, CategoryTech,
		CategoryWellness, CategoryOther,
	}
}

// Mode says whether an event happens in person, purely online, or both.
type Mode string

// Event modes.
const (
	ModeInPerson Mode = "in_person"
	ModeOnline   Mode = "online"
	ModeHybrid   Mode = "hybrid"
)

// Event represents one occurrence of a real-world happening. The engine
// borrows events read-only; engagement counters are mutated elsewhere.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Mode        Mode      `json:"event_mode"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`

	// Location is absent for pure-online events.
	VenueName   string   `json:"venue_name,omitempty"`
	AddressText string   `json:"address_text,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`

	// PriceText is free-form; an empty string means free.
	PriceText string `json:"price_text,omitempty"`

	SaveCount  int `json:"save_count"`
	ShareCount int `json:"share_count"`

	AvgRating   *float64 `json:"avg_rating,omitempty"`
	RatingCount int      `json:"rating_count"`
}

// HasCoordinates reports whether the event carries a venue location.
func (e Event) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// IsFree reports whether the event costs nothing. Free is signaled by a
// missing price text, the substring "free" (any case), or the literal "$0".
func (e Event) IsFree() bool {
	if e.PriceText == "" {
		return true
	}
	lower := strings.ToLower(e.PriceText)
	return strings.Contains(lower, "free") || lower == "$0"
}

// Popularity is the engagement total used by popularity sorting and the
// smart-score popularity component.
func (e Event) Popularity() int {
	return e.SaveCount + e.ShareCount
}

// Rating returns the average rating, treating absent as 0.
func (e Event) Rating() float64 {
	if e.AvgRating == nil {
		return 0
	}
	return *e.AvgRating
}
