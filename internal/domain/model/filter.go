package model

import "time"

// TimeRange names a calendar bucket the filter can restrict to.
type TimeRange string

// Time range keys.
const (
	RangeToday    TimeRange = "today"
	RangeTomorrow TimeRange = "tomorrow"
	RangeWeekend  TimeRange = "weekend"
	RangeThisWeek TimeRange = "this_week"
	RangeCustom   TimeRange = "custom"
)

// SortOrder selects a sort strategy for the filtered view.
type SortOrder string

// Sort strategies.
const (
	SortSmart      SortOrder = "smart"
	SortDate       SortOrder = "date"
	SortDistance   SortOrder = "distance"
	SortRating     SortOrder = "rating"
	SortPopularity SortOrder = "popularity"
)

// FilterState fully describes a user's view configuration. It is a value
// object: callers build a new one instead of mutating in place, and every
// filter/sort invocation receives it fresh.
type FilterState struct {
	TimeRange       TimeRange  `json:"time_range"`
	CustomDateStart *time.Time `json:"custom_date_start,omitempty"` // only used when TimeRange == RangeCustom
	CustomDateEnd   *time.Time `json:"custom_date_end,omitempty"`

	// Categories restricts to the given set. Empty means all categories,
	// not none.
	Categories []Category `json:"categories"`

	// EventMode is ModeInPerson, ModeOnline, or empty for all.
	EventMode Mode `json:"event_mode"`

	// PriceType is PriceFree, PricePaid, or PriceAll.
	PriceType PriceType `json:"price_type"`

	// MaxDistance in kilometers; nil means no limit.
	MaxDistance *float64 `json:"max_distance,omitempty"`

	SortBy SortOrder `json:"sort_by"`

	// SearchQuery is matched token-by-token against title, venue,
	// description, address, and category.
	SearchQuery string `json:"search_query"`
}

// PriceType restricts by cost.
type PriceType string

// Price filter values.
const (
	PriceAll  PriceType = "all"
	PriceFree PriceType = "free"
	PricePaid PriceType = "paid"
)

// ModeAll is the zero restriction for EventMode.
const ModeAll Mode = "all"

// DefaultFilters returns the state every view starts from: this week, all
// categories, any mode, any price, unlimited distance, smart sort.
func DefaultFilters() FilterState {
	return FilterState{
		TimeRange:  RangeThisWeek,
		Categories: nil,
		EventMode:  ModeAll,
		PriceType:  PriceAll,
		SortBy:     SortSmart,
	}
}

// HasCategory reports whether c is in the restriction set. An empty set
// admits every category.
func (f FilterState) HasCategory(c Category) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, have := range f.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// SortOption describes one sort choice for UI consumption.
type SortOption struct {
	Key   SortOrder `json:"key"`
	Label string    `json:"label"`
}

// SortOptions lists the sort strategies in display order.
func SortOptions() []SortOption {
	return []SortOption{
		{Key: SortSmart, Label: "Smart sort"},
		{Key: SortDate, Label: "Soonest first"},
		{Key: SortDistance, Label: "Nearest first"},
		{Key: SortRating, Label: "Top rated"},
		{Key: SortPopularity, Label: "Most popular"},
	}
}

// DistanceOption describes one distance preset for UI consumption. A nil
// Km means no limit.
type DistanceOption struct {
	Km    *float64 `json:"km"`
	Label string   `json:"label"`
}

// DistanceOptions lists the distance presets in display order.
func DistanceOptions() []DistanceOption {
	km := func(v float64) *float64 { return &v }
	return []DistanceOption{
		{Km: nil, Label: "Any distance"},
		{Km: km(1), Label: "1 km"},
		{Km: km(2), Label: "2 km"},
		{Km: km(5), Label: "5 km"},
		{Km: km(10), Label: "10 km"},
	}
}
