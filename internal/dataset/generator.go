package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// Generation constants. Coordinates jitter around the Toronto city
// center; times spread across the week following the base time.
const (
	defaultSeed = 42

	centerLat = 43.6532
	centerLon = -79.3832
	// Roughly +-6km of jitter in each axis.
	latJitter = 0.055
	lonJitter = 0.075

	maxLeadHours   = 7 * 24
	eventDuration  = 3 * time.Hour
	maxSaveCount   = 180
	maxShareCount  = 90
	maxRatingCount = 60
	onlineShare    = 6 // one in six events is online-only
	hybridShare    = 8
	unpricedShare  = 4
	unratedShare   = 3
)

var priceTexts = []string{"Free", "$0", "$15", "$25", "$40", "PWYC", "From $12"}

var titleStems = map[model.Category][]string{
	model.CategoryMusic:     {"Jazz Night", "Indie Showcase", "Open Mic", "Vinyl Listening Party"},
	model.CategoryFood:      {"Night Market", "Ramen Crawl", "Tasting Menu Pop-up", "Brunch Festival"},
	model.CategorySports:    {"Pickup Basketball", "Harbourfront Run Club", "Drop-in Volleyball"},
	model.CategoryArt:       {"Gallery Opening", "Life Drawing", "Street Art Walk"},
	model.CategoryCommunity: {"Park Cleanup", "Neighbourhood Potluck", "Repair Cafe"},
	model.CategoryNightlife: {"Rooftop Social", "Comedy Hour", "Late Night DJ Set"},
	model.CategoryTech:      {"Go Meetup", "Demo Night", "Hack Night"},
	model.CategoryWellness:  {"Sunrise Yoga", "Sound Bath", "Meditation Circle"},
	model.CategoryOther:     {"Trivia Night", "Board Game Cafe", "Book Swap"},
}

var venueNames = []string{
	"The Rex", "Harbourfront Centre", "Trinity Bellwoods Park", "CSI Annex",
	"The Great Hall", "Evergreen Brick Works", "Lula Lounge", "High Park Amphitheatre",
}

// GenOption applies a configuration option to the generator.
type GenOption func(*generator)

// WithBaseTime anchors generated start times. Defaults to time.Now().
func WithBaseTime(t time.Time) GenOption {
	return func(g *generator) {
		if !t.IsZero() {
			g.base = t
		}
	}
}

// WithRandomSeed sets the seed for the deterministic generator.
func WithRandomSeed(seed int64) GenOption {
	return func(g *generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible demo data
	}
}

type generator struct {
	base time.Time
	rng  *rand.Rand
}

// Generate produces n randomized events spread over the week following
// the base time. The same seed and base time always yield the same
// dataset.
func Generate(n int, opts ...GenOption) []model.Event {
	g := &generator{
		base: time.Now(),
		rng:  rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible demo data
	}
	for _, opt := range opts {
		opt(g)
	}

	categories := model.Categories()
	events := make([]model.Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, g.next(i, categories[i%len(categories)]))
	}
	return events
}

func (g *generator) next(i int, cat model.Category) model.Event {
	stems := titleStems[cat]
	title := stems[g.rng.Intn(len(stems))]
	starts := g.base.Add(time.Duration(g.rng.Intn(maxLeadHours)) * time.Hour)

	// Ids come from the seeded rng so reruns reproduce them too.
	id, _ := uuid.NewRandomFromReader(g.rng)

	e := model.Event{
		ID:          id.String(),
		Title:       title,
		Description: fmt.Sprintf("%s, a %s event in Toronto.", title, cat),
		Category:    cat,
		Mode:        model.ModeInPerson,
		StartsAt:    starts,
		EndsAt:      starts.Add(eventDuration),
		SaveCount:   g.rng.Intn(maxSaveCount),
		ShareCount:  g.rng.Intn(maxShareCount),
	}

	if i%unpricedShare != 0 {
		e.PriceText = priceTexts[g.rng.Intn(len(priceTexts))]
	}
	if i%unratedShare != 0 {
		rating := 2.5 + g.rng.Float64()*2.5
		e.AvgRating = &rating
		e.RatingCount = 1 + g.rng.Intn(maxRatingCount)
	}

	switch {
	case i%onlineShare == 0:
		e.Mode = model.ModeOnline
	case i%hybridShare == 0:
		e.Mode = model.ModeHybrid
	}

	// Online events carry no venue.
	if e.Mode != model.ModeOnline {
		lat := centerLat + (g.rng.Float64()*2-1)*latJitter
		lon := centerLon + (g.rng.Float64()*2-1)*lonJitter
		e.Latitude = &lat
		e.Longitude = &lon
		e.VenueName = venueNames[g.rng.Intn(len(venueNames))]
		e.AddressText = fmt.Sprintf("%d Queen St W, Toronto", 100+g.rng.Intn(900))
	}

	return e
}
