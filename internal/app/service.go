// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	repository "github.com/managementsnbllc-hub/eventmap-toronto/internal/adapters/repository"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/filter"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/ranking"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/timewindow"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/logger"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/metrics"
)

// Service implements the API dependencies for the discovery system. The
// engine itself is stateless; Service only owns the store and the
// request-independent defaults (reference point, result cap).
type Service struct {
	store      repository.Store
	ref        geo.Point
	maxResults int
	seed       []model.Event

	started bool

	logger logger.Logger
}

// QueryResult is the engine output plus the derived view metadata the UI
// renders alongside the list.
type QueryResult struct {
	Events        []model.Event
	Window        timewindow.Window
	Total         int // matches before the result cap
	ActiveFilters int
	Summary       string
}

// New creates a Service with the given options.
func New(opts ...Option) *Service {
	s := &Service{
		store:      repository.NewMemoryStore(),
		maxResults: 0, // no cap unless configured
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Start seeds the store. Safe to call once; subsequent calls are no-ops.
func (s *Service) Start(ctx context.Context) error {
	if s.started {
		return nil
	}
	for _, e := range s.seed {
		if err := s.store.Upsert(ctx, e); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}
	}
	s.started = true
	s.logger.Info(ctx, "service started", logger.Int("events", s.store.Count(ctx)))
	return nil
}

// Stop releases service resources. The in-memory store has none; the
// hook exists for symmetry with Start and future stores.
func (s *Service) Stop() {
	s.started = false
}

// Query filters and sorts the current event collection. A zero ref falls
// back to the service-level reference point, then to the Toronto default.
func (s *Service) Query(ctx context.Context, f model.FilterState, ref geo.Point) QueryResult {
	began := time.Now()
	if ref.IsZero() {
		ref = s.ref
	}
	now := time.Now()

	events := s.store.Snapshot(ctx)
	matched := filter.Apply(events, f, filter.WithNow(now), filter.WithReference(ref))
	sorted := ranking.Sort(matched, f.SortBy, ranking.WithNow(now), ranking.WithReference(ref))

	total := len(sorted)
	if s.maxResults > 0 && total > s.maxResults {
		sorted = sorted[:s.maxResults]
	}

	summary, _ := filter.Summary(f)
	res := QueryResult{
		Events:        sorted,
		Window:        timewindow.Resolve(f.TimeRange, windowOptions(f, now)...),
		Total:         total,
		ActiveFilters: filter.ActiveCount(f),
		Summary:       summary,
	}

	metrics.RecordQuery(string(f.SortBy), float64(time.Since(began).Milliseconds()), total)
	return res
}

func windowOptions(f model.FilterState, now time.Time) []timewindow.Option {
	opts := []timewindow.Option{timewindow.WithNow(now)}
	if f.CustomDateStart != nil {
		opts = append(opts, timewindow.WithCustomStart(*f.CustomDateStart))
	}
	if f.CustomDateEnd != nil {
		opts = append(opts, timewindow.WithCustomEnd(*f.CustomDateEnd))
	}
	return opts
}

// Event returns a single stored event.
func (s *Service) Event(ctx context.Context, id string) (model.Event, error) {
	return s.store.Get(ctx, id)
}

// Ingest upserts an event, assigning an id when the writer supplied none.
func (s *Service) Ingest(ctx context.Context, e model.Event) (model.Event, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if err := s.store.Upsert(ctx, e); err != nil {
		return model.Event{}, err
	}
	s.logger.Debug(ctx, "event ingested", logger.String("id", e.ID), logger.String("category", string(e.Category)))
	return e, nil
}

// Save records one save engagement.
func (s *Service) Save(ctx context.Context, id string) (model.Event, error) {
	return s.store.RecordSave(ctx, id)
}

// Share records one share engagement.
func (s *Service) Share(ctx context.Context, id string) (model.Event, error) {
	return s.store.RecordShare(ctx, id)
}

// Reference returns the reference point queries default to.
func (s *Service) Reference() geo.Point {
	if s.ref.IsZero() {
		return geo.DefaultReference
	}
	return s.ref
}

// Size returns the number of stored events.
func (s *Service) Size(ctx context.Context) int {
	return s.store.Count(ctx)
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	count := s.store.Count(context.Background())
	metrics.UpdateEventsStored(count)
	ref := s.Reference()
	return map[string]interface{}{
		"totalEvents":  count,
		"started":      s.started,
		"maxResults":   s.maxResults,
		"refLatitude":  ref.Latitude,
		"refLongitude": ref.Longitude,
	}
}
