package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/metrics"
)

// MemoryStore is an in-memory Store guarded by a RWMutex. An insertion
// order index keeps snapshots deterministic, which the engine's stable
// sorts rely on for tie-breaking.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string]model.Event
	order  []string
}

// NewMemoryStore creates an empty in-memory event store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		events: make(map[string]model.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of every stored event in insertion order.
func (s *MemoryStore) Snapshot(_ context.Context) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.events[id])
	}
	return out
}

// Get returns a single event by id.
func (s *MemoryStore) Get(_ context.Context, id string) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return e, nil
}

// Upsert inserts or replaces an event keyed by its ID. Replacing keeps
// the original insertion position.
func (s *MemoryStore) Upsert(_ context.Context, e model.Event) error {
	if e.ID == "" {
		return ErrMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[e.ID]; !exists {
		s.order = append(s.order, e.ID)
	}
	s.events[e.ID] = e
	metrics.UpdateEventsStored(len(s.order))
	return nil
}

// RecordSave increments the save counter and returns the updated event.
func (s *MemoryStore) RecordSave(ctx context.Context, id string) (model.Event, error) {
	return s.bump(ctx, id, func(e *model.Event) { e.SaveCount++ })
}

// RecordShare increments the share counter and returns the updated event.
func (s *MemoryStore) RecordShare(ctx context.Context, id string) (model.Event, error) {
	return s.bump(ctx, id, func(e *model.Event) { e.ShareCount++ })
}

func (s *MemoryStore) bump(_ context.Context, id string, apply func(*model.Event)) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("engagement %q: %w", id, ErrNotFound)
	}
	apply(&e)
	s.events[id] = e
	metrics.RecordEngagement()
	return e, nil
}

// Count returns the number of stored events.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
