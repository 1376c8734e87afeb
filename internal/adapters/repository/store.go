// Package repository defines the event store interface and errors.
package repository

import (
	"context"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// Store provides read/write access to the event collection. The filter
// and ranking engine only ever sees snapshots; it never reaches into the
// store's internal state.
type Store interface {
	// Snapshot returns a copy of every stored event in insertion order.
	// Callers may filter and sort the result freely.
	Snapshot(ctx context.Context) []model.Event

	// Get returns a single event by id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.Event, error)

	// Upsert inserts or replaces an event keyed by its ID.
	// Returns ErrMissingID when the event has no id.
	Upsert(ctx context.Context, e model.Event) error

	// RecordSave increments the save counter for an event.
	RecordSave(ctx context.Context, id string) (model.Event, error)

	// RecordShare increments the share counter for an event.
	RecordShare(ctx context.Context, id string) (model.Event, error)

	// Count returns the number of stored events.
	Count(ctx context.Context) int
}
