// Package repository defines the event store interface and errors.
package repository

import (
	"context"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithSeed preloads the store with events. Seeding bypasses the Upsert
// validation: events without ids are skipped silently.
func WithSeed(events []model.Event) Option {
	return func(s *MemoryStore) {
		for _, e := range events {
			if e.ID == "" {
				continue
			}
			_ = s.Upsert(context.Background(), e)
		}
	}
}
