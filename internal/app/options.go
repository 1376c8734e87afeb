package service

import (
	repository "github.com/managementsnbllc-hub/eventmap-toronto/internal/adapters/repository"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore swaps the backing event store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReference sets the default reference point for distance
// computation. A zero point keeps the Toronto default.
func WithReference(ref geo.Point) Option {
	return func(s *Service) {
		s.ref = ref
	}
}

// WithMaxResults caps the number of events a query returns. Zero or
// negative means no cap.
func WithMaxResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithSeedEvents loads events into the store on Start.
func WithSeedEvents(events []model.Event) Option {
	return func(s *Service) {
		s.seed = events
	}
}
