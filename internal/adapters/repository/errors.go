package repository

import "errors"

// Sentinel kinds for event store errors.
var (
	ErrNotFound  = errors.New("event not found")
	ErrMissingID = errors.New("event id must not be empty")
)
