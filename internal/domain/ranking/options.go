package ranking

import (
	"time"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
)

// Option applies a configuration option to a sort pass.
type Option func(*env)

// WithNow pins the instant the soonness component measures lead time
// against. Defaults to time.Now().
func WithNow(now time.Time) Option {
	return func(e *env) {
		if !now.IsZero() {
			e.now = now
		}
	}
}

// WithReference sets the coordinate distance is measured from. A zero
// point falls through to geo.DefaultReference.
func WithReference(ref geo.Point) Option {
	return func(e *env) {
		e.ref = ref
	}
}

type env struct {
	now time.Time
	ref geo.Point
}

func newEnv(opts ...Option) *env {
	e := &env{now: time.Now()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
