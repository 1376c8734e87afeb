package timewindow

import "time"

// Option applies a configuration option to a resolver.
type Option func(*resolver)

// WithNow pins the reference instant. Defaults to time.Now().
func WithNow(now time.Time) Option {
	return func(r *resolver) {
		if !now.IsZero() {
			r.now = now
		}
	}
}

// WithCustomStart supplies the start bound for RangeCustom.
func WithCustomStart(t time.Time) Option {
	return func(r *resolver) {
		r.customStart = &t
	}
}

// WithCustomEnd supplies the end bound for RangeCustom.
func WithCustomEnd(t time.Time) Option {
	return func(r *resolver) {
		r.customEnd = &t
	}
}

type resolver struct {
	now         time.Time
	customStart *time.Time
	customEnd   *time.Time
}

func newResolver(opts ...Option) *resolver {
	r := &resolver{now: time.Now()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
