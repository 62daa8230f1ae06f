package registry

import (
	"log/slog"

	"github.com/aretw0/cellfn/pkg/pipeline"
)

// Option defines a functional option for configuring the Registry.
type Option func(*Registry)

// WithLogger configures the structured logger. It is also the diagnostic
// channel of every wrapped callable.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithObserver attaches a call observer (e.g. observability.Metrics) to every
// wrapped callable.
func WithObserver(observer pipeline.Observer) Option {
	return func(r *Registry) {
		r.observer = observer
	}
}

// WithOverride lets Add replace an existing entry instead of failing with
// ErrDuplicateFunction.
func WithOverride(override bool) Option {
	return func(r *Registry) {
		r.override = override
	}
}
