package submission

import (
	"log/slog"
	"time"
)

// DefaultTimeout bounds every prediction request.
const DefaultTimeout = 30 * time.Second

// Option configures a Controller.
type Option func(*Controller)

// WithPredictor sets the backend used for submissions. Without it the
// controller builds a prediction.Client for the default endpoint.
func WithPredictor(p Predictor) Option {
	return func(c *Controller) {
		if p != nil {
			c.predictor = p
		}
	}
}

// WithTimeout bounds how long a request may stay in flight. Expiry is
// reported as a failed submission. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMinPending keeps the controller in Submitting for at least d, so fast
// responses do not flash past the user. It does not affect the outcome.
func WithMinPending(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.minPending = d
		}
	}
}

// WithNotifier routes user-facing notices.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithObserver registers a transition observer. It may be given more than
// once.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}

// WithStore shares a result store with the caller.
func WithStore(store *Store) Option {
	return func(c *Controller) {
		if store != nil {
			c.store = store
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPrefill seeds the form values.
func WithPrefill(fields map[string]string) Option {
	return func(c *Controller) {
		c.prefill = fields
	}
}
