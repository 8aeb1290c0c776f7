package eventkit

import "github.com/rs/zerolog"

// Option configures a Dispatcher.
type Option func(*config)

// config contains construction-time configuration for a dispatcher.
type config struct {
	// logger records dispatcher activity. Defaults to a no-op logger.
	logger zerolog.Logger

	// queueCapacity preallocates the deferred event queue.
	queueCapacity int
}

// defaultConfig returns the zero-configuration defaults: a silent logger and
// an unsized queue.
func defaultConfig() config {
	return config{
		logger:        zerolog.Nop(),
		queueCapacity: 0,
	}
}

// WithLogger installs a structured logger for dispatcher activity.
// Subscribe, unsubscribe, queue, and prune events are logged at debug level
// and per-dispatch delivery at trace level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithQueueCapacity preallocates capacity for the deferred event queue.
// Values below one are ignored.
func WithQueueCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueCapacity = n
		}
	}
}
