package store

import "time"

type config struct {
	maxItems      int
	sink          Sink
	sweepInterval time.Duration
}

// Option configures a Store at construction time.
type Option func(*config)

// WithMaxItems sets the soft capacity that triggers a cleanup sweep on
// write. Non-positive values fall back to DefaultMaxItems.
func WithMaxItems(n int) Option {
	return func(c *config) {
		c.maxItems = n
	}
}

// WithSink attaches a sink that receives a copy of every audit entry.
func WithSink(s Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}

// WithSweepInterval starts a background sweeper that runs CleanupExpired
// on the given cadence. A non-positive interval leaves the sweeper off,
// which is the default.
func WithSweepInterval(d time.Duration) Option {
	return func(c *config) {
		c.sweepInterval = d
	}
}
