// Package builder: functional options resolved into an immutable config.
package builder

import "math/rand"

const (
	// defaultSeed freezes stochastic constructors when no WithSeed is given.
	defaultSeed = int64(1)

	// defaultPayload is attached to every link unless WithPayload overrides.
	defaultPayload = int64(1)
)

// Option adjusts the builder configuration before constructors run.
type Option func(*config)

// config is the resolved, per-Build configuration handed to constructors.
type config struct {
	seed    int64
	rng     *rand.Rand
	payload func(from, to int) int64
}

// newConfig applies opts over the defaults and seeds the RNG once, so every
// constructor in one Build call draws from the same deterministic stream.
func newConfig(opts ...Option) config {
	c := config{
		seed:    defaultSeed,
		payload: func(int, int) int64 { return defaultPayload },
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.rng = rand.New(rand.NewSource(c.seed))

	return c
}

// WithSeed fixes the RNG seed for stochastic constructors; same seed, same
// options, same constructor order — identical graph.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithPayload sets the payload attached to each produced link as a function
// of its endpoints.
func WithPayload(fn func(from, to int) int64) Option {
	return func(c *config) {
		if fn != nil {
			c.payload = fn
		}
	}
}
