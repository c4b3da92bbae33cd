// Package boltzmann: functional configuration for machine construction.
// Options select the machine's random source; all numeric behavior is
// fixed by the update rule and carries no switches.
package boltzmann

import "math/rand"

// options holds the gathered construction configuration.
type options struct {
	seed int64
	rand *rand.Rand
}

// Option mutates construction options. Safe to apply repeatedly; the last
// application of a given option wins.
type Option func(*options)

// WithSeed selects the machine's deterministic random stream.
// Policy matches rngFromSeed: seed == 0 means the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand injects an explicit random source, taking precedence over
// WithSeed. The machine assumes exclusive use of r for its lifetime.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// gatherOptions applies opts over defaults and resolves the generator.
func gatherOptions(opts []Option) *rand.Rand {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand != nil {
		return o.rand
	}

	return rngFromSeed(o.seed)
}
