// Package boltzmann - deterministic random source policy.
//
// Every stochastic update draws from a *rand.Rand owned by the machine.
// No time-based or global sources are consulted anywhere: same seed ⇒
// identical update trajectory across platforms.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A machine owns its generator
//     exclusively; do not share one generator between machines that may
//     update concurrently.
package boltzmann

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
