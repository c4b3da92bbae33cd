// Package anneal drives Boltzmann machines through simulated annealing:
// geometric cooling schedules for a single machine, and parallel
// multi-restart experiments across many independently seeded machines.
//
// 🚀 What is simulated annealing here?
//
//	A machine explores its energy landscape stochastically; temperature
//	controls how often it accepts locally unfavorable states.  A
//	Schedule starts hot (exploration), runs a fixed number of updates
//	per level, and multiplies the temperature by a decay factor until it
//	reaches the floor (exploitation).  Because runs are stochastic,
//	restarting several independently seeded machines and keeping the
//	lowest-energy outcome is the standard experiment shape; RunAll does
//	exactly that on a bounded worker pool.
//
// ✨ Key properties:
//   - reproducible experiments: per-restart seeds are derived from the
//     base seed with a SplitMix64 mix, so a Config replays exactly
//     (run IDs are the only non-deterministic field)
//   - no shared mutable state: the Factory builds a fresh machine per
//     restart, each with its own generator, so workers never contend
//   - honest failure reporting: per-restart errors are joined and
//     returned next to the successful results, sorted by energy
//
// ⚙️ Usage:
//
//	factory := func(seed int64) (*boltzmann.Machine, []int, error) {
//	    m, excl, err := sudoku.NewMachine(board, boltzmann.WithSeed(seed))
//	    return m, excl, err
//	}
//	cfg := anneal.DefaultConfig()
//	cfg.Seed = 42
//	results, err := anneal.RunAll(factory, cfg)
//	if err != nil { ... }
//	best := results[0] // lowest energy
//
// Performance: Run costs O(levels·StepsPerLevel) machine updates; RunAll
// multiplies by Restarts, spread over Workers goroutines.
package anneal
