package anneal

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/elinorbgr/silinapse/boltzmann"
)

// Run anneals a single machine through the schedule and returns the run
// record: final energy, a snapshot of the final values, the step count,
// and the elapsed wall time. excluded lists pinned unit indices and is
// only legal in RandomMode (a sweep touches every unit; combining it with
// an exclusion list fails with ErrSweepExcludes).
//
// The machine is mutated in place; callers wanting the initial state back
// must snapshot Values beforehand.
//
// Complexity: O(levels·StepsPerLevel) machine updates plus one O(n²)
// energy evaluation.
func Run(m *boltzmann.Machine, excluded []int, s Schedule) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMachine
	}
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if s.Mode == SweepMode && len(excluded) > 0 {
		return Result{}, ErrSweepExcludes
	}

	start := time.Now()
	steps := 0
	for temp := s.Start; temp > s.Floor; temp *= s.Decay {
		for k := 0; k < s.StepsPerLevel; k++ {
			var err error
			if s.Mode == SweepMode {
				err = m.UpdateAllSequential(temp)
			} else {
				_, err = m.UpdateOneRandom(temp, excluded)
			}
			if err != nil {
				return Result{}, fmt.Errorf("anneal: step %d at T=%g: %w", steps, temp, err)
			}
			steps++
		}
	}

	energy, err := m.Energy()
	if err != nil {
		return Result{}, fmt.Errorf("anneal: final energy: %w", err)
	}
	values := make([]float64, len(m.Values()))
	copy(values, m.Values())

	return Result{
		ID:      uuid.New().String(),
		Energy:  energy,
		Values:  values,
		Steps:   steps,
		Elapsed: time.Since(start),
	}, nil
}

// RunAll executes cfg.Restarts independent annealing runs, at most
// cfg.Workers at a time, each on a fresh machine built by factory from a
// seed derived from cfg.Seed. Successful results are returned sorted by
// ascending energy (ties keep restart order); per-restart failures are
// joined into the returned error alongside whatever succeeded.
//
// The seed derivation is deterministic, so the same factory and Config
// reproduce the same set of runs (IDs aside).
func RunAll(factory Factory, cfg Config) ([]Result, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if cfg.Restarts < 1 || cfg.Workers < 1 {
		return nil, ErrBadConfig
	}
	if err := cfg.Schedule.Validate(); err != nil {
		return nil, err
	}

	base := cfg.Seed
	if base == 0 {
		base = defaultBaseSeed
	}

	results := make([]Result, cfg.Restarts)
	errs := make([]error, cfg.Restarts)

	p := pool.New().WithMaxGoroutines(cfg.Workers)
	for r := 0; r < cfg.Restarts; r++ {
		r := r // per-iteration copy; required for correctness when built as go < 1.22
		seed := deriveSeed(base, uint64(r))
		p.Go(func() {
			m, excluded, err := factory(seed)
			if err != nil {
				errs[r] = fmt.Errorf("anneal: restart %d: factory: %w", r, err)

				return
			}
			res, err := Run(m, excluded, cfg.Schedule)
			if err != nil {
				errs[r] = fmt.Errorf("anneal: restart %d: %w", r, err)

				return
			}
			res.Seed = seed
			results[r] = res
		})
	}
	p.Wait()

	out := make([]Result, 0, cfg.Restarts)
	for r := range results {
		if errs[r] == nil {
			out = append(out, results[r])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Energy < out[j].Energy })

	return out, errors.Join(errs...)
}
