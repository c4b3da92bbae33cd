package anneal_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinorbgr/silinapse/anneal"
	"github.com/elinorbgr/silinapse/boltzmann"
	"github.com/elinorbgr/silinapse/symmetric"
)

// pairSchedule cools the two-unit inhibitory network deep enough that a
// run always settles in a ground state.
func pairSchedule() anneal.Schedule {
	return anneal.Schedule{Start: 5, Floor: 0.1, Decay: 0.7, StepsPerLevel: 50, Mode: anneal.RandomMode}
}

// newPairMachine builds the canonical two-unit net: w(0,1) = −100,
// biases [10, 10]. Its ground states are [1,0] and [0,1], both energy −10.
func newPairMachine(t *testing.T, opts ...boltzmann.Option) *boltzmann.Machine {
	t.Helper()
	w, err := symmetric.New(2)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 1, -100))
	m, err := boltzmann.NewWithBiases(w, []float64{10, 10}, opts...)
	require.NoError(t, err)

	return m
}

// pairFactory is the assertion-free twin of newPairMachine for RunAll
// factories, which execute on pool goroutines where test assertions must
// not fire.
func pairFactory(seed int64) (*boltzmann.Machine, []int, error) {
	w, err := symmetric.New(2)
	if err != nil {
		return nil, nil, err
	}
	if err = w.Set(0, 1, -100); err != nil {
		return nil, nil, err
	}
	m, err := boltzmann.NewWithBiases(w, []float64{10, 10}, boltzmann.WithSeed(seed))

	return m, nil, err
}

// TestSchedule_Validate sweeps the invalid field combinations and accepts
// the default plan.
func TestSchedule_Validate(t *testing.T) {
	require.NoError(t, anneal.DefaultSchedule().Validate(), "the default schedule must validate")

	bad := []anneal.Schedule{
		{Start: 0, Floor: 0.1, Decay: 0.5, StepsPerLevel: 1},
		{Start: -1, Floor: 0.1, Decay: 0.5, StepsPerLevel: 1},
		{Start: 1, Floor: 0, Decay: 0.5, StepsPerLevel: 1},
		{Start: 1, Floor: -0.1, Decay: 0.5, StepsPerLevel: 1},
		{Start: 1, Floor: 0.1, Decay: 0, StepsPerLevel: 1},
		{Start: 1, Floor: 0.1, Decay: 1, StepsPerLevel: 1},
		{Start: 1, Floor: 0.1, Decay: 1.5, StepsPerLevel: 1},
		{Start: 1, Floor: 0.1, Decay: -0.5, StepsPerLevel: 1},
		{Start: 1, Floor: 0.1, Decay: 0.5, StepsPerLevel: 0},
		{Start: 1, Floor: 0.1, Decay: 0.5, StepsPerLevel: 1, Mode: anneal.Mode(7)},
	}
	for i, s := range bad {
		assert.ErrorIs(t, s.Validate(), anneal.ErrBadSchedule, "case %d must be rejected", i)
	}
}

// TestRun_NilMachine checks the nil guard.
func TestRun_NilMachine(t *testing.T) {
	_, err := anneal.Run(nil, nil, anneal.DefaultSchedule())
	assert.ErrorIs(t, err, anneal.ErrNilMachine)
}

// TestRun_SweepModeRejectsExclusions ensures pinned indices cannot be
// silently trampled by a full sweep.
func TestRun_SweepModeRejectsExclusions(t *testing.T) {
	m := newPairMachine(t)
	s := pairSchedule()
	s.Mode = anneal.SweepMode

	_, err := anneal.Run(m, []int{0}, s)
	assert.ErrorIs(t, err, anneal.ErrSweepExcludes)
}

// TestRun_TwoUnitGroundState anneals the inhibitory pair and requires a
// ground state: exactly one unit on, energy −10, and the full step count
// of 11 levels × 50 steps.
func TestRun_TwoUnitGroundState(t *testing.T) {
	m := newPairMachine(t, boltzmann.WithSeed(11))

	res, err := anneal.Run(m, nil, pairSchedule())
	require.NoError(t, err)

	assert.Equal(t, 550, res.Steps, "5·0.7^k stays above 0.1 for 11 levels")
	assert.InDelta(t, -10, res.Energy, 1e-12, "the pair's ground energy is −10")
	assert.Contains(t, [][]float64{{1, 0}, {0, 1}}, res.Values, "exactly one unit may stay on")
	assert.NotEmpty(t, res.ID, "every run gets an identifier")
	assert.Zero(t, res.Seed, "direct Run calls leave Seed unset")
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}

// TestRun_RespectsExclusion pins unit 0 and forbids the run from touching
// it; the free unit must settle against the pinned field.
func TestRun_RespectsExclusion(t *testing.T) {
	m := newPairMachine(t, boltzmann.WithSeed(4))
	m.Values()[0] = 1

	res, err := anneal.Run(m, []int{0}, pairSchedule())
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, res.Values, "unit 1 must settle off against the pinned unit")
	assert.InDelta(t, -10, res.Energy, 1e-12)
}

// TestRun_StartBelowFloor is the zero-level edge: no steps run and the
// result reports the initial state's energy.
func TestRun_StartBelowFloor(t *testing.T) {
	w, err := symmetric.New(1)
	require.NoError(t, err)
	m, err := boltzmann.New(w)
	require.NoError(t, err)

	res, err := anneal.Run(m, nil, anneal.Schedule{Start: 0.05, Floor: 0.1, Decay: 0.5, StepsPerLevel: 10})
	require.NoError(t, err)
	assert.Zero(t, res.Steps, "Start ≤ Floor must run zero levels")
	assert.Zero(t, res.Energy, "zero bias and no couplings give zero energy")
	assert.Equal(t, []float64{1}, res.Values)
}

// TestRunAll_Deterministic runs the same experiment twice and requires
// identical derived seeds and energies (run IDs are the only varying
// field).
func TestRunAll_Deterministic(t *testing.T) {
	cfg := anneal.Config{Schedule: pairSchedule(), Restarts: 6, Workers: 3, Seed: 42}

	first, err := anneal.RunAll(pairFactory, cfg)
	require.NoError(t, err)
	second, err := anneal.RunAll(pairFactory, cfg)
	require.NoError(t, err)

	require.Len(t, first, 6)
	require.Len(t, second, 6)
	for i := range first {
		assert.Equal(t, first[i].Seed, second[i].Seed, "derived seeds must replay at rank %d", i)
		assert.Equal(t, first[i].Energy, second[i].Energy, "energies must replay at rank %d", i)
		assert.Equal(t, first[i].Values, second[i].Values, "states must replay at rank %d", i)
		assert.InDelta(t, -10, first[i].Energy, 1e-12, "every restart must reach the ground state")
	}

	ids := map[string]bool{}
	for _, r := range first {
		ids[r.ID] = true
	}
	assert.Len(t, ids, 6, "run IDs must be unique")
}

// TestRunAll_WorkerInvariance checks that parallelism never changes
// outcomes: one worker and three workers produce identical runs, because
// every restart owns its machine and seed.
func TestRunAll_WorkerInvariance(t *testing.T) {
	serial := anneal.Config{Schedule: pairSchedule(), Restarts: 5, Workers: 1, Seed: 9}
	parallel := serial
	parallel.Workers = 3

	a, err := anneal.RunAll(pairFactory, serial)
	require.NoError(t, err)
	b, err := anneal.RunAll(pairFactory, parallel)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Seed, b[i].Seed, "worker count must not change seed assignment")
		assert.Equal(t, a[i].Values, b[i].Values, "worker count must not change outcomes")
	}
}

// TestRunAll_SortsByEnergy gives every restart a different single-unit
// network (bias 1..5) whose settled energy is −bias, and requires the
// results in ascending energy order.
func TestRunAll_SortsByEnergy(t *testing.T) {
	var calls atomic.Int64
	factory := func(seed int64) (*boltzmann.Machine, []int, error) {
		bias := float64(calls.Add(1)) // 1, 2, ..., Restarts in call order
		w, err := symmetric.New(1)
		if err != nil {
			return nil, nil, err
		}
		m, err := boltzmann.NewWithBiases(w, []float64{bias}, boltzmann.WithSeed(seed))

		return m, nil, err
	}
	cfg := anneal.Config{
		Schedule: anneal.Schedule{Start: 2, Floor: 0.01, Decay: 0.5, StepsPerLevel: 20, Mode: anneal.RandomMode},
		Restarts: 5,
		Workers:  2,
		Seed:     7,
	}

	results, err := anneal.RunAll(factory, cfg)
	require.NoError(t, err)
	require.Len(t, results, 5)

	energies := make([]float64, len(results))
	for i, r := range results {
		energies[i] = r.Energy
	}
	assert.Equal(t, []float64{-5, -4, -3, -2, -1}, energies, "results must arrive sorted by ascending energy")
}

// TestRunAll_JoinsFactoryErrors returns the joined failure while keeping
// the successful runs.
func TestRunAll_JoinsFactoryErrors(t *testing.T) {
	boom := errors.New("no machine today")
	var calls atomic.Int64
	factory := func(seed int64) (*boltzmann.Machine, []int, error) {
		if calls.Add(1)%2 == 0 {
			return nil, nil, boom
		}

		return pairFactory(seed)
	}
	cfg := anneal.Config{Schedule: pairSchedule(), Restarts: 4, Workers: 2, Seed: 5}

	results, err := anneal.RunAll(factory, cfg)
	assert.ErrorIs(t, err, boom, "factory failures must surface in the joined error")
	assert.Len(t, results, 2, "successful restarts must still be returned")
	for _, r := range results {
		assert.InDelta(t, -10, r.Energy, 1e-12)
	}
}

// TestRunAll_PropagatesMachineErrors drives the degenerate exclusion
// through a full run: every restart fails with ErrAllExcluded.
func TestRunAll_PropagatesMachineErrors(t *testing.T) {
	factory := func(seed int64) (*boltzmann.Machine, []int, error) {
		m, _, err := pairFactory(seed)

		return m, []int{0, 1}, err // everything pinned: nothing to sample
	}
	cfg := anneal.Config{Schedule: pairSchedule(), Restarts: 2, Workers: 2}

	results, err := anneal.RunAll(factory, cfg)
	assert.ErrorIs(t, err, boltzmann.ErrAllExcluded)
	assert.Empty(t, results, "no restart can succeed with a fully pinned machine")
}

// TestRunAll_ConfigGuards covers the argument validation.
func TestRunAll_ConfigGuards(t *testing.T) {
	_, err := anneal.RunAll(nil, anneal.DefaultConfig())
	assert.ErrorIs(t, err, anneal.ErrNilFactory)

	cfg := anneal.DefaultConfig()
	cfg.Restarts = 0
	_, err = anneal.RunAll(pairFactory, cfg)
	assert.ErrorIs(t, err, anneal.ErrBadConfig)

	cfg = anneal.DefaultConfig()
	cfg.Workers = 0
	_, err = anneal.RunAll(pairFactory, cfg)
	assert.ErrorIs(t, err, anneal.ErrBadConfig)

	cfg = anneal.DefaultConfig()
	cfg.Schedule.Decay = 2
	_, err = anneal.RunAll(pairFactory, cfg)
	assert.ErrorIs(t, err, anneal.ErrBadSchedule)
}
