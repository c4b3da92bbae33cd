// Package anneal defines the schedule, configuration, and result types
// plus the sentinel errors for annealing runs.
package anneal

import (
	"errors"
	"math"
	"time"

	"github.com/elinorbgr/silinapse/boltzmann"
)

// Sentinel errors for annealing operations.
var (
	// ErrBadSchedule indicates an invalid cooling plan (see Schedule.Validate).
	ErrBadSchedule = errors.New("anneal: invalid schedule")
	// ErrBadConfig indicates non-positive restart or worker counts.
	ErrBadConfig = errors.New("anneal: restarts and workers must be positive")
	// ErrNilMachine indicates Run was handed a nil machine.
	ErrNilMachine = errors.New("anneal: machine must not be nil")
	// ErrNilFactory indicates RunAll was handed a nil factory.
	ErrNilFactory = errors.New("anneal: factory must not be nil")
	// ErrSweepExcludes indicates an exclusion list combined with SweepMode:
	// a full sweep updates every unit and cannot honor pinned indices.
	ErrSweepExcludes = errors.New("anneal: sweep mode cannot honor an exclusion list")
)

// Mode selects which machine update drives each annealing step.
type Mode int

const (
	// RandomMode performs single randomized unit updates (UpdateOneRandom).
	// The only mode that honors an exclusion list, and the usual choice
	// for constraint encodings with pinned givens.
	RandomMode Mode = iota

	// SweepMode performs full asynchronous sweeps (UpdateAllSequential),
	// touching every unit once per step in index order.
	SweepMode
)

// Schedule is a geometric cooling plan: StepsPerLevel updates run at each
// temperature level, then the temperature is multiplied by Decay, until
// it falls to Floor or below. A Start at or below Floor yields a zero-step
// run that just reports the machine's current energy.
type Schedule struct {
	// Start is the initial temperature; must be positive and finite.
	Start float64
	// Floor is the stopping temperature; must be positive and finite
	// (a geometric decay never reaches 0).
	Floor float64
	// Decay is the per-level multiplier; must lie strictly in (0, 1).
	Decay float64
	// StepsPerLevel is the number of updates per temperature level; ≥ 1.
	StepsPerLevel int
	// Mode selects sweep or randomized stepping.
	Mode Mode
}

// DefaultSchedule returns a moderate general-purpose plan: start at 10,
// cool by 10% per level down to 0.1, 100 randomized updates per level.
func DefaultSchedule() Schedule {
	return Schedule{Start: 10, Floor: 0.1, Decay: 0.9, StepsPerLevel: 100, Mode: RandomMode}
}

// Validate reports ErrBadSchedule unless every field is usable: positive
// finite temperatures, Decay in (0, 1), at least one step per level, and
// a known mode.
func (s Schedule) Validate() error {
	if math.IsNaN(s.Start) || math.IsInf(s.Start, 0) || s.Start <= 0 {
		return ErrBadSchedule
	}
	if math.IsNaN(s.Floor) || math.IsInf(s.Floor, 0) || s.Floor <= 0 {
		return ErrBadSchedule
	}
	if math.IsNaN(s.Decay) || s.Decay <= 0 || s.Decay >= 1 {
		return ErrBadSchedule
	}
	if s.StepsPerLevel < 1 {
		return ErrBadSchedule
	}
	if s.Mode != RandomMode && s.Mode != SweepMode {
		return ErrBadSchedule
	}

	return nil
}

// Result records one completed annealing run.
type Result struct {
	// ID is a unique identifier for the run (UUID), for logs and reports.
	ID string
	// Seed is the machine seed this run was built from. Filled by RunAll;
	// zero for direct Run calls, where the caller already knows the seed.
	Seed int64
	// Energy is the machine energy of the final state.
	Energy float64
	// Values is a snapshot of the final unit values.
	Values []float64
	// Steps is the number of updates performed.
	Steps int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Factory builds a fresh machine and its exclusion list for one restart.
// Implementations must seed the machine from the given seed (for example
// boltzmann.WithSeed(seed)) so restarts are independent and the whole
// experiment replays from Config.Seed. Machines must never be shared
// between restarts: each runs on its own goroutine.
type Factory func(seed int64) (*boltzmann.Machine, []int, error)

// Config drives RunAll.
type Config struct {
	// Schedule is the cooling plan applied to every restart.
	Schedule Schedule
	// Restarts is the number of independent runs; ≥ 1.
	Restarts int
	// Workers bounds the number of concurrently running restarts; ≥ 1.
	Workers int
	// Seed is the base seed; per-restart seeds are derived from it.
	// Policy matches the machine's: 0 means the fixed default base.
	Seed int64
}

// DefaultConfig returns the default experiment shape: 8 restarts on 4
// workers under DefaultSchedule.
func DefaultConfig() Config {
	return Config{Schedule: DefaultSchedule(), Restarts: 8, Workers: 4}
}
