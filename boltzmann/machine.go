package boltzmann

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/elinorbgr/silinapse/symmetric"
)

// expArgLimit bounds the argument handed to math.Exp. Beyond ±709 the
// result over/underflows float64, so the acceptance probability saturates
// to exactly 0 or 1 instead of passing ±Inf through the division.
const expArgLimit = 709.0

// Machine is a Boltzmann machine over n stochastic units.
//
// Invariant: len(values) == len(biases) == weights.Size() == n for the
// machine's whole lifetime; the network is never resized.
//
// values holds the unit states, conventionally 0 or 1 after updates,
// though callers may deposit any float64 through Values to pin or seed
// units. biases and weights are owned exclusively by the machine; the
// diagonal of weights is storable but never enters any local field.
type Machine struct {
	values  []float64
	biases  []float64
	weights *symmetric.Matrix
	rng     *rand.Rand
}

// New creates a machine over weights with every unit value set to 1 and
// every bias set to 0. The machine takes ownership of weights: callers
// must not retain or mutate the matrix afterwards.
// Returns ErrNilWeights when weights is nil.
//
// Complexity: O(n) time and memory beyond the adopted matrix.
func New(weights *symmetric.Matrix, opts ...Option) (*Machine, error) {
	if weights == nil {
		return nil, ErrNilWeights
	}
	n := weights.Size()
	values := make([]float64, n)
	for i := range values {
		values[i] = 1
	}

	return &Machine{
		values:  values,
		biases:  make([]float64, n),
		weights: weights,
		rng:     gatherOptions(opts),
	}, nil
}

// NewWithBiases creates a machine like New but with explicit per-unit
// biases. The bias vector is copied, so the caller keeps ownership of its
// slice. Returns ErrBiasLength (wrapped with both lengths) when
// len(biases) != weights.Size(), and ErrNilWeights when weights is nil.
//
// Complexity: O(n) time and memory beyond the adopted matrix.
func NewWithBiases(weights *symmetric.Matrix, biases []float64, opts ...Option) (*Machine, error) {
	if weights == nil {
		return nil, ErrNilWeights
	}
	if len(biases) != weights.Size() {
		return nil, fmt.Errorf("boltzmann: NewWithBiases: %d biases for %d units: %w",
			len(biases), weights.Size(), ErrBiasLength)
	}
	m, err := New(weights, opts...)
	if err != nil {
		return nil, err
	}
	copy(m.biases, biases)

	return m, nil
}

// Size returns the unit count n.
// Complexity: O(1).
func (m *Machine) Size() int {
	return len(m.values)
}

// Values returns the live unit-value slice, the machine's sole externally
// mutable surface. The slice aliases internal state: reads observe the
// current unit values and writes pin or seed units in place (for example,
// clamping given units before running updates). Its length never changes.
// Complexity: O(1).
func (m *Machine) Values() []float64 {
	return m.values
}

// UpdateAllSequential performs one asynchronous sweep: every unit, in
// index order 0..n, recomputes its local field against the CURRENT values
// and redraws its state. Lower-indexed units updated earlier in the sweep
// are therefore visible to higher-indexed ones within the same call; the
// sweep is a sequential Gibbs pass, not a double-buffered update.
//
// Each unit consumes exactly one uniform draw from the machine's
// generator. Temperature 0 is the saturating threshold limit; negative
// temperature inverts the rule (anti-threshold) and is passed through
// unmodified.
//
// Complexity: O(n²) time, no allocations.
func (m *Machine) UpdateAllSequential(temperature float64) error {
	for i := range m.values {
		if err := m.updateUnit(i, temperature); err != nil {
			return err
		}
	}

	return nil
}

// UpdateOneRandom redraws the state of a single unit chosen uniformly at
// random from [0, n) by rejection sampling until the chosen index is not
// in excluded, then applies the same acceptance rule as a sweep step.
// It returns the index that was updated.
//
// excluded entries that are duplicated or outside [0, n) are ignored.
// When the remaining exclusion set covers every unit (or the machine has
// zero units), UpdateOneRandom fails fast with ErrAllExcluded before
// consuming any randomness, rather than sampling forever.
//
// Draw order: one integer draw per rejection round, then exactly one
// uniform acceptance draw for the chosen unit.
//
// Complexity: O(n + len(excluded)) expected time.
func (m *Machine) UpdateOneRandom(temperature float64, excluded []int) (int, error) {
	n := len(m.values)
	banned := make([]bool, n)
	remaining := n
	for _, idx := range excluded {
		if idx < 0 || idx >= n || banned[idx] {
			continue
		}
		banned[idx] = true
		remaining--
	}
	if remaining == 0 {
		return 0, ErrAllExcluded
	}

	i := m.rng.Intn(n)
	for banned[i] {
		i = m.rng.Intn(n)
	}
	if err := m.updateUnit(i, temperature); err != nil {
		return 0, err
	}

	return i, nil
}

// Energy returns the network energy of the current state:
//
//	E = −Σ_{i<j} w(i,j)·vᵢ·vⱼ − Σ_i bᵢ·vᵢ
//
// Self-couplings are excluded, matching the local-field rule, so the
// update dynamics perform stochastic descent on this quantity at low
// temperature.
//
// Complexity: O(n²) time.
func (m *Machine) Energy() (float64, error) {
	var e float64
	for i := range m.values {
		e -= m.biases[i] * m.values[i]
		for j := 0; j < i; j++ {
			w, err := m.weights.At(i, j)
			if err != nil {
				return 0, err
			}
			e -= w * m.values[i] * m.values[j]
		}
	}

	return e, nil
}

// localField computes bᵢ + Σ_{j≠i} vⱼ·w(i,j) over the current values.
// Complexity: O(n).
func (m *Machine) localField(i int) (float64, error) {
	field := m.biases[i]
	for j := range m.values {
		if j == i {
			continue
		}
		w, err := m.weights.At(i, j)
		if err != nil {
			return 0, err
		}
		field += m.values[j] * w
	}

	return field, nil
}

// updateUnit redraws unit i: on with probability acceptProb(field, T),
// off otherwise. Consumes exactly one uniform draw.
func (m *Machine) updateUnit(i int, temperature float64) error {
	field, err := m.localField(i)
	if err != nil {
		return err
	}
	if m.rng.Float64() < acceptProb(field, temperature) {
		m.values[i] = 1
	} else {
		m.values[i] = 0
	}

	return nil
}

// acceptProb is the stochastic acceptance rule: the logistic function of
// field/temperature, σ(x) = 1/(1+exp(−x)).
//
// Numeric edges are fixed here: temperature 0 returns the threshold limit
// (field>0 ⇒ 1, field<0 ⇒ 0, field==0 ⇒ 0.5, the two-sided logistic
// limit), and exponent arguments beyond ±expArgLimit saturate to exactly
// 0 or 1 before math.Exp can overflow.
// Complexity: O(1).
func acceptProb(field, temperature float64) float64 {
	if temperature == 0 {
		switch {
		case field > 0:
			return 1
		case field < 0:
			return 0
		default:
			return 0.5
		}
	}
	x := -field / temperature
	switch {
	case x > expArgLimit:
		return 0
	case x < -expArgLimit:
		return 1
	}

	return 1 / (1 + math.Exp(x))
}
