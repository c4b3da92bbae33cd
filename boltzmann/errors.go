// Package boltzmann: sentinel error set. Constructors and update
// operations return these sentinels (wrapped with context where useful);
// tests match them with errors.Is.
package boltzmann

import "errors"

var (
	// ErrNilWeights is returned by constructors when the weight matrix is nil.
	ErrNilWeights = errors.New("boltzmann: weight matrix must not be nil")

	// ErrBiasLength is returned by NewWithBiases when the bias vector length
	// differs from the unit count (the weight matrix side).
	ErrBiasLength = errors.New("boltzmann: bias count must equal unit count")

	// ErrAllExcluded is returned by UpdateOneRandom when the exclusion set
	// covers every unit index (including the vacuous case of a machine with
	// zero units), leaving nothing to sample.
	ErrAllExcluded = errors.New("boltzmann: exclusion set covers every unit")
)
