// Package boltzmann simulates Boltzmann machines: networks of stochastic
// binary units coupled through a packed symmetric weight matrix, updated
// asynchronously under a temperature parameter.
//
// 🚀 What is a Boltzmann machine?
//
//	Each unit i carries a value (conventionally 0 or 1), a bias bᵢ, and
//	symmetric couplings w(i,j) to every other unit.  An update computes
//	the local field
//
//	  fieldᵢ = bᵢ + Σ_{j≠i} vⱼ·w(i,j)
//
//	and turns the unit on with probability σ(fieldᵢ/T), the logistic
//	function of the field over the temperature.  High temperature
//	flattens the probability toward ½ (exploration); low temperature
//	sharpens it toward a deterministic threshold at field = 0
//	(annealing/exploitation).  Used for:
//	  • constraint satisfaction via inhibitory couplings (see sudoku/)
//	  • energy-landscape exploration and simulated annealing (see anneal/)
//	  • Gibbs-sampling experiments on small binary networks
//
// ✨ Key guarantees:
//   - asynchronous semantics: UpdateAllSequential processes units in
//     index order and every unit sees the already-updated values of
//     lower-indexed units within the same sweep
//   - defined numeric edges: temperature 0 is the saturating threshold
//     limit (field>0 ⇒ on, field<0 ⇒ off, field==0 ⇒ fair coin), and the
//     exponent is clamped before exp so no overflow reaches the caller
//   - reproducibility: one uniform draw per unit update, sourced from an
//     injectable generator (WithSeed / WithRand); same seed ⇒ identical
//     trajectory
//   - fail-fast degeneracy: UpdateOneRandom reports ErrAllExcluded when
//     the exclusion set covers every unit instead of spinning forever
//
// ⚙️ Usage:
//
//	w, _ := symmetric.New(2)
//	_ = w.Set(0, 1, -100)
//	m, err := boltzmann.NewWithBiases(w, []float64{10, 10}, boltzmann.WithSeed(7))
//	if err != nil { ... }
//	m.Values()[0] = 1                       // pin unit 0
//	_, _ = m.UpdateOneRandom(1.0, []int{0}) // anneal the rest
//
// Performance: one unit update is O(n) over the couplings; a full sweep
// is O(n²). No allocations in the sweep hot path.
package boltzmann
