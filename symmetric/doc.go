// Package symmetric stores square symmetric coefficient matrices in packed
// triangular form: n·(n+1)/2 slots instead of n², addressed by unordered
// index pairs.
//
// 🚀 What is packed symmetric storage?
//
//	A symmetric matrix satisfies m[i,j] == m[j,i], so only one triangle
//	needs to exist.  The package keeps the lower triangle (diagonal
//	included) in a flat slice and maps every (i, j) pair onto it.  It is
//	the natural store for pairwise couplings:
//	  • Boltzmann-machine and Hopfield weight matrices
//	  • undirected-graph edge coefficients
//	  • distance / similarity tables
//
// ✨ Key properties:
//   - true aliasing: Set(i, j, v) is observable through At(j, i); the
//     two orderings share one storage slot, so the matrix cannot drift
//     out of symmetry
//   - exactly n·(n+1)/2 slots, verified by PackedLen
//   - bounds-checked accessors returning sentinel errors, never panicking
//     on user input
//
// ⚙️ Usage:
//
//	w, err := symmetric.New(4)
//	if err != nil { ... }
//	_ = w.Set(0, 3, -2.5)   // same slot as (3, 0)
//	v, _ := w.At(3, 0)      // v == -2.5
//
// Performance: At/Set are O(1); New and Clone are O(n²) in the packed
// length (that is, O(n·(n+1)/2)).
package symmetric
