package silinapse

// Compute is the contract shared by every network building block that maps
// an input vector to an output vector: feed-forward layers, combinators,
// and fixed sources.
//
// Implementations must not retain or mutate the input slice, and must
// return a slice the caller may keep. Input width handling is lenient by
// convention: blocks pad missing inputs with zeros and ignore surplus ones,
// so mismatched stages still compose (see compose.Identity for the explicit
// resize behavior).
type Compute interface {
	// Compute evaluates the block on input and returns a fresh output slice.
	Compute(input []float64) []float64

	// InputSize reports the input width the block was built for.
	InputSize() int

	// OutputSize reports the width of slices returned by Compute.
	OutputSize() int
}
