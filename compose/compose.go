// Package compose provides the combinators that assemble Compute blocks
// into networks: fixed-width pass-through (Identity), constant sources
// (FixedOutput), sequential wiring (Chain), and side-by-side evaluation
// (Parallel).
//
// Width mismatches between stages are legal: every block pads missing
// inputs with zeros and ignores surplus ones, so an Identity stage
// doubles as an explicit resize.
package compose

import (
	"errors"

	"github.com/elinorbgr/silinapse"
)

var (
	// ErrBadSize is returned by NewIdentity for a negative width.
	ErrBadSize = errors.New("compose: identity size must be non-negative")

	// ErrNilStage is returned by NewChain and NewParallel when a stage is nil.
	ErrNilStage = errors.New("compose: stage must not be nil")
)

// Identity is a fixed-width pass-through: input truncated or zero-padded
// to exactly size values.
type Identity struct {
	size int
}

var _ silinapse.Compute = (*Identity)(nil)

// NewIdentity builds a pass-through of the given width.
func NewIdentity(size int) (*Identity, error) {
	if size < 0 {
		return nil, ErrBadSize
	}

	return &Identity{size: size}, nil
}

// Compute returns the first size inputs, zero-padded when input is short.
func (c *Identity) Compute(input []float64) []float64 {
	out := make([]float64, c.size)
	copy(out, input)

	return out
}

// InputSize reports the pass-through width.
func (c *Identity) InputSize() int { return c.size }

// OutputSize reports the pass-through width.
func (c *Identity) OutputSize() int { return c.size }

// FixedOutput ignores its input and emits a constant vector; it is the
// usual way to feed a pinned pattern into a chain.
type FixedOutput struct {
	out []float64
}

var _ silinapse.Compute = (*FixedOutput)(nil)

// NewFixedOutput builds a constant source. The vector is copied, so the
// caller keeps ownership of out.
func NewFixedOutput(out []float64) *FixedOutput {
	cp := make([]float64, len(out))
	copy(cp, out)

	return &FixedOutput{out: cp}
}

// Compute returns a fresh copy of the fixed vector, whatever the input.
func (c *FixedOutput) Compute(_ []float64) []float64 {
	cp := make([]float64, len(c.out))
	copy(cp, c.out)

	return cp
}

// InputSize is 0: a constant source consumes nothing.
func (c *FixedOutput) InputSize() int { return 0 }

// OutputSize reports the fixed vector's length.
func (c *FixedOutput) OutputSize() int { return len(c.out) }

// Chain feeds the output of first into second.
type Chain struct {
	first  silinapse.Compute
	second silinapse.Compute
}

var _ silinapse.Compute = (*Chain)(nil)

// NewChain wires two stages in sequence. Returns ErrNilStage when either
// stage is nil. Width mismatch between the stages is not an error: the
// second stage's lenient input handling resolves it.
func NewChain(first, second silinapse.Compute) (*Chain, error) {
	if first == nil || second == nil {
		return nil, ErrNilStage
	}

	return &Chain{first: first, second: second}, nil
}

// Compute evaluates second(first(input)).
func (c *Chain) Compute(input []float64) []float64 {
	return c.second.Compute(c.first.Compute(input))
}

// InputSize reports the first stage's input width.
func (c *Chain) InputSize() int { return c.first.InputSize() }

// OutputSize reports the second stage's output width.
func (c *Chain) OutputSize() int { return c.second.OutputSize() }

// Parallel evaluates two stages on the same input and concatenates their
// outputs, first's values leading.
type Parallel struct {
	first  silinapse.Compute
	second silinapse.Compute
}

var _ silinapse.Compute = (*Parallel)(nil)

// NewParallel wires two stages side by side. Returns ErrNilStage when
// either stage is nil.
func NewParallel(first, second silinapse.Compute) (*Parallel, error) {
	if first == nil || second == nil {
		return nil, ErrNilStage
	}

	return &Parallel{first: first, second: second}, nil
}

// Compute returns first(input) followed by second(input) in one slice.
func (c *Parallel) Compute(input []float64) []float64 {
	a := c.first.Compute(input)
	b := c.second.Compute(input)
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// InputSize reports the wider of the two stages' input widths.
func (c *Parallel) InputSize() int {
	return max(c.first.InputSize(), c.second.InputSize())
}

// OutputSize reports the sum of the two stages' output widths.
func (c *Parallel) OutputSize() int {
	return c.first.OutputSize() + c.second.OutputSize()
}
