// Package feedforward implements a single dense network layer: an input
// vector mapped through per-connection weights and per-output biases,
// then through a scalar activation.
//
// A fresh layer is the neutral summing stage (every weight 1, every bias
// 0); with explicit parameters via NewFromWeights it evaluates arbitrary
// dense layers. Layer satisfies the silinapse.Compute contract, so layers
// compose with the compose package combinators.
package feedforward

import (
	"errors"
	"fmt"

	"github.com/elinorbgr/silinapse"
	"github.com/elinorbgr/silinapse/activation"
)

var (
	// ErrBadShape is returned when a layer dimension is negative.
	ErrBadShape = errors.New("feedforward: layer dimensions must be non-negative")

	// ErrParamLength is returned by NewFromWeights when a parameter slice
	// does not match the layer shape.
	ErrParamLength = errors.New("feedforward: parameter length mismatch")

	// ErrNilActivation is returned when no activation function is supplied.
	ErrNilActivation = errors.New("feedforward: activation must not be nil")
)

// Layer is a dense feed-forward stage. Weights are input-major:
// weights[i·outputs + j] couples input i to output j.
type Layer struct {
	inputs  int
	outputs int
	weights []float64
	biases  []float64
	act     activation.Func
}

var _ silinapse.Compute = (*Layer)(nil)

// New builds an inputs×outputs layer with every weight set to 1 and every
// bias set to 0, evaluating act on each output sum.
// Returns ErrBadShape on negative dimensions and ErrNilActivation when
// act is nil.
//
// Complexity: O(inputs·outputs) time and memory.
func New(inputs, outputs int, act activation.Func) (*Layer, error) {
	if inputs < 0 || outputs < 0 {
		return nil, ErrBadShape
	}
	if act == nil {
		return nil, ErrNilActivation
	}
	w := make([]float64, inputs*outputs)
	for i := range w {
		w[i] = 1
	}

	return &Layer{
		inputs:  inputs,
		outputs: outputs,
		weights: w,
		biases:  make([]float64, outputs),
		act:     act,
	}, nil
}

// NewFromWeights builds a layer from explicit parameters: weights must
// hold inputs·outputs values in input-major order, biases one value per
// output. Both slices are copied, so the caller keeps ownership.
// Returns ErrParamLength (wrapped with the offending lengths) on any
// mismatch, plus New's shape and activation errors.
//
// Complexity: O(inputs·outputs) time and memory.
func NewFromWeights(inputs, outputs int, weights, biases []float64, act activation.Func) (*Layer, error) {
	if inputs < 0 || outputs < 0 {
		return nil, ErrBadShape
	}
	if act == nil {
		return nil, ErrNilActivation
	}
	if len(weights) != inputs*outputs {
		return nil, fmt.Errorf("feedforward: NewFromWeights: %d weights for a %d×%d layer: %w",
			len(weights), inputs, outputs, ErrParamLength)
	}
	if len(biases) != outputs {
		return nil, fmt.Errorf("feedforward: NewFromWeights: %d biases for %d outputs: %w",
			len(biases), outputs, ErrParamLength)
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	b := make([]float64, len(biases))
	copy(b, biases)

	return &Layer{inputs: inputs, outputs: outputs, weights: w, biases: b, act: act}, nil
}

// Compute evaluates the layer: outⱼ = act(bⱼ + Σᵢ inputᵢ·w[i·outputs+j]).
//
// Input width is lenient: entries beyond the layer's input width are
// ignored, and missing inputs contribute nothing to the sums (implicit
// zero padding). The returned slice is freshly allocated.
//
// Complexity: O(inputs·outputs) time.
func (l *Layer) Compute(input []float64) []float64 {
	out := make([]float64, l.outputs)
	copy(out, l.biases)

	n := min(l.inputs, len(input))
	for i := 0; i < n; i++ {
		row := l.weights[i*l.outputs : (i+1)*l.outputs]
		for j, w := range row {
			out[j] += input[i] * w
		}
	}
	for j := range out {
		out[j] = l.act(out[j])
	}

	return out
}

// InputSize reports the input width the layer was built for.
func (l *Layer) InputSize() int { return l.inputs }

// OutputSize reports the number of outputs Compute produces.
func (l *Layer) OutputSize() int { return l.outputs }
