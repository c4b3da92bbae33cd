package activation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elinorbgr/silinapse/activation"
)

// TestSigmoid_Anchors checks the canonical logistic anchor points and the
// symmetry σ(−x) = 1 − σ(x).
func TestSigmoid_Anchors(t *testing.T) {
	assert.Equal(t, 0.5, activation.Sigmoid(0), "σ(0) must be exactly one half")
	assert.InDelta(t, 0.7310585786300049, activation.Sigmoid(1), 1e-12)
	assert.InDelta(t, 0.2689414213699951, activation.Sigmoid(-1), 1e-12)

	assert.InDelta(t, 1, activation.Sigmoid(40), 1e-15, "σ saturates to 1 at +∞")
	assert.InDelta(t, 0, activation.Sigmoid(-40), 1e-15, "σ saturates to 0 at −∞")

	for _, x := range []float64{0.1, 0.5, 2, 7} {
		assert.InDelta(t, 1-activation.Sigmoid(x), activation.Sigmoid(-x), 1e-12,
			"σ(−x) must mirror σ(x) around one half")
	}
}

// TestSigmoid_Monotone spot-checks strict monotonicity on a coarse grid.
func TestSigmoid_Monotone(t *testing.T) {
	prev := math.Inf(-1)
	for x := -6.0; x <= 6.0; x += 0.5 {
		cur := activation.Sigmoid(x)
		assert.Greater(t, cur, prev, "σ must be strictly increasing at x=%g", x)
		prev = cur
	}
}

// TestStep_SignBit verifies the sign-bit semantics, in particular that
// negative zero maps to 0 while positive zero maps to 1.
func TestStep_SignBit(t *testing.T) {
	assert.Equal(t, 1.0, activation.Step(3.5))
	assert.Equal(t, 0.0, activation.Step(-3.5))
	assert.Equal(t, 1.0, activation.Step(0), "+0 is sign-positive")
	assert.Equal(t, 0.0, activation.Step(math.Copysign(0, -1)), "−0 is sign-negative")
}

// TestIdentity confirms pass-through behavior and the constant derivative.
func TestIdentity(t *testing.T) {
	for _, x := range []float64{-2.5, 0, 1, 1e9} {
		assert.Equal(t, x, activation.Identity(x))
		assert.Equal(t, 1.0, activation.IdentityPrime(x))
	}
	assert.Equal(t, 0.0, activation.StepPrime(123), "the step derivative is 0 almost everywhere")
}

// TestGaussian checks the peak, symmetry, and tail decay.
func TestGaussian(t *testing.T) {
	assert.Equal(t, 1.0, activation.Gaussian(0), "the bell peaks at 1")
	for _, x := range []float64{0.5, 1, 3} {
		assert.Equal(t, activation.Gaussian(x), activation.Gaussian(-x), "the bell is even")
	}
	assert.Less(t, activation.Gaussian(3), 1e-3, "tails must vanish")
}

// TestDerivatives_FiniteDifference validates SigmoidPrime and
// GaussianPrime against a central finite difference on a few points.
func TestDerivatives_FiniteDifference(t *testing.T) {
	const h = 1e-6
	diff := func(f activation.Func, x float64) float64 {
		return (f(x+h) - f(x-h)) / (2 * h)
	}

	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		assert.InDelta(t, diff(activation.Sigmoid, x), activation.SigmoidPrime(x), 1e-6,
			"SigmoidPrime must match the slope at x=%g", x)
		assert.InDelta(t, diff(activation.Gaussian, x), activation.GaussianPrime(x), 1e-6,
			"GaussianPrime must match the slope at x=%g", x)
	}
}
