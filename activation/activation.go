// Package activation provides the classic scalar activation functions and
// their derivatives for feed-forward evaluation: identity, logistic
// sigmoid, Heaviside step, and gaussian. All functions are pure and
// allocation-free.
package activation

import "math"

// Func is the shared shape of every activation: a scalar map applied
// element-wise to layer outputs.
type Func func(float64) float64

// Identity returns x unchanged.
func Identity(x float64) float64 { return x }

// IdentityPrime is the derivative of Identity: 1 everywhere.
func IdentityPrime(float64) float64 { return 1 }

// Sigmoid is the logistic function σ(x) = 1/(1+exp(−x)): 0 at −∞, ½ at 0,
// 1 at +∞, strictly increasing.
func Sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// SigmoidPrime is the derivative σ(x)·(1−σ(x)), maximal (¼) at 0.
func SigmoidPrime(x float64) float64 {
	s := Sigmoid(x)

	return s * (1 - s)
}

// Step is the Heaviside step on the sign bit: 1 for sign-positive inputs
// (including +0), 0 for sign-negative ones (including −0).
func Step(x float64) float64 {
	if math.Signbit(x) {
		return 0
	}

	return 1
}

// StepPrime is the derivative of Step: 0 almost everywhere (the jump at
// the origin is ignored).
func StepPrime(float64) float64 { return 0 }

// Gaussian is the bell curve exp(−x²): 1 at 0, vanishing in both tails.
func Gaussian(x float64) float64 { return math.Exp(-x * x) }

// GaussianPrime is the derivative −2x·exp(−x²).
func GaussianPrime(x float64) float64 { return -2 * x * math.Exp(-x*x) }
