package boltzmann

// AcceptProb exposes the private acceptance rule for white-box tests of
// the numeric edge cases (temperature zero, exponent clamping).
var AcceptProb = acceptProb
