// Package silinapse is an in-memory toolkit for stochastic neural-network
// experimentation: packed symmetric weight storage, Boltzmann-machine
// dynamics, simulated annealing, and small composable feed-forward pieces.
//
// 🚀 What is silinapse?
//
//	A compact, deterministic-by-default library that brings together:
//		• Packed storage: symmetric coupling matrices in n·(n+1)/2 slots
//		• Boltzmann machines: asynchronous Gibbs updates under temperature
//		• Annealing: geometric cooling schedules + parallel multi-restart runs
//		• Building blocks: activation functions, feed-forward layers,
//		  chain/parallel network combinators
//		• A worked constraint encoding: sudoku as a 729-unit network
//
// ✨ Why choose silinapse?
//
//   - Reproducible – every stochastic operation runs on an injectable,
//     seedable random source; same seed ⇒ same trajectory
//   - Explicit numerics – temperature-zero limits and exponent overflow
//     are defined, not accidental
//   - Small API – constructors validate, methods return errors, no panics
//     on user input
//
// Everything is organized under focused subpackages:
//
//	symmetric/   - packed symmetric coefficient matrix
//	boltzmann/   - the machine: values, biases, stochastic update rules
//	anneal/      - cooling schedules and multi-restart experiment runs
//	activation/  - sigmoid, step, gaussian, identity and derivatives
//	feedforward/ - single dense layer over an activation
//	compose/     - Chain, Parallel, Identity, FixedOutput combinators
//	sudoku/      - the classic demo encoding, one unit per cell/value
//
// The root package defines only the Compute contract shared by network
// building blocks.
//
//	go get github.com/elinorbgr/silinapse
package silinapse
