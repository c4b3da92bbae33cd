// Package anneal - derived seed streams for parallel restarts.
//
// Restart r of an experiment runs on seed deriveSeed(base, r): a
// SplitMix64-style mix that decorrelates neighboring stream ids, so
// restarts behave as independent samples while the whole experiment
// stays reproducible from the base seed.
package anneal

// defaultBaseSeed is the fixed “zero” base used when Config.Seed == 0,
// matching the machine-level seed policy.
const defaultBaseSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using the canonical SplitMix64 multipliers/finalizer
// (Vigna 2014): strong bit diffusion, so small input changes produce
// well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
