package vmath

import "math"

// FastRand is a xorshift64 generator. Not cryptographic; used for
// spawn placement and fallback headings where reproducibility from a
// seed matters more than distribution quality.
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator from a non-zero seed.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next advances the generator and returns the raw 64-bit state.
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1).
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Angle returns a heading in [0, 2π).
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// Range returns a value in [lo, hi).
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// mix64 is splitmix64 finalization; one-shot hash of a 64-bit value.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// SeededHeading derives a heading in [0, 2π) from an entity seed and a
// time bucket. The same (seed, bucket) pair always yields the same
// heading, which keeps wander behavior reproducible per entity without
// any shared generator state.
func SeededHeading(seed uint64, bucket int64) float64 {
	h := mix64(seed ^ mix64(uint64(bucket)))
	return float64(h>>11) / (1 << 53) * 2 * math.Pi
}
