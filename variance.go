package flicker

import "math/rand/v2"

// Sampler is the single source of randomness for emitters. Every stochastic
// particle parameter is a base value plus Variance(spread).
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler with a reproducible PCG stream for seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// DefaultSampler returns a Sampler seeded by the runtime.
func DefaultSampler() *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Variance returns a value in [-spread, spread]: a magnitude drawn uniformly
// from [0, spread) with a fair, independent sign. A zero spread always
// yields 0.
func (s *Sampler) Variance(spread float64) float64 {
	if spread == 0 {
		return 0
	}
	v := s.rng.Float64() * spread
	if s.rng.IntN(2) == 0 {
		return -v
	}
	return v
}

// Pick returns a uniform index in [0, n). n must be positive.
func (s *Sampler) Pick(n int) int {
	return s.rng.IntN(n)
}
