// Package rng holds the deterministic generators behind every procedural
// value in the entity: identity seeds, epoch visuals, dialogue variants.
// Both generators must stay bit-reproducible across devices and sessions,
// so the exact integer recurrences below are load-bearing.
package rng

import "math"

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// Fold hashes a seed string into the generator's 32-bit starting state
// (FNV-1a over the UTF-8 bytes).
func Fold(seed string) uint32 {
	h := fnvOffset
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= fnvPrime
	}
	return h
}

// Source is a seeded deterministic generator. Each Float64 call advances
// the state by one mulberry-style xorshift-multiply step.
type Source struct {
	state uint32
}

// New creates a Source from a seed string. Equal seeds produce equal
// draw sequences forever.
func New(seed string) *Source {
	return &Source{state: Fold(seed)}
}

// Float64 returns the next draw in [0,1).
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (1 | t)
	t ^= t + (t^(t>>7))*(61|t)
	return float64(t^(t>>14)) / 4294967296.0
}

// Signed returns the next draw mapped to [-1,1).
func (s *Source) Signed() float64 {
	return s.Float64()*2 - 1
}

// Hash01 maps an arbitrary float to a pseudo-random value in [0,1) using
// the sin-fract construction common in procedural shaders. Unlike Source
// it is stateless: equal inputs give equal outputs.
func Hash01(base float64) float64 {
	return frac(math.Sin(base) * 43758.5453)
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
