package entity

import "aurelia/internal/rng"

// DeriveIdentity draws the immutable identity bundle from a seed string.
// Draw order is part of the persistence contract: seedA, seedB,
// paletteBias, ringTilt, cloudSeed, in that order, one draw each.
func DeriveIdentity(seed string) Identity {
	src := rng.New(seed)
	return Identity{
		Seed:        seed,
		SeedA:       src.Float64(),
		SeedB:       src.Float64(),
		PaletteBias: src.Signed(),
		RingTilt:    src.Signed(),
		CloudSeed:   src.Float64(),
	}
}
