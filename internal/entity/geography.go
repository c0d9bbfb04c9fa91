package entity

import "math"

// Geography drift rate bounds. The ease rate scales with entry intensity
// but never jumps: coordinates move by linear interpolation only.
const (
	geoRateFloor = 0.006
	geoRateScale = 0.03
	geoRateCeil  = 0.05
)

// geographyTarget is the deterministic point long memory pulls the
// coordinates toward. frac keeps both components in [0,1).
func (st *State) geographyTarget() (float64, float64) {
	lm := st.LongMemory
	a := frac(st.Identity.SeedA +
		0.37*lm.Conflict +
		0.29*lm.Curiosity +
		0.11*((lm.Sentiment+1)/2))
	b := frac(st.Identity.SeedB +
		0.33*lm.Stability +
		0.21*lm.Curiosity +
		0.17*(1-math.Abs(lm.Sentiment)))
	return a, b
}

// driftGeography eases the coordinates toward the current target. Called
// after every long-memory update.
func (st *State) driftGeography(intensity float64) {
	rate := geoRateFloor + intensity*geoRateScale
	if rate < geoRateFloor {
		rate = geoRateFloor
	}
	if rate > geoRateCeil {
		rate = geoRateCeil
	}

	ta, tb := st.geographyTarget()
	st.Geography.SeedA += (ta - st.Geography.SeedA) * rate
	st.Geography.SeedB += (tb - st.Geography.SeedB) * rate
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
