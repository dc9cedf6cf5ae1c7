package creature

import "math"

// Variant01 hashes a numeric seed into [0,1). It is a pure function, not a
// stream generator: the same seed always yields the same factor, which keeps
// creature variants reproducible.
func Variant01(seed float64) float64 {
	return math.Mod(math.Abs(math.Sin(seed*43758.5453)), 1)
}

// variantScales derives the per-part perturbation factors from one variant
// draw: legs and tusks scale up to ±10–15% around 1.
func variantScales(factor float64) (legScale, tuskScale, headScale float64) {
	legScale = 1.0 + (factor-0.5)*0.2
	tuskScale = 1.0 + (factor-0.5)*0.3
	headScale = 1.0 + (0.5-factor)*0.15
	return
}
