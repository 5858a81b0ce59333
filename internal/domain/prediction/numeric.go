package prediction

import (
	"math"
	"unicode/utf16"
)

// RandomnessRange is the width of the jitter interval produced by RandomOffset.
const RandomnessRange = 0.05

const mulberryIncrement uint32 = 0x6D2B79F5

// Clamp bounds n to [min, max]. Pass math.Inf(1) for an open upper bound.
func Clamp(n, min, max float64) float64 {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ClampMin bounds n from below only.
func ClampMin(n, min float64) float64 {
	return Clamp(n, min, math.Inf(1))
}

// Blend mixes a with b; weight is the share given to b.
func Blend(a, b, weight float64) float64 {
	return float64(a*(1-weight)) + float64(b*weight)
}

func Logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Round rounds x to the given number of decimals, halves away from zero.
func Round(x float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	return math.Round(x*scale) / scale
}

// RandomOffset maps seed to a deterministic offset in [-RandomnessRange/2, RandomnessRange/2).
// The hash and generator are fixed 32-bit algorithms so the value never changes
// between processes, platforms or releases.
func RandomOffset(seed string) float64 {
	r := mulberry32(seedHash(seed))
	return (r - 0.5) * RandomnessRange
}

// seedHash folds UTF-16 code units with hash*31+c in wrapping int32 arithmetic
// and returns the absolute value as raw 32-bit state.
func seedHash(seed string) uint32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		hash = hash*31 + int32(unit)
	}

	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return uint32(abs)
}

// mulberry32 returns the first draw in [0,1) of a mulberry32 generator seeded with state.
func mulberry32(state uint32) float64 {
	a := state + mulberryIncrement
	t := (a ^ a>>15) * (1 | a)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return float64(t^t>>14) / 4294967296
}
