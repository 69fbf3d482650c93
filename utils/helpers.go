package utils

import (
	"math/rand"
)

func ToIndex(x, y, width int) int {
	return y*width + x
}

func Midpoint(p1, p2 int) int {
	return (p2 + p1) / 2
}

func Average(nums ...float32) float32 {
	var total float32 = 0.0
	var count float32 = 0.0
	for _, num := range nums {
		total += num
		count++
	}
	return total / count
}

// Jitter shifts value by a uniform random offset in [-scale, scale] drawn
// from rng. Callers pass their own rng so generation stays reproducible.
func Jitter(rng *rand.Rand, value, scale float32) float32 {
	random := rng.Float32() * scale * 2
	shift := scale - random
	return shift + value
}

func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
