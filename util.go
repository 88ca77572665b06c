package steroids

import (
	"math"
	"math/rand/v2"

	"github.com/mmays/steroids/gm"
)

// Clamp limits x to the range [low, high].
func Clamp(x, low, high float64) float64 {
	return min(max(x, low), high)
}

// WrapAngle wraps an angle in degrees into the range [0, 360).
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

// RandDirection returns a unit vector pointing from pos towards a random
// point within bounds. Entities spawned off screen use this so they always
// drift through the visible area instead of away from it.
func RandDirection(rng *rand.Rand, pos gm.Vec, bounds gm.Rect) gm.Vec {
	target := gm.Vec{
		X: bounds.Min.X + rng.Float64()*(bounds.Max.X-bounds.Min.X),
		Y: bounds.Min.Y + rng.Float64()*(bounds.Max.Y-bounds.Min.Y),
	}

	return target.Sub(pos).Normalized()
}

// weightedChoice picks an index with probability proportional to its weight.
// Weights must be non-negative with a positive sum.
func weightedChoice(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}

	return len(weights) - 1
}
