// Package curve provides keyframe animation curves and random range
// sampling for particle emitter configurations.
//
// A curve is a sorted list of keyframes over normalized time (0-1).
// Evaluation interpolates between neighboring keyframes using one of a
// small, closed set of interpolation modes.
package curve

import (
	"math"
	"math/rand"
)

// Interpolation selects how values between two keyframes are blended.
type Interpolation string

const (
	Linear        Interpolation = "Linear"
	EaseIn        Interpolation = "EaseIn"
	EaseOut       Interpolation = "EaseOut"
	FastInOutWeak Interpolation = "FastInOutWeak"
)

// Keyframe is a single point on an animation curve.
type Keyframe struct {
	Time  float64 `yaml:"time"`  // Normalized time (0-1)
	Value float64 `yaml:"value"` // Value at this keyframe
}

// Evaluate calculates the interpolated value at normalized time t (0-1).
// Keyframes must be sorted by Time. Before the first keyframe the first
// value is returned; past the last keyframe the last value is returned.
func Evaluate(keyframes []Keyframe, t float64, mode Interpolation) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]
		if t < k0.Time || t > k1.Time {
			continue
		}

		duration := k1.Time - k0.Time
		if duration <= 0 {
			return k0.Value
		}
		ratio := (t - k0.Time) / duration

		switch mode {
		case EaseIn:
			ratio = ratio * ratio
		case EaseOut:
			ratio = 1 - (1-ratio)*(1-ratio)
		case FastInOutWeak:
			ratio = ratio * ratio * (3 - 2*ratio)
		case Linear, "":
			// ratio unchanged
		default:
			// Unknown mode falls back to linear
		}
		return k0.Value + ratio*(k1.Value-k0.Value)
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in [min, max).
// If min >= max the range is degenerate and min is returned; the engine
// does not validate inverted ranges (callers may clamp if they care).
func RandomInRange(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rand.Float64()*(max-min)
}
