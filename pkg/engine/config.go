package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/confetti/internal/curve"
)

// Range is a [Min, Max] sampling interval. The engine does not validate
// inverted ranges; curve.RandomInRange degrades to Min.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample draws a uniform value from the range.
func (r Range) Sample() float64 {
	return curve.RandomInRange(r.Min, r.Max)
}

// EmitterConfig describes how one particle is sampled at emission time.
// Angles are radians; Angle is the base direction and Spread the total
// cone width centered on it. Life is in milliseconds.
type EmitterConfig struct {
	X, Y float64

	Angle  float64
	Spread float64
	Speed  Range
	Size   Range
	Life   Range

	Colors []color.RGBA
	Shapes []Shape

	// Gravity overrides the system default when non-nil.
	Gravity *float64
	// Drag decays velocity as v *= (1 - Drag) each update.
	Drag float64

	// ScaleCurve optionally animates particle size over normalized life.
	ScaleCurve  []curve.Keyframe
	ScaleInterp curve.Interpolation
}

// BurstConfig is a one-shot emission of Count particles.
type BurstConfig struct {
	EmitterConfig
	Count int
}

// ContinuousConfig emits at a steady Rate (particles/second) until the
// emitter is removed. MaxLaunched, when positive, caps the total emitted
// before the emitter removes itself.
type ContinuousConfig struct {
	EmitterConfig
	Rate        float64
	MaxLaunched int
}

// rotationSpeedRange is the uniform initial spin range in radians per
// normalized 60fps step.
const rotationSpeedRange = 0.1

// sample produces the initial state for one emitted particle:
// angle uniform in [Angle-Spread/2, Angle+Spread/2], speed/size/life from
// their ranges, color and shape uniform from their sets, rotation uniform
// in [0, 2pi), spin uniform in [-0.1, 0.1].
func (c *EmitterConfig) sample(defaultGravity float64) ParticleParams {
	angle := c.Angle + curve.RandomInRange(-c.Spread/2, c.Spread/2)
	speed := c.Speed.Sample()

	gravity := defaultGravity
	if c.Gravity != nil {
		gravity = *c.Gravity
	}

	var col color.RGBA
	if len(c.Colors) > 0 {
		col = c.Colors[rand.Intn(len(c.Colors))]
	}
	var shape Shape
	if len(c.Shapes) > 0 {
		shape = c.Shapes[rand.Intn(len(c.Shapes))]
	}

	return ParticleParams{
		X:             c.X,
		Y:             c.Y,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle) * speed,
		Size:          c.Size.Sample(),
		Color:         col,
		Rotation:      curve.RandomInRange(0, 2*math.Pi),
		RotationSpeed: curve.RandomInRange(-rotationSpeedRange, rotationSpeedRange),
		Life:          c.Life.Sample(),
		Shape:         shape,
		Gravity:       gravity,
		Drag:          c.Drag,
		ScaleCurve:    c.ScaleCurve,
		ScaleInterp:   c.ScaleInterp,
	}
}
