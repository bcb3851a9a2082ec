// Package engine implements the 2D particle simulation and
// animation-scheduling core: a pooled particle arena, a particle system
// with burst and continuous emitters, a frame-rate-capped animation loop,
// and a resize-aware render surface.
//
// Everything in this package runs on a single logical thread, driven
// cooperatively by the environment's display-frame callback. There is no
// locking; see the concurrency notes on Pool and AnimationLoop.
package engine

import (
	"image/color"

	"github.com/gonewx/confetti/internal/curve"
)

// Shape selects the geometry a particle is drawn with. Shapes are a
// closed set known at compile time; drawing dispatches on the tag.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeStar
)

// String returns the shape name, mainly for logs and config files.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeStar:
		return "star"
	}
	return "unknown"
}

// Particle is a pooled simulation record. Records are owned by a Pool and
// recycled; an inactive record must not be drawn or updated.
//
// Invariant: Alpha == clamp(Life/MaxLife, 0, 1) after every update.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size          float64
	Scale         float64 // size multiplier, animated by ScaleCurve
	Color         color.RGBA
	Alpha         float64
	Rotation      float64 // radians
	RotationSpeed float64 // radians per normalized 60fps step

	Life    float64 // remaining, milliseconds
	MaxLife float64 // milliseconds

	Gravity float64 // velocity gain per normalized step
	Drag    float64 // velocity decay factor per update

	ScaleCurve  []curve.Keyframe
	ScaleInterp curve.Interpolation

	Shape  Shape
	Active bool
}

// Defaults applied by Pool.Acquire for unspecified ParticleParams fields.
const (
	DefaultLifeMs = 1000.0
)

// DefaultColor is the color used when a particle is acquired without one.
var DefaultColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// ParticleParams describes the initial state of an acquired particle.
// Zero-valued fields take documented defaults: velocity 0, rotation 0,
// life 1000ms, shape circle, color white, scale 1.
type ParticleParams struct {
	X, Y          float64
	VX, VY        float64
	Size          float64
	Color         color.RGBA
	Rotation      float64
	RotationSpeed float64
	Life          float64 // milliseconds
	Shape         Shape
	Gravity       float64
	Drag          float64
	ScaleCurve    []curve.Keyframe
	ScaleInterp   curve.Interpolation
}
