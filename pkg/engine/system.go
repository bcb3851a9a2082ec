package engine

import (
	"log"
	"math"

	"github.com/gonewx/confetti/internal/curve"
)

// normalFrameMs is the normalized 60fps time unit. Physics integrates in
// units of this step so tuned velocities behave the same at any frame
// rate; particle lifetime uses raw elapsed milliseconds instead, so it
// stays wall-clock accurate under throttling.
const normalFrameMs = 1000.0 / 60.0

// DefaultGravity is the velocity gain per normalized step applied when an
// emitter config carries no override.
const DefaultGravity = 0.15

// continuousEmitter pairs a config with its private time accumulator.
// The accumulator converts variable frame deltas into a fixed emission
// step of 1000/rate milliseconds, so many small updates summing to T emit
// the same count as a single update(T), up to one emission of rounding.
type continuousEmitter struct {
	cfg      ContinuousConfig
	accMs    float64
	launched int
}

// ParticleSystem owns a particle pool and zero or more continuous
// emitters, and provides burst emission, per-frame physics and drawing.
//
// All methods must be called from the same goroutine; the pool has a
// single writer by design.
type ParticleSystem struct {
	pool     *Pool
	emitters map[string]*continuousEmitter

	// Gravity is the default for emitters without an override.
	Gravity float64
}

// NewParticleSystem creates a system with a preallocated pool.
func NewParticleSystem(poolCapacity int) *ParticleSystem {
	return &ParticleSystem{
		pool:     NewPool(poolCapacity),
		emitters: make(map[string]*continuousEmitter),
		Gravity:  DefaultGravity,
	}
}

// Pool exposes the underlying pool, mainly for tests and tooling.
func (ps *ParticleSystem) Pool() *Pool {
	return ps.pool
}

// AddEmitter registers a continuous emitter under a stable id.
// Re-adding an existing id replaces the config and resets the
// accumulator and launch count.
func (ps *ParticleSystem) AddEmitter(id string, cfg ContinuousConfig) {
	ps.emitters[id] = &continuousEmitter{cfg: cfg}
}

// RemoveEmitter unregisters the emitter. Particles it already emitted
// keep simulating until their life runs out.
func (ps *ParticleSystem) RemoveEmitter(id string) {
	delete(ps.emitters, id)
}

// Burst synchronously acquires exactly cfg.Count particles, each sampled
// independently. The pool gains Count active particles before any Update.
func (ps *ParticleSystem) Burst(cfg BurstConfig) {
	for i := 0; i < cfg.Count; i++ {
		ps.pool.Acquire(cfg.sample(ps.Gravity))
	}
}

// Update advances the simulation by deltaMs milliseconds: runs emitters,
// integrates physics, and releases expired particles within this call.
func (ps *ParticleSystem) Update(deltaMs float64) {
	ps.updateEmitters(deltaMs)
	ps.updateParticles(deltaMs)
}

func (ps *ParticleSystem) updateEmitters(deltaMs float64) {
	for id, em := range ps.emitters {
		if em.cfg.Rate <= 0 {
			continue
		}
		interval := 1000.0 / em.cfg.Rate

		em.accMs += deltaMs
		for em.accMs >= interval {
			em.accMs -= interval
			ps.pool.Acquire(em.cfg.sample(ps.Gravity))
			em.launched++
			if em.cfg.MaxLaunched > 0 && em.launched >= em.cfg.MaxLaunched {
				log.Printf("[ParticleSystem] emitter %q reached max launched (%d), removing", id, em.cfg.MaxLaunched)
				delete(ps.emitters, id)
				break
			}
		}
	}
}

func (ps *ParticleSystem) updateParticles(deltaMs float64) {
	dt := deltaMs / normalFrameMs

	// Walk back to front so releasing the current slot (a swap-remove)
	// never skips an unvisited particle.
	for i := len(ps.pool.active) - 1; i >= 0; i-- {
		idx := ps.pool.active[i]
		p := &ps.pool.records[idx]

		p.VY += p.Gravity * dt
		p.VX *= 1 - p.Drag
		p.VY *= 1 - p.Drag
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rotation += p.RotationSpeed * dt

		p.Life -= deltaMs
		if p.Life <= 0 {
			// Expired particles must never reach a draw call.
			ps.pool.Release(Handle(idx))
			continue
		}

		p.Alpha = clamp(p.Life/p.MaxLife, 0, 1)
		if len(p.ScaleCurve) > 0 && p.MaxLife > 0 {
			t := 1 - p.Life/p.MaxLife
			p.Scale = curve.Evaluate(p.ScaleCurve, t, p.ScaleInterp)
		}
	}
}

// IsActive reports whether anything is still simulating: at least one
// active particle or one registered continuous emitter.
func (ps *ParticleSystem) IsActive() bool {
	return ps.pool.ActiveCount() > 0 || len(ps.emitters) > 0
}

// ParticleCount returns the number of active particles.
func (ps *ParticleSystem) ParticleCount() int {
	return ps.pool.ActiveCount()
}

// EmitterCount returns the number of registered continuous emitters.
func (ps *ParticleSystem) EmitterCount() int {
	return len(ps.emitters)
}

// Clear releases every particle and drops all emitters.
func (ps *ParticleSystem) Clear() {
	ps.pool.Clear()
	for id := range ps.emitters {
		delete(ps.emitters, id)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
