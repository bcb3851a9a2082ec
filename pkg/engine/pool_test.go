package engine

import (
	"image/color"
	"testing"
)

func TestPoolAcquireDefaults(t *testing.T) {
	pool := NewPool(4)

	h := pool.Acquire(ParticleParams{X: 10, Y: 20})
	p := pool.Get(h)

	if !p.Active {
		t.Error("acquired particle should be active")
	}
	if p.Life != DefaultLifeMs || p.MaxLife != DefaultLifeMs {
		t.Errorf("default life = %v/%v, want %v", p.Life, p.MaxLife, DefaultLifeMs)
	}
	if p.Color != DefaultColor {
		t.Errorf("default color = %v, want %v", p.Color, DefaultColor)
	}
	if p.Alpha != 1 || p.Scale != 1 {
		t.Errorf("alpha/scale = %v/%v, want 1/1", p.Alpha, p.Scale)
	}
}

func TestPoolReusesReleasedSlots(t *testing.T) {
	pool := NewPool(3)

	handles := make([]Handle, 0, 3)
	for i := 0; i < 3; i++ {
		handles = append(handles, pool.Acquire(ParticleParams{}))
	}
	if got := pool.ActiveCount(); got != 3 {
		t.Fatalf("active count = %d, want 3", got)
	}

	for _, h := range handles {
		pool.Release(h)
	}
	for i := 0; i < 3; i++ {
		pool.Acquire(ParticleParams{Color: color.RGBA{R: 0xff, A: 0xff}})
	}

	if got := pool.Allocations(); got != 0 {
		t.Errorf("allocations = %d, want 0 (released slots should be reused)", got)
	}
	if got := pool.ActiveCount(); got != 3 {
		t.Errorf("active count = %d, want 3", got)
	}
}

func TestPoolGrowsPastCapacity(t *testing.T) {
	pool := NewPool(2)

	for i := 0; i < 5; i++ {
		pool.Acquire(ParticleParams{})
	}

	if got := pool.ActiveCount(); got != 5 {
		t.Errorf("active count = %d, want 5", got)
	}
	if got := pool.Allocations(); got != 3 {
		t.Errorf("allocations = %d, want 3", got)
	}
}

func TestPoolDoubleReleaseIsNoop(t *testing.T) {
	pool := NewPool(4)

	a := pool.Acquire(ParticleParams{})
	b := pool.Acquire(ParticleParams{})

	pool.Release(a)
	pool.Release(a) // must not corrupt the free list

	if got := pool.ActiveCount(); got != 1 {
		t.Fatalf("active count after double release = %d, want 1", got)
	}
	if !pool.Get(b).Active {
		t.Error("unrelated particle should remain active")
	}

	// The freed slot must be handed out exactly once.
	c := pool.Acquire(ParticleParams{})
	d := pool.Acquire(ParticleParams{})
	if c == d {
		t.Errorf("distinct acquires returned the same handle %v", c)
	}
	if got := pool.ActiveCount(); got != 3 {
		t.Errorf("active count = %d, want 3", got)
	}
}

func TestPoolSwapRemoveKeepsActiveListConsistent(t *testing.T) {
	pool := NewPool(8)

	handles := make([]Handle, 0, 5)
	for i := 0; i < 5; i++ {
		handles = append(handles, pool.Acquire(ParticleParams{X: float64(i)}))
	}

	// Remove from the middle; the swap must not lose any survivor.
	pool.Release(handles[2])

	seen := make(map[float64]bool)
	pool.ForEachActive(func(h Handle, pt *Particle) {
		seen[pt.X] = true
	})
	for _, want := range []float64{0, 1, 3, 4} {
		if !seen[want] {
			t.Errorf("particle with X=%v missing after swap-remove", want)
		}
	}
	if seen[2] {
		t.Error("released particle still iterated")
	}
}

func TestPoolClear(t *testing.T) {
	pool := NewPool(4)
	for i := 0; i < 4; i++ {
		pool.Acquire(ParticleParams{})
	}

	pool.Clear()

	if got := pool.ActiveCount(); got != 0 {
		t.Fatalf("active count after clear = %d, want 0", got)
	}
	// All slots come back without growing the arena.
	for i := 0; i < 4; i++ {
		pool.Acquire(ParticleParams{})
	}
	if got := pool.Allocations(); got != 0 {
		t.Errorf("allocations after clear+reacquire = %d, want 0", got)
	}
}
