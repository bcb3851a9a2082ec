package engine

import "image/color"

// Pool is an arena-and-index particle allocator. Records live in one
// contiguous slice; a free-index stack tracks reusable slots and an
// active-index list tracks slots currently simulated and drawn. Every
// slot is in exactly one of the two collections at all times.
//
// Acquire pops a free slot (growing the arena only when the free stack is
// empty) and appends it to the active list; Release swap-removes it from
// the active list and pushes it back on the free stack. After warm-up no
// per-frame heap allocation happens.
//
// The pool has a single writer (the ParticleSystem, called from one
// thread); it is not safe for concurrent use.
type Pool struct {
	records []Particle
	free    []int // reusable slot indexes, LIFO
	active  []int // slot indexes currently alive
	pos     []int // slot -> position in active, -1 when free

	allocs int // arena growths, exposed for tests
}

// Handle identifies a pooled particle slot.
type Handle int

// NewPool preallocates capacity particle records. A non-positive capacity
// gets a small default; the pool grows on demand and never shrinks.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = 64
	}
	p := &Pool{
		records: make([]Particle, capacity),
		free:    make([]int, 0, capacity),
		active:  make([]int, 0, capacity),
		pos:     make([]int, capacity),
	}
	// Stack preallocated slots in reverse so slot 0 is handed out first.
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
		p.pos[i] = -1
	}
	return p
}

// Acquire initializes a particle from params and returns its handle.
// A free record is reused when one exists; otherwise the arena grows.
func (p *Pool) Acquire(params ParticleParams) Handle {
	var idx int
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = len(p.records)
		p.records = append(p.records, Particle{})
		p.pos = append(p.pos, -1)
		p.allocs++
	}

	life := params.Life
	if life == 0 {
		life = DefaultLifeMs
	}
	col := params.Color
	if col == (color.RGBA{}) {
		col = DefaultColor
	}

	rec := &p.records[idx]
	*rec = Particle{
		X:             params.X,
		Y:             params.Y,
		VX:            params.VX,
		VY:            params.VY,
		Size:          params.Size,
		Scale:         1,
		Color:         col,
		Alpha:         1,
		Rotation:      params.Rotation,
		RotationSpeed: params.RotationSpeed,
		Life:          life,
		MaxLife:       life,
		Gravity:       params.Gravity,
		Drag:          params.Drag,
		ScaleCurve:    params.ScaleCurve,
		ScaleInterp:   params.ScaleInterp,
		Shape:         params.Shape,
		Active:        true,
	}

	p.pos[idx] = len(p.active)
	p.active = append(p.active, idx)
	return Handle(idx)
}

// Get returns the record behind h. The pointer is only valid until the
// next Acquire (the arena may grow and move).
func (p *Pool) Get(h Handle) *Particle {
	return &p.records[h]
}

// Release marks the particle inactive and returns its slot to the free
// stack. Releasing an already-free handle is a guarded no-op, so a
// double release cannot corrupt the free list.
func (p *Pool) Release(h Handle) {
	idx := int(h)
	if idx < 0 || idx >= len(p.records) || !p.records[idx].Active {
		return
	}
	p.records[idx].Active = false

	// Swap-remove from the active list, fixing up the moved slot's position.
	at := p.pos[idx]
	last := len(p.active) - 1
	moved := p.active[last]
	p.active[at] = moved
	p.pos[moved] = at
	p.active = p.active[:last]

	p.pos[idx] = -1
	p.free = append(p.free, idx)
}

// ActiveCount returns the number of active particles.
func (p *Pool) ActiveCount() int {
	return len(p.active)
}

// Active returns a snapshot of the active slot list, for callers outside
// the package. The system itself iterates the internal list directly.
func (p *Pool) Active() []Handle {
	hs := make([]Handle, len(p.active))
	for i, idx := range p.active {
		hs[i] = Handle(idx)
	}
	return hs
}

// ForEachActive calls fn for every active particle.
func (p *Pool) ForEachActive(fn func(h Handle, pt *Particle)) {
	for _, idx := range p.active {
		fn(Handle(idx), &p.records[idx])
	}
}

// Clear moves every active record to the free stack, marking each
// inactive. Emitter state is owned by the system, not the pool.
func (p *Pool) Clear() {
	for _, idx := range p.active {
		p.records[idx].Active = false
		p.pos[idx] = -1
		p.free = append(p.free, idx)
	}
	p.active = p.active[:0]
}

// Allocations reports how many times the arena grew past its preallocated
// capacity. Used by tests to verify acquire/release reuses storage.
func (p *Pool) Allocations() int {
	return p.allocs
}
