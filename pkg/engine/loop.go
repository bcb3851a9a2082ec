package engine

import (
	"math"
	"time"
)

// FrameFunc is the per-frame callback. deltaMs is the time since the
// last delivered frame and elapsedMs the time since the loop started,
// both in milliseconds. A reduced-motion static render is delivered as
// exactly one call with (0, 0).
type FrameFunc func(deltaMs, elapsedMs float64)

// LoopConfig configures an AnimationLoop.
type LoopConfig struct {
	// TargetFPS caps how often OnFrame fires. Zero means 60.
	TargetFPS int
	// Running starts the loop immediately on construction.
	Running bool
	// OnFrame is invoked once per allowed frame tick.
	OnFrame FrameFunc
	// ReducedMotion, when it returns true, overrides Running entirely:
	// OnFrame(0, 0) is invoked exactly once and nothing is scheduled.
	// Injected as a function so the override is testable without
	// environment mocking; nil means no preference.
	ReducedMotion func() bool
	// Now returns the current time in milliseconds. Nil uses the wall
	// clock; tests inject a fake.
	Now func() float64
}

// AnimationLoop is a frame-rate-capped scheduling primitive. The
// environment calls Tick once per display frame; the loop decides when
// enough time has passed to deliver an OnFrame.
//
// States are Stopped and Running. Stop synchronously invalidates pending
// ticks: a stale Tick arriving after Stop is a no-op, so a stopped loop
// can never mutate state its owner has since torn down. Single-threaded,
// cooperative; no locking.
type AnimationLoop struct {
	targetFPS     int
	onFrame       FrameFunc
	reducedMotion func() bool
	now           func() float64

	wantRunning  bool
	running      bool
	started      bool // timing markers initialized
	startMs      float64
	lastMs       float64
	reducedFired bool
}

// NewAnimationLoop builds a loop and evaluates the effective inputs once:
// a true reduced-motion signal delivers the single static frame, else the
// Running flag decides whether scheduling begins.
func NewAnimationLoop(cfg LoopConfig) *AnimationLoop {
	fps := cfg.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	now := cfg.Now
	if now == nil {
		now = func() float64 { return float64(time.Now().UnixNano()) / 1e6 }
	}
	l := &AnimationLoop{
		targetFPS:     fps,
		onFrame:       cfg.OnFrame,
		reducedMotion: cfg.ReducedMotion,
		now:           now,
		wantRunning:   cfg.Running,
	}
	l.evaluate()
	return l
}

// Start begins scheduling. No-op if already running. Timing markers reset
// to uninitialized so the first tick after Start never sees a stale
// delta.
func (l *AnimationLoop) Start() {
	if l.running {
		return
	}
	l.wantRunning = true
	l.evaluate()
}

// Stop cancels scheduling. Safe to call repeatedly.
func (l *AnimationLoop) Stop() {
	l.wantRunning = false
	l.running = false
	l.started = false
}

// SetRunning flips the running input and re-evaluates the effective
// inputs, mirroring a host toggling its flag.
func (l *AnimationLoop) SetRunning(running bool) {
	if running == l.wantRunning {
		return
	}
	l.wantRunning = running
	if running {
		l.evaluate()
	} else {
		l.Stop()
	}
}

// Refresh re-evaluates the effective inputs. Hosts call it after the
// reduced-motion signal may have changed, since the loop only samples
// the signal on input changes, never per tick.
func (l *AnimationLoop) Refresh() {
	l.evaluate()
}

// IsRunning reports whether the loop is in the Running state.
func (l *AnimationLoop) IsRunning() bool {
	return l.running
}

// evaluate applies the reduced-motion override and the running flag.
// Called whenever the effective inputs change.
func (l *AnimationLoop) evaluate() {
	if l.reducedMotion != nil && l.reducedMotion() {
		l.running = false
		l.started = false
		if !l.reducedFired && l.onFrame != nil {
			l.reducedFired = true
			l.onFrame(0, 0)
		}
		return
	}
	l.reducedFired = false
	if l.wantRunning && !l.running {
		l.running = true
		l.started = false
	}
}

// Tick is the environment's per-display-frame callback. It delivers an
// OnFrame when at least one frame interval has elapsed, carrying the
// remainder so long-run timing does not drift.
func (l *AnimationLoop) Tick() {
	if !l.running {
		// Stale tick after Stop, or never started.
		return
	}
	now := l.now()
	if !l.started {
		l.started = true
		l.startMs = now
		l.lastMs = now
		return
	}

	interval := 1000.0 / float64(l.targetFPS)
	delta := now - l.lastMs
	if delta < interval {
		return
	}
	// Carry the remainder instead of snapping lastMs to now.
	l.lastMs = now - math.Mod(delta, interval)
	if l.onFrame != nil {
		l.onFrame(delta, now-l.startMs)
	}
}
