// Package effects composes the engine primitives (particle system,
// render surface, animation loop) into ready-made presets a host toggles
// with a single active flag.
package effects

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/engine"
)

// Preset defaults.
const (
	DefaultDurationMs    = 3000.0
	DefaultParticleCount = 150
	DefaultZIndex        = 1000

	// emptinessPollMs is how often a running preset checks whether the
	// particle system has gone idle ahead of the duration timer.
	emptinessPollMs = 250.0
)

// CelebrationConfig configures a celebration preset. The zero value of
// every field has a sensible default; toggling the preset's active flag
// is the entire control surface for hosts.
type CelebrationConfig struct {
	// DurationMs bounds the effect. Zero means 3000ms.
	DurationMs float64
	// ParticleCount is the burst size. Zero means 150.
	ParticleCount int
	// OnComplete fires exactly once per run, when the duration elapses
	// or the system drains, whichever happens first.
	OnComplete func()
	// Colors overrides the default celebration palette.
	Colors []color.RGBA
	// Origin is an anchor name (center, center-top, left, right).
	// Empty means center-top. OriginX/OriginY override it when non-nil,
	// in container coordinates.
	Origin           string
	OriginX, OriginY *float64
	// Spread is a pattern name (burst, fountain, cannon). Empty means
	// burst.
	Spread string
	// ZIndex is stacking metadata for the host; zero means 1000.
	ZIndex int

	// Surface parameters.
	Width, Height   int
	TargetFPS       int
	PixelRatio      float64
	AriaLabel       string
	AriaDescription string

	// ReducedMotion blocks activation entirely when it returns true.
	ReducedMotion func() bool
	// Effects supplies palettes/spreads; nil uses the defaults.
	Effects *config.EffectConfig
	// Now is the clock for the internal loop; nil means wall clock.
	Now func() float64
}

// Celebration is a one-shot confetti burst bound to its own render
// surface and animation loop. It implements ebiten.Game so a host can
// run or embed it directly.
type Celebration struct {
	cfg     CelebrationConfig
	effects *config.EffectConfig
	system  *engine.ParticleSystem
	surface *engine.RenderSurface

	running     bool
	wantActive  bool
	elapsedMs   float64
	sincePollMs float64
}

// NewCelebration builds an idle preset.
func NewCelebration(cfg CelebrationConfig) *Celebration {
	if cfg.DurationMs <= 0 {
		cfg.DurationMs = DefaultDurationMs
	}
	if cfg.ParticleCount <= 0 {
		cfg.ParticleCount = DefaultParticleCount
	}
	if cfg.ZIndex == 0 {
		cfg.ZIndex = DefaultZIndex
	}
	if cfg.Origin == "" {
		cfg.Origin = config.AnchorCenterTop
	}
	if cfg.Spread == "" {
		cfg.Spread = config.SpreadBurst
	}
	if cfg.AriaLabel == "" {
		cfg.AriaLabel = "Celebration confetti animation"
	}

	c := &Celebration{
		cfg:     cfg,
		effects: cfg.Effects,
		system:  engine.NewParticleSystem(cfg.ParticleCount * 2),
	}
	if c.effects == nil {
		c.effects = config.DefaultEffectConfig()
	}

	c.surface = engine.NewRenderSurface(engine.SurfaceConfig{
		Width:           cfg.Width,
		Height:          cfg.Height,
		TargetFPS:       cfg.TargetFPS,
		PixelRatio:      cfg.PixelRatio,
		Running:         false,
		OnDraw:          c.frame,
		OnResize:        c.onResize,
		AriaLabel:       cfg.AriaLabel,
		AriaDescription: cfg.AriaDescription,
		ReducedMotion:   cfg.ReducedMotion,
		Now:             cfg.Now,
	})
	return c
}

// SetActive toggles the preset. The false→true transition activates once
// the surface has known non-zero dimensions; setting false mid-run stops
// and clears without firing the completion callback.
func (c *Celebration) SetActive(active bool) {
	if active == c.wantActive {
		return
	}
	c.wantActive = active
	if !active {
		c.deactivate()
		return
	}
	c.tryActivate()
}

// IsRunning reports whether the preset is mid-effect.
func (c *Celebration) IsRunning() bool { return c.running }

// ZIndex returns the stacking metadata for the host.
func (c *Celebration) ZIndex() int { return c.cfg.ZIndex }

// Surface exposes the underlying render surface handle.
func (c *Celebration) Surface() *engine.RenderSurface { return c.surface }

// System exposes the particle system, mainly for tests.
func (c *Celebration) System() *engine.ParticleSystem { return c.system }

func (c *Celebration) tryActivate() {
	if c.running || !c.wantActive {
		return
	}
	if c.cfg.ReducedMotion != nil && c.cfg.ReducedMotion() {
		// Reduced motion: render nothing, never burst, never schedule.
		return
	}
	w, h := c.surface.Dimensions()
	if w <= 0 || h <= 0 {
		// Activation waits for the first valid resize notification.
		return
	}

	origin := c.resolveOrigin(w, h)
	spread := c.effects.Spread(c.cfg.Spread)
	colors := c.cfg.Colors
	if len(colors) == 0 {
		colors = c.effects.Palette("celebration")
	}

	c.running = true
	c.elapsedMs = 0
	c.sincePollMs = 0

	c.system.Burst(engine.BurstConfig{
		EmitterConfig: engine.EmitterConfig{
			X:      origin[0],
			Y:      origin[1],
			Angle:  spread.AngleRad(),
			Spread: spread.SpreadRad(),
			Speed:  spread.Speed,
			Size:   spread.Size,
			Life:   spread.LifeMs,
			Colors: colors,
			Shapes: []engine.Shape{
				engine.ShapeCircle, engine.ShapeSquare,
				engine.ShapeTriangle, engine.ShapeStar,
			},
		},
		Count: c.cfg.ParticleCount,
	})
	c.surface.Loop().Start()
	log.Printf("[Celebration] activated: %d particles, %s/%s, %.0fms",
		c.cfg.ParticleCount, c.cfg.Origin, c.cfg.Spread, c.cfg.DurationMs)
}

func (c *Celebration) resolveOrigin(w, h int) [2]float64 {
	if c.cfg.OriginX != nil && c.cfg.OriginY != nil {
		x, y := c.surface.TranslateClientPoint(*c.cfg.OriginX, *c.cfg.OriginY)
		return [2]float64{x, y}
	}
	x, y := config.ResolveAnchor(c.cfg.Origin, w, h)
	return [2]float64{x, y}
}

func (c *Celebration) onResize(w, h int) {
	// A pending activation resolves as soon as dimensions are known.
	c.tryActivate()
}

// frame advances and renders one tick. Two completion triggers race
// here: the fixed duration timer and the periodic emptiness poll; the
// first to fire wins and complete() disarms the other.
func (c *Celebration) frame(ctx *ebiten.Image, deltaMs, elapsedMs float64) {
	if !c.running {
		return
	}

	c.system.Update(deltaMs)
	ctx.Clear()
	c.system.Draw(ctx)

	c.elapsedMs += deltaMs
	if c.elapsedMs >= c.cfg.DurationMs {
		c.complete()
		return
	}

	c.sincePollMs += deltaMs
	if c.sincePollMs >= emptinessPollMs {
		c.sincePollMs = 0
		if !c.system.IsActive() {
			c.complete()
		}
	}
}

// complete transitions Running→Idle and fires the completion callback
// exactly once; the state flip is what cancels the losing trigger.
func (c *Celebration) complete() {
	if !c.running {
		return
	}
	c.running = false
	c.wantActive = false
	c.surface.Loop().Stop()
	c.system.Clear()
	if ctx := c.surface.Context(); ctx != nil {
		ctx.Clear()
	}
	if c.cfg.OnComplete != nil {
		c.cfg.OnComplete()
	}
}

// deactivate tears down without the completion callback; the host
// cleared its own flag.
func (c *Celebration) deactivate() {
	if !c.running {
		return
	}
	c.running = false
	c.surface.Loop().Stop()
	c.system.Clear()
	if ctx := c.surface.Context(); ctx != nil {
		ctx.Clear()
	}
}

// Update implements ebiten.Game.
func (c *Celebration) Update() error { return c.surface.Update() }

// Draw implements ebiten.Game.
func (c *Celebration) Draw(screen *ebiten.Image) { c.surface.Draw(screen) }

// Layout implements ebiten.Game.
func (c *Celebration) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.surface.Layout(outsideWidth, outsideHeight)
}
