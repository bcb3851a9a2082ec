// Package app wires the particle engine into a runnable interactive
// demo. It keeps the desktop entry points thin: cmd/confetti parses
// flags and hands a Config to NewApp.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/engine"
	"github.com/gonewx/confetti/pkg/prefs"
)

// Window defaults for the demo.
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

// Config defines demo startup options.
type Config struct {
	// Verbose enables engine logging; off by default.
	Verbose bool
	// TargetFPS caps the animation loop. Zero uses the persisted
	// preference, or 60.
	TargetFPS int
	// EffectConfigPath optionally loads palette/spread overrides.
	EffectConfigPath string
	// ReducedMotion forces the accessibility signal on for this run,
	// regardless of the persisted preference.
	ReducedMotion bool
}

// App is the interactive demo: click to burst at the cursor, space for
// a center burst, E toggles a continuous emitter, 1/2/3 switch spread
// patterns, M toggles reduced motion, R clears, Q or Escape quits.
// It implements ebiten.Game.
type App struct {
	surface  *engine.RenderSurface
	system   *engine.ParticleSystem
	settings *prefs.SettingsManager
	effects  *config.EffectConfig

	spread    string
	emitterOn bool
	status    string
}

// NewApp creates and initializes the demo.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// Storage is best-effort: a nil manager degrades to in-memory
	// settings and the demo still runs.
	gdataManager, err := gdata.Open(gdata.Config{AppName: "confetti"})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, err := prefs.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	if cfg.ReducedMotion {
		settings.SetReducedMotion(true)
	}

	effects := config.DefaultEffectConfig()
	if cfg.EffectConfigPath != "" {
		effects, err = config.LoadEffectConfig(cfg.EffectConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load effect config: %w", err)
		}
		log.Printf("[App] loaded effect config: %s", cfg.EffectConfigPath)
	}

	targetFPS := cfg.TargetFPS
	if targetFPS <= 0 {
		targetFPS = settings.GetSettings().TargetFPS
	}

	a := &App{
		system:   engine.NewParticleSystem(512),
		settings: settings,
		effects:  effects,
		spread:   config.SpreadBurst,
	}
	a.surface = engine.NewRenderSurface(engine.SurfaceConfig{
		Width:         ScreenWidth,
		Height:        ScreenHeight,
		TargetFPS:     targetFPS,
		PixelRatio:    1,
		Running:       true,
		OnDraw:        a.draw,
		OnClick:       a.burstAt,
		AriaLabel:     "Particle effect playground",
		ReducedMotion: settings.ReducedMotion,
	})
	a.updateStatus()
	return a, nil
}

// burstAt emits a one-shot burst at (x, y) using the current spread
// pattern.
func (a *App) burstAt(x, y float64) {
	spread := a.effects.Spread(a.spread)
	a.system.Burst(engine.BurstConfig{
		EmitterConfig: engine.EmitterConfig{
			X:      x,
			Y:      y,
			Angle:  spread.AngleRad(),
			Spread: spread.SpreadRad(),
			Speed:  spread.Speed,
			Size:   spread.Size,
			Life:   spread.LifeMs,
			Colors: a.effects.Palette("celebration"),
			Shapes: []engine.Shape{
				engine.ShapeCircle, engine.ShapeSquare,
				engine.ShapeTriangle, engine.ShapeStar,
			},
		},
		Count: 80,
	})
}

// draw advances the simulation and renders it, once per allowed frame.
func (a *App) draw(ctx *ebiten.Image, deltaMs, elapsedMs float64) {
	a.system.Update(deltaMs)
	ctx.Fill(color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff})
	a.system.Draw(ctx)
}

func (a *App) toggleEmitter() {
	if a.emitterOn {
		a.system.RemoveEmitter("demo")
		a.emitterOn = false
		return
	}
	w, h := a.surface.Dimensions()
	spread := a.effects.Spread(config.SpreadFountain)
	a.system.AddEmitter("demo", engine.ContinuousConfig{
		EmitterConfig: engine.EmitterConfig{
			X:      float64(w) / 2,
			Y:      float64(h) - 40,
			Angle:  spread.AngleRad(),
			Spread: spread.SpreadRad(),
			Speed:  spread.Speed,
			Size:   spread.Size,
			Life:   spread.LifeMs,
			Colors: a.effects.Palette("celebration"),
			Shapes: []engine.Shape{engine.ShapeCircle, engine.ShapeStar},
		},
		Rate: 40,
	})
	a.emitterOn = true
}

func (a *App) updateStatus() {
	motion := "on"
	if a.settings.ReducedMotion() {
		motion = "REDUCED"
	}
	a.status = fmt.Sprintf(
		"spread(1/2/3): %s | emitter(E): %v | motion(M): %s | click/space burst, R clear, Q quit",
		a.spread, a.emitterOn, motion)
}

// Update implements ebiten.Game: input handling plus the surface tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w, h := a.surface.Dimensions()
		a.burstAt(float64(w)/2, float64(h)/2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.toggleEmitter()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		a.spread = config.SpreadBurst
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		a.spread = config.SpreadFountain
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		a.spread = config.SpreadCannon
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settings.SetReducedMotion(!a.settings.ReducedMotion())
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
		// The loop samples the signal only on input changes.
		a.surface.Loop().Refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.system.Clear()
		a.emitterOn = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	a.updateStatus()

	return a.surface.Update()
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Draw(screen)
	ebitenutil.DebugPrintAt(screen, a.status, 8, 8)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("particles: %d", a.system.ParticleCount()), 8, 24)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.surface.Layout(outsideWidth, outsideHeight)
}
