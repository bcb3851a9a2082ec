package engine

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DrawFunc renders one frame into the surface's drawing context.
type DrawFunc func(ctx *ebiten.Image, deltaMs, elapsedMs float64)

// SurfaceConfig configures a RenderSurface.
type SurfaceConfig struct {
	// Width and Height are the initial container size in logical units.
	// Zero dimensions suppress drawing until Layout reports a real size.
	Width, Height int
	// TargetFPS caps the internal animation loop. Zero means 60.
	TargetFPS int
	// PixelRatio scales container units to drawing-surface pixels.
	// Zero means the monitor's device scale factor.
	PixelRatio float64
	// Running starts the internal loop immediately.
	Running bool

	OnDraw        DrawFunc
	OnResize      func(w, h int)
	OnClick       func(x, y float64)
	OnPointerMove func(x, y float64)

	// AriaLabel is required: the surface is decorative content and
	// assistive technology needs a text alternative.
	AriaLabel string
	// AriaDescription optionally extends the label.
	AriaDescription string

	// ReducedMotion is forwarded to the internal loop.
	ReducedMotion func() bool
	// Now is forwarded to the internal loop (tests inject a fake clock).
	Now func() float64
}

// RenderSurface owns a resizable 2D drawing context and drives an
// AnimationLoop with resize-aware dimensions. It implements ebiten.Game:
// the environment's per-display-frame callback arrives as Update, and
// Layout is where container-size changes are observed.
//
// Sequencing guarantee: a size change observed in Layout recreates the
// context and notifies OnResize before the next draw tick can read the
// dimensions. Single-threaded, so this is apply-then-schedule ordering,
// not a memory-visibility protocol.
type RenderSurface struct {
	cfg  SurfaceConfig
	loop *AnimationLoop

	containerW, containerH int
	pixelRatio             float64
	width, height          int // drawing-surface pixels
	ctx                    *ebiten.Image
	sizeValid              bool

	lastPointerX, lastPointerY int
}

// NewRenderSurface builds the surface and its internal loop. The loop's
// frame callback renders into the surface context via cfg.OnDraw.
func NewRenderSurface(cfg SurfaceConfig) *RenderSurface {
	s := &RenderSurface{
		cfg:          cfg,
		containerW:   cfg.Width,
		containerH:   cfg.Height,
		lastPointerX: -1,
		lastPointerY: -1,
	}
	if cfg.AriaLabel == "" {
		log.Printf("[RenderSurface] missing accessibility label; surfaces are decorative and need one")
	}
	// Size must be applied before the loop exists: constructing the loop
	// under reduced motion delivers the one-shot static frame immediately,
	// and that frame must not be suppressed by an unset size.
	s.applySize(cfg.Width, cfg.Height)
	s.loop = NewAnimationLoop(LoopConfig{
		TargetFPS:     cfg.TargetFPS,
		Running:       cfg.Running,
		OnFrame:       s.frame,
		ReducedMotion: cfg.ReducedMotion,
		Now:           cfg.Now,
	})
	return s
}

// Loop exposes the internal animation loop.
func (s *RenderSurface) Loop() *AnimationLoop {
	return s.loop
}

// AriaLabel returns the surface's accessibility label.
func (s *RenderSurface) AriaLabel() string { return s.cfg.AriaLabel }

// AriaDescription returns the optional extended description.
func (s *RenderSurface) AriaDescription() string { return s.cfg.AriaDescription }

// Context returns the drawing context, or nil while no valid size is
// known. Callers must treat nil as "render nothing"; a decorative
// surface never fails hard.
func (s *RenderSurface) Context() *ebiten.Image {
	return s.ctx
}

// Dimensions returns the current drawing-surface pixel size.
func (s *RenderSurface) Dimensions() (int, int) {
	return s.width, s.height
}

// PixelRatio returns the effective container-to-pixel scale.
func (s *RenderSurface) PixelRatio() float64 {
	if s.pixelRatio > 0 {
		return s.pixelRatio
	}
	return 1
}

// TranslateClientPoint converts container coordinates into
// surface-local pixel coordinates.
func (s *RenderSurface) TranslateClientPoint(x, y float64) (float64, float64) {
	r := s.PixelRatio()
	return x * r, y * r
}

// Redraw forces a single draw outside the loop, e.g. after an external
// state change while the loop is stopped.
func (s *RenderSurface) Redraw() {
	s.frame(0, 0)
}

// frame is the loop's per-frame callback.
func (s *RenderSurface) frame(deltaMs, elapsedMs float64) {
	if !s.sizeValid || s.ctx == nil {
		// No valid size yet; drawing stays suppressed.
		return
	}
	if s.cfg.OnDraw != nil {
		s.cfg.OnDraw(s.ctx, deltaMs, elapsedMs)
	}
}

// applySize recomputes pixel dimensions from a container size and
// notifies the resize subscriber synchronously. Called from Layout,
// which ebiten guarantees runs before the next Update/Draw.
func (s *RenderSurface) applySize(containerW, containerH int) {
	s.containerW = containerW
	s.containerH = containerH

	ratio := s.cfg.PixelRatio
	if ratio <= 0 {
		ratio = ebiten.Monitor().DeviceScaleFactor()
		if ratio <= 0 {
			ratio = 1
		}
	}
	s.pixelRatio = ratio

	w := int(math.Round(float64(containerW) * ratio))
	h := int(math.Round(float64(containerH) * ratio))
	if w <= 0 || h <= 0 {
		// Keep last-known dimensions; suppress drawing until a valid
		// size arrives rather than looping on a bad one.
		s.sizeValid = false
		return
	}
	if w == s.width && h == s.height && s.ctx != nil {
		s.sizeValid = true
		return
	}

	s.width = w
	s.height = h
	s.ctx = s.newContext(w, h)
	s.sizeValid = s.ctx != nil
	if s.sizeValid && s.cfg.OnResize != nil {
		s.cfg.OnResize(w, h)
	}
}

// newContext acquires the drawing context. Failure is non-fatal: log and
// render nothing, per the decorative-content contract.
func (s *RenderSurface) newContext(w, h int) (img *ebiten.Image) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[RenderSurface] context acquisition failed (%dx%d): %v", w, h, r)
			img = nil
		}
	}()
	return ebiten.NewImage(w, h)
}

// Update implements ebiten.Game. It forwards pointer events and ticks
// the internal loop once per environment frame.
func (s *RenderSurface) Update() error {
	s.pollPointer()
	s.loop.Tick()
	return nil
}

func (s *RenderSurface) pollPointer() {
	x, y := ebiten.CursorPosition()
	if s.cfg.OnPointerMove != nil && (x != s.lastPointerX || y != s.lastPointerY) {
		s.lastPointerX, s.lastPointerY = x, y
		s.cfg.OnPointerMove(float64(x), float64(y))
	}
	if s.cfg.OnClick != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.cfg.OnClick(float64(x), float64(y))
	}
}

// Draw implements ebiten.Game by presenting the drawing context.
func (s *RenderSurface) Draw(screen *ebiten.Image) {
	if s.ctx == nil {
		return
	}
	screen.DrawImage(s.ctx, nil)
}

// Layout implements ebiten.Game. The environment reports the container
// size here; the surface derives pixel dimensions scaled by pixel
// density and applies them before the next tick runs.
func (s *RenderSurface) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.containerW || outsideHeight != s.containerH || s.ctx == nil {
		s.applySize(outsideWidth, outsideHeight)
	}
	if s.width <= 0 || s.height <= 0 {
		// Report something drawable while suppressed.
		return 1, 1
	}
	return s.width, s.height
}
