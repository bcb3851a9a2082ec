// Package config holds the data-driven side of the effect presets:
// named color palettes, spread patterns and origin anchors, with
// defaults in code and optional YAML overrides.
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/confetti/pkg/engine"
)

// Spread pattern names resolvable by the effect presets.
const (
	SpreadBurst    = "burst"
	SpreadFountain = "fountain"
	SpreadCannon   = "cannon"
)

// Origin anchor names resolvable against surface dimensions.
const (
	AnchorCenter    = "center"
	AnchorCenterTop = "center-top"
	AnchorLeft      = "left"
	AnchorRight     = "right"
)

// SpreadConfig resolves a named pattern into concrete emission
// parameters. Angles are degrees in config files (screen coordinates,
// y-down: -90 points up) and converted to radians at the engine
// boundary.
type SpreadConfig struct {
	BaseAngleDeg float64      `yaml:"baseAngle"`
	SpreadDeg    float64      `yaml:"spread"`
	Speed        engine.Range `yaml:"speed"`
	Size         engine.Range `yaml:"size"`
	LifeMs       engine.Range `yaml:"life"`
}

// AngleRad returns the base angle in radians.
func (s SpreadConfig) AngleRad() float64 { return s.BaseAngleDeg * math.Pi / 180 }

// SpreadRad returns the spread width in radians.
func (s SpreadConfig) SpreadRad() float64 { return s.SpreadDeg * math.Pi / 180 }

// EffectConfig is the loadable preset configuration: palettes of hex
// colors and named spread patterns.
type EffectConfig struct {
	Palettes map[string][]string     `yaml:"palettes"`
	Spreads  map[string]SpreadConfig `yaml:"spreads"`
}

// DefaultEffectConfig returns the built-in palettes and spread patterns.
func DefaultEffectConfig() *EffectConfig {
	return &EffectConfig{
		Palettes: map[string][]string{
			"celebration": {
				"#f94144", "#f3722c", "#f9c74f", "#90be6d", "#43aa8b", "#577590",
			},
		},
		Spreads: map[string]SpreadConfig{
			// Upward hemisphere, wide spread, moderate speed.
			SpreadBurst: {
				BaseAngleDeg: -90,
				SpreadDeg:    180,
				Speed:        engine.Range{Min: 2, Max: 7},
				Size:         engine.Range{Min: 4, Max: 10},
				LifeMs:       engine.Range{Min: 1200, Max: 2600},
			},
			// Narrow upward cone, high speed.
			SpreadFountain: {
				BaseAngleDeg: -90,
				SpreadDeg:    30,
				Speed:        engine.Range{Min: 7, Max: 12},
				Size:         engine.Range{Min: 4, Max: 10},
				LifeMs:       engine.Range{Min: 1200, Max: 2600},
			},
			// Narrow diagonal cone, highest speed.
			SpreadCannon: {
				BaseAngleDeg: -45,
				SpreadDeg:    20,
				Speed:        engine.Range{Min: 10, Max: 16},
				Size:         engine.Range{Min: 4, Max: 10},
				LifeMs:       engine.Range{Min: 1200, Max: 2600},
			},
		},
	}
}

// LoadEffectConfig reads a YAML file and merges it over the defaults, so
// a file only needs to declare what it changes.
func LoadEffectConfig(path string) (*EffectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config: %w", err)
	}

	var loaded EffectConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse effect config: %w", err)
	}

	cfg := DefaultEffectConfig()
	for name, colors := range loaded.Palettes {
		cfg.Palettes[name] = colors
	}
	for name, spread := range loaded.Spreads {
		cfg.Spreads[name] = spread
	}
	return cfg, nil
}

// Spread resolves a named spread pattern, falling back to burst for
// unknown names.
func (c *EffectConfig) Spread(name string) SpreadConfig {
	if s, ok := c.Spreads[name]; ok {
		return s
	}
	return c.Spreads[SpreadBurst]
}

// Palette resolves a named palette into colors. Unknown names or
// unparsable entries fall back to the celebration palette.
func (c *EffectConfig) Palette(name string) []color.RGBA {
	hexes, ok := c.Palettes[name]
	if !ok {
		hexes = c.Palettes["celebration"]
	}
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		col, err := ParseHexColor(h)
		if err != nil {
			continue
		}
		out = append(out, col)
	}
	return out
}

// ResolveAnchor converts a named anchor into a point on a surface of the
// given pixel dimensions. Unknown names resolve like center-top.
func ResolveAnchor(name string, width, height int) (x, y float64) {
	w := float64(width)
	h := float64(height)
	switch name {
	case AnchorCenter:
		return w / 2, h / 2
	case AnchorLeft:
		return w * 0.1, h / 2
	case AnchorRight:
		return w * 0.9, h / 2
	case AnchorCenterTop:
		return w / 2, h * 0.2
	}
	return w / 2, h * 0.2
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c color.RGBA
	c.A = 0xff
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return c, nil
}
