package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#f94144", color.RGBA{R: 0xf9, G: 0x41, B: 0x44, A: 0xff}, false},
		{"#ffffff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#00000080", color.RGBA{A: 0x80}, false},
		{"f94144", color.RGBA{}, true},
		{"#fff", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveAnchor(t *testing.T) {
	tests := []struct {
		name  string
		wantX float64
		wantY float64
	}{
		{AnchorCenter, 100, 50},
		{AnchorCenterTop, 100, 20},
		{AnchorLeft, 20, 50},
		{AnchorRight, 180, 50},
		{"bogus", 100, 20}, // unknown names resolve like center-top
	}
	for _, tt := range tests {
		x, y := ResolveAnchor(tt.name, 200, 100)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ResolveAnchor(%q) = (%v, %v), want (%v, %v)",
				tt.name, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestDefaultEffectConfigComplete(t *testing.T) {
	cfg := DefaultEffectConfig()

	for _, name := range []string{SpreadBurst, SpreadFountain, SpreadCannon} {
		s, ok := cfg.Spreads[name]
		if !ok {
			t.Errorf("default spread %q missing", name)
			continue
		}
		if s.Speed.Max <= 0 || s.LifeMs.Max <= 0 {
			t.Errorf("default spread %q has unusable ranges: %+v", name, s)
		}
	}
	if colors := cfg.Palette("celebration"); len(colors) == 0 {
		t.Error("celebration palette is empty")
	}
}

func TestSpreadFallsBackToBurst(t *testing.T) {
	cfg := DefaultEffectConfig()

	got := cfg.Spread("no-such-pattern")
	want := cfg.Spreads[SpreadBurst]
	if got != want {
		t.Errorf("unknown spread = %+v, want burst %+v", got, want)
	}
}

func TestPaletteSkipsUnparsableEntries(t *testing.T) {
	cfg := DefaultEffectConfig()
	cfg.Palettes["mixed"] = []string{"#ff0000", "not-a-color", "#00ff00"}

	colors := cfg.Palette("mixed")

	if len(colors) != 2 {
		t.Fatalf("palette size = %d, want 2", len(colors))
	}
}

func TestLoadEffectConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effects.yaml")
	data := []byte(`
palettes:
  winter:
    - "#a0d8ef"
    - "#ffffff"
spreads:
  burst:
    baseAngle: -80
    spread: 120
    speed:
      min: 1
      max: 3
    size:
      min: 2
      max: 6
    life:
      min: 500
      max: 900
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEffectConfig(path)
	if err != nil {
		t.Fatalf("LoadEffectConfig error: %v", err)
	}

	if got := len(cfg.Palette("winter")); got != 2 {
		t.Errorf("winter palette size = %d, want 2", got)
	}
	// Untouched defaults survive the merge.
	if _, ok := cfg.Spreads[SpreadFountain]; !ok {
		t.Error("merge dropped the default fountain spread")
	}
	if colors := cfg.Palette("celebration"); len(colors) == 0 {
		t.Error("merge dropped the default celebration palette")
	}
	// The overridden spread is replaced wholesale.
	burst := cfg.Spread(SpreadBurst)
	if burst.BaseAngleDeg != -80 || burst.Speed.Max != 3 {
		t.Errorf("overridden burst spread = %+v", burst)
	}
}

func TestLoadEffectConfigMissingFile(t *testing.T) {
	if _, err := LoadEffectConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSpreadAngleConversion(t *testing.T) {
	s := SpreadConfig{BaseAngleDeg: -90, SpreadDeg: 180}

	if got := s.AngleRad(); got > -1.5707 || got < -1.5709 {
		t.Errorf("AngleRad() = %v, want about -pi/2", got)
	}
	if got := s.SpreadRad(); got < 3.1415 || got > 3.1417 {
		t.Errorf("SpreadRad() = %v, want about pi", got)
	}
}
