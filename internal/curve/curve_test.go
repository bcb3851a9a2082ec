package curve

import (
	"math"
	"testing"
)

// TestEvaluate_Empty tests that an empty curve evaluates to zero
func TestEvaluate_Empty(t *testing.T) {
	if got := Evaluate(nil, 0.5, Linear); got != 0 {
		t.Errorf("Evaluate(nil): got %v, want 0", got)
	}
}

// TestEvaluate_SingleKeyframe tests that a one-point curve is constant
func TestEvaluate_SingleKeyframe(t *testing.T) {
	kf := []Keyframe{{Time: 0.3, Value: 7}}
	for _, tm := range []float64{0, 0.3, 1} {
		if got := Evaluate(kf, tm, Linear); got != 7 {
			t.Errorf("Evaluate(single, t=%v): got %v, want 7", tm, got)
		}
	}
}

// TestEvaluate_Linear tests linear interpolation between two keyframes
func TestEvaluate_Linear(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 10}}

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.25, 2.5},
		{0.5, 5},
		{1, 10},
	}
	for _, tt := range tests {
		if got := Evaluate(kf, tt.t, Linear); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(t=%v): got %v, want %v", tt.t, got, tt.want)
		}
	}
}

// TestEvaluate_ClampsOutsideRange tests behavior before the first and
// after the last keyframe
func TestEvaluate_ClampsOutsideRange(t *testing.T) {
	kf := []Keyframe{{Time: 0.2, Value: 3}, {Time: 0.8, Value: 9}}

	if got := Evaluate(kf, 0.0, Linear); got != 3 {
		t.Errorf("before first keyframe: got %v, want 3", got)
	}
	if got := Evaluate(kf, 1.0, Linear); got != 9 {
		t.Errorf("after last keyframe: got %v, want 9", got)
	}
	// t outside [0,1] is clamped first
	if got := Evaluate(kf, -5, Linear); got != 3 {
		t.Errorf("t=-5: got %v, want 3", got)
	}
	if got := Evaluate(kf, 5, Linear); got != 9 {
		t.Errorf("t=5: got %v, want 9", got)
	}
}

// TestEvaluate_EaseModes tests that easing modes bend the curve in the
// expected direction at the midpoint
func TestEvaluate_EaseModes(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 1}}

	easeIn := Evaluate(kf, 0.5, EaseIn)
	if easeIn != 0.25 {
		t.Errorf("EaseIn(0.5): got %v, want 0.25", easeIn)
	}
	easeOut := Evaluate(kf, 0.5, EaseOut)
	if easeOut != 0.75 {
		t.Errorf("EaseOut(0.5): got %v, want 0.75", easeOut)
	}
	smooth := Evaluate(kf, 0.5, FastInOutWeak)
	if smooth != 0.5 {
		t.Errorf("FastInOutWeak(0.5): got %v, want 0.5", smooth)
	}
	// Endpoints are exact for every mode
	for _, mode := range []Interpolation{Linear, EaseIn, EaseOut, FastInOutWeak} {
		if got := Evaluate(kf, 0, mode); got != 0 {
			t.Errorf("%s(0): got %v, want 0", mode, got)
		}
		if got := Evaluate(kf, 1, mode); got != 1 {
			t.Errorf("%s(1): got %v, want 1", mode, got)
		}
	}
}

// TestEvaluate_UnknownModeFallsBackToLinear tests the fallback path
func TestEvaluate_UnknownModeFallsBackToLinear(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 4}}
	if got := Evaluate(kf, 0.5, Interpolation("Bounce")); got != 2 {
		t.Errorf("unknown mode: got %v, want 2", got)
	}
}

// TestEvaluate_ZeroDurationInterval tests coincident keyframes
func TestEvaluate_ZeroDurationInterval(t *testing.T) {
	kf := []Keyframe{{Time: 0.5, Value: 1}, {Time: 0.5, Value: 2}}
	if got := Evaluate(kf, 0.5, Linear); got != 1 {
		t.Errorf("coincident keyframes: got %v, want 1", got)
	}
}

// TestRandomInRange tests sampling bounds and the degenerate range rule
func TestRandomInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInRange(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("RandomInRange(2, 5): got %v, want [2, 5)", v)
		}
	}

	// min == max returns min
	if got := RandomInRange(3, 3); got != 3 {
		t.Errorf("RandomInRange(3, 3): got %v, want 3", got)
	}

	// Inverted range is not validated; min wins
	if got := RandomInRange(5, 2); got != 5 {
		t.Errorf("RandomInRange(5, 2): got %v, want 5", got)
	}
}
