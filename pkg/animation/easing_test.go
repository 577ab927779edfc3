package animation_test

import (
	"testing"

	"github.com/go-drift/prism/pkg/animation"
)

func TestLinearCurveIsIdentity(t *testing.T) {
	var linear animation.EasingCurve
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := linear.Evaluate(v); got != v {
			t.Errorf("linear.Evaluate(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestEvaluateClampsInput(t *testing.T) {
	curve := animation.EaseInOut
	if got := curve.Evaluate(-0.5); got != 0 {
		t.Errorf("Evaluate(-0.5) = %v, want 0", got)
	}
	if got := curve.Evaluate(1.5); got != 1 {
		t.Errorf("Evaluate(1.5) = %v, want 1", got)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curve := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)
	if got := curve.Evaluate(0); got != 0 {
		t.Errorf("Evaluate(0) = %v, want 0", got)
	}
	if got := curve.Evaluate(1); got != 1 {
		t.Errorf("Evaluate(1) = %v, want 1", got)
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	for _, curve := range []animation.EasingCurve{
		animation.Ease, animation.EaseIn, animation.EaseOut, animation.EaseInOut,
	} {
		prev := curve.Evaluate(0)
		for i := 1; i <= 100; i++ {
			v := curve.Evaluate(float64(i) / 100)
			if v < prev {
				t.Fatalf("curve %+v not monotonic at t=%v: %v < %v", curve, float64(i)/100, v, prev)
			}
			prev = v
		}
	}
}

func TestEaseInStartsSlow(t *testing.T) {
	// An ease-in curve should lag linear progress early on.
	if v := animation.EaseIn.Evaluate(0.25); v >= 0.25 {
		t.Errorf("EaseIn.Evaluate(0.25) = %v, want < 0.25", v)
	}
}
