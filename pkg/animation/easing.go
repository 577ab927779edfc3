package animation

import "math"

// EasingKind selects the shape family of an [EasingCurve].
type EasingKind int

const (
	// EasingLinear is linear progress (no easing).
	EasingLinear EasingKind = iota
	// EasingCubicBezier is a cubic bezier curve through (0,0) and (1,1)
	// with two control points, matching CSS cubic-bezier().
	EasingCubicBezier
)

// EasingCurve describes an easing function as plain data, so curves can be
// stored in properties, carried through the reflection bridge, and compared.
// The zero value is the linear curve.
type EasingCurve struct {
	Kind           EasingKind
	X1, Y1, X2, Y2 float64
}

// CubicBezier returns an easing curve matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) EasingCurve {
	return EasingCurve{Kind: EasingCubicBezier, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Standard curves, equivalent to their CSS namesakes.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// Evaluate maps linear progress t in [0, 1] through the curve.
func (e EasingCurve) Evaluate(t float64) float64 {
	if e.Kind == EasingLinear {
		return clampUnit(t)
	}
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	u := t
	// Newton-Raphson converges quickly for most values.
	for range 8 {
		x := sampleCurve(e.X1, e.X2, u) - t
		if math.Abs(x) < 1e-7 {
			return sampleCurve(e.Y1, e.Y2, clampUnit(u))
		}
		dx := sampleCurveDerivative(e.X1, e.X2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	// Fallback to bisection to guarantee a stable solution in [0,1].
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 12 {
		x := sampleCurve(e.X1, e.X2, u) - t
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}

	return sampleCurve(e.Y1, e.Y2, u)
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
