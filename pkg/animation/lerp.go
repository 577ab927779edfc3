package animation

import (
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/go-drift/prism/pkg/graphics"
)

// Lerp linearly interpolates between a and b. Receives the begin value,
// end value, and progress t in [0, 1]. Returns the interpolated value.
type Lerp[T any] func(a, b T, t float64) T

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpNumber linearly interpolates between two values of any fixed-width
// numeric type, truncating for integer types. The arithmetic runs in
// float64 so unsigned types interpolate downward without wrapping.
func LerpNumber[T constraints.Integer | constraints.Float](a, b T, t float64) T {
	return T(float64(a) + (float64(b)-float64(a))*t)
}

// LerpColor linearly interpolates between two Color values, channel by
// channel in ARGB space.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aR := float64((a >> 16) & 0xFF)
	aG := float64((a >> 8) & 0xFF)
	aB := float64(a & 0xFF)
	aA := float64((a >> 24) & 0xFF)

	bR := float64((b >> 16) & 0xFF)
	bG := float64((b >> 8) & 0xFF)
	bB := float64(b & 0xFF)
	bA := float64((b >> 24) & 0xFF)

	r := uint8(LerpFloat64(aR, bR, t))
	g := uint8(LerpFloat64(aG, bG, t))
	b8 := uint8(LerpFloat64(aB, bB, t))
	alpha := uint8(LerpFloat64(aA, bA, t))

	return graphics.Color(uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b8))
}

// lerps records which concrete types support interpolation. It is written
// only from init functions; the accessor tables read it once at build time.
var lerps = map[reflect.Type]any{}

// RegisterLerp declares that values of type T can be animated, using fn to
// interpolate between them. Call from an init function; the registry is
// read-only afterward.
func RegisterLerp[T any](fn Lerp[T]) {
	lerps[reflect.TypeFor[T]()] = fn
}

// LerpFor returns the registered interpolation function for T, if any.
// The boolean result is the interpolation capability check used when
// accessor tables decide between the plain and animated implementations.
func LerpFor[T any]() (Lerp[T], bool) {
	fn, ok := lerps[reflect.TypeFor[T]()].(Lerp[T])
	return fn, ok
}

func init() {
	RegisterLerp(LerpNumber[int32])
	RegisterLerp(LerpNumber[int64])
	RegisterLerp(LerpNumber[uint32])
	RegisterLerp(LerpNumber[uint64])
	RegisterLerp(LerpNumber[float32])
	RegisterLerp(LerpFloat64)
	RegisterLerp(LerpColor)
}
