package rtti

import (
	"fmt"
	"math"

	"github.com/go-drift/prism/pkg/animation"
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/model"
)

// ValueType is the contract a dynamic value shape must satisfy to flow
// through the accessor tables: fallible conversion from and into every
// concrete field type in the closed set. [Value] is the canonical shape;
// tools with their own value representation implement this to use the
// generic descriptor machinery directly.
//
// ConvertFrom is called on the shape's zero value and acts as a factory.
// ConvertInto stores the shape's payload through dst, a pointer to one of
// the supported concrete types. Both report false on a type mismatch.
type ValueType[V any] interface {
	ConvertFrom(concrete any) (V, bool)
	ConvertInto(dst any) bool
}

// Kind identifies the variant a [Value] holds.
//
// The set is closed and mirrors the concrete field types items use.
// Adding a concrete field type means adding a kind here and widening
// every conversion that can reach it.
type Kind int

const (
	// KindInvalid is the zero Value's kind; it converts to nothing.
	KindInvalid Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindResource
	KindColor
	KindPathData
	KindEasingCurve
	KindTextHorizontalAlignment
	KindTextVerticalAlignment
	KindListViewItem
	KindImageFit
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindResource:
		return "resource"
	case KindColor:
		return "color"
	case KindPathData:
		return "path-data"
	case KindEasingCurve:
		return "easing-curve"
	case KindTextHorizontalAlignment:
		return "text-horizontal-alignment"
	case KindTextVerticalAlignment:
		return "text-vertical-alignment"
	case KindListViewItem:
		return "list-view-item"
	case KindImageFit:
		return "image-fit"
	default:
		return "invalid"
	}
}

// Value is the canonical dynamic value: a closed tagged union over the
// concrete field types widget items expose. The zero Value is invalid and
// converts to nothing.
type Value struct {
	kind    Kind
	payload any
}

// ValueOf wraps a concrete value in the dynamic domain. It reports false
// when the concrete type is not part of the closed set.
func ValueOf(concrete any) (Value, bool) {
	switch concrete.(type) {
	case bool:
		return Value{KindBool, concrete}, true
	case int32:
		return Value{KindInt32, concrete}, true
	case int64:
		return Value{KindInt64, concrete}, true
	case uint32:
		return Value{KindUint32, concrete}, true
	case uint64:
		return Value{KindUint64, concrete}, true
	case float32:
		return Value{KindFloat32, concrete}, true
	case float64:
		return Value{KindFloat64, concrete}, true
	case string:
		return Value{KindString, concrete}, true
	case graphics.Resource:
		return Value{KindResource, concrete}, true
	case graphics.Color:
		return Value{KindColor, concrete}, true
	case graphics.PathData:
		return Value{KindPathData, concrete}, true
	case animation.EasingCurve:
		return Value{KindEasingCurve, concrete}, true
	case graphics.TextHorizontalAlignment:
		return Value{KindTextHorizontalAlignment, concrete}, true
	case graphics.TextVerticalAlignment:
		return Value{KindTextVerticalAlignment, concrete}, true
	case model.StandardListViewItem:
		return Value{KindListViewItem, concrete}, true
	case graphics.ImageFit:
		return Value{KindImageFit, concrete}, true
	default:
		return Value{}, false
	}
}

// MustValue wraps a concrete value and panics if its type is outside the
// closed set. For literals in tests and registration code.
func MustValue(concrete any) Value {
	v, ok := ValueOf(concrete)
	if !ok {
		panic(fmt.Sprintf("rtti: %T is not in the dynamic value domain", concrete))
	}
	return v
}

// Kind returns the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the wrapped concrete value, or nil for the zero Value.
func (v Value) Interface() any { return v.payload }

// String returns a short representation for inspector output.
func (v Value) String() string {
	if v.kind == KindInvalid {
		return "<invalid>"
	}
	return fmt.Sprintf("%v", v.payload)
}

// ConvertFrom implements the [ValueType] contract; the receiver is unused.
func (Value) ConvertFrom(concrete any) (Value, bool) {
	return ValueOf(concrete)
}

// ConvertInto stores the value through dst, a pointer to one of the
// concrete field types. Numeric variants convert across widths when the
// value is exactly representable in the destination; all other variants
// convert only to their own concrete type.
func (v Value) ConvertInto(dst any) bool {
	switch d := dst.(type) {
	case *bool:
		b, ok := v.payload.(bool)
		if !ok {
			return false
		}
		*d = b
	case *int32:
		n, ok := v.toInt(math.MinInt32, math.MaxInt32)
		if !ok {
			return false
		}
		*d = int32(n)
	case *int64:
		n, ok := v.toInt(math.MinInt64, math.MaxInt64)
		if !ok {
			return false
		}
		*d = n
	case *uint32:
		n, ok := v.toUint(math.MaxUint32)
		if !ok {
			return false
		}
		*d = uint32(n)
	case *uint64:
		n, ok := v.toUint(math.MaxUint64)
		if !ok {
			return false
		}
		*d = n
	case *float32:
		f, ok := v.toFloat()
		if !ok || float64(float32(f)) != f {
			return false
		}
		*d = float32(f)
	case *float64:
		f, ok := v.toFloat()
		if !ok {
			return false
		}
		*d = f
	case *string:
		s, ok := v.payload.(string)
		if !ok {
			return false
		}
		*d = s
	case *graphics.Resource:
		r, ok := v.payload.(graphics.Resource)
		if !ok {
			return false
		}
		*d = r
	case *graphics.Color:
		c, ok := v.payload.(graphics.Color)
		if !ok {
			return false
		}
		*d = c
	case *graphics.PathData:
		p, ok := v.payload.(graphics.PathData)
		if !ok {
			return false
		}
		*d = p
	case *animation.EasingCurve:
		e, ok := v.payload.(animation.EasingCurve)
		if !ok {
			return false
		}
		*d = e
	case *graphics.TextHorizontalAlignment:
		a, ok := v.payload.(graphics.TextHorizontalAlignment)
		if !ok {
			return false
		}
		*d = a
	case *graphics.TextVerticalAlignment:
		a, ok := v.payload.(graphics.TextVerticalAlignment)
		if !ok {
			return false
		}
		*d = a
	case *model.StandardListViewItem:
		it, ok := v.payload.(model.StandardListViewItem)
		if !ok {
			return false
		}
		*d = it
	case *graphics.ImageFit:
		f, ok := v.payload.(graphics.ImageFit)
		if !ok {
			return false
		}
		*d = f
	default:
		return false
	}
	return true
}

// toInt extracts a signed integer in [min, max]. Floating variants convert
// only when integral, so no conversion silently truncates.
func (v Value) toInt(min, max int64) (int64, bool) {
	var n int64
	switch p := v.payload.(type) {
	case int32:
		n = int64(p)
	case int64:
		n = p
	case uint32:
		n = int64(p)
	case uint64:
		if p > math.MaxInt64 {
			return 0, false
		}
		n = int64(p)
	case float32:
		return floatToInt(float64(p), min, max)
	case float64:
		return floatToInt(p, min, max)
	default:
		return 0, false
	}
	if n < min || n > max {
		return 0, false
	}
	return n, true
}

// toUint extracts an unsigned integer in [0, max] under the same
// exactness rules as toInt.
func (v Value) toUint(max uint64) (uint64, bool) {
	var n uint64
	switch p := v.payload.(type) {
	case int32:
		if p < 0 {
			return 0, false
		}
		n = uint64(p)
	case int64:
		if p < 0 {
			return 0, false
		}
		n = uint64(p)
	case uint32:
		n = uint64(p)
	case uint64:
		n = p
	case float32:
		return floatToUint(float64(p), max)
	case float64:
		return floatToUint(p, max)
	default:
		return 0, false
	}
	if n > max {
		return 0, false
	}
	return n, true
}

// toFloat extracts any numeric variant as float64. Wide integers convert
// only when the value survives the trip exactly, so a float destination is
// never silently truncated. The overflow guards keep the back-conversions
// in range before comparing.
func (v Value) toFloat() (float64, bool) {
	switch p := v.payload.(type) {
	case int32:
		return float64(p), true
	case int64:
		f := float64(p)
		if f >= math.MaxInt64 || int64(f) != p {
			return 0, false
		}
		return f, true
	case uint32:
		return float64(p), true
	case uint64:
		f := float64(p)
		if f >= math.MaxUint64 || uint64(f) != p {
			return 0, false
		}
		return f, true
	case float32:
		return float64(p), true
	case float64:
		return p, true
	default:
		return 0, false
	}
}

func floatToInt(f float64, min, max int64) (int64, bool) {
	if math.Trunc(f) != f || f < float64(min) || f > float64(max) {
		return 0, false
	}
	return int64(f), true
}

func floatToUint(f float64, max uint64) (uint64, bool) {
	if math.Trunc(f) != f || f < 0 || f > float64(max) {
		return 0, false
	}
	return uint64(f), true
}

// compile-time check that Value satisfies its own contract.
var _ ValueType[Value] = Value{}
