package rtti

import (
	"reflect"
	"unsafe"

	"github.com/go-drift/prism/pkg/animation"
	"github.com/go-drift/prism/pkg/property"
)

// PropertyHandle is a type-tagged reference to a reactive cell on the far
// side of the erasure boundary. The tag lets LinkTwoWay verify that two
// erased cells hold the same concrete type before linking them, so a
// mismatch is an error instead of memory corruption.
//
// The handle does not keep the cell alive; the cell's item must outlive
// every link established through the handle.
type PropertyHandle struct {
	ptr unsafe.Pointer
	typ reflect.Type
}

// HandleOf tags a property cell with its concrete value type.
func HandleOf[T any](p *property.Property[T]) PropertyHandle {
	return PropertyHandle{ptr: unsafe.Pointer(p), typ: reflect.TypeFor[T]()}
}

// ValueTypeName returns the name of the concrete type the handle's cell
// holds, for diagnostics.
func (h PropertyHandle) ValueTypeName() string {
	if h.typ == nil {
		return "<nil>"
	}
	return h.typ.String()
}

// PropertyInfo is the type-erased capability over one reactive property
// cell of an item, parameterized by the item type and the dynamic value
// shape V. Implementations are stateless; one static instance serves every
// item of the type.
type PropertyInfo[Item any, V any] interface {
	// Get reads the cell and converts the value into the dynamic shape.
	// Fails with ConversionError when the concrete type cannot represent
	// itself in V.
	Get(item *Item) (V, error)

	// Set converts the dynamic value into the concrete type and writes it.
	// A non-nil anim runs the change as an animation; properties without
	// interpolation support report AnimationUnsupportedError.
	Set(item *Item, value V, anim *animation.PropertyAnimation) error

	// SetBinding attaches a binding producing dynamic values. The binding
	// is wrapped with the conversion; an output that later fails to
	// convert panics with BindingDefect. Kinds other than NotAnimated
	// report AnimationUnsupportedError on properties without interpolation
	// support.
	SetBinding(item *Item, binding func() V, kind AnimatedBindingKind) error

	// Offset returns the cell's byte offset within the item, for layout
	// introspection tooling.
	Offset() uintptr

	// Handle returns the type-tagged handle of this cell, suitable as the
	// peer argument of another accessor's LinkTwoWay.
	Handle(item *Item) PropertyHandle

	// LinkTwoWay establishes bidirectional value propagation between this
	// cell and the peer. Fails with LinkMismatchError when the peer's type
	// tag does not match the cell's concrete type. Both cells must remain
	// live for the duration of the link.
	LinkTwoWay(item *Item, peer PropertyHandle) error
}

// plainProperty is the accessor implementation for cells whose concrete
// type has no interpolation support. It rejects every animation request.
type plainProperty[Item any, T any, V ValueType[V]] struct {
	off FieldOffset[Item, property.Property[T]]
}

// NewPlainProperty builds the plain accessor for the located cell,
// regardless of interpolation support. Most registration code should use
// [NewProperty], which picks the implementation by capability. The value
// shape V comes first so registration sites only spell out the shape:
//
//	rtti.NewPlainProperty[Value](rtti.OffsetOf(&proto, &proto.Text))
func NewPlainProperty[V ValueType[V], Item any, T any](off FieldOffset[Item, property.Property[T]]) PropertyInfo[Item, V] {
	return plainProperty[Item, T, V]{off: off}
}

func (p plainProperty[Item, T, V]) Get(item *Item) (V, error) {
	var shape V
	v, ok := shape.ConvertFrom(p.off.Apply(item).Get())
	if !ok {
		return v, &ConversionError{From: typeName[T](), To: "dynamic value"}
	}
	return v, nil
}

func (p plainProperty[Item, T, V]) Set(item *Item, value V, anim *animation.PropertyAnimation) error {
	if anim != nil {
		return &AnimationUnsupportedError{Type: typeName[T]()}
	}
	concrete, err := convert[T](value)
	if err != nil {
		return err
	}
	p.off.Apply(item).Set(concrete)
	return nil
}

func (p plainProperty[Item, T, V]) SetBinding(item *Item, binding func() V, kind AnimatedBindingKind) error {
	if kind.IsAnimated() {
		return &AnimationUnsupportedError{Type: typeName[T]()}
	}
	p.off.Apply(item).SetBinding(wrapBinding[T](binding))
	return nil
}

func (p plainProperty[Item, T, V]) Offset() uintptr {
	return p.off.Bytes()
}

func (p plainProperty[Item, T, V]) Handle(item *Item) PropertyHandle {
	return HandleOf(p.off.Apply(item))
}

func (p plainProperty[Item, T, V]) LinkTwoWay(item *Item, peer PropertyHandle) error {
	if peer.typ != reflect.TypeFor[T]() {
		return &LinkMismatchError{Want: typeName[T](), Got: peer.ValueTypeName()}
	}
	property.LinkTwoWay(p.off.Apply(item), (*property.Property[T])(peer.ptr))
	return nil
}

// convert reduces a dynamic value to the concrete type T.
func convert[T any, V ValueType[V]](value V) (T, error) {
	var concrete T
	if !value.ConvertInto(&concrete) {
		return concrete, &ConversionError{From: "dynamic value", To: typeName[T]()}
	}
	return concrete, nil
}

// wrapBinding adapts a dynamic-value binding to a concrete-value binding.
// Conversion failure after attachment is a defect in the binding, not a
// recoverable condition; the wrapper panics.
func wrapBinding[T any, V ValueType[V]](binding func() V) func() T {
	return func() T {
		var concrete T
		if !binding().ConvertInto(&concrete) {
			panic(&BindingDefect{To: typeName[T]()})
		}
		return concrete
	}
}

// typeName names T for error messages.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
