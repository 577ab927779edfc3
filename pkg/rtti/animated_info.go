package rtti

import (
	"github.com/go-drift/prism/pkg/animation"
	"github.com/go-drift/prism/pkg/property"
)

// animatedProperty is the accessor implementation for cells whose concrete
// type has a registered lerp. It embeds the plain implementation and
// overrides the two operations that accept animations; Get, Offset,
// Handle, and LinkTwoWay are shared.
type animatedProperty[Item any, T any, V ValueType[V]] struct {
	plainProperty[Item, T, V]
	lerp animation.Lerp[T]
}

// NewAnimatedProperty builds the animation-capable accessor for the
// located cell, using fn to interpolate values. Most registration code
// should use [NewProperty], which consults the lerp registry instead of
// taking the function explicitly.
func NewAnimatedProperty[V ValueType[V], Item any, T any](off FieldOffset[Item, property.Property[T]], fn animation.Lerp[T]) PropertyInfo[Item, V] {
	return animatedProperty[Item, T, V]{plainProperty[Item, T, V]{off: off}, fn}
}

// NewProperty builds the accessor for the located cell, picking the
// animation-capable implementation exactly when the cell's concrete type
// has a registered lerp. The choice is made here, once, as the descriptor
// table is built; the returned accessor never branches on the capability
// again.
func NewProperty[V ValueType[V], Item any, T any](off FieldOffset[Item, property.Property[T]]) PropertyInfo[Item, V] {
	if fn, ok := animation.LerpFor[T](); ok {
		return NewAnimatedProperty[V](off, fn)
	}
	return NewPlainProperty[V](off)
}

func (p animatedProperty[Item, T, V]) Set(item *Item, value V, anim *animation.PropertyAnimation) error {
	concrete, err := convert[T](value)
	if err != nil {
		return err
	}
	cell := p.off.Apply(item)
	if anim != nil {
		cell.SetAnimated(concrete, *anim, p.lerp)
	} else {
		cell.Set(concrete)
	}
	return nil
}

func (p animatedProperty[Item, T, V]) SetBinding(item *Item, binding func() V, kind AnimatedBindingKind) error {
	cell := p.off.Apply(item)
	switch kind.kind {
	case bindingAnimated:
		cell.SetAnimatedBinding(wrapBinding[T](binding), kind.animation, p.lerp)
	case bindingTransition:
		cell.SetAnimatedBindingForTransition(wrapBinding[T](binding), kind.transition, p.lerp)
	default:
		cell.SetBinding(wrapBinding[T](binding))
	}
	return nil
}
