package rtti

// FieldInfo is the type-erased capability over one plain, non-reactive
// field of an item. Plain fields are write-only through the bridge: no
// reads, no bindings, no animation.
type FieldInfo[Item any, V any] interface {
	// SetField converts the dynamic value into the concrete type and
	// overwrites the field. Fails with ConversionError on mismatch.
	SetField(item *Item, value V) error
}

type fieldInfo[Item any, T any, V ValueType[V]] struct {
	off FieldOffset[Item, T]
}

// NewField builds the accessor for the located plain field.
func NewField[V ValueType[V], Item any, T any](off FieldOffset[Item, T]) FieldInfo[Item, V] {
	return fieldInfo[Item, T, V]{off: off}
}

func (f fieldInfo[Item, T, V]) SetField(item *Item, value V) error {
	concrete, err := convert[T](value)
	if err != nil {
		return err
	}
	*f.off.Apply(item) = concrete
	return nil
}
