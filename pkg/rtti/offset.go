package rtti

import "unsafe"

// FieldOffset is a located field: the byte offset of a field of type F
// within an item struct of type Item, plus the view operation that turns
// an item pointer into a field pointer. It is a pure descriptor, computed
// once during registration from the item's static layout; it never owns
// the item or the field.
type FieldOffset[Item any, F any] struct {
	off uintptr
}

// OffsetOf computes the located field for the given field of the given
// item. Registration code calls it with a package-level prototype:
//
//	var rect Rectangle
//	widthOffset := rtti.OffsetOf(&rect, &rect.Width)
//
// OffsetOf panics if field does not lie within item, which only happens
// when registration code pairs pointers from different structs.
func OffsetOf[Item any, F any](item *Item, field *F) FieldOffset[Item, F] {
	base := uintptr(unsafe.Pointer(item))
	fp := uintptr(unsafe.Pointer(field))
	if fp < base || fp+unsafe.Sizeof(*field) > base+unsafe.Sizeof(*item) {
		panic("rtti: field does not lie within the item struct")
	}
	return FieldOffset[Item, F]{off: fp - base}
}

// Apply views the field inside the given item. The returned pointer
// aliases the item's memory; it stays valid as long as the item does.
func (o FieldOffset[Item, F]) Apply(item *Item) *F {
	return (*F)(unsafe.Add(unsafe.Pointer(item), o.off))
}

// Bytes returns the field's byte offset within the item, for layout
// introspection tooling.
func (o FieldOffset[Item, F]) Bytes() uintptr {
	return o.off
}
