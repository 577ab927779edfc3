package rtti

import "fmt"

// ConversionError reports that a dynamic value and a concrete field type
// cannot represent each other.
type ConversionError struct {
	// From describes the source of the conversion (a value kind or a
	// concrete type name).
	From string
	// To describes the requested destination.
	To string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// AnimationUnsupportedError reports that an animation was requested on a
// property whose concrete type has no interpolation support.
type AnimationUnsupportedError struct {
	// Type is the property's concrete type name.
	Type string
}

func (e *AnimationUnsupportedError) Error() string {
	return fmt.Sprintf("property type %s does not support animation", e.Type)
}

// LinkMismatchError reports that a two-way link was attempted between cells
// of different concrete types. The type tag carried by the peer's
// [PropertyHandle] is checked before any linking happens.
type LinkMismatchError struct {
	// Want is the concrete type of the accessor's own cell.
	Want string
	// Got is the concrete type recorded in the peer handle.
	Got string
}

func (e *LinkMismatchError) Error() string {
	return fmt.Sprintf("cannot link property of type %s to property of type %s", e.Want, e.Got)
}

// BindingDefect is the panic payload raised when an attached binding
// produces a value that no longer converts to the cell's concrete type.
// Type compatibility is established when the binding is attached, so this
// is a programming error in the binding, not a runtime condition.
type BindingDefect struct {
	// To is the concrete type the binding's output failed to convert to.
	To string
}

func (e *BindingDefect) Error() string {
	return fmt.Sprintf("binding produced a value not convertible to %s", e.To)
}
