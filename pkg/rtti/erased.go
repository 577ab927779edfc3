package rtti

import (
	"fmt"
	"slices"

	"github.com/go-drift/prism/pkg/animation"
)

// ItemType is the fully erased view of a registered widget kind, the form
// dynamically-typed tools consume: items are any, values are the canonical
// [Value] shape, and everything is addressed by name.
type ItemType interface {
	// Name returns the widget kind's display name.
	Name() string

	// New allocates a fresh item of this kind, returned as the pointer
	// the other methods accept.
	New() any

	// GetProperty reads the named property as a dynamic value.
	GetProperty(item any, name string) (Value, error)

	// SetProperty writes the named property, animating when anim is
	// non-nil and the property supports it.
	SetProperty(item any, name string, value Value, anim *animation.PropertyAnimation) error

	// SetPropertyBinding attaches a dynamic-value binding to the named
	// property.
	SetPropertyBinding(item any, name string, binding func() Value, kind AnimatedBindingKind) error

	// PropertyOffset returns the named property's byte offset within the
	// item struct.
	PropertyOffset(name string) (uintptr, error)

	// PropertyHandle returns the type-tagged handle of the named property,
	// usable as the peer of LinkTwoWay on any item type.
	PropertyHandle(item any, name string) (PropertyHandle, error)

	// LinkTwoWay links the named property bidirectionally with a peer
	// handle obtained from PropertyHandle.
	LinkTwoWay(item any, name string, peer PropertyHandle) error

	// SetField overwrites the named plain field.
	SetField(item any, name string, value Value) error

	// SetSignalHandler attaches a handler to the named signal.
	SetSignalHandler(item any, name string, handler func()) error

	// EmitSignal invokes the named signal's handler, if any.
	EmitSignal(item any, name string) error

	// PropertyNames, FieldNames, and SignalNames list the accessor tables
	// in sorted order.
	PropertyNames() []string
	FieldNames() []string
	SignalNames() []string
}

// itemTypes is the process-wide registry of erased widget kinds. It is
// populated from init functions and read-only afterward.
var itemTypes = make(map[string]ItemType)

// RegisterItem publishes a descriptor in the process-wide registry under
// its display name, with the canonical [Value] shape. Call from an init
// function; duplicate names panic.
func RegisterItem[Item any](desc *TypeDescriptor[Item, Value]) {
	if _, ok := itemTypes[desc.Name()]; ok {
		panic(fmt.Sprintf("rtti: item type %q registered twice", desc.Name()))
	}
	itemTypes[desc.Name()] = erasedType[Item]{desc: desc}
}

// LookupItem returns the erased view of a registered widget kind.
func LookupItem(name string) (ItemType, bool) {
	t, ok := itemTypes[name]
	return t, ok
}

// ItemTypeNames returns the registered widget kind names in sorted order.
func ItemTypeNames() []string {
	names := make([]string, 0, len(itemTypes))
	for name := range itemTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// erasedType adapts a typed descriptor to the erased ItemType surface.
type erasedType[Item any] struct {
	desc *TypeDescriptor[Item, Value]
}

func (t erasedType[Item]) Name() string { return t.desc.Name() }

func (t erasedType[Item]) New() any { return new(Item) }

// item recovers the typed item pointer from the erased argument.
func (t erasedType[Item]) item(v any) (*Item, error) {
	item, ok := v.(*Item)
	if !ok {
		return nil, fmt.Errorf("rtti: %s accessor received item of type %T", t.desc.Name(), v)
	}
	return item, nil
}

func (t erasedType[Item]) property(name string) (PropertyInfo[Item, Value], error) {
	info, ok := t.desc.Property(name)
	if !ok {
		return nil, fmt.Errorf("rtti: %s has no property %q", t.desc.Name(), name)
	}
	return info, nil
}

func (t erasedType[Item]) GetProperty(item any, name string) (Value, error) {
	it, err := t.item(item)
	if err != nil {
		return Value{}, err
	}
	info, err := t.property(name)
	if err != nil {
		return Value{}, err
	}
	return info.Get(it)
}

func (t erasedType[Item]) SetProperty(item any, name string, value Value, anim *animation.PropertyAnimation) error {
	it, err := t.item(item)
	if err != nil {
		return err
	}
	info, err := t.property(name)
	if err != nil {
		return err
	}
	return info.Set(it, value, anim)
}

func (t erasedType[Item]) SetPropertyBinding(item any, name string, binding func() Value, kind AnimatedBindingKind) error {
	it, err := t.item(item)
	if err != nil {
		return err
	}
	info, err := t.property(name)
	if err != nil {
		return err
	}
	return info.SetBinding(it, binding, kind)
}

func (t erasedType[Item]) PropertyOffset(name string) (uintptr, error) {
	info, err := t.property(name)
	if err != nil {
		return 0, err
	}
	return info.Offset(), nil
}

func (t erasedType[Item]) PropertyHandle(item any, name string) (PropertyHandle, error) {
	it, err := t.item(item)
	if err != nil {
		return PropertyHandle{}, err
	}
	info, err := t.property(name)
	if err != nil {
		return PropertyHandle{}, err
	}
	return info.Handle(it), nil
}

func (t erasedType[Item]) LinkTwoWay(item any, name string, peer PropertyHandle) error {
	it, err := t.item(item)
	if err != nil {
		return err
	}
	info, err := t.property(name)
	if err != nil {
		return err
	}
	return info.LinkTwoWay(it, peer)
}

func (t erasedType[Item]) SetField(item any, name string, value Value) error {
	it, err := t.item(item)
	if err != nil {
		return err
	}
	info, ok := t.desc.Field(name)
	if !ok {
		return fmt.Errorf("rtti: %s has no field %q", t.desc.Name(), name)
	}
	return info.SetField(it, value)
}

func (t erasedType[Item]) SetSignalHandler(item any, name string, handler func()) error {
	it, err := t.item(item)
	if err != nil {
		return err
	}
	off, ok := t.desc.Signal(name)
	if !ok {
		return fmt.Errorf("rtti: %s has no signal %q", t.desc.Name(), name)
	}
	off.Apply(it).SetHandler(handler)
	return nil
}

func (t erasedType[Item]) EmitSignal(item any, name string) error {
	it, err := t.item(item)
	if err != nil {
		return err
	}
	off, ok := t.desc.Signal(name)
	if !ok {
		return fmt.Errorf("rtti: %s has no signal %q", t.desc.Name(), name)
	}
	off.Apply(it).Emit()
	return nil
}

func (t erasedType[Item]) PropertyNames() []string { return t.desc.PropertyNames() }
func (t erasedType[Item]) FieldNames() []string    { return t.desc.FieldNames() }
func (t erasedType[Item]) SignalNames() []string   { return t.desc.SignalNames() }
