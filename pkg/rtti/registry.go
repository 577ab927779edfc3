package rtti

import (
	"fmt"
	"slices"

	"github.com/go-drift/prism/pkg/property"
)

// TypeDescriptor is the accessor table of one widget kind: its display
// name and the named property, field, and signal accessors, all
// instantiated against the dynamic value shape V.
//
// Descriptors are built during package initialization and never mutated
// afterward. Names are unique across properties, fields, and signals
// combined, so a single name lookup is unambiguous; the Add methods panic
// on a duplicate, which surfaces a registration bug at startup instead of
// shadowing an accessor at run time.
type TypeDescriptor[Item any, V any] struct {
	name       string
	properties map[string]PropertyInfo[Item, V]
	fields     map[string]FieldInfo[Item, V]
	signals    map[string]FieldOffset[Item, property.Signal]
}

// NewTypeDescriptor starts an empty descriptor for the widget kind with
// the given display name.
func NewTypeDescriptor[Item any, V any](name string) *TypeDescriptor[Item, V] {
	return &TypeDescriptor[Item, V]{
		name:       name,
		properties: make(map[string]PropertyInfo[Item, V]),
		fields:     make(map[string]FieldInfo[Item, V]),
		signals:    make(map[string]FieldOffset[Item, property.Signal]),
	}
}

// Name returns the widget kind's display name.
func (d *TypeDescriptor[Item, V]) Name() string { return d.name }

// AddProperty registers a named property accessor.
func (d *TypeDescriptor[Item, V]) AddProperty(name string, info PropertyInfo[Item, V]) *TypeDescriptor[Item, V] {
	d.reserve(name)
	d.properties[name] = info
	return d
}

// AddField registers a named plain-field accessor.
func (d *TypeDescriptor[Item, V]) AddField(name string, info FieldInfo[Item, V]) *TypeDescriptor[Item, V] {
	d.reserve(name)
	d.fields[name] = info
	return d
}

// AddSignal registers a named signal slot.
func (d *TypeDescriptor[Item, V]) AddSignal(name string, off FieldOffset[Item, property.Signal]) *TypeDescriptor[Item, V] {
	d.reserve(name)
	d.signals[name] = off
	return d
}

// reserve enforces name uniqueness across all three accessor sets.
func (d *TypeDescriptor[Item, V]) reserve(name string) {
	if _, ok := d.properties[name]; ok {
		panic(fmt.Sprintf("rtti: %s already has a property named %q", d.name, name))
	}
	if _, ok := d.fields[name]; ok {
		panic(fmt.Sprintf("rtti: %s already has a field named %q", d.name, name))
	}
	if _, ok := d.signals[name]; ok {
		panic(fmt.Sprintf("rtti: %s already has a signal named %q", d.name, name))
	}
}

// Property returns the named property accessor.
func (d *TypeDescriptor[Item, V]) Property(name string) (PropertyInfo[Item, V], bool) {
	info, ok := d.properties[name]
	return info, ok
}

// Field returns the named plain-field accessor.
func (d *TypeDescriptor[Item, V]) Field(name string) (FieldInfo[Item, V], bool) {
	info, ok := d.fields[name]
	return info, ok
}

// Signal returns the named signal slot.
func (d *TypeDescriptor[Item, V]) Signal(name string) (FieldOffset[Item, property.Signal], bool) {
	off, ok := d.signals[name]
	return off, ok
}

// PropertyNames returns the property names in sorted order.
func (d *TypeDescriptor[Item, V]) PropertyNames() []string {
	return sortedKeys(d.properties)
}

// FieldNames returns the plain-field names in sorted order.
func (d *TypeDescriptor[Item, V]) FieldNames() []string {
	return sortedKeys(d.fields)
}

// SignalNames returns the signal names in sorted order.
func (d *TypeDescriptor[Item, V]) SignalNames() []string {
	return sortedKeys(d.signals)
}

func sortedKeys[M ~map[string]E, E any](m M) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
