package rtti_test

import (
	"slices"
	"testing"

	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

func TestDescriptorLookups(t *testing.T) {
	d := gaugeDescriptor()

	if d.Name() != "Gauge" {
		t.Errorf("Name() = %q, want Gauge", d.Name())
	}
	if _, ok := d.Property("level"); !ok {
		t.Error("missing property level")
	}
	if _, ok := d.Property("nope"); ok {
		t.Error("found nonexistent property")
	}
	if got := d.PropertyNames(); !slices.Equal(got, []string{"label", "level", "tint"}) {
		t.Errorf("PropertyNames() = %v", got)
	}
	if got := d.FieldNames(); !slices.Equal(got, []string{"serial"}) {
		t.Errorf("FieldNames() = %v", got)
	}
	if got := d.SignalNames(); !slices.Equal(got, []string{"changed"}) {
		t.Errorf("SignalNames() = %v", got)
	}
}

func TestDuplicateNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate name")
		}
	}()

	type one struct {
		A property.Property[float64]
		B int32
	}
	var proto one
	d := rtti.NewTypeDescriptor[one, rtti.Value]("One")
	d.AddProperty("a", rtti.NewProperty[rtti.Value](rtti.OffsetOf(&proto, &proto.A)))
	// Same name in a different accessor set must still collide.
	d.AddField("a", rtti.NewField[rtti.Value](rtti.OffsetOf(&proto, &proto.B)))
}

func TestOffsetOfRejectsForeignField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a field outside the item")
		}
	}()

	type item struct {
		A property.Property[float64]
	}
	var a, b item
	rtti.OffsetOf(&a, &b.A)
}
