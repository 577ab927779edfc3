package items

import (
	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

// TouchArea is an invisible item reacting to pointer input within its box.
type TouchArea struct {
	X      property.Property[float64]
	Y      property.Property[float64]
	Width  property.Property[float64]
	Height property.Property[float64]

	Pressed property.Property[bool]

	Clicked property.Signal

	// HitPriority orders overlapping touch areas; the scene compiler
	// writes it once, it is not reactive.
	HitPriority int32
}

// TouchAreaDescriptor builds TouchArea's accessor table for the dynamic
// value shape V.
func TouchAreaDescriptor[V rtti.ValueType[V]]() *rtti.TypeDescriptor[TouchArea, V] {
	var proto TouchArea
	d := rtti.NewTypeDescriptor[TouchArea, V]("TouchArea")
	d.AddProperty("x", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.X)))
	d.AddProperty("y", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Y)))
	d.AddProperty("width", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Width)))
	d.AddProperty("height", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Height)))
	d.AddProperty("pressed", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Pressed)))
	d.AddSignal("clicked", rtti.OffsetOf(&proto, &proto.Clicked))
	d.AddField("hit_priority", rtti.NewField[V](rtti.OffsetOf(&proto, &proto.HitPriority)))
	return d
}

func init() {
	rtti.RegisterItem(TouchAreaDescriptor[rtti.Value]())
}
