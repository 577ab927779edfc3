package items

import (
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

// Rectangle is a filled rectangle with an optional border.
type Rectangle struct {
	X      property.Property[float64]
	Y      property.Property[float64]
	Width  property.Property[float64]
	Height property.Property[float64]

	Color       property.Property[graphics.Color]
	BorderWidth property.Property[float64]
	BorderColor property.Property[graphics.Color]

	// ZIndex is set once by the scene compiler; it is not reactive.
	ZIndex int32
}

// RectangleDescriptor builds Rectangle's accessor table for the dynamic
// value shape V.
func RectangleDescriptor[V rtti.ValueType[V]]() *rtti.TypeDescriptor[Rectangle, V] {
	var proto Rectangle
	d := rtti.NewTypeDescriptor[Rectangle, V]("Rectangle")
	d.AddProperty("x", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.X)))
	d.AddProperty("y", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Y)))
	d.AddProperty("width", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Width)))
	d.AddProperty("height", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Height)))
	d.AddProperty("color", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Color)))
	d.AddProperty("border_width", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.BorderWidth)))
	d.AddProperty("border_color", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.BorderColor)))
	d.AddField("z_index", rtti.NewField[V](rtti.OffsetOf(&proto, &proto.ZIndex)))
	return d
}

func init() {
	rtti.RegisterItem(RectangleDescriptor[rtti.Value]())
}
