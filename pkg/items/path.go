package items

import (
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

// Path renders vector path data with fill and stroke.
type Path struct {
	X property.Property[float64]
	Y property.Property[float64]

	Elements property.Property[graphics.PathData]

	FillColor   property.Property[graphics.Color]
	StrokeColor property.Property[graphics.Color]
	StrokeWidth property.Property[float64]
}

// PathDescriptor builds Path's accessor table for the dynamic value
// shape V.
func PathDescriptor[V rtti.ValueType[V]]() *rtti.TypeDescriptor[Path, V] {
	var proto Path
	d := rtti.NewTypeDescriptor[Path, V]("Path")
	d.AddProperty("x", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.X)))
	d.AddProperty("y", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Y)))
	d.AddProperty("elements", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Elements)))
	d.AddProperty("fill_color", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.FillColor)))
	d.AddProperty("stroke_color", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.StrokeColor)))
	d.AddProperty("stroke_width", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.StrokeWidth)))
	return d
}

func init() {
	rtti.RegisterItem(PathDescriptor[rtti.Value]())
}
