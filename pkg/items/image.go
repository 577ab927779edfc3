package items

import (
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

// Image displays a resource scaled into its box.
type Image struct {
	X      property.Property[float64]
	Y      property.Property[float64]
	Width  property.Property[float64]
	Height property.Property[float64]

	Source property.Property[graphics.Resource]
	Fit    property.Property[graphics.ImageFit]

	Opacity property.Property[float64]
}

// ImageDescriptor builds Image's accessor table for the dynamic value
// shape V.
func ImageDescriptor[V rtti.ValueType[V]]() *rtti.TypeDescriptor[Image, V] {
	var proto Image
	d := rtti.NewTypeDescriptor[Image, V]("Image")
	d.AddProperty("x", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.X)))
	d.AddProperty("y", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Y)))
	d.AddProperty("width", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Width)))
	d.AddProperty("height", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Height)))
	d.AddProperty("source", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Source)))
	d.AddProperty("image_fit", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Fit)))
	d.AddProperty("opacity", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Opacity)))
	return d
}

func init() {
	rtti.RegisterItem(ImageDescriptor[rtti.Value]())
}
