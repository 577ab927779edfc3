package items

import (
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

// Text displays a run of text inside its box.
type Text struct {
	X      property.Property[float64]
	Y      property.Property[float64]
	Width  property.Property[float64]
	Height property.Property[float64]

	Text     property.Property[string]
	FontSize property.Property[float64]
	Color    property.Property[graphics.Color]

	HorizontalAlignment property.Property[graphics.TextHorizontalAlignment]
	VerticalAlignment   property.Property[graphics.TextVerticalAlignment]
}

// TextDescriptor builds Text's accessor table for the dynamic value
// shape V.
func TextDescriptor[V rtti.ValueType[V]]() *rtti.TypeDescriptor[Text, V] {
	var proto Text
	d := rtti.NewTypeDescriptor[Text, V]("Text")
	d.AddProperty("x", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.X)))
	d.AddProperty("y", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Y)))
	d.AddProperty("width", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Width)))
	d.AddProperty("height", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Height)))
	d.AddProperty("text", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Text)))
	d.AddProperty("font_size", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.FontSize)))
	d.AddProperty("color", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Color)))
	d.AddProperty("horizontal_alignment", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.HorizontalAlignment)))
	d.AddProperty("vertical_alignment", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.VerticalAlignment)))
	return d
}

func init() {
	rtti.RegisterItem(TextDescriptor[rtti.Value]())
}
