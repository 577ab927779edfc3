package items

import (
	"github.com/go-drift/prism/pkg/animation"
	"github.com/go-drift/prism/pkg/model"
	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

// StandardListView is a scrollable list of standard rows.
type StandardListView struct {
	X      property.Property[float64]
	Y      property.Property[float64]
	Width  property.Property[float64]
	Height property.Property[float64]

	CurrentItem property.Property[model.StandardListViewItem]
	RowHeight   property.Property[float64]
	ScrollY     property.Property[float64]

	// ScrollEasing shapes programmatic scrolls (ensure-visible, paging).
	ScrollEasing property.Property[animation.EasingCurve]

	ItemActivated property.Signal
}

// StandardListViewDescriptor builds StandardListView's accessor table for
// the dynamic value shape V.
func StandardListViewDescriptor[V rtti.ValueType[V]]() *rtti.TypeDescriptor[StandardListView, V] {
	var proto StandardListView
	d := rtti.NewTypeDescriptor[StandardListView, V]("StandardListView")
	d.AddProperty("x", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.X)))
	d.AddProperty("y", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Y)))
	d.AddProperty("width", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Width)))
	d.AddProperty("height", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.Height)))
	d.AddProperty("current_item", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.CurrentItem)))
	d.AddProperty("row_height", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.RowHeight)))
	d.AddProperty("scroll_y", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.ScrollY)))
	d.AddProperty("scroll_easing", rtti.NewProperty[V](rtti.OffsetOf(&proto, &proto.ScrollEasing)))
	d.AddSignal("item_activated", rtti.OffsetOf(&proto, &proto.ItemActivated))
	return d
}

func init() {
	rtti.RegisterItem(StandardListViewDescriptor[rtti.Value]())
}
