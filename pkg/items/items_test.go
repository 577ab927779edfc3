package items_test

import (
	"slices"
	"testing"
	"time"

	"github.com/go-drift/prism/pkg/animation"
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/items"
	"github.com/go-drift/prism/pkg/model"
	"github.com/go-drift/prism/pkg/rtti"
)

func TestBuiltinKindsRegistered(t *testing.T) {
	want := []string{"Image", "Path", "Rectangle", "StandardListView", "Text", "TouchArea"}
	got := rtti.ItemTypeNames()
	for _, name := range want {
		if !slices.Contains(got, name) {
			t.Errorf("kind %s not registered (have %v)", name, got)
		}
	}
}

func TestErasedPropertyAccess(t *testing.T) {
	kind, ok := rtti.LookupItem("Rectangle")
	if !ok {
		t.Fatal("Rectangle not registered")
	}
	item := kind.New()

	if err := kind.SetProperty(item, "width", rtti.MustValue(120.0), nil); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	v, err := kind.GetProperty(item, "width")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	var w float64
	if !v.ConvertInto(&w) || w != 120 {
		t.Errorf("width = %v, want 120", w)
	}

	rect, ok := item.(*items.Rectangle)
	if !ok {
		t.Fatalf("New() returned %T", item)
	}
	if got := rect.Width.Get(); got != 120 {
		t.Errorf("typed read = %v, want 120", got)
	}
}

func TestErasedUnknownNames(t *testing.T) {
	kind, _ := rtti.LookupItem("Rectangle")
	item := kind.New()

	if _, err := kind.GetProperty(item, "bogus"); err == nil {
		t.Error("GetProperty(bogus) should fail")
	}
	if err := kind.SetField(item, "bogus", rtti.MustValue(int32(1))); err == nil {
		t.Error("SetField(bogus) should fail")
	}
	if err := kind.EmitSignal(item, "bogus"); err == nil {
		t.Error("EmitSignal(bogus) should fail")
	}
}

func TestErasedWrongItemType(t *testing.T) {
	rectKind, _ := rtti.LookupItem("Rectangle")
	textKind, _ := rtti.LookupItem("Text")

	if _, err := rectKind.GetProperty(textKind.New(), "width"); err == nil {
		t.Error("Rectangle accessor accepted a *Text item")
	}
}

func TestErasedAnimatedSet(t *testing.T) {
	clock := animation.NewManualClock(time.Unix(0, 0))
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	kind, _ := rtti.LookupItem("Rectangle")
	item := kind.New()
	anim := animation.PropertyAnimation{Duration: 100 * time.Millisecond}

	if err := kind.SetProperty(item, "width", rtti.MustValue(100.0), &anim); err != nil {
		t.Fatalf("animated SetProperty: %v", err)
	}
	clock.Advance(50 * time.Millisecond)
	v, err := kind.GetProperty(item, "width")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	var w float64
	if !v.ConvertInto(&w) || w <= 0 || w >= 100 {
		t.Errorf("mid-transition width = %v, want strictly between 0 and 100", w)
	}
}

func TestErasedFieldAndSignal(t *testing.T) {
	kind, _ := rtti.LookupItem("TouchArea")
	item := kind.New()

	if err := kind.SetField(item, "hit_priority", rtti.MustValue(int32(3))); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	area := item.(*items.TouchArea)
	if area.HitPriority != 3 {
		t.Errorf("HitPriority = %d, want 3", area.HitPriority)
	}

	clicks := 0
	if err := kind.SetSignalHandler(item, "clicked", func() { clicks++ }); err != nil {
		t.Fatalf("SetSignalHandler: %v", err)
	}
	if err := kind.EmitSignal(item, "clicked"); err != nil {
		t.Fatalf("EmitSignal: %v", err)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestLinkAcrossKinds(t *testing.T) {
	// Two cells of the same concrete type link even when they belong to
	// different widget kinds.
	rectKind, _ := rtti.LookupItem("Rectangle")
	textKind, _ := rtti.LookupItem("Text")
	rect := rectKind.New()
	text := textKind.New()

	peer, err := textKind.PropertyHandle(text, "x")
	if err != nil {
		t.Fatalf("PropertyHandle: %v", err)
	}
	if err := rectKind.LinkTwoWay(rect, "x", peer); err != nil {
		t.Fatalf("LinkTwoWay: %v", err)
	}

	if err := rectKind.SetProperty(rect, "x", rtti.MustValue(42.0), nil); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	v, err := textKind.GetProperty(text, "x")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	var x float64
	if !v.ConvertInto(&x) || x != 42 {
		t.Errorf("linked x = %v, want 42", x)
	}
}

func TestLinkAcrossKindsMismatch(t *testing.T) {
	rectKind, _ := rtti.LookupItem("Rectangle")
	textKind, _ := rtti.LookupItem("Text")
	rect := rectKind.New()
	text := textKind.New()

	peer, err := textKind.PropertyHandle(text, "text")
	if err != nil {
		t.Fatalf("PropertyHandle: %v", err)
	}
	if err := rectKind.LinkTwoWay(rect, "x", peer); err == nil {
		t.Error("linking float64 x to string text should fail")
	}
}

func TestEnumAndRecordProperties(t *testing.T) {
	textKind, _ := rtti.LookupItem("Text")
	text := textKind.New()
	if err := textKind.SetProperty(text, "horizontal_alignment", rtti.MustValue(graphics.TextHorizontalCenter), nil); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if got := text.(*items.Text).HorizontalAlignment.Get(); got != graphics.TextHorizontalCenter {
		t.Errorf("alignment = %v, want center", got)
	}

	listKind, _ := rtti.LookupItem("StandardListView")
	list := listKind.New()
	row := model.StandardListViewItem{Text: "first"}
	if err := listKind.SetProperty(list, "current_item", rtti.MustValue(row), nil); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if got := list.(*items.StandardListView).CurrentItem.Get(); got != row {
		t.Errorf("current_item = %+v, want %+v", got, row)
	}
}

func TestPropertyOffsetsExposed(t *testing.T) {
	kind, _ := rtti.LookupItem("Rectangle")
	seen := map[uintptr]string{}
	for _, name := range kind.PropertyNames() {
		off, err := kind.PropertyOffset(name)
		if err != nil {
			t.Fatalf("PropertyOffset(%s): %v", name, err)
		}
		if other, dup := seen[off]; dup {
			t.Errorf("properties %s and %s share offset %d", name, other, off)
		}
		seen[off] = name
	}
}
