package rtti_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/prism/pkg/animation"
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/property"
	"github.com/go-drift/prism/pkg/rtti"
)

// gauge is a minimal item exercising every accessor path: an animatable
// cell, a plain-typed cell, a non-reactive field, and a signal.
type gauge struct {
	Level   property.Property[float64]
	Label   property.Property[string]
	Tint    property.Property[graphics.Color]
	Serial  int32
	Changed property.Signal
}

func gaugeDescriptor() *rtti.TypeDescriptor[gauge, rtti.Value] {
	var proto gauge
	d := rtti.NewTypeDescriptor[gauge, rtti.Value]("Gauge")
	d.AddProperty("level", rtti.NewProperty[rtti.Value](rtti.OffsetOf(&proto, &proto.Level)))
	d.AddProperty("label", rtti.NewProperty[rtti.Value](rtti.OffsetOf(&proto, &proto.Label)))
	d.AddProperty("tint", rtti.NewProperty[rtti.Value](rtti.OffsetOf(&proto, &proto.Tint)))
	d.AddField("serial", rtti.NewField[rtti.Value](rtti.OffsetOf(&proto, &proto.Serial)))
	d.AddSignal("changed", rtti.OffsetOf(&proto, &proto.Changed))
	return d
}

func withManualClock(t *testing.T) *animation.ManualClock {
	t.Helper()
	c := animation.NewManualClock(time.Unix(1000, 0))
	prev := animation.SetClock(c)
	t.Cleanup(func() { animation.SetClock(prev) })
	return c
}

func mustProperty[Item any](t *testing.T, d *rtti.TypeDescriptor[Item, rtti.Value], name string) rtti.PropertyInfo[Item, rtti.Value] {
	t.Helper()
	info, ok := d.Property(name)
	if !ok {
		t.Fatalf("descriptor %s has no property %q", d.Name(), name)
	}
	return info
}

func TestGetAfterSetRoundTrip(t *testing.T) {
	d := gaugeDescriptor()
	g := &gauge{}
	level := mustProperty(t, d, "level")

	if err := level.Set(g, rtti.MustValue(4.5), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := level.Get(g)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var f float64
	if !v.ConvertInto(&f) || f != 4.5 {
		t.Errorf("round trip: got %v, want 4.5", f)
	}
}

func TestSetIntegerIntoFloatCell(t *testing.T) {
	// A float cell holding 0.0, set with an integer 5 and no animation,
	// reads back as a value convertible to 5.0.
	d := gaugeDescriptor()
	g := &gauge{}
	level := mustProperty(t, d, "level")

	if err := level.Set(g, rtti.MustValue(int32(5)), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := level.Get(g)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var f float64
	if !v.ConvertInto(&f) || f != 5.0 {
		t.Errorf("got %v, want 5.0", f)
	}
	if g.Level.Get() != 5.0 {
		t.Errorf("cell value = %v, want 5.0", g.Level.Get())
	}
}

func TestSetInexactNumericFails(t *testing.T) {
	// A float32 cell only accepts values it can hold exactly; nothing on
	// the erased path truncates silently.
	type meter struct {
		Ratio property.Property[float32]
	}
	var proto meter
	d := rtti.NewTypeDescriptor[meter, rtti.Value]("Meter")
	d.AddProperty("ratio", rtti.NewProperty[rtti.Value](rtti.OffsetOf(&proto, &proto.Ratio)))
	m := &meter{}
	ratio := mustProperty(t, d, "ratio")

	var convErr *rtti.ConversionError
	if err := ratio.Set(m, rtti.MustValue(0.1), nil); !errors.As(err, &convErr) {
		t.Fatalf("Set(0.1) on float32 property: err = %v, want ConversionError", err)
	}
	if err := ratio.Set(m, rtti.MustValue(int64(1<<24+1)), nil); !errors.As(err, &convErr) {
		t.Fatalf("Set(1<<24+1) on float32 property: err = %v, want ConversionError", err)
	}
	if err := ratio.Set(m, rtti.MustValue(0.25), nil); err != nil {
		t.Fatalf("Set(0.25): %v", err)
	}
	if got := m.Ratio.Get(); got != 0.25 {
		t.Errorf("cell value = %v, want 0.25", got)
	}
}

func TestSetWrongKindFails(t *testing.T) {
	d := gaugeDescriptor()
	g := &gauge{}
	label := mustProperty(t, d, "label")

	err := label.Set(g, rtti.MustValue(true), nil)
	var convErr *rtti.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("Set(bool) on text property: err = %v, want ConversionError", err)
	}
}

func TestPlainPropertyRejectsAnimation(t *testing.T) {
	d := gaugeDescriptor()
	g := &gauge{}
	label := mustProperty(t, d, "label")
	anim := animation.PropertyAnimation{Duration: 100 * time.Millisecond}

	var unsupported *rtti.AnimationUnsupportedError
	if err := label.Set(g, rtti.MustValue("x"), &anim); !errors.As(err, &unsupported) {
		t.Errorf("animated Set on string property: err = %v, want AnimationUnsupportedError", err)
	}

	binding := func() rtti.Value { return rtti.MustValue("y") }
	if err := label.SetBinding(g, binding, rtti.Animated(anim)); !errors.As(err, &unsupported) {
		t.Errorf("animated SetBinding on string property: err = %v, want AnimationUnsupportedError", err)
	}
	supplier := func() (animation.PropertyAnimation, time.Time) { return anim, animation.Now() }
	if err := label.SetBinding(g, binding, rtti.Transition(supplier)); !errors.As(err, &unsupported) {
		t.Errorf("transition SetBinding on string property: err = %v, want AnimationUnsupportedError", err)
	}

	// Without animation both operations succeed.
	if err := label.Set(g, rtti.MustValue("x"), nil); err != nil {
		t.Errorf("plain Set: %v", err)
	}
	if err := label.SetBinding(g, binding, rtti.NotAnimated()); err != nil {
		t.Errorf("plain SetBinding: %v", err)
	}
	if got := g.Label.Get(); got != "y" {
		t.Errorf("Label = %q, want y", got)
	}
}

func TestAnimatedSetInterpolatesOverTime(t *testing.T) {
	clock := withManualClock(t)
	d := gaugeDescriptor()
	g := &gauge{}
	level := mustProperty(t, d, "level")
	anim := animation.PropertyAnimation{Duration: 100 * time.Millisecond}

	if err := level.Set(g, rtti.MustValue(10.0), &anim); err != nil {
		t.Fatalf("animated Set: %v", err)
	}
	clock.Advance(50 * time.Millisecond)
	mid := g.Level.Get()
	if mid <= 0 || mid >= 10 {
		t.Errorf("mid-transition value = %v, want strictly between 0 and 10", mid)
	}
	clock.Advance(100 * time.Millisecond)
	if got := g.Level.Get(); got != 10 {
		t.Errorf("final value = %v, want 10", got)
	}
}

func TestAnimatedColorSet(t *testing.T) {
	clock := withManualClock(t)
	d := gaugeDescriptor()
	g := &gauge{}
	tint := mustProperty(t, d, "tint")
	anim := animation.PropertyAnimation{Duration: 100 * time.Millisecond}

	g.Tint.Set(graphics.ColorBlack)
	if err := tint.Set(g, rtti.MustValue(graphics.ColorWhite), &anim); err != nil {
		t.Fatalf("animated Set: %v", err)
	}
	clock.Advance(50 * time.Millisecond)
	mid := g.Tint.Get()
	if mid == graphics.ColorBlack || mid == graphics.ColorWhite {
		t.Errorf("mid-transition color = %v, want a blend", mid)
	}
}

func TestAnimatedBindingThroughAccessor(t *testing.T) {
	clock := withManualClock(t)
	d := gaugeDescriptor()
	g := &gauge{}
	level := mustProperty(t, d, "level")
	anim := animation.PropertyAnimation{Duration: 100 * time.Millisecond}

	target := property.New(0.0)
	binding := func() rtti.Value { return rtti.MustValue(target.Get()) }
	if err := level.SetBinding(g, binding, rtti.Animated(anim)); err != nil {
		t.Fatalf("SetBinding: %v", err)
	}

	target.Set(10)
	if got := g.Level.Get(); got != 0 {
		t.Fatalf("reactivation start = %v, want 0", got)
	}
	clock.Advance(50 * time.Millisecond)
	mid := g.Level.Get()
	if mid <= 0 || mid >= 10 {
		t.Errorf("mid-transition = %v, want strictly between 0 and 10", mid)
	}
}

func TestTransitionBindingThroughAccessor(t *testing.T) {
	clock := withManualClock(t)
	d := gaugeDescriptor()
	g := &gauge{}
	level := mustProperty(t, d, "level")

	target := property.New(0.0)
	supplied := 0
	supplier := func() (animation.PropertyAnimation, time.Time) {
		supplied++
		dur := time.Duration(supplied) * 100 * time.Millisecond
		return animation.PropertyAnimation{Duration: dur}, animation.Now()
	}
	binding := func() rtti.Value { return rtti.MustValue(target.Get()) }
	if err := level.SetBinding(g, binding, rtti.Transition(supplier)); err != nil {
		t.Fatalf("SetBinding: %v", err)
	}

	target.Set(10)
	g.Level.Get()
	clock.Advance(100 * time.Millisecond)
	if got := g.Level.Get(); got != 10 {
		t.Fatalf("first transition incomplete: %v", got)
	}

	target.Set(20)
	g.Level.Get()
	clock.Advance(100 * time.Millisecond)
	mid := g.Level.Get()
	if supplied != 2 {
		t.Errorf("supplier ran %d times, want 2", supplied)
	}
	if mid <= 10 || mid >= 20 {
		t.Errorf("second transition (200ms) after 100ms = %v, want strictly between 10 and 20", mid)
	}
}

func TestBindingDefectPanics(t *testing.T) {
	d := gaugeDescriptor()
	g := &gauge{}
	level := mustProperty(t, d, "level")

	// The binding attaches fine but produces a non-numeric value later;
	// that is a defect in the binding, not a recoverable error.
	bad := func() rtti.Value { return rtti.MustValue("not a number") }
	if err := level.SetBinding(g, bad, rtti.NotAnimated()); err != nil {
		t.Fatalf("SetBinding: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic from defective binding")
		}
		if _, ok := r.(*rtti.BindingDefect); !ok {
			t.Fatalf("panic value = %#v, want *rtti.BindingDefect", r)
		}
	}()
	g.Level.Get()
}

func TestOffsetsAreDistinct(t *testing.T) {
	d := gaugeDescriptor()
	level := mustProperty(t, d, "level")
	label := mustProperty(t, d, "label")
	if level.Offset() == label.Offset() {
		t.Errorf("level and label share offset %d", level.Offset())
	}
}

func TestLinkTwoWayThroughAccessors(t *testing.T) {
	d := gaugeDescriptor()
	a := &gauge{}
	b := &gauge{}
	level := mustProperty(t, d, "level")

	if err := level.LinkTwoWay(a, level.Handle(b)); err != nil {
		t.Fatalf("LinkTwoWay: %v", err)
	}

	if err := level.Set(a, rtti.MustValue(3.0), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := b.Level.Get(); got != 3 {
		t.Errorf("b.Level = %v, want 3", got)
	}
	b.Level.Set(8)
	if got := a.Level.Get(); got != 8 {
		t.Errorf("a.Level = %v, want 8", got)
	}
}

func TestLinkTwoWayTypeMismatch(t *testing.T) {
	d := gaugeDescriptor()
	a := &gauge{}
	b := &gauge{}
	level := mustProperty(t, d, "level")
	label := mustProperty(t, d, "label")

	err := level.LinkTwoWay(a, label.Handle(b))
	var mismatch *rtti.LinkMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("linking float64 to string: err = %v, want LinkMismatchError", err)
	}
	if mismatch.Want != "float64" || mismatch.Got != "string" {
		t.Errorf("mismatch = %+v, want float64/string", mismatch)
	}
}

func TestFieldAccessor(t *testing.T) {
	d := gaugeDescriptor()
	g := &gauge{}
	serial, ok := d.Field("serial")
	if !ok {
		t.Fatal("descriptor has no field serial")
	}

	// A resource value does not convert into an integer field.
	err := serial.SetField(g, rtti.MustValue(graphics.Resource{Kind: graphics.ResourceFile, Path: "x.png"}))
	var convErr *rtti.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("SetField(resource): err = %v, want ConversionError", err)
	}

	// An integer-compatible value succeeds and the plain read sees it.
	if err := serial.SetField(g, rtti.MustValue(int64(7))); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if g.Serial != 7 {
		t.Errorf("Serial = %d, want 7", g.Serial)
	}
}

func TestSignalOffset(t *testing.T) {
	d := gaugeDescriptor()
	g := &gauge{}
	off, ok := d.Signal("changed")
	if !ok {
		t.Fatal("descriptor has no signal changed")
	}

	fired := false
	off.Apply(g).SetHandler(func() { fired = true })
	g.Changed.Emit()
	if !fired {
		t.Error("handler attached through the signal offset did not fire")
	}
}
