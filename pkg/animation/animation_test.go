package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/prism/pkg/animation"
)

func TestProgressLinear(t *testing.T) {
	a := animation.PropertyAnimation{Duration: 100 * time.Millisecond}

	p, done := a.Progress(50 * time.Millisecond)
	if done || p != 0.5 {
		t.Errorf("Progress(50ms) = %v, %v; want 0.5, false", p, done)
	}
	p, done = a.Progress(100 * time.Millisecond)
	if !done || p != 1 {
		t.Errorf("Progress(100ms) = %v, %v; want 1, true", p, done)
	}
}

func TestProgressDelay(t *testing.T) {
	a := animation.PropertyAnimation{
		Duration: 100 * time.Millisecond,
		Delay:    50 * time.Millisecond,
	}

	if p, done := a.Progress(25 * time.Millisecond); p != 0 || done {
		t.Errorf("inside delay: got %v, %v; want 0, false", p, done)
	}
	if p, _ := a.Progress(100 * time.Millisecond); p != 0.5 {
		t.Errorf("after delay: got %v, want 0.5", p)
	}
}

func TestProgressIterations(t *testing.T) {
	a := animation.PropertyAnimation{
		Duration:   100 * time.Millisecond,
		Iterations: 2,
	}

	if p, done := a.Progress(150 * time.Millisecond); p != 0.5 || done {
		t.Errorf("second iteration midpoint: got %v, %v; want 0.5, false", p, done)
	}
	if p, done := a.Progress(200 * time.Millisecond); p != 1 || !done {
		t.Errorf("after both iterations: got %v, %v; want 1, true", p, done)
	}
}

func TestZeroDurationDefaults(t *testing.T) {
	var a animation.PropertyAnimation
	if d := a.EffectiveDuration(); d != animation.DefaultDuration {
		t.Errorf("EffectiveDuration() = %v, want %v", d, animation.DefaultDuration)
	}
	if n := a.EffectiveIterations(); n != 1 {
		t.Errorf("EffectiveIterations() = %v, want 1", n)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(0, 0)
	c := animation.NewManualClock(start)
	prev := animation.SetClock(c)
	defer animation.SetClock(prev)

	if !animation.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", animation.Now(), start)
	}
	c.Advance(time.Second)
	if got := animation.Now().Sub(start); got != time.Second {
		t.Errorf("after Advance: elapsed = %v, want 1s", got)
	}
}
